package extract

import (
	"regexp"
	"strings"
)

var (
	// railcar IDs follow a letters-then-digits reporting mark, sometimes
	// with a space misread into the middle, e.g. "FPAX21 4289"
	railcarIDRE = regexp.MustCompile(`(?i)(RAILCAR|TRUCK|VESSEL)\s*#?\s*([A-Z]{2,4}[A-Z0-9]{0,4}\s*[0-9]{4,6})`)
	// trucks and vessels carry short free-form IDs, numeric ones included
	truckIDRE = regexp.MustCompile(`(?i)(RAILCAR|TRUCK|VESSEL)\s*#?\s*([A-Z0-9]{4,10})`)

	contaminantRE = regexp.MustCompile(`(?is)[\W\s]*?(CUSTID|SEALNO|SHIPPER|P\d{2}[A-Z]\d{3}|Subtotal|LOT\s*NO|SPIDSP|PRODUCT\s*NO|PPOOLLYYPP).*`)
	idTokenRE     = regexp.MustCompile(`(?i)^([A-Z0-9]+\s*[A-Z0-9]*)`)
)

var transportExcluded = map[string]struct{}{
	"RAILCAR": {}, "TRUCK": {}, "VESSEL": {}, "CUSTID": {}, "NONE": {},
}

// ExtractTransportNo searches the full document text for the railcar,
// truck or vessel identifier. The structured railcar shape is tried first;
// the looser short-ID shape is the fallback. Labels from adjacent columns
// that bled into the capture are cut off, internal spaces removed, and
// anything shorter than four characters discarded as noise.
func ExtractTransportNo(fullText string) *string {
	var raw string
	if m := railcarIDRE.FindStringSubmatch(fullText); m != nil {
		raw = strings.TrimSpace(m[2])
	} else if m := truckIDRE.FindStringSubmatch(fullText); m != nil {
		raw = strings.TrimSpace(m[2])
	}
	if raw == "" {
		return nil
	}

	cleaned := contaminantRE.ReplaceAllString(raw, "")
	m := idTokenRE.FindStringSubmatch(strings.TrimSpace(cleaned))
	if m == nil {
		return nil
	}
	id := wsRE.ReplaceAllString(m[1], "")
	if len(id) < 4 {
		return nil
	}
	if _, bad := transportExcluded[strings.ToUpper(id)]; bad {
		return nil
	}
	return strptr(id)
}
