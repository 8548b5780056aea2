package extract

import (
	"regexp"
	"strings"
)

// Sentinels returned when no party rule matched.
const (
	ShipToNotFound = "Ship To Not Found"
	BillToNotFound = "Bill To Not Found"
)

var (
	labelBreakRE   = regexp.MustCompile(`(?i)\s*([a-z])\s*(c/o|R\s*F\s*C|Incoterm)`)
	disallowedRE   = regexp.MustCompile("[^a-zA-Z0-9\\s,./:\\-&\n]+")
	multiSpaceRE   = regexp.MustCompile(`\s{2,}`)
	multiNewlineRE = regexp.MustCompile(`[\r\n]{2,}`)
	crlfRE         = regexp.MustCompile(`[\r\n]`)
	shipToBlockRE  = regexp.MustCompile(`(?is)Ship To:\s*(.*?)\s*Bill To:`)
	billToBlockRE  = regexp.MustCompile(`(?is)Bill To:\s*(.*?)(RFC:|Incoterm|Payment|Subtotal|TOTAL|Product No\.|$)`)
	magnoliaAltZip = regexp.MustCompile(`77354`)
)

// Parties is the resolved address pair.
type Parties struct {
	ShipTo string
	BillTo string
}

// ResolveParties determines the Ship To and Bill To addresses from
// single-line invoice page text. Party names are classified against the
// registry and the addresses come from its table, never from the noisy
// recognized text itself. The decision runs on which parties appear:
// a manufacturer plus the intermediary routes Ship To through whichever
// forwarder is present; a lone manufacturer is billed at its Mexican
// plant; a lone intermediary falls back to its own addresses.
func ResolveParties(reg *Registry, text string) Parties {
	// reinsert line breaks swallowed by the one-line normalization so the
	// block regexes can anchor on c/o, RFC and Incoterm labels
	text = labelBreakRE.ReplaceAllString(text, "$1\n$2")
	text = aggressiveCleanup(reg, text)

	shipToText := ""
	if m := shipToBlockRE.FindStringSubmatch(text); m != nil {
		shipToText = strings.TrimSpace(m[1])
	}
	billToText := ""
	if m := billToBlockRE.FindStringSubmatch(text); m != nil {
		billToText = strings.TrimSpace(m[1])
	}

	// a merged layout sometimes runs both parties into the Bill To block
	if shipToText == "" && billToText != "" && reg.manufacturer.MatchString(billToText) {
		shipToText = billToText
	}

	hasMexican := reg.manufacturer.FindString(text)
	hasArrow := reg.intermediary.FindString(text)

	shipTo := ShipToNotFound
	billTo := BillToNotFound

	switch {
	case hasMexican != "" && hasArrow != "":
		mexicanName := hasMexican
		if m := reg.manufacturer.FindString(shipToText); m != "" {
			mexicanName = m
		}
		mexicanName = wsRE.ReplaceAllString(strings.TrimSpace(mexicanName), " ")

		if arrowInBlock := reg.intermediary.FindString(billToText); arrowInBlock != "" {
			arrowName := wsRE.ReplaceAllString(strings.TrimSpace(arrowInBlock), " ")
			if magnoliaAltZip.MatchString(billToText) {
				billTo = arrowName + "\n" + reg.Address(AddrArrowMagnoliaAlt)
			} else {
				billTo = arrowName + "\n" + reg.Address(AddrArrowMagnolia)
			}
		} else {
			billTo = "Arrow Trading LLC\n" + reg.Address(AddrArrowMagnoliaAlt)
		}

		switch {
		case reg.forwarders[RouteLaredo].MatchString(shipToText) || reg.forwarders[RouteLaredo].MatchString(text):
			shipTo = mexicanName + " SA de CV\n" + reg.Address(AddrLaredo)
		case reg.forwarders[RouteEaglePass].MatchString(shipToText) || reg.forwarders[RouteEaglePass].MatchString(text):
			shipTo = mexicanName + " SA de CV\n" + reg.Address(AddrEaglePass)
		default:
			shipTo = mexicanName + " SA de CV\n" + reg.Address(AddrReymaUSShipTo)
		}

	case hasMexican != "":
		mexicanName := wsRE.ReplaceAllString(strings.TrimSpace(hasMexican), " ")
		shipTo = mexicanName + " SA de CV\n" + reg.Address(AddrReymaUSShipTo)
		if strings.Contains(mexicanName, "Plasticos Adheribles del Bajio") {
			billTo = mexicanName + " SA de CV\n" + reg.Address(AddrPlasticosBajioMX)
		} else {
			billTo = mexicanName + " SA de CV\n" + reg.Address(AddrReymaMX)
		}

	case hasArrow != "":
		shipTo = "Arrow Trading LLC\n" + reg.Address(AddrReymaUSShipTo)
		billTo = "Arrow Trading LLC\n" + reg.Address(AddrArrowMagnoliaAlt)
	}

	return Parties{
		ShipTo: finalCleanup(reg, shipTo),
		BillTo: finalCleanup(reg, billTo),
	}
}

// aggressiveCleanup flattens recognition noise before block isolation:
// line breaks become spaces, runs of whitespace collapse, characters that
// never appear in these addresses are dropped, and the registry's OCR
// corrections repair known misreads.
func aggressiveCleanup(reg *Registry, t string) string {
	t = crlfRE.ReplaceAllString(t, " ")
	t = multiSpaceRE.ReplaceAllString(t, " ")
	t = disallowedRE.ReplaceAllString(t, "")
	t = reg.applyCorrections(t)
	return strings.TrimSpace(t)
}

func finalCleanup(reg *Registry, addr string) string {
	if addr == "" || addr == ShipToNotFound || addr == BillToNotFound {
		return addr
	}
	addr = reg.normalize(addr)
	addr = multiSpaceRE.ReplaceAllString(addr, " ")
	addr = multiNewlineRE.ReplaceAllString(addr, "\n")
	return strings.TrimSpace(addr)
}
