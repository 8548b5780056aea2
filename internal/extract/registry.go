package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Forwarder routes recognized on the Ship To side. Each route pins the
// consignee's US delivery address.
const (
	RouteLaredo    = "laredo"
	RouteEaglePass = "eagle_pass"
	RouteBDP       = "bdp"
)

// RegistryData is the serializable form of the party registry. An
// operator-supplied JSON file in this shape overrides the built-in tables.
type RegistryData struct {
	ManufacturerPatterns []string          `json:"manufacturer_patterns"`
	IntermediaryPattern  string            `json:"intermediary_pattern"`
	ForwarderPatterns    map[string]string `json:"forwarder_patterns"`
	Addresses            map[string]string `json:"addresses"`
	Corrections          []Correction      `json:"corrections"`
	Normalizations       []Correction      `json:"normalizations"`
}

// Correction is a regex rewrite applied to recognition output before or
// after party resolution.
type Correction struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// Registry holds the compiled party tables used to resolve Ship To and
// Bill To addresses.
type Registry struct {
	manufacturer  *regexp.Regexp
	intermediary  *regexp.Regexp
	forwarders    map[string]*regexp.Regexp
	addresses     map[string]string
	corrections   []compiledCorrection
	normalization []compiledCorrection
}

type compiledCorrection struct {
	re          *regexp.Regexp
	replacement string
}

const registrySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["manufacturer_patterns", "intermediary_pattern", "forwarder_patterns", "addresses"],
  "properties": {
    "manufacturer_patterns": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    },
    "intermediary_pattern": {"type": "string", "minLength": 1},
    "forwarder_patterns": {
      "type": "object",
      "required": ["laredo", "eagle_pass", "bdp"],
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "addresses": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "corrections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["pattern", "replacement"],
        "properties": {
          "pattern": {"type": "string", "minLength": 1},
          "replacement": {"type": "string"}
        }
      }
    },
    "normalizations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["pattern", "replacement"],
        "properties": {
          "pattern": {"type": "string", "minLength": 1},
          "replacement": {"type": "string"}
        }
      }
    }
  }
}`

// Address table keys.
const (
	AddrPlasticosBajioMX = "plasticos_bajio_mx"
	AddrReymaMX          = "reyma_mx"
	AddrReymaUSShipTo    = "reyma_us_ship_to"
	AddrArrowMagnolia    = "arrow_magnolia"
	AddrArrowMagnoliaAlt = "arrow_magnolia_alt"
	AddrEaglePass        = "eagle_pass"
	AddrLaredo           = "laredo"
)

// DefaultRegistryData returns the built-in party tables for the Arrow
// Trading import flow.
func DefaultRegistryData() RegistryData {
	return RegistryData{
		ManufacturerPatterns: []string{
			`Pl[aá]stic\s*os?\s*Adherib?\s*les?\s*del\s*Baj[ií]o`,
			`Grupo\s*Industrial\s*Reyma`,
			`Polietilenos?\s*[Dd]el\s*Centro`,
			`Reyma\s*Del\s*Noroeste`,
			`Termofilm\s*Y\s*Espumados\s*Leon`,
		},
		IntermediaryPattern: `Arrow\s*Trading\s*LLC`,
		ForwarderPatterns: map[string]string{
			RouteLaredo:    `Medina\s*Logistic\s*Services`,
			RouteEaglePass: `Villarreal\s*&\s*Medina\s*Forwarding\s*Inc`,
			RouteBDP:       `(c/o\s*BDP|BDP\s*International|c/o\s*BOP|BOP\s*International)`,
		},
		Addresses: map[string]string{
			AddrPlasticosBajioMX: "Km 19.5, Carretera Panamericana, S/N\nParque Industrial El Bajío\nCuerámaro, GTO 36960 MEXICO",
			AddrReymaMX:          "Calzada Industrial de la Manufactura No. 35\nParque Industrial Nogales, SO 84094 MEXICO",
			AddrReymaUSShipTo:    "c/o BDP International\n801 Hanover Drive\nGrapevine, TX 76051",
			AddrArrowMagnolia:    "28789 Hardin Store Rd. Suite 230\nMagnolia, TX 77394",
			AddrArrowMagnoliaAlt: "28789 Hardin Store Rd. Suite 230\nMagnolia, TX 77354",
			AddrEaglePass:        "c/o Villarreal & Medina Forwarding Inc.\n14404 Investment Ave.\nEagle Pass, TX 78852",
			AddrLaredo:           "c/o Medina Logistic Services, Inc.\n14402 Investment Ave.\nLaredo, TX 78045",
		},
		Corrections: []Correction{
			{Pattern: `(?i)(BOP|BDP)\s*Internat(ional|emational)`, Replacement: "BDP International"},
			{Pattern: `(?i)clo\s*BDP`, Replacement: "c/o BDP"},
			{Pattern: `(?i)c o BDP`, Replacement: "c/o BDP"},
			{Pattern: `(?i)ArrowTrading`, Replacement: "Arrow Trading"},
			{Pattern: `(?i)Villarreal\s*&\s*Medina\s*Forwarding\s*Inc`, Replacement: "Villarreal & Medina Forwarding Inc"},
			{Pattern: `(?i)Polietiienos`, Replacement: "Polietilenos"},
			{Pattern: `(?i)Adherib\s+les`, Replacement: "Adheribles"},
			{Pattern: `(?i)Plasticos?\s+Adheribles?`, Replacement: "Plasticos Adheribles"},
		},
		Normalizations: []Correction{
			{Pattern: `Plasticos Adheribles del Bajio SA de CV`, Replacement: "Plasticos Adheribles del Bajio S.A. de C.V."},
			{Pattern: `Polietilenos del Centro SA de CV`, Replacement: "Polietilenos del Centro S.A. de C.V."},
			{Pattern: `Grupo Industrial Reyma SA de CV`, Replacement: "Grupo Industrial Reyma S.A. de C.V."},
		},
	}
}

// NewRegistry compiles the given tables.
func NewRegistry(data RegistryData) (*Registry, error) {
	r := &Registry{
		forwarders: make(map[string]*regexp.Regexp, len(data.ForwarderPatterns)),
		addresses:  data.Addresses,
	}

	combined := "(" + strings.Join(data.ManufacturerPatterns, "|") + ")"
	var err error
	if r.manufacturer, err = regexp.Compile(`(?i)` + combined); err != nil {
		return nil, fmt.Errorf("compile manufacturer patterns: %w", err)
	}
	if r.intermediary, err = regexp.Compile(`(?i)` + data.IntermediaryPattern); err != nil {
		return nil, fmt.Errorf("compile intermediary pattern: %w", err)
	}
	for route, pat := range data.ForwarderPatterns {
		re, err := regexp.Compile(`(?i)` + pat)
		if err != nil {
			return nil, fmt.Errorf("compile forwarder pattern %q: %w", route, err)
		}
		r.forwarders[route] = re
	}
	for _, c := range data.Corrections {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile correction %q: %w", c.Pattern, err)
		}
		r.corrections = append(r.corrections, compiledCorrection{re: re, replacement: c.Replacement})
	}
	for _, c := range data.Normalizations {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile normalization %q: %w", c.Pattern, err)
		}
		r.normalization = append(r.normalization, compiledCorrection{re: re, replacement: c.Replacement})
	}
	return r, nil
}

// DefaultRegistry compiles the built-in tables. It panics on failure since
// the built-ins are constants checked by tests.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultRegistryData())
	if err != nil {
		panic(fmt.Sprintf("built-in party registry is invalid: %v", err))
	}
	return r
}

// LoadRegistry reads a registry override file, validates it against the
// registry schema, and compiles it. Missing optional sections fall back to
// the built-in corrections and normalizations.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	schema, err := jsonschema.CompileString("registry.json", registrySchema)
	if err != nil {
		return nil, fmt.Errorf("compile registry schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}

	var data RegistryData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode registry file: %w", err)
	}
	defaults := DefaultRegistryData()
	if len(data.Corrections) == 0 {
		data.Corrections = defaults.Corrections
	}
	if len(data.Normalizations) == 0 {
		data.Normalizations = defaults.Normalizations
	}
	return NewRegistry(data)
}

func (r *Registry) Address(key string) string { return r.addresses[key] }

func (r *Registry) applyCorrections(text string) string {
	for _, c := range r.corrections {
		text = c.re.ReplaceAllString(text, c.replacement)
	}
	return text
}

func (r *Registry) normalize(addr string) string {
	for _, c := range r.normalization {
		addr = c.re.ReplaceAllString(addr, c.replacement)
	}
	return addr
}
