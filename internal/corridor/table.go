// Package corridor matches a (source, destination) jurisdiction pair against
// a catalogue of known cross-border corridors and their regulatory
// obligations. The catalogue is data, not code: it can be replaced by a JSON
// file without touching the matching algorithm.
package corridor

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"audit-engine/internal/jurisdiction"
)

// Corridor is one catalogued source→destination pair.
type Corridor struct {
	Name            string            `json:"name"`
	Source          jurisdiction.Code `json:"source"`
	Destination     jurisdiction.Code `json:"destination"`
	SourceAliases   []string          `json:"source_aliases,omitempty"`
	DestAliases     []string          `json:"destination_aliases,omitempty"`
	ComplianceFlags []string          `json:"compliance_flags"`
	Warnings        []string          `json:"warnings"`
}

type Table struct {
	Corridors []Corridor `json:"corridors"`
}

// Compliance flag identifiers. These are stable IDs consumed by presentation
// code; the human-readable text lives in the corridor's Warnings.
const (
	FlagRBIRemittanceLimit = "RBI_LRS_REMITTANCE_LIMIT"
	FlagWorldwideTaxation  = "WORLDWIDE_TAXATION"
	FlagFEMADeclaration    = "FEMA_DECLARATION"
	FlagTreatyRelief       = "TREATY_RELIEF_AVAILABLE"
	FlagForeignBuyerABSD   = "FOREIGN_BUYER_SURCHARGE"
	FlagFIRPTAWithholding  = "FIRPTA_WITHHOLDING"
	FlagExitTaxExposure    = "EXIT_TAX_EXPOSURE"
	FlagNonDomRegimeChange = "NON_DOM_REGIME_CHANGE"
	FlagGoldenVisaSunset   = "GOLDEN_VISA_SUNSET"
)

// Match finds the first corridor whose source and destination aliases both
// match the given free-text names. No match is a valid outcome meaning "no
// specific guidance available", not an error.
func (t Table) Match(source, destination string) (Corridor, bool) {
	for _, c := range t.Corridors {
		if c.matchesSide(source, c.Source, c.SourceAliases) &&
			c.matchesSide(destination, c.Destination, c.DestAliases) {
			return c, true
		}
	}
	return Corridor{}, false
}

func (c Corridor) matchesSide(name string, code jurisdiction.Code, extra []string) bool {
	if name == "" {
		return false
	}
	if rc, ok := jurisdiction.Resolve(name); ok && rc == code {
		return true
	}
	for _, a := range extra {
		if jurisdiction.Matches(name, a) {
			return true
		}
	}
	return false
}

// Load reads a corridor table from a JSON file, falling back to the built-in
// defaults when path is empty. A file that exists but fails to parse is an
// error; a missing optional file is not a silent fallback.
func Load(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultTable(), fmt.Errorf("read corridor table: %w", err)
	}
	var t Table
	if err := json.Unmarshal(b, &t); err != nil {
		return DefaultTable(), fmt.Errorf("unmarshal corridor table: %w", err)
	}
	if len(t.Corridors) == 0 {
		return DefaultTable(), fmt.Errorf("corridor table %s contains no corridors", path)
	}
	return t, nil
}

// DefaultTable returns the corridors known at build time.
func DefaultTable() Table {
	return Table{Corridors: []Corridor{
		{
			Name:        "India → UAE",
			Source:      jurisdiction.IN,
			Destination: jurisdiction.AE,
			ComplianceFlags: []string{
				FlagRBIRemittanceLimit,
				FlagWorldwideTaxation,
				FlagFEMADeclaration,
				FlagTreatyRelief,
			},
			Warnings: []string{
				"RBI Liberalised Remittance Scheme caps outbound remittance at USD 250,000 per person per financial year",
				"India taxes residents on worldwide income; UAE rental income remains taxable in India while tax residency is retained",
				"Foreign asset holdings must be declared in Schedule FA of the Indian tax return",
				"India-UAE DTAA relief is available where UAE tax is actually paid",
			},
		},
		{
			Name:        "India → Singapore",
			Source:      jurisdiction.IN,
			Destination: jurisdiction.SG,
			ComplianceFlags: []string{
				FlagRBIRemittanceLimit,
				FlagWorldwideTaxation,
				FlagForeignBuyerABSD,
				FlagTreatyRelief,
			},
			Warnings: []string{
				"RBI Liberalised Remittance Scheme caps outbound remittance at USD 250,000 per person per financial year",
				"Singapore levies Additional Buyer's Stamp Duty of 60% on foreign buyers of residential property",
				"India taxes residents on worldwide income regardless of where the asset sits",
				"India-Singapore DTAA relief is available against Singapore tax actually paid",
			},
		},
		{
			Name:        "India → UK",
			Source:      jurisdiction.IN,
			Destination: jurisdiction.GB,
			ComplianceFlags: []string{
				FlagRBIRemittanceLimit,
				FlagWorldwideTaxation,
				FlagForeignBuyerABSD,
				FlagNonDomRegimeChange,
			},
			Warnings: []string{
				"RBI Liberalised Remittance Scheme caps outbound remittance at USD 250,000 per person per financial year",
				"UK charges a 2% SDLT surcharge for non-resident buyers on top of standard bands",
				"The UK abolished the remittance-basis non-dom regime from April 2025; new arrivals face worldwide taxation after four years",
			},
		},
		{
			Name:        "US → Portugal",
			Source:      jurisdiction.US,
			Destination: jurisdiction.PT,
			ComplianceFlags: []string{
				FlagWorldwideTaxation,
				FlagTreatyRelief,
				FlagGoldenVisaSunset,
			},
			Warnings: []string{
				"The United States taxes citizens on worldwide income regardless of residence; relocation does not end US filing obligations",
				"US-Portugal tax treaty relief is available against Portuguese tax actually paid",
				"Portugal's golden visa no longer qualifies through residential real estate purchases",
			},
		},
		{
			Name:        "UK → UAE",
			Source:      jurisdiction.GB,
			Destination: jurisdiction.AE,
			ComplianceFlags: []string{
				FlagWorldwideTaxation,
				FlagExitTaxExposure,
			},
			Warnings: []string{
				"UK tax residence persists under the Statutory Residence Test until day-count and tie conditions are broken",
				"Capital gains realised within five years of leaving the UK may be taxed on return under temporary non-residence rules",
			},
		},
		{
			Name:        "US → UAE",
			Source:      jurisdiction.US,
			Destination: jurisdiction.AE,
			ComplianceFlags: []string{
				FlagWorldwideTaxation,
				FlagFIRPTAWithholding,
			},
			Warnings: []string{
				"The United States taxes citizens on worldwide income; UAE's 0% rates confer no federal relief without expatriation",
				"FIRPTA withholding applies on a later disposition of any retained US real property",
			},
		},
		{
			Name:        "Australia → Singapore",
			Source:      jurisdiction.AU,
			Destination: jurisdiction.SG,
			ComplianceFlags: []string{
				FlagForeignBuyerABSD,
				FlagExitTaxExposure,
				FlagTreatyRelief,
			},
			Warnings: []string{
				"Singapore levies Additional Buyer's Stamp Duty of 60% on foreign buyers of residential property",
				"Ceasing Australian tax residency triggers a deemed-disposal CGT event on non-taxable-Australian-property assets",
			},
		},
	}}
}
