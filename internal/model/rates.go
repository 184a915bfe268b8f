package model

// TaxRates is one jurisdiction's rate set as reported upstream. Every field is
// optional: a nil pointer means the rate is unknown, a pointer to 0 means the
// jurisdiction is confirmed to charge nothing. The two must never collapse
// into each other.
type TaxRates struct {
	IncomeTaxPct       *Percent `json:"income_tax_pct,omitempty"`
	CapitalGainsTaxPct *Percent `json:"capital_gains_tax_pct,omitempty"`
	WealthTaxPct       *Percent `json:"wealth_tax_pct,omitempty"`
	EstateTaxPct       *Percent `json:"estate_tax_pct,omitempty"`
}

// HasData reports whether at least one rate is present and non-zero.
// An all-zero or all-nil object is not meaningful data; upstream sometimes
// overwrites a populated field with an empty object.
func (r *TaxRates) HasData() bool {
	if r == nil {
		return false
	}
	for _, p := range []*Percent{r.IncomeTaxPct, r.CapitalGainsTaxPct, r.WealthTaxPct, r.EstateTaxPct} {
		if p != nil && *p != 0 {
			return true
		}
	}
	return false
}

// SelectedStructure is an optional legal/ownership wrapper. When present, its
// structure-adjusted net rates take precedence over raw jurisdiction rates.
type SelectedStructure struct {
	Name                  string   `json:"name"`
	NetRentalTaxPct       *Percent `json:"net_rental_tax_pct,omitempty"`
	NetCapitalGainsTaxPct *Percent `json:"net_capital_gains_tax_pct,omitempty"`
	NetEstateTaxPct       *Percent `json:"net_estate_tax_pct,omitempty"`
	StampDutyPct          *Percent `json:"stamp_duty_pct,omitempty"`
}

// ForeignBuyerSurcharge is the additional stamp duty charged to non-resident
// buyers in jurisdictions that levy one.
type ForeignBuyerSurcharge struct {
	RatePct     *Percent `json:"rate_pct,omitempty"`
	Description string   `json:"description,omitempty"`
}

// RealAssetEntry is one jurisdiction's published stamp-duty schedule.
// TotalEffectiveRatePct, when supplied, is a blended rate that replaces the
// base+surcharge decomposition.
type RealAssetEntry struct {
	ResidentialRatePct    *Percent               `json:"residential_rate_pct,omitempty"`
	ForeignBuyerSurcharge *ForeignBuyerSurcharge `json:"foreign_buyer_surcharge,omitempty"`
	TotalEffectiveRatePct *Percent               `json:"total_effective_rate_pct,omitempty"`
}

// RealAssetAudit maps free-text jurisdiction names (cities or countries) to
// their stamp-duty schedules. Keys prefixed with "_" carry document metadata,
// not jurisdiction data.
type RealAssetAudit map[string]RealAssetEntry
