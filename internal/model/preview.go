package model

// PreviewDocument is the loosely typed payload received from the upstream
// analysis service. The service's shape is not contractually guaranteed, so
// every field is optional and redundant fields are expected: the same rate
// set may arrive in source_tax_rates, in tax_differential.source, in both, or
// in neither.
type PreviewDocument struct {
	SourceTaxRates          *TaxRates             `json:"source_tax_rates,omitempty"`
	DestinationTaxRates     *TaxRates             `json:"destination_tax_rates,omitempty"`
	TaxDifferential         *TaxDifferential      `json:"tax_differential,omitempty"`
	SourceJurisdiction      string                `json:"source_jurisdiction,omitempty"`
	DestinationJurisdiction string                `json:"destination_jurisdiction,omitempty"`
	TargetLocations         []string              `json:"target_locations,omitempty"`
	WealthProjectionData    *WealthProjectionData `json:"wealth_projection_data,omitempty"`
}

type TaxDifferential struct {
	Source      *TaxRates `json:"source,omitempty"`
	Destination *TaxRates `json:"destination,omitempty"`
}

type WealthProjectionData struct {
	StartingPosition *StartingPosition `json:"starting_position,omitempty"`
}

// Source returns the source jurisdiction's free-text name.
func (d *PreviewDocument) Source() string {
	if d == nil {
		return ""
	}
	return d.SourceJurisdiction
}

// Destination returns the destination jurisdiction's free-text name,
// falling back to the first target location when the direct field is empty.
func (d *PreviewDocument) Destination() string {
	if d == nil {
		return ""
	}
	if d.DestinationJurisdiction != "" {
		return d.DestinationJurisdiction
	}
	if len(d.TargetLocations) > 0 {
		return d.TargetLocations[0]
	}
	return ""
}

// StartingPosition is the proposed transaction plus the principal's current
// financial position. TransactionValue and TransactionAmount are the same
// field under two upstream spellings.
type StartingPosition struct {
	TransactionValue  *float64           `json:"transaction_value,omitempty"`
	TransactionAmount *float64           `json:"transaction_amount,omitempty"`
	RentalYieldPct    *Percent           `json:"rental_yield_pct,omitempty"`
	NetRentalYieldPct *Percent           `json:"net_rental_yield_pct,omitempty"`
	AnnualGrossIncome *float64           `json:"annual_gross_income,omitempty"`
	SelectedStructure *SelectedStructure `json:"selected_structure,omitempty"`

	CurrentNetWorth   *float64 `json:"current_net_worth,omitempty"`
	AnnualIncome      *float64 `json:"annual_income,omitempty"`
	CurrentTaxRatePct *Percent `json:"current_tax_rate_pct,omitempty"`
	TargetTaxRatePct  *Percent `json:"target_tax_rate_pct,omitempty"`
}

// Value returns the transaction value, preferring transaction_value over the
// transaction_amount spelling. Zero means no usable value was supplied.
func (p *StartingPosition) Value() float64 {
	if p == nil {
		return 0
	}
	if p.TransactionValue != nil && *p.TransactionValue > 0 {
		return *p.TransactionValue
	}
	if p.TransactionAmount != nil {
		return *p.TransactionAmount
	}
	if p.TransactionValue != nil {
		return *p.TransactionValue
	}
	return 0
}

// Structure returns the selected structure, or nil when none was chosen.
func (p *StartingPosition) Structure() *SelectedStructure {
	if p == nil {
		return nil
	}
	return p.SelectedStructure
}
