package model

// CrossBorderAuditSummary is the root audit artifact. It is either fully
// populated or not produced at all; callers receiving nil must present an
// "insufficient data" state, never a partial summary.
type CrossBorderAuditSummary struct {
	ExecutiveSummary string            `json:"executive_summary"`
	Acquisition      AcquisitionAudit  `json:"acquisition_audit"`
	RentalIncome     TaxTreatmentAudit `json:"rental_income_audit"`
	CapitalGains     TaxTreatmentAudit `json:"capital_gains_audit"`
	EstateTax        TaxTreatmentAudit `json:"estate_tax_audit"`
	NetYield         NetYieldAudit     `json:"net_yield_audit"`
	TotalSavingsPct  Percent           `json:"total_savings_pct"`
	ComplianceFlags  []string          `json:"compliance_flags"`
	Warnings         []string          `json:"warnings"`
}

// AcquisitionAudit breaks down day-one transaction costs. BSD is the base
// stamp duty, ABSD the foreign-buyer surcharge. The Explanation is derived
// solely from the numeric fields on this struct.
type AcquisitionAudit struct {
	PropertyValue           float64 `json:"property_value"`
	StampDutyRatePct        Percent `json:"stamp_duty_rate_pct"`
	BSDStampDuty            float64 `json:"bsd_stamp_duty"`
	SurchargeRatePct        Percent `json:"surcharge_rate_pct"`
	SurchargeDescription    string  `json:"surcharge_description,omitempty"`
	ABSDAdditionalStampDuty float64 `json:"absd_additional_stamp_duty"`
	TotalStampDuties        float64 `json:"total_stamp_duties"`
	TotalStampDutyPct       Percent `json:"total_stamp_duty_pct"`
	TotalAcquisitionCost    float64 `json:"total_acquisition_cost"`
	DayOneLossPct           Percent `json:"day_one_loss_pct"`
	RateSource              string  `json:"rate_source"`
	Explanation             string  `json:"explanation"`
}

// Tax treatment categories.
const (
	CategoryRentalIncome = "rental_income"
	CategoryCapitalGains = "capital_gains"
	CategoryEstate       = "estate"
)

// TaxTreatmentAudit is the net effective treatment of one income category.
type TaxTreatmentAudit struct {
	Category           string  `json:"category"`
	SourceRatePct      Percent `json:"source_rate_pct"`
	DestinationRatePct Percent `json:"destination_rate_pct"`
	NetTaxRatePct      Percent `json:"net_tax_rate_pct"`
	FTCAvailable       bool    `json:"ftc_available"`
	TaxSavingsPct      Percent `json:"tax_savings_pct"`
	StructureAdjusted  bool    `json:"structure_adjusted"`
	Explanation        string  `json:"explanation"`
}

// NetYieldAudit derives post-tax rental economics. Invariant:
// AnnualNetIncome == AnnualGrossIncome - AnnualTaxPaid, exactly.
type NetYieldAudit struct {
	GrossYieldPct     Percent `json:"gross_yield_pct"`
	NetYieldPct       Percent `json:"net_yield_pct"`
	AnnualGrossIncome float64 `json:"annual_gross_income"`
	AnnualTaxPaid     float64 `json:"annual_tax_paid"`
	AnnualNetIncome   float64 `json:"annual_net_income"`
	Explanation       string  `json:"explanation"`
}
