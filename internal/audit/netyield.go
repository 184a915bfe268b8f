package audit

import (
	"fmt"

	"audit-engine/internal/model"
)

// ComputeNetYield derives post-tax rental economics from gross yield and the
// rental-income treatment's net rate. Explicitly supplied values win over
// derived ones. AnnualNetIncome is computed as gross minus tax so the
// identity holds exactly.
func ComputeNetYield(value float64, pos *model.StartingPosition, netRate model.Percent) model.NetYieldAudit {
	n := model.NetYieldAudit{}
	if pos != nil {
		n.GrossYieldPct = model.PctValue(pos.RentalYieldPct)
	}

	if pos != nil && pos.NetRentalYieldPct != nil {
		n.NetYieldPct = *pos.NetRentalYieldPct
	} else {
		n.NetYieldPct = model.Percent(float64(n.GrossYieldPct) * (1 - netRate.Fraction()))
	}

	if pos != nil && pos.AnnualGrossIncome != nil {
		n.AnnualGrossIncome = *pos.AnnualGrossIncome
	} else {
		n.AnnualGrossIncome = value * float64(n.GrossYieldPct) / 100
	}

	n.AnnualTaxPaid = n.AnnualGrossIncome * float64(netRate) / 100
	n.AnnualNetIncome = n.AnnualGrossIncome - n.AnnualTaxPaid

	n.Explanation = fmt.Sprintf(
		"Gross yield of %.2f%% produces %s a year; after %.1f%% effective tax (%s) the net yield is %.2f%% (%s).",
		float64(n.GrossYieldPct), usd(n.AnnualGrossIncome),
		float64(netRate), usd(n.AnnualTaxPaid),
		float64(n.NetYieldPct), usd(n.AnnualNetIncome))
	return n
}
