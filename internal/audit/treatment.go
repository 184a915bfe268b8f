package audit

import (
	"fmt"

	"audit-engine/internal/model"
)

// AuditCategory computes the net effective treatment of one income category.
// The same rules apply to rental income, capital gains, and estate transfer;
// only the rate fields differ.
//
// Net rate: the structure-adjusted rate when present, otherwise the greater
// of source and destination — a source jurisdiction taxing worldwide income
// claims its rate regardless of where the asset sits.
//
// FTC: available only when the source rate is above zero (a worldwide claim
// exists to credit against) AND the destination rate is above zero (tax is
// actually paid abroad). A 0% destination makes the credit nominal.
//
// Savings: fixed at 0% for a non-relocating cross-border purchase. The model
// deliberately claims no savings unless tax residency actually moves.
func AuditCategory(category string, sourceRate, destRate, structureRate *model.Percent) model.TaxTreatmentAudit {
	t := model.TaxTreatmentAudit{
		Category:           category,
		SourceRatePct:      model.PctValue(sourceRate),
		DestinationRatePct: model.PctValue(destRate),
	}

	if structureRate != nil {
		t.NetTaxRatePct = *structureRate
		t.StructureAdjusted = true
	} else {
		t.NetTaxRatePct = t.SourceRatePct
		if t.DestinationRatePct > t.NetTaxRatePct {
			t.NetTaxRatePct = t.DestinationRatePct
		}
	}

	t.FTCAvailable = t.SourceRatePct > 0 && t.DestinationRatePct > 0
	t.TaxSavingsPct = 0

	t.Explanation = explainTreatment(t)
	return t
}

func explainTreatment(t model.TaxTreatmentAudit) string {
	label := categoryLabel(t.Category)
	if t.DestinationRatePct == 0 {
		return fmt.Sprintf(
			"The destination charges 0%% on %s, but the source jurisdiction's worldwide claim of %.1f%% still applies; net effective rate %.1f%% with no foreign tax credit to offset it.",
			label, float64(t.SourceRatePct), float64(t.NetTaxRatePct))
	}
	if t.StructureAdjusted {
		return fmt.Sprintf(
			"Structure-adjusted net rate of %.1f%% on %s replaces the raw destination rate of %.1f%% and source rate of %.1f%%.",
			float64(t.NetTaxRatePct), label, float64(t.DestinationRatePct), float64(t.SourceRatePct))
	}
	return fmt.Sprintf(
		"Destination taxes %s at %.1f%% and the source at %.1f%%; the higher claim sets the net effective rate of %.1f%%.",
		label, float64(t.DestinationRatePct), float64(t.SourceRatePct), float64(t.NetTaxRatePct))
}

func categoryLabel(category string) string {
	switch category {
	case model.CategoryRentalIncome:
		return "rental income"
	case model.CategoryCapitalGains:
		return "capital gains"
	case model.CategoryEstate:
		return "estate transfer"
	}
	return category
}
