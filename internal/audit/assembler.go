package audit

import (
	"fmt"

	"audit-engine/internal/corridor"
	"audit-engine/internal/model"
)

// BuildSummary composes the full cross-border audit artifact. It returns nil
// when the minimum-data gate fails; callers must treat nil as "insufficient
// data", never as an empty result.
func BuildSummary(doc *model.PreviewDocument, pos *model.StartingPosition, assets model.RealAssetAudit, corridors corridor.Table) *model.CrossBorderAuditSummary {
	rates := Resolve(doc)
	value := pos.Value()
	if !SufficientData(rates, value) {
		return nil
	}

	structure := pos.Structure()
	source := doc.Source()
	destination := doc.Destination()

	var structRental, structCGT, structEstate *model.Percent
	if structure != nil {
		structRental = structure.NetRentalTaxPct
		structCGT = structure.NetCapitalGainsTaxPct
		structEstate = structure.NetEstateTaxPct
	}

	acquisition := ComputeAcquisition(value, structure, assets, source, destination)
	rental := AuditCategory(model.CategoryRentalIncome, rates.Source.IncomeTaxPct, rates.Destination.IncomeTaxPct, structRental)
	gains := AuditCategory(model.CategoryCapitalGains, rates.Source.CapitalGainsTaxPct, rates.Destination.CapitalGainsTaxPct, structCGT)
	estate := AuditCategory(model.CategoryEstate, rates.Source.EstateTaxPct, rates.Destination.EstateTaxPct, structEstate)
	yield := ComputeNetYield(value, pos, rental.NetTaxRatePct)

	summary := &model.CrossBorderAuditSummary{
		Acquisition:     acquisition,
		RentalIncome:    rental,
		CapitalGains:    gains,
		EstateTax:       estate,
		NetYield:        yield,
		TotalSavingsPct: rental.TaxSavingsPct + gains.TaxSavingsPct + estate.TaxSavingsPct,
		ComplianceFlags: []string{},
		Warnings:        []string{},
	}

	matched, ok := corridors.Match(source, destination)
	if ok {
		summary.ComplianceFlags = append(summary.ComplianceFlags, matched.ComplianceFlags...)
		summary.Warnings = append(summary.Warnings, matched.Warnings...)
	}

	summary.ExecutiveSummary = executiveSummary(value, destination, structure, acquisition, yield, matched, ok)
	return summary
}

func executiveSummary(value float64, destination string, structure *model.SelectedStructure, acq model.AcquisitionAudit, yield model.NetYieldAudit, matched corridor.Corridor, corridorMatched bool) string {
	place := destination
	if place == "" {
		place = "the destination jurisdiction"
	}

	s := fmt.Sprintf("The proposed %s acquisition in %s", usd(value), place)
	if structure != nil && structure.Name != "" {
		s += fmt.Sprintf(" via %s", structure.Name)
	}
	s += fmt.Sprintf(" carries %s in day-one stamp duties (%.1f%% of the purchase) and a projected net rental yield of %.2f%%.",
		usd(acq.TotalStampDuties), float64(acq.DayOneLossPct), float64(yield.NetYieldPct))

	if corridorMatched {
		s += fmt.Sprintf(" The %s corridor carries %d catalogued compliance requirements.",
			matched.Name, len(matched.ComplianceFlags))
	}
	return s
}
