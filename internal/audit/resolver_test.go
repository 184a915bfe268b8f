package audit

import (
	"testing"

	"audit-engine/internal/model"
)

func rates(income, cgt, wealth, estate model.Percent) *model.TaxRates {
	return &model.TaxRates{
		IncomeTaxPct:       model.Pct(income),
		CapitalGainsTaxPct: model.Pct(cgt),
		WealthTaxPct:       model.Pct(wealth),
		EstateTaxPct:       model.Pct(estate),
	}
}

func TestResolvePrefersDirectField(t *testing.T) {
	doc := &model.PreviewDocument{
		SourceTaxRates: rates(37, 20, 0, 40),
		TaxDifferential: &model.TaxDifferential{
			Source: rates(30, 15, 0, 35),
		},
	}

	resolved := Resolve(doc)

	if !resolved.SourceExists {
		t.Fatal("expected source to exist")
	}
	if got := model.PctValue(resolved.Source.IncomeTaxPct); got != 37 {
		t.Fatalf("expected direct field income rate 37, got %v", got)
	}
}

func TestResolveEmptyDirectDoesNotMaskFallback(t *testing.T) {
	// Upstream overwrote the direct field with an empty object; the same data
	// survives in the differential.
	doc := &model.PreviewDocument{
		SourceTaxRates: &model.TaxRates{},
		TaxDifferential: &model.TaxDifferential{
			Source: rates(37, 20, 0, 40),
		},
	}

	resolved := Resolve(doc)

	if got := model.PctValue(resolved.Source.IncomeTaxPct); got != 37 {
		t.Fatalf("expected fallback income rate 37, got %v", got)
	}
	if got := model.PctValue(resolved.Source.EstateTaxPct); got != 40 {
		t.Fatalf("expected fallback estate rate 40, got %v", got)
	}
}

func TestResolveAllZeroFallsBackToExistingObject(t *testing.T) {
	doc := &model.PreviewDocument{
		DestinationTaxRates: &model.TaxRates{IncomeTaxPct: model.Pct(0)},
	}

	resolved := Resolve(doc)

	if !resolved.DestinationExists {
		t.Fatal("expected destination to exist even with all-zero rates")
	}
	if resolved.Destination.IncomeTaxPct == nil {
		t.Fatal("expected known-zero income rate to survive resolution")
	}
	if *resolved.Destination.IncomeTaxPct != 0 {
		t.Fatalf("expected confirmed zero, got %v", *resolved.Destination.IncomeTaxPct)
	}
}

func TestResolveNothingExists(t *testing.T) {
	resolved := Resolve(&model.PreviewDocument{})

	if resolved.SourceExists || resolved.DestinationExists {
		t.Fatal("expected neither side to exist")
	}
	if resolved.Source.HasData() || resolved.Destination.HasData() {
		t.Fatal("expected empty rate sets")
	}
}

func TestResolveNilDocument(t *testing.T) {
	resolved := Resolve(nil)

	if resolved.SourceExists || resolved.DestinationExists {
		t.Fatal("expected nothing to exist for nil document")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	doc := &model.PreviewDocument{
		SourceTaxRates: &model.TaxRates{},
		TaxDifferential: &model.TaxDifferential{
			Source:      rates(37, 20, 0, 40),
			Destination: rates(0, 0, 0, 0),
		},
		DestinationTaxRates: rates(9, 0, 0, 0),
	}

	first := Resolve(doc)
	second := Resolve(doc)

	if model.PctValue(first.Source.IncomeTaxPct) != model.PctValue(second.Source.IncomeTaxPct) {
		t.Fatal("resolution is not idempotent on source income rate")
	}
	if model.PctValue(first.Destination.IncomeTaxPct) != model.PctValue(second.Destination.IncomeTaxPct) {
		t.Fatal("resolution is not idempotent on destination income rate")
	}
	if first.SourceExists != second.SourceExists || first.DestinationExists != second.DestinationExists {
		t.Fatal("existence flags changed between resolutions")
	}
}

func TestSufficientDataGate(t *testing.T) {
	empty := Resolve(&model.PreviewDocument{})
	if SufficientData(empty, 1_000_000) {
		t.Fatal("expected gate to fail with no rate data")
	}

	populated := Resolve(&model.PreviewDocument{SourceTaxRates: rates(37, 20, 0, 40)})
	if SufficientData(populated, 0) {
		t.Fatal("expected gate to fail with zero transaction value")
	}
	if SufficientData(populated, -100) {
		t.Fatal("expected gate to fail with negative transaction value")
	}
	if !SufficientData(populated, 1_000_000) {
		t.Fatal("expected gate to pass with rates and positive value")
	}
}
