// Package audit implements the cross-border tax audit pipeline: rate
// reconciliation, acquisition costs, per-category tax treatment, net yield,
// and the assembled summary artifact. Everything is pure computation over the
// upstream payload; missing data degrades to explicit absence, never an error.
package audit

import "audit-engine/internal/model"

// ResolvedRates is the canonical per-side rate set after reconciling the
// redundant upstream fields.
type ResolvedRates struct {
	Source      model.TaxRates
	Destination model.TaxRates

	// SourceExists/DestinationExists record whether any candidate object was
	// present at all, even an empty one. The minimum-data gate needs this:
	// "upstream sent an empty object" and "upstream sent nothing" gate
	// differently from "upstream sent rates".
	SourceExists      bool
	DestinationExists bool
}

// Resolve reconciles the preview document's redundant rate fields into one
// canonical set per jurisdiction. Per side the direct field is preferred over
// the differential fallback; the first candidate carrying at least one
// non-zero rate wins. Upstream sometimes overwrites a direct field with an
// empty object while the same data survives in the differential, so an
// accidental empty object must not mask real data.
func Resolve(doc *model.PreviewDocument) ResolvedRates {
	var diffSource, diffDest *model.TaxRates
	if doc != nil && doc.TaxDifferential != nil {
		diffSource = doc.TaxDifferential.Source
		diffDest = doc.TaxDifferential.Destination
	}
	var directSource, directDest *model.TaxRates
	if doc != nil {
		directSource = doc.SourceTaxRates
		directDest = doc.DestinationTaxRates
	}

	src, srcExists := pickRates(directSource, diffSource)
	dst, dstExists := pickRates(directDest, diffDest)
	return ResolvedRates{
		Source:            src,
		Destination:       dst,
		SourceExists:      srcExists,
		DestinationExists: dstExists,
	}
}

// pickRates selects the first candidate with meaningful data, then the first
// candidate that literally exists, then an empty set.
func pickRates(candidates ...*model.TaxRates) (model.TaxRates, bool) {
	for _, c := range candidates {
		if c.HasData() {
			return *c, true
		}
	}
	for _, c := range candidates {
		if c != nil {
			return *c, true
		}
	}
	return model.TaxRates{}, false
}

// SufficientData is the minimum-data gate: the pipeline refuses to produce an
// artifact when neither side's rate data exists at all or the transaction
// value is non-positive. Failing the gate is "insufficient data", not an
// error.
func SufficientData(rates ResolvedRates, transactionValue float64) bool {
	if !rates.SourceExists && !rates.DestinationExists {
		return false
	}
	return transactionValue > 0
}
