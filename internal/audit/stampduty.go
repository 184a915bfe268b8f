package audit

import (
	"fmt"
	"sort"
	"strings"

	"audit-engine/internal/jurisdiction"
	"audit-engine/internal/model"
)

// Rate provenance reported on the acquisition audit.
const (
	rateSourceStructure = "structure_adjusted"
	rateSourceSchedule  = "jurisdiction_schedule"
	rateSourceBlended   = "blended_effective_rate"
	rateSourceNone      = "unavailable"
)

// ComputeAcquisition derives the day-one cost breakdown for the transaction.
// A structure-adjusted stamp rate overrides the jurisdiction schedule; a
// blended total-effective rate in the schedule overrides the base+surcharge
// decomposition. A missing schedule entry is valid "no data": duties default
// to the structure-level rate, possibly zero.
func ComputeAcquisition(value float64, structure *model.SelectedStructure, assets model.RealAssetAudit, source, destination string) model.AcquisitionAudit {
	a := model.AcquisitionAudit{
		PropertyValue: value,
		RateSource:    rateSourceNone,
	}

	entry, matched := lookupEntry(assets, source, destination)

	switch {
	case structure != nil && structure.StampDutyPct != nil:
		a.StampDutyRatePct = *structure.StampDutyPct
		a.RateSource = rateSourceStructure
	case matched && entry.ResidentialRatePct != nil:
		a.StampDutyRatePct = *entry.ResidentialRatePct
		a.RateSource = rateSourceSchedule
	}

	if matched && entry.ForeignBuyerSurcharge != nil && entry.ForeignBuyerSurcharge.RatePct != nil {
		a.SurchargeRatePct = *entry.ForeignBuyerSurcharge.RatePct
		a.SurchargeDescription = entry.ForeignBuyerSurcharge.Description
	}

	// Multiply before dividing so round percentages of round values stay
	// exact (6,160,000 at 5% is exactly 308,000).
	a.BSDStampDuty = value * float64(a.StampDutyRatePct) / 100
	a.ABSDAdditionalStampDuty = value * float64(a.SurchargeRatePct) / 100
	a.TotalStampDuties = a.BSDStampDuty + a.ABSDAdditionalStampDuty

	// Jurisdictions sometimes publish a single blended rate instead of
	// separable components; when supplied it overrides the sum.
	if matched && entry.TotalEffectiveRatePct != nil && a.RateSource != rateSourceStructure {
		a.TotalStampDuties = value * float64(*entry.TotalEffectiveRatePct) / 100
		a.RateSource = rateSourceBlended
	}

	a.TotalAcquisitionCost = value + a.TotalStampDuties
	if value > 0 {
		a.TotalStampDutyPct = model.Percent(a.TotalStampDuties / value * 100)
	}
	// Stamp duty is the only day-one loss source modeled.
	a.DayOneLossPct = a.TotalStampDutyPct

	a.Explanation = explainAcquisition(a)
	return a
}

// lookupEntry finds the stamp-duty schedule for the destination. Keys are
// free text, so matching prefers an entry textually containing the
// destination; failing that, the first non-metadata key that does not overlap
// the source name (so an ambiguous substring never picks the source's own
// schedule).
func lookupEntry(assets model.RealAssetAudit, source, destination string) (model.RealAssetEntry, bool) {
	if len(assets) == 0 {
		return model.RealAssetEntry{}, false
	}

	keys := sortedKeys(assets)
	if destination != "" {
		for _, k := range keys {
			if metadataKey(k) {
				continue
			}
			if jurisdiction.Matches(k, destination) {
				return assets[k], true
			}
		}
	}
	for _, k := range keys {
		if metadataKey(k) {
			continue
		}
		if source != "" && jurisdiction.Matches(k, source) {
			continue
		}
		return assets[k], true
	}
	return model.RealAssetEntry{}, false
}

func metadataKey(k string) bool {
	return strings.HasPrefix(k, "_")
}

// sortedKeys gives a deterministic iteration order for the fallback pick.
func sortedKeys(assets model.RealAssetAudit) []string {
	keys := make([]string, 0, len(assets))
	for k := range assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func explainAcquisition(a model.AcquisitionAudit) string {
	if a.TotalStampDuties == 0 {
		return fmt.Sprintf("No stamp duty data available for this purchase of %s; day-one acquisition cost equals the property value.", usd(a.PropertyValue))
	}
	if a.ABSDAdditionalStampDuty > 0 {
		return fmt.Sprintf(
			"Base stamp duty of %.1f%% (%s) plus a %.1f%% foreign buyer surcharge (%s) total %s, a day-one cost of %.1f%% of the %s purchase.",
			float64(a.StampDutyRatePct), usd(a.BSDStampDuty),
			float64(a.SurchargeRatePct), usd(a.ABSDAdditionalStampDuty),
			usd(a.TotalStampDuties), float64(a.DayOneLossPct), usd(a.PropertyValue))
	}
	return fmt.Sprintf(
		"Stamp duty of %.1f%% adds %s to the %s purchase, a day-one cost of %.1f%% of the transaction.",
		float64(a.TotalStampDutyPct), usd(a.TotalStampDuties), usd(a.PropertyValue), float64(a.DayOneLossPct))
}

// usd formats a USD amount with thousands separators and no decimals.
func usd(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	pre := len(s) % 3
	if pre == 0 {
		pre = 3
	}
	b.WriteString(s[:pre])
	for i := pre; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
