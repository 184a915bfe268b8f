package projection

import (
	"fmt"
	"math"

	"audit-engine/internal/model"
)

// Driver attributions on the cost-of-inaction schedule.
const (
	DriverForgoneAppreciation  = "forgone_property_appreciation"
	DriverContinuedTaxExposure = "continued_tax_exposure"
)

const horizonYears = 10

// Project compounds the starting position through each scenario and
// aggregates the probability-weighted outcome. Returns nil when the position
// lacks the minimum inputs (a positive transaction value and a known current
// net worth); that is "insufficient data", not an error.
func Project(pos *model.StartingPosition, table []ScenarioAssumptions) *model.WealthProjection {
	if pos == nil || pos.CurrentNetWorth == nil || pos.Value() <= 0 {
		return nil
	}
	if len(table) == 0 {
		table = DefaultAssumptions()
	}

	value := pos.Value()
	netWorth0 := *pos.CurrentNetWorth
	// Liquid assets start at whatever the purchase leaves uninvested. A
	// negative balance models financing and keeps year-0 net worth equal to
	// the current net worth.
	liquid0 := netWorth0 - value

	annualIncome := 0.0
	if pos.AnnualIncome != nil {
		annualIncome = *pos.AnnualIncome
	}
	yieldFrac := model.PctValue(pos.RentalYieldPct).Fraction()
	annualTaxSaved := yearlyTaxSaved(annualIncome, pos.CurrentTaxRatePct, pos.TargetTaxRatePct)

	scenarios := make([]model.ProjectionScenario, 0, len(table))
	var expectedNetWorth, expectedValueCreation float64
	for _, a := range table {
		s := projectScenario(a, value, liquid0, netWorth0, annualIncome, yieldFrac, annualTaxSaved)
		expectedNetWorth += float64(s.Probability) * s.Trajectory[len(s.Trajectory)-1].NetWorth
		expectedValueCreation += float64(s.Probability) * s.TenYearOutcome.TotalValueCreation
		scenarios = append(scenarios, s)
	}

	baseReturn := baseInvestmentReturn(table)
	baseline10 := netWorth0 * compound(baseReturn, horizonYears)

	return &model.WealthProjection{
		Scenarios: scenarios,
		WeightedOutcome: model.ProbabilityWeightedOutcome{
			ExpectedNetWorth:      expectedNetWorth,
			ExpectedValueCreation: expectedValueCreation,
			BaselineNetWorth:      baseline10,
			NetBenefit:            expectedNetWorth - baseline10,
		},
		CostOfInaction: costOfInaction(table, value, liquid0, netWorth0, annualTaxSaved),
	}
}

func projectScenario(a ScenarioAssumptions, value, liquid0, netWorth0, annualIncome, yieldFrac, annualTaxSaved float64) model.ProjectionScenario {
	trajectory := make([]model.YearPoint, 0, len(model.ProjectionCheckpoints))
	for _, year := range model.ProjectionCheckpoints {
		pv := value * compound(a.PropertyGrowthPct, year)
		invested := liquid0 * compound(a.InvestmentReturnPct, year)
		taxSaved := annualTaxSaved * float64(year)
		liquid := invested + taxSaved
		trajectory = append(trajectory, model.YearPoint{
			Year:          year,
			PropertyValue: pv,
			LiquidAssets:  liquid,
			Income:        annualIncome + pv*yieldFrac,
			TaxSaved:      taxSaved,
			NetWorth:      pv + liquid,
		})
	}

	final := trajectory[len(trajectory)-1]
	outcome := model.TenYearOutcome{
		PropertyAppreciation: final.PropertyValue - value,
		InvestmentGrowth:     liquid0*compound(a.InvestmentReturnPct, horizonYears) - liquid0,
		CumulativeTaxSavings: final.TaxSaved,
		TotalValueCreation:   final.NetWorth - netWorth0,
	}
	if netWorth0 > 0 {
		outcome.PctGain = model.Percent(outcome.TotalValueCreation / netWorth0 * 100)
	}
	outcome.Summary = fmt.Sprintf(
		"Ten-year %s case: net worth reaches %.0f (%.1f%% gain), driven by %.0f property appreciation, %.0f investment growth and %.0f in cumulative tax savings.",
		a.Name, final.NetWorth, float64(outcome.PctGain),
		outcome.PropertyAppreciation, outcome.InvestmentGrowth, outcome.CumulativeTaxSavings)

	return model.ProjectionScenario{
		Name:           a.Name,
		Probability:    a.Probability,
		Assumptions:    a.Narrative,
		Trajectory:     trajectory,
		TenYearOutcome: outcome,
	}
}

// costOfInaction prices staying put against the base scenario at each
// reporting year: net worth if the move is made minus net worth compounding
// unchanged at the base investment return.
func costOfInaction(table []ScenarioAssumptions, value, liquid0, netWorth0, annualTaxSaved float64) model.CostOfInaction {
	base := baseScenario(table)
	at := func(year int) float64 {
		moved := value*compound(base.PropertyGrowthPct, year) +
			liquid0*compound(base.InvestmentReturnPct, year) +
			annualTaxSaved*float64(year)
		stayed := netWorth0 * compound(base.InvestmentReturnPct, year)
		return moved - stayed
	}
	return model.CostOfInaction{
		OneYear:         at(1),
		FiveYear:        at(5),
		TenYear:         at(10),
		PrimaryDriver:   DriverForgoneAppreciation,
		SecondaryDriver: DriverContinuedTaxExposure,
	}
}

func yearlyTaxSaved(annualIncome float64, current, target *model.Percent) float64 {
	if annualIncome <= 0 || current == nil || target == nil {
		return 0
	}
	delta := float64(*current-*target) / 100
	if delta <= 0 {
		return 0
	}
	return annualIncome * delta
}

func baseScenario(table []ScenarioAssumptions) ScenarioAssumptions {
	for _, a := range table {
		if a.Name == model.ScenarioBase {
			return a
		}
	}
	return table[0]
}

func baseInvestmentReturn(table []ScenarioAssumptions) model.Percent {
	return baseScenario(table).InvestmentReturnPct
}

func compound(annualPct model.Percent, years int) float64 {
	return math.Pow(1+annualPct.Fraction(), float64(years))
}
