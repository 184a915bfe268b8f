package model

// ScenarioName enumerates the three fixed projection scenarios.
type ScenarioName string

const (
	ScenarioBase        ScenarioName = "base"
	ScenarioStress      ScenarioName = "stress"
	ScenarioOpportunity ScenarioName = "opportunity"
)

// ProjectionCheckpoints are the years at which every scenario reports a point.
var ProjectionCheckpoints = []int{0, 1, 3, 5, 10}

// YearPoint is one checkpoint on a scenario trajectory. All currency values
// are USD; TaxSaved is cumulative since year 0.
type YearPoint struct {
	Year          int     `json:"year"`
	PropertyValue float64 `json:"property_value"`
	LiquidAssets  float64 `json:"liquid_assets"`
	Income        float64 `json:"income"`
	TaxSaved      float64 `json:"tax_saved"`
	NetWorth      float64 `json:"net_worth"`
}

// TenYearOutcome summarizes a scenario's terminal checkpoint.
type TenYearOutcome struct {
	PropertyAppreciation float64 `json:"property_appreciation"`
	InvestmentGrowth     float64 `json:"investment_growth"`
	CumulativeTaxSavings float64 `json:"cumulative_tax_savings"`
	TotalValueCreation   float64 `json:"total_value_creation"`
	PctGain              Percent `json:"pct_gain"`
	Summary              string  `json:"summary"`
}

// ProjectionScenario is one named future. Probability is fractional (0.60
// means 60%); the three scenarios' probabilities sum to 1.
type ProjectionScenario struct {
	Name           ScenarioName   `json:"name"`
	Probability    Probability    `json:"probability"`
	Assumptions    []string       `json:"assumptions"`
	Trajectory     []YearPoint    `json:"trajectory"`
	TenYearOutcome TenYearOutcome `json:"ten_year_outcome"`
}

// CostOfInaction is the value forgone by not making the move, with the two
// dominant causes attributed.
type CostOfInaction struct {
	OneYear         float64 `json:"one_year"`
	FiveYear        float64 `json:"five_year"`
	TenYear         float64 `json:"ten_year"`
	PrimaryDriver   string  `json:"primary_driver"`
	SecondaryDriver string  `json:"secondary_driver"`
}

// ProbabilityWeightedOutcome is the expected value of proceeding, computed
// across all scenarios, against a stay-put baseline.
type ProbabilityWeightedOutcome struct {
	ExpectedNetWorth      float64 `json:"expected_net_worth"`
	ExpectedValueCreation float64 `json:"expected_value_creation"`
	BaselineNetWorth      float64 `json:"baseline_net_worth"`
	NetBenefit            float64 `json:"net_benefit"`
}

// WealthProjection is the projection engine's root output.
type WealthProjection struct {
	Scenarios       []ProjectionScenario       `json:"scenarios"`
	WeightedOutcome ProbabilityWeightedOutcome `json:"probability_weighted_outcome"`
	CostOfInaction  CostOfInaction             `json:"cost_of_inaction"`
}
