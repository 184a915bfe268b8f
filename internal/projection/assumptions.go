// Package projection compounds a starting financial position across three
// probability-weighted scenarios and prices the cost of not proceeding. One
// pass, no shared state between scenarios.
package projection

import (
	"fmt"
	"math"
	"os"

	json "github.com/goccy/go-json"

	"audit-engine/internal/model"
)

// probabilityTolerance bounds the rounding drift allowed when checking that
// scenario probabilities sum to 1.
const probabilityTolerance = 1e-6

// ScenarioAssumptions drives one scenario's compounding. Growth and return
// rates are annual, 0-100 scale; Probability is fractional, 0-1.
type ScenarioAssumptions struct {
	Name                model.ScenarioName `json:"name" validate:"required,oneof=base stress opportunity"`
	Probability         model.Probability  `json:"probability" validate:"gte=0,lte=1"`
	PropertyGrowthPct   model.Percent      `json:"property_growth_pct" validate:"gte=-100,lte=100"`
	InvestmentReturnPct model.Percent      `json:"investment_return_pct" validate:"gte=-100,lte=100"`
	Narrative           []string           `json:"narrative,omitempty"`
}

// DefaultAssumptions returns the three built-in scenarios. Probabilities sum
// to exactly 1.
func DefaultAssumptions() []ScenarioAssumptions {
	return []ScenarioAssumptions{
		{
			Name:                model.ScenarioBase,
			Probability:         0.60,
			PropertyGrowthPct:   5,
			InvestmentReturnPct: 6,
			Narrative: []string{
				"Property appreciates 5% annually in line with long-run prime market averages",
				"Liquid assets compound at 6% in a balanced portfolio",
				"Tax residency transition completes in year one",
			},
		},
		{
			Name:                model.ScenarioStress,
			Probability:         0.25,
			PropertyGrowthPct:   1,
			InvestmentReturnPct: 3,
			Narrative: []string{
				"Property stagnates at 1% annual growth through a prolonged downturn",
				"Liquid assets return 3% in defensive positioning",
				"Tax savings persist but currency and market headwinds compress gains",
			},
		},
		{
			Name:                model.ScenarioOpportunity,
			Probability:         0.15,
			PropertyGrowthPct:   9,
			InvestmentReturnPct: 9,
			Narrative: []string{
				"Property appreciates 9% annually on strong inbound migration",
				"Liquid assets compound at 9% with growth-tilted allocation",
				"Rental demand outpaces supply, supporting yield expansion",
			},
		},
	}
}

// LoadAssumptions reads a scenario table from a JSON file, falling back to
// the built-in defaults when path is empty.
func LoadAssumptions(path string) ([]ScenarioAssumptions, error) {
	if path == "" {
		return DefaultAssumptions(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultAssumptions(), fmt.Errorf("read scenario table: %w", err)
	}
	var table []ScenarioAssumptions
	if err := json.Unmarshal(b, &table); err != nil {
		return DefaultAssumptions(), fmt.Errorf("unmarshal scenario table: %w", err)
	}
	if err := ValidateAssumptions(table); err != nil {
		return DefaultAssumptions(), err
	}
	return table, nil
}

// ValidateAssumptions enforces the structural invariants of an injected
// scenario table: exactly the three fixed scenarios, probabilities summing
// to 1 within tolerance.
func ValidateAssumptions(table []ScenarioAssumptions) error {
	if len(table) != 3 {
		return fmt.Errorf("scenario table must contain exactly 3 scenarios, got %d", len(table))
	}
	seen := map[model.ScenarioName]bool{}
	var sum float64
	for _, s := range table {
		switch s.Name {
		case model.ScenarioBase, model.ScenarioStress, model.ScenarioOpportunity:
		default:
			return fmt.Errorf("unknown scenario name %q", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
		if s.Probability < 0 || s.Probability > 1 {
			return fmt.Errorf("scenario %q probability %v outside [0,1]", s.Name, s.Probability)
		}
		sum += float64(s.Probability)
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return fmt.Errorf("scenario probabilities sum to %v, want 1", sum)
	}
	return nil
}
