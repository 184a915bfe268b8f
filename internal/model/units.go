package model

// Percent is a rate expressed on a 0-100 scale (37 means 37%).
// Probability is a weight on a 0-1 scale (0.60 means 60%).
// Both conventions appear in upstream payloads and must not be mixed.
type Percent float64

type Probability float64

// Pct returns a pointer to p, for literal optional-rate construction.
func Pct(p Percent) *Percent { return &p }

// PctValue dereferences p, treating absence as zero. Callers that must
// distinguish "absent" from "known zero" check the pointer first.
func PctValue(p *Percent) Percent {
	if p == nil {
		return 0
	}
	return *p
}

// Fraction converts a 0-100 percentage to its 0-1 multiplier.
func (p Percent) Fraction() float64 { return float64(p) / 100 }
