package money

import "math"

// Policy selects how derived monetary amounts are rounded into integer
// minor units. Amounts supplied explicitly by a caller are never rounded.
type Policy int

const (
	// PolicyFloor truncates toward zero. This is the default.
	PolicyFloor Policy = iota
	// PolicyNearest rounds half away from zero.
	PolicyNearest
)

// ParsePolicy maps a configuration string to a Policy. Unknown values
// fall back to PolicyFloor.
func ParsePolicy(s string) Policy {
	switch s {
	case "round", "nearest":
		return PolicyNearest
	default:
		return PolicyFloor
	}
}

func (p Policy) String() string {
	if p == PolicyNearest {
		return "nearest"
	}
	return "floor"
}

// Normalizer converts fractional monetary computations into canonical
// integer minor-unit amounts under a single policy. Every derived
// subtotal in the system goes through the same Normalizer value.
type Normalizer struct {
	policy Policy
}

// NewNormalizer creates a Normalizer with the given rounding policy.
func NewNormalizer(policy Policy) Normalizer {
	return Normalizer{policy: policy}
}

// Policy returns the configured rounding policy.
func (n Normalizer) Policy() Policy {
	return n.policy
}

// Normalize rounds value per the policy and clamps the result at zero.
// It never returns a negative amount.
func (n Normalizer) Normalize(value float64) int64 {
	var rounded float64
	if n.policy == PolicyNearest {
		rounded = math.Round(value)
	} else {
		rounded = math.Floor(value)
	}
	if rounded < 0 {
		return 0
	}
	return int64(rounded)
}
