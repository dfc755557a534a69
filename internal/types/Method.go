/*

This file contains the closed set of scoring methods and their static catalog
metadata. Method is a tagged enum rather than a free-form string so the
dispatcher can match exhaustively; external input is converted through
ParseMethod and falls back explicitly when unrecognized.

*/

package types

import "fmt"

// Method identifies one of the five scoring strategies.
type Method int

const (
	SimpleAverage Method = iota
	WeightedAverage
	TimeDecayMomentum
	RegimeAdaptive
	MetaEnsemble
)

// DefaultMethod is the recommended method, substituted when an external
// caller names a method the engine does not know.
const DefaultMethod = TimeDecayMomentum

// Methods returns all scoring methods in their canonical order.
func Methods() []Method {
	return []Method{
		SimpleAverage,
		WeightedAverage,
		TimeDecayMomentum,
		RegimeAdaptive,
		MetaEnsemble,
	}
}

// methodNames are the stable wire names used for dispatch, catalog keys and
// JSON output.
var methodNames = map[Method]string{
	SimpleAverage:     "simple_average",
	WeightedAverage:   "weighted_average",
	TimeDecayMomentum: "time_decay_momentum",
	RegimeAdaptive:    "regime_adaptive",
	MetaEnsemble:      "meta_ensemble",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod resolves a wire name to a Method. The second return value
// reports whether the name was recognized.
func ParseMethod(name string) (Method, bool) {
	for m, n := range methodNames {
		if n == name {
			return m, true
		}
	}
	return DefaultMethod, false
}

// MarshalText lets maps keyed by Method serialize with the wire names.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts a wire name; unknown names are rejected here rather
// than silently defaulted, since callers decide the fallback policy.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, ok := ParseMethod(string(text))
	if !ok {
		return fmt.Errorf("unknown scoring method %q", string(text))
	}
	*m = parsed
	return nil
}

// MethodDescriptor is a static, read-only catalog record for one method.
// The error figures come from historical backtesting and are calibration
// data, never recomputed at runtime.
type MethodDescriptor struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Complexity     int      `json:"complexity"`
	OverallError   float64  `json:"overall_error"`
	CrisisError    float64  `json:"crisis_error"`
	CalmError      float64  `json:"calm_error"`
	Improvement    float64  `json:"improvement"`
	RecommendedFor string   `json:"recommended_for"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
}
