package sample

import (
	"fmt"
	"math"
)

// Kind defines the storage type for observations
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindMissing Kind = "missing"
)

// Observation represents a single scalar measurement with the
// present-vs-missing decision made once at construction. Aggregation
// never re-inspects raw type tags after this point.
type Observation struct {
	Type       Kind     `json:"type"`
	NumericVal *float64 `json:"numeric_val,omitempty"`
	StringVal  *string  `json:"string_val,omitempty"`
	BooleanVal *bool    `json:"boolean_val,omitempty"`
}

// Sequence is one measured variable across a population of units.
// Position is the only identity an observation has.
type Sequence []Observation

// Number creates a numeric observation. NaN payloads are kept as numeric
// cells: the default missingness rule classifies them, and a custom
// indicator pass must still see a float there.
func Number(n float64) Observation {
	return Observation{Type: KindNumeric, NumericVal: &n}
}

// String creates a categorical observation. Empty strings stay present;
// only an explicit indicator can make them count as missing.
func String(s string) Observation {
	return Observation{Type: KindString, StringVal: &s}
}

// Bool creates a boolean observation
func Bool(b bool) Observation {
	return Observation{Type: KindBoolean, BooleanVal: &b}
}

// Missing creates an absent observation
func Missing() Observation {
	return Observation{Type: KindMissing}
}

// Numbers builds a Sequence from raw float64 values
func Numbers(values ...float64) Sequence {
	seq := make(Sequence, len(values))
	for i, v := range values {
		seq[i] = Number(v)
	}
	return seq
}

// IsNumeric returns true if the observation holds a valid number
func (o Observation) IsNumeric() bool {
	return o.Type == KindNumeric && o.NumericVal != nil
}

// IsString returns true if the observation holds a valid string
func (o Observation) IsString() bool {
	return o.Type == KindString && o.StringVal != nil
}

// IsBoolean returns true if the observation holds a valid boolean
func (o Observation) IsBoolean() bool {
	return o.Type == KindBoolean && o.BooleanVal != nil
}

// IsAbsent returns true if the observation carries no value at all
func (o Observation) IsAbsent() bool {
	return o.Type == KindMissing
}

// String returns the display representation of the observation
func (o Observation) String() string {
	switch o.Type {
	case KindNumeric:
		if o.NumericVal != nil {
			return fmt.Sprintf("%g", *o.NumericVal)
		}
	case KindString:
		if o.StringVal != nil {
			return *o.StringVal
		}
	case KindBoolean:
		if o.BooleanVal != nil {
			return fmt.Sprintf("%t", *o.BooleanVal)
		}
	case KindMissing:
		return "<missing>"
	}
	return "<invalid>"
}

// IsMissing is the single missingness predicate shared by the univariate
// and multivariate counters.
//
// With an indicator, an observation is missing iff it equals the
// indicator under exact typed equality: a numeric indicator compares
// against numeric cells by value, a string indicator against string
// cells, a boolean indicator against boolean cells. A NaN indicator
// matches nothing (NaN != NaN), and absent cells are never matched by
// an indicator.
//
// Without an indicator, an observation is missing iff it is absent or a
// float NaN. Empty strings, infinities, zeros, and conventional
// sentinels all stay present under the default rule.
func IsMissing(o Observation, indicator *Observation) bool {
	if indicator != nil {
		return equals(o, *indicator)
	}
	if o.IsAbsent() {
		return true
	}
	return o.IsNumeric() && math.IsNaN(*o.NumericVal)
}

// equals implements exact typed equality between observations
func equals(a, b Observation) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case KindNumeric:
		return a.NumericVal != nil && b.NumericVal != nil && *a.NumericVal == *b.NumericVal
	case KindString:
		return a.StringVal != nil && b.StringVal != nil && *a.StringVal == *b.StringVal
	case KindBoolean:
		return a.BooleanVal != nil && b.BooleanVal != nil && *a.BooleanVal == *b.BooleanVal
	}
	return false
}
