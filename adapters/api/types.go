package api

import (
	"fmt"
	"math"

	"effsample/domain/proportion"
	"effsample/domain/sample"
)

// UnivariateRequest carries one variable's raw values.
// JSON cannot express NaN, so the string "NaN" decodes to the numeric
// NaN observation; every other string stays categorical.
type UnivariateRequest struct {
	Values           []interface{} `json:"values"`
	MissingIndicator interface{}   `json:"missing_indicator,omitempty"`
}

// VariablePayload names one sequence inside a multivariate request
type VariablePayload struct {
	Name   string        `json:"name"`
	Values []interface{} `json:"values"`
}

// MultivariateRequest carries one or more named sequences
type MultivariateRequest struct {
	Variables        []VariablePayload `json:"variables"`
	MissingIndicator interface{}       `json:"missing_indicator,omitempty"`
}

// EstimateRequest carries the proportion estimator inputs
type EstimateRequest struct {
	Successes       int               `json:"successes"`
	NEffective      int               `json:"n_effective"`
	ConfidenceLevel *float64          `json:"confidence_level,omitempty"`
	Method          proportion.Method `json:"method,omitempty"`
}

// ReportRequest computes and persists a completeness report
type ReportRequest struct {
	StudyName        string            `json:"study_name"`
	Variables        []VariablePayload `json:"variables"`
	MissingIndicator interface{}       `json:"missing_indicator,omitempty"`
	Successes        *int              `json:"successes,omitempty"`
	ConfidenceLevel  *float64          `json:"confidence_level,omitempty"`
	Method           proportion.Method `json:"method,omitempty"`
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// decodeObservation converts one decoded JSON value into an observation
func decodeObservation(raw interface{}) (sample.Observation, error) {
	switch v := raw.(type) {
	case nil:
		return sample.Missing(), nil
	case float64:
		return sample.Number(v), nil
	case bool:
		return sample.Bool(v), nil
	case string:
		if v == "NaN" || v == "nan" {
			return sample.Number(math.NaN()), nil
		}
		return sample.String(v), nil
	default:
		return sample.Observation{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// decodeSequence converts a raw JSON array into a Sequence
func decodeSequence(raw []interface{}) (sample.Sequence, error) {
	seq := make(sample.Sequence, len(raw))
	for i, v := range raw {
		obs, err := decodeObservation(v)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		seq[i] = obs
	}
	return seq, nil
}

// decodeIndicator converts the optional missing_indicator field. A null
// or omitted field means the default rule; an explicit indicator must be
// a scalar, never null.
func decodeIndicator(raw interface{}) (*sample.Observation, error) {
	if raw == nil {
		return nil, nil
	}
	obs, err := decodeObservation(raw)
	if err != nil {
		return nil, fmt.Errorf("missing_indicator: %w", err)
	}
	if obs.IsAbsent() {
		return nil, nil
	}
	return &obs, nil
}
