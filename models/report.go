package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CompletenessReport is the persisted record of one multivariate
// completeness analysis: the joint listwise aggregate, the per-variable
// missing counts, and the optional proportion estimate computed over a
// success column.
type CompletenessReport struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	StudyName          string         `db:"study_name" json:"study_name"`
	VariableNames      pq.StringArray `db:"variable_names" json:"variable_names"`
	NEffective         int            `db:"n_effective" json:"n_effective"`
	NTotal             int            `db:"n_total" json:"n_total"`
	NMissing           int            `db:"n_missing" json:"n_missing"`
	ProportionComplete float64        `db:"proportion_complete" json:"proportion_complete"`
	ProportionMissing  float64        `db:"proportion_missing" json:"proportion_missing"`
	MissingByVariable  pq.Int64Array  `db:"missing_by_variable" json:"missing_by_variable"`

	// Proportion estimate fields, populated when a success count was
	// supplied with the study
	HasEstimate     bool    `db:"has_estimate" json:"has_estimate"`
	Successes       int     `db:"successes" json:"successes,omitempty"`
	PHat            float64 `db:"p_hat" json:"p_hat,omitempty"`
	StandardError   float64 `db:"standard_error" json:"standard_error,omitempty"`
	CILower         float64 `db:"ci_lower" json:"ci_lower,omitempty"`
	CIUpper         float64 `db:"ci_upper" json:"ci_upper,omitempty"`
	ConfidenceLevel float64 `db:"confidence_level" json:"confidence_level,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewCompletenessReport creates a report row with a fresh ID and timestamp
func NewCompletenessReport(studyName string) *CompletenessReport {
	return &CompletenessReport{
		ID:        uuid.New(),
		StudyName: studyName,
		CreatedAt: time.Now().UTC(),
	}
}
