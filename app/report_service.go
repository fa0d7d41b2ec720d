package app

import (
	"context"
	"strings"

	"effsample/domain/core"
	"effsample/domain/proportion"
	"effsample/domain/sample"
	"effsample/internal/analysis"
	"effsample/models"
	"effsample/ports"
)

// ReportService computes and persists completeness reports
type ReportService struct {
	reports ports.ReportRepository
}

// StudyRequest defines the inputs for one completeness analysis
type StudyRequest struct {
	StudyName        string
	Variables        []analysis.NamedSequence
	MissingIndicator *sample.Observation

	// Optional proportion estimate over the jointly-complete cases
	Successes       *int
	ConfidenceLevel float64           // defaults to proportion.DefaultConfidenceLevel
	Method          proportion.Method // defaults to Wald
}

// StudyResult contains the computed report plus the per-variable profiles
// that are not persisted
type StudyResult struct {
	Report   *models.CompletenessReport `json:"report"`
	Profiles []analysis.VariableProfile `json:"profiles"`
	Estimate *proportion.Result         `json:"estimate,omitempty"`
	Joint    sample.MultivariateResult  `json:"joint"`
}

// NewReportService creates a report service
func NewReportService(reports ports.ReportRepository) *ReportService {
	return &ReportService{reports: reports}
}

// RunStudy computes the multivariate aggregate, profiles every variable,
// optionally estimates a proportion over the effective sample, and saves
// the resulting report.
func (s *ReportService) RunStudy(ctx context.Context, req StudyRequest) (*StudyResult, error) {
	if strings.TrimSpace(req.StudyName) == "" {
		return nil, core.NewEmptyInputError("study name")
	}

	seqs := make([]sample.Sequence, len(req.Variables))
	names := make([]string, len(req.Variables))
	for i, v := range req.Variables {
		seqs[i] = v.Sequence
		names[i] = v.Key.String()
	}

	joint, err := sample.CountMultivariate(seqs, req.MissingIndicator)
	if err != nil {
		return nil, err
	}

	profiles, err := analysis.ProfileBatch(ctx, req.Variables, req.MissingIndicator)
	if err != nil {
		return nil, err
	}

	report := models.NewCompletenessReport(req.StudyName)
	report.VariableNames = names
	report.NEffective = joint.NEffective
	report.NTotal = joint.NTotal
	report.NMissing = joint.NMissing
	report.ProportionComplete = joint.ProportionComplete
	report.ProportionMissing = joint.ProportionMissing
	report.MissingByVariable = toInt64(joint.MissingByVariable)

	result := &StudyResult{
		Report:   report,
		Profiles: profiles,
		Joint:    joint,
	}

	if req.Successes != nil {
		level := req.ConfidenceLevel
		if level == 0 {
			level = proportion.DefaultConfidenceLevel
		}
		estimate, err := proportion.EstimateWith(req.Method, *req.Successes, joint.NEffective, level)
		if err != nil {
			return nil, err
		}
		result.Estimate = &estimate

		report.HasEstimate = true
		report.Successes = *req.Successes
		report.PHat = estimate.PHat
		report.StandardError = estimate.StandardError
		report.CILower = estimate.CILower
		report.CIUpper = estimate.CIUpper
		report.ConfidenceLevel = estimate.ConfidenceLevel
	}

	if err := s.reports.Save(ctx, report); err != nil {
		return nil, err
	}

	return result, nil
}

func toInt64(counts []int) []int64 {
	out := make([]int64, len(counts))
	for i, c := range counts {
		out[i] = int64(c)
	}
	return out
}
