package analysis

import (
	"context"

	"effsample/domain/core"
	"effsample/domain/sample"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// SummaryStats describes the complete (non-missing) numeric cases of a
// variable. Zero-valued when the variable has no complete numeric cases.
type SummaryStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// VariableProfile combines a variable's missingness aggregate with the
// descriptive summary of its complete cases.
type VariableProfile struct {
	Key        core.VariableKey       `json:"key"`
	Counts     sample.AggregateResult `json:"counts"`
	Summary    SummaryStats           `json:"summary"`
	ComputedAt core.Timestamp         `json:"computed_at"`
}

// NamedSequence pairs a variable key with its observations
type NamedSequence struct {
	Key      core.VariableKey
	Sequence sample.Sequence
}

// ProfileVariable computes the univariate aggregate and, over the
// complete numeric cases only, the descriptive summary.
func ProfileVariable(key core.VariableKey, seq sample.Sequence, indicator *sample.Observation) VariableProfile {
	profile := VariableProfile{
		Key:        key,
		Counts:     sample.CountUnivariate(seq, indicator),
		ComputedAt: core.Now(),
	}

	complete := completeNumericCases(seq, indicator)
	if len(complete) == 0 {
		return profile
	}

	// montanaflynn returns an error only for empty input, which is
	// excluded above
	mean, _ := stats.Mean(complete)
	stdDev, _ := stats.StandardDeviation(complete)
	min, _ := stats.Min(complete)
	max, _ := stats.Max(complete)
	median, _ := stats.Median(complete)

	profile.Summary = SummaryStats{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
	}
	return profile
}

// ProfileBatch profiles many variables concurrently. Output order matches
// input order regardless of scheduling; the goroutines share nothing
// mutable beyond their own result slot.
func ProfileBatch(ctx context.Context, vars []NamedSequence, indicator *sample.Observation) ([]VariableProfile, error) {
	profiles := make([]VariableProfile, len(vars))

	g, ctx := errgroup.WithContext(ctx)
	for i, v := range vars {
		i, v := i, v
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			profiles[i] = ProfileVariable(v.Key, v.Sequence, indicator)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// completeNumericCases extracts the numeric values at non-missing
// positions. Non-numeric present values (categoricals) contribute to the
// counts but not to the numeric summary.
func completeNumericCases(seq sample.Sequence, indicator *sample.Observation) []float64 {
	complete := make([]float64, 0, len(seq))
	for _, obs := range seq {
		if sample.IsMissing(obs, indicator) {
			continue
		}
		if obs.IsNumeric() {
			complete = append(complete, *obs.NumericVal)
		}
	}
	return complete
}
