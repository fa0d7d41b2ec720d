package sample

import (
	"effsample/domain/core"
)

// AggregateResult is an immutable record of missingness counts for one
// counting operation. Produced fresh per call; nothing is cached.
// INVARIANTS:
// - NEffective + NMissing == NTotal
// - ProportionComplete + ProportionMissing == 1.0 when NTotal > 0
// - both proportions are 0.0 when NTotal == 0 (0/0 defined as 0)
type AggregateResult struct {
	NEffective         int     `json:"n_effective"`
	NTotal             int     `json:"n_total"`
	NMissing           int     `json:"n_missing"`
	ProportionComplete float64 `json:"proportion_complete"`
	ProportionMissing  float64 `json:"proportion_missing"`
}

// MultivariateResult extends AggregateResult with per-variable missing
// counts, ordered to match the input sequences.
// INVARIANTS:
// - NMissing >= max(MissingByVariable)
// - NMissing <= sum(MissingByVariable)
type MultivariateResult struct {
	AggregateResult
	MissingByVariable []int `json:"missing_by_variable"`
}

// Mask applies the missingness predicate elementwise and returns the
// derived boolean mask (true = missing at that position).
func Mask(seq Sequence, indicator *Observation) []bool {
	mask := make([]bool, len(seq))
	for i, obs := range seq {
		mask[i] = IsMissing(obs, indicator)
	}
	return mask
}

// CountUnivariate computes the effective sample size of a single
// variable: the number of complete (non-missing) observations, with the
// total, the missing count, and the completeness proportions.
//
// A zero-length sequence is valid and returns the all-zero result.
func CountUnivariate(seq Sequence, indicator *Observation) AggregateResult {
	nTotal := len(seq)
	if nTotal == 0 {
		return AggregateResult{}
	}

	nMissing := 0
	for _, obs := range seq {
		if IsMissing(obs, indicator) {
			nMissing++
		}
	}

	return newAggregate(nTotal, nMissing)
}

// CountMultivariate computes the jointly-complete effective sample size
// across one or more equal-length variables. A unit counts as missing if
// any variable is missing at its position (listwise deletion): with no
// repeated measurements, downstream analysis needs jointly-complete
// records across all variables under consideration.
//
// Fails with an invalid-argument error when no sequences are supplied or
// when the sequences differ in length. A common length of zero is valid
// and returns the all-zero shape with a zero count per variable.
func CountMultivariate(seqs []Sequence, indicator *Observation) (MultivariateResult, error) {
	if len(seqs) == 0 {
		return MultivariateResult{}, core.NewEmptyInputError("sequence")
	}

	nTotal := len(seqs[0])
	for _, seq := range seqs[1:] {
		if len(seq) != nTotal {
			lengths := make([]int, len(seqs))
			for i, s := range seqs {
				lengths[i] = len(s)
			}
			return MultivariateResult{}, core.NewLengthMismatchError(lengths)
		}
	}

	missingByVariable := make([]int, len(seqs))
	if nTotal == 0 {
		return MultivariateResult{MissingByVariable: missingByVariable}, nil
	}

	// OR across variables per position: any missing variable excludes the unit
	combined := make([]bool, nTotal)
	for v, seq := range seqs {
		for i, obs := range seq {
			if IsMissing(obs, indicator) {
				missingByVariable[v]++
				combined[i] = true
			}
		}
	}

	nMissing := 0
	for _, m := range combined {
		if m {
			nMissing++
		}
	}

	return MultivariateResult{
		AggregateResult:   newAggregate(nTotal, nMissing),
		MissingByVariable: missingByVariable,
	}, nil
}

// newAggregate derives the full aggregate from total and missing counts.
// Callers guarantee nTotal > 0.
func newAggregate(nTotal, nMissing int) AggregateResult {
	nEffective := nTotal - nMissing
	return AggregateResult{
		NEffective:         nEffective,
		NTotal:             nTotal,
		NMissing:           nMissing,
		ProportionComplete: float64(nEffective) / float64(nTotal),
		ProportionMissing:  float64(nMissing) / float64(nTotal),
	}
}
