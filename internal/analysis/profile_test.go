package analysis

import (
	"context"
	"math"
	"testing"

	"effsample/domain/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileVariable_CountsAndSummary(t *testing.T) {
	seq := sample.Numbers(1, 2, math.NaN(), 4, 5, math.NaN(), 7)

	profile := ProfileVariable("income_change", seq, nil)

	assert.Equal(t, 5, profile.Counts.NEffective)
	assert.Equal(t, 2, profile.Counts.NMissing)

	// Summary covers complete cases only: 1, 2, 4, 5, 7
	assert.InDelta(t, 3.8, profile.Summary.Mean, 1e-9)
	assert.InDelta(t, 1.0, profile.Summary.Min, 1e-9)
	assert.InDelta(t, 7.0, profile.Summary.Max, 1e-9)
	assert.InDelta(t, 4.0, profile.Summary.Median, 1e-9)
}

func TestProfileVariable_AllMissing(t *testing.T) {
	seq := sample.Sequence{sample.Missing(), sample.Number(math.NaN())}

	profile := ProfileVariable("empty_var", seq, nil)

	assert.Equal(t, 0, profile.Counts.NEffective)
	assert.Zero(t, profile.Summary, "summary stays zero-valued with no complete cases")
}

func TestProfileVariable_CategoricalsCountedNotSummarized(t *testing.T) {
	seq := sample.Sequence{
		sample.String("a"), sample.Number(2), sample.Missing(), sample.String("b"), sample.Number(4),
	}

	profile := ProfileVariable("mixed", seq, nil)

	assert.Equal(t, 4, profile.Counts.NEffective)
	// Only the two numeric cells feed the summary
	assert.InDelta(t, 3.0, profile.Summary.Mean, 1e-9)
}

func TestProfileVariable_CustomIndicator(t *testing.T) {
	indicator := sample.Number(-999)
	seq := sample.Numbers(10, -999, 30)

	profile := ProfileVariable("sentinel_var", seq, &indicator)

	assert.Equal(t, 2, profile.Counts.NEffective)
	assert.InDelta(t, 20.0, profile.Summary.Mean, 1e-9)
}

func TestProfileBatch_PreservesOrder(t *testing.T) {
	vars := []NamedSequence{
		{Key: "a", Sequence: sample.Numbers(1, 2, 3)},
		{Key: "b", Sequence: sample.Numbers(math.NaN(), 2)},
		{Key: "c", Sequence: sample.Sequence{}},
		{Key: "d", Sequence: sample.Numbers(5)},
	}

	profiles, err := ProfileBatch(context.Background(), vars, nil)
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	assert.Equal(t, "a", profiles[0].Key.String())
	assert.Equal(t, "b", profiles[1].Key.String())
	assert.Equal(t, "c", profiles[2].Key.String())
	assert.Equal(t, "d", profiles[3].Key.String())
	assert.Equal(t, 1, profiles[1].Counts.NMissing)
	assert.Equal(t, 0, profiles[2].Counts.NTotal)
}

func TestProfileBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProfileBatch(ctx, []NamedSequence{
		{Key: "a", Sequence: sample.Numbers(1, 2, 3)},
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
