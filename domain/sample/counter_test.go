package sample

import (
	"math"
	"strings"
	"testing"

	"effsample/domain/core"
)

// ============================================================================
// TEST: CountUnivariate
// ============================================================================

func TestCountUnivariate_NoMissing(t *testing.T) {
	result := CountUnivariate(Numbers(1, 2, 3, 4, 5), nil)

	if result.NEffective != 5 {
		t.Errorf("Expected NEffective 5, got %d", result.NEffective)
	}
	if result.NMissing != 0 {
		t.Errorf("Expected NMissing 0, got %d", result.NMissing)
	}
	if result.ProportionComplete != 1.0 {
		t.Errorf("Expected ProportionComplete 1.0, got %f", result.ProportionComplete)
	}
}

func TestCountUnivariate_WithNaN(t *testing.T) {
	seq := Numbers(1, 2, math.NaN(), 4, 5, math.NaN(), 7)
	result := CountUnivariate(seq, nil)

	if result.NEffective != 5 {
		t.Errorf("Expected NEffective 5, got %d", result.NEffective)
	}
	if result.NTotal != 7 {
		t.Errorf("Expected NTotal 7, got %d", result.NTotal)
	}
	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2, got %d", result.NMissing)
	}
	if math.Abs(result.ProportionComplete-5.0/7.0) > 1e-9 {
		t.Errorf("Expected ProportionComplete ~0.7143, got %f", result.ProportionComplete)
	}
	if math.Abs(result.ProportionMissing-2.0/7.0) > 1e-9 {
		t.Errorf("Expected ProportionMissing ~0.2857, got %f", result.ProportionMissing)
	}
}

func TestCountUnivariate_WithAbsent(t *testing.T) {
	seq := Sequence{Number(1), Missing(), Number(3), Missing(), Number(5)}
	result := CountUnivariate(seq, nil)

	if result.NEffective != 3 {
		t.Errorf("Expected NEffective 3, got %d", result.NEffective)
	}
	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2, got %d", result.NMissing)
	}
}

func TestCountUnivariate_MixedMissingKinds(t *testing.T) {
	// NaN and absent cells both count under the default rule
	seq := Sequence{Number(1), Missing(), Number(math.NaN()), Number(4), Missing(), Number(6)}
	result := CountUnivariate(seq, nil)

	if result.NEffective != 3 {
		t.Errorf("Expected NEffective 3, got %d", result.NEffective)
	}
	if result.NMissing != 3 {
		t.Errorf("Expected NMissing 3, got %d", result.NMissing)
	}
}

func TestCountUnivariate_CustomIndicator(t *testing.T) {
	indicator := Number(-999)
	seq := Numbers(1, 2, -999, 4, 5, -999, 7)
	result := CountUnivariate(seq, &indicator)

	if result.NEffective != 5 {
		t.Errorf("Expected NEffective 5, got %d", result.NEffective)
	}
	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2, got %d", result.NMissing)
	}
}

func TestCountUnivariate_CustomIndicatorIgnoresNaNAndAbsent(t *testing.T) {
	// An explicit indicator replaces the default rule entirely
	indicator := Number(-999)
	seq := Sequence{Number(1), Number(math.NaN()), Missing(), Number(-999)}
	result := CountUnivariate(seq, &indicator)

	if result.NMissing != 1 {
		t.Errorf("Expected only the sentinel flagged, got NMissing %d", result.NMissing)
	}
}

func TestCountUnivariate_StringIndicator(t *testing.T) {
	indicator := String("NA")
	seq := Sequence{String("a"), String("NA"), String("b"), String(""), String("NA")}
	result := CountUnivariate(seq, &indicator)

	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2, got %d", result.NMissing)
	}
	if result.NEffective != 3 {
		t.Errorf("Expected NEffective 3, got %d", result.NEffective)
	}
}

func TestCountUnivariate_AllMissing(t *testing.T) {
	seq := Sequence{Missing(), Number(math.NaN()), Missing()}
	result := CountUnivariate(seq, nil)

	if result.NEffective != 0 {
		t.Errorf("Expected NEffective 0, got %d", result.NEffective)
	}
	if result.ProportionMissing != 1.0 {
		t.Errorf("Expected ProportionMissing 1.0, got %f", result.ProportionMissing)
	}
}

func TestCountUnivariate_Empty(t *testing.T) {
	result := CountUnivariate(Sequence{}, nil)

	if result.NEffective != 0 || result.NTotal != 0 || result.NMissing != 0 {
		t.Errorf("Expected all-zero counts, got %+v", result)
	}
	if result.ProportionComplete != 0.0 || result.ProportionMissing != 0.0 {
		t.Errorf("Expected zero proportions on empty input, got %+v", result)
	}
}

func TestCountUnivariate_Invariants(t *testing.T) {
	sequences := []Sequence{
		Numbers(1, 2, 3),
		Numbers(math.NaN(), math.NaN()),
		{Missing(), Number(0), String(""), Bool(false)},
		{},
	}

	for i, seq := range sequences {
		result := CountUnivariate(seq, nil)
		if result.NEffective+result.NMissing != result.NTotal {
			t.Errorf("seq %d: NEffective+NMissing != NTotal: %+v", i, result)
		}
		if result.NTotal > 0 {
			if math.Abs(result.ProportionComplete+result.ProportionMissing-1.0) > 1e-12 {
				t.Errorf("seq %d: proportions do not sum to 1: %+v", i, result)
			}
		}
	}
}

func TestCountUnivariate_ZeroAndFalseArePresent(t *testing.T) {
	// The default rule is narrow: only absence and float NaN are missing
	seq := Sequence{Number(0), Bool(false), String(""), Number(math.Inf(1))}
	result := CountUnivariate(seq, nil)

	if result.NMissing != 0 {
		t.Errorf("Expected nothing flagged, got NMissing %d", result.NMissing)
	}
}

// ============================================================================
// TEST: CountMultivariate
// ============================================================================

func TestCountMultivariate_TwoVariablesWithMissing(t *testing.T) {
	income := Numbers(100, 200, math.NaN(), 400, 500)
	treeCover := Numbers(0.5, 0.6, 0.7, math.NaN(), 0.9)

	result, err := CountMultivariate([]Sequence{income, treeCover}, nil)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NEffective != 3 {
		t.Errorf("Expected NEffective 3, got %d", result.NEffective)
	}
	if result.NTotal != 5 {
		t.Errorf("Expected NTotal 5, got %d", result.NTotal)
	}
	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2, got %d", result.NMissing)
	}
	if len(result.MissingByVariable) != 2 || result.MissingByVariable[0] != 1 || result.MissingByVariable[1] != 1 {
		t.Errorf("Expected MissingByVariable [1 1], got %v", result.MissingByVariable)
	}
}

func TestCountMultivariate_NoMissing(t *testing.T) {
	result, err := CountMultivariate([]Sequence{Numbers(1, 2, 3), Numbers(4, 5, 6)}, nil)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NEffective != 3 || result.NMissing != 0 {
		t.Errorf("Expected complete data, got %+v", result)
	}
}

func TestCountMultivariate_ThreeVariables(t *testing.T) {
	a := Numbers(1, math.NaN(), 3, 4, 5)
	b := Numbers(1, 2, math.NaN(), 4, 5)
	c := Numbers(1, 2, 3, math.NaN(), 5)

	result, err := CountMultivariate([]Sequence{a, b, c}, nil)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NEffective != 2 {
		t.Errorf("Expected NEffective 2 (only positions 0 and 4 complete), got %d", result.NEffective)
	}
	if result.NMissing != 3 {
		t.Errorf("Expected NMissing 3, got %d", result.NMissing)
	}
}

func TestCountMultivariate_SharedMissingPattern(t *testing.T) {
	// Identical missing positions: union equals each variable's own count
	a := Numbers(1, math.NaN(), 3, math.NaN(), 5)
	b := Numbers(10, math.NaN(), 30, math.NaN(), 50)

	result, err := CountMultivariate([]Sequence{a, b}, nil)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NMissing != 2 {
		t.Errorf("Expected NMissing 2 (shared positions), got %d", result.NMissing)
	}
}

func TestCountMultivariate_UnionBounds(t *testing.T) {
	cases := [][]Sequence{
		{Numbers(1, math.NaN(), 3), Numbers(math.NaN(), 2, 3)},
		{Numbers(math.NaN(), math.NaN()), Numbers(1, 2)},
		{Numbers(1, 2, 3), Numbers(4, 5, 6), Numbers(math.NaN(), 8, math.NaN())},
	}

	for i, seqs := range cases {
		result, err := CountMultivariate(seqs, nil)
		if err != nil {
			t.Fatalf("case %d: CountMultivariate failed: %v", i, err)
		}

		maxByVar, sumByVar := 0, 0
		for _, m := range result.MissingByVariable {
			if m > maxByVar {
				maxByVar = m
			}
			sumByVar += m
		}
		if result.NMissing < maxByVar {
			t.Errorf("case %d: NMissing %d < max(MissingByVariable) %d", i, result.NMissing, maxByVar)
		}
		if result.NMissing > sumByVar {
			t.Errorf("case %d: NMissing %d > sum(MissingByVariable) %d", i, result.NMissing, sumByVar)
		}
	}
}

func TestCountMultivariate_CustomIndicator(t *testing.T) {
	indicator := Number(-1)
	a := Numbers(1, -1, 3, 4)
	b := Numbers(5, 6, -1, 8)

	result, err := CountMultivariate([]Sequence{a, b}, &indicator)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NEffective != 2 {
		t.Errorf("Expected NEffective 2, got %d", result.NEffective)
	}
}

func TestCountMultivariate_EmptySequences(t *testing.T) {
	result, err := CountMultivariate([]Sequence{{}, {}}, nil)
	if err != nil {
		t.Fatalf("CountMultivariate failed: %v", err)
	}

	if result.NTotal != 0 || result.NEffective != 0 || result.NMissing != 0 {
		t.Errorf("Expected all-zero counts, got %+v", result)
	}
	if len(result.MissingByVariable) != 2 || result.MissingByVariable[0] != 0 || result.MissingByVariable[1] != 0 {
		t.Errorf("Expected MissingByVariable [0 0], got %v", result.MissingByVariable)
	}
}

func TestCountMultivariate_NoSequences(t *testing.T) {
	_, err := CountMultivariate(nil, nil)
	if err == nil {
		t.Fatal("Expected error for zero sequences")
	}
	if !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
}

func TestCountMultivariate_LengthMismatch(t *testing.T) {
	_, err := CountMultivariate([]Sequence{Numbers(1, 2, 3), Numbers(10, 20, 30, 40)}, nil)
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
	if !core.IsInvalidArgument(err) {
		t.Errorf("Expected invalid-argument error, got %v", err)
	}
	// The offending lengths belong in the message
	if got := err.Error(); !strings.Contains(got, "3") || !strings.Contains(got, "4") {
		t.Errorf("Expected lengths in error message, got %q", got)
	}
}

// ============================================================================
// TEST: Mask
// ============================================================================

func TestMask_DerivedElementwise(t *testing.T) {
	seq := Sequence{Number(1), Missing(), Number(math.NaN()), String("x")}
	mask := Mask(seq, nil)

	expected := []bool{false, true, true, false}
	for i, want := range expected {
		if mask[i] != want {
			t.Errorf("position %d: expected %t, got %t", i, want, mask[i])
		}
	}
}
