package proportion

import (
	"fmt"
	"math"

	"effsample/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// Method selects the interval construction
type Method string

const (
	MethodWald   Method = "wald"
	MethodWilson Method = "wilson"
)

// DefaultConfidenceLevel is the conventional two-sided 95% level
const DefaultConfidenceLevel = 0.95

// Result is an immutable record of a proportion point estimate and its
// two-sided confidence interval. Produced fresh per call.
type Result struct {
	PHat            float64 `json:"p_hat"`
	StandardError   float64 `json:"standard_error"`
	CILower         float64 `json:"ci_lower"`
	CIUpper         float64 `json:"ci_upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Estimate computes p-hat and a Wald (normal-approximation) confidence
// interval from a success count and a pre-computed effective sample
// size. The interval is clamped to [0,1], so it is not symmetric near
// the boundaries. When p-hat is exactly 0 or 1 the standard error is 0
// and the interval collapses to the point estimate by construction.
func Estimate(successes, nEffective int, confidenceLevel float64) (Result, error) {
	if err := validate(successes, nEffective, confidenceLevel); err != nil {
		return Result{}, err
	}

	pHat := float64(successes) / float64(nEffective)
	standardError := math.Sqrt(pHat * (1 - pHat) / float64(nEffective))

	z := criticalValue(confidenceLevel)
	margin := z * standardError

	return Result{
		PHat:            pHat,
		StandardError:   standardError,
		CILower:         math.Max(0.0, pHat-margin),
		CIUpper:         math.Min(1.0, pHat+margin),
		ConfidenceLevel: confidenceLevel,
	}, nil
}

// EstimateWilson computes p-hat with a Wilson score interval. Same
// preconditions as Estimate. The Wilson interval keeps honest coverage
// when p-hat sits near 0 or 1, where the Wald interval degenerates.
func EstimateWilson(successes, nEffective int, confidenceLevel float64) (Result, error) {
	if err := validate(successes, nEffective, confidenceLevel); err != nil {
		return Result{}, err
	}

	p := float64(successes) / float64(nEffective)
	n := float64(nEffective)
	standardError := math.Sqrt(p * (1 - p) / n)

	// (p + z²/2n ± z√(p(1-p)/n + z²/4n²)) / (1 + z²/n)
	z := criticalValue(confidenceLevel)
	base := p + (z*z)/(2*n)
	plusminus := z * math.Sqrt(p*(1-p)/n+(z*z)/(4*n*n))
	normalize := 1 + (z*z)/n

	return Result{
		PHat:            p,
		StandardError:   standardError,
		CILower:         math.Max(0.0, (base-plusminus)/normalize),
		CIUpper:         math.Min(1.0, (base+plusminus)/normalize),
		ConfidenceLevel: confidenceLevel,
	}, nil
}

// EstimateWith dispatches on the interval method, defaulting to Wald
func EstimateWith(method Method, successes, nEffective int, confidenceLevel float64) (Result, error) {
	switch method {
	case MethodWilson:
		return EstimateWilson(successes, nEffective, confidenceLevel)
	case MethodWald, "":
		return Estimate(successes, nEffective, confidenceLevel)
	default:
		return Result{}, core.NewOutOfRangeError(fmt.Sprintf("unknown interval method %q", method))
	}
}

func validate(successes, nEffective int, confidenceLevel float64) error {
	if nEffective <= 0 {
		return core.NewOutOfRangeError("effective sample size must be positive")
	}
	if successes < 0 || successes > nEffective {
		return core.NewOutOfRangeError(fmt.Sprintf("successes must lie in [0, %d], got %d", nEffective, successes))
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return core.NewOutOfRangeError(fmt.Sprintf("confidence level must lie in (0, 1), got %g", confidenceLevel))
	}
	return nil
}

// criticalValue returns the two-sided standard normal critical value for
// the given confidence level (e.g. 0.95 -> 1.959964)
func criticalValue(confidenceLevel float64) float64 {
	alpha := 1 - confidenceLevel
	return distuv.UnitNormal.Quantile(1 - alpha/2)
}
