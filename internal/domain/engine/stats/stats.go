// Package stats holds the numeric primitives shared by the analytics engine:
// exponential smoothing, dispersion, the normal CDF and the logistic transform.
package stats

import "math"

// DefaultAlpha is the smoothing factor used when a caller does not supply one.
const DefaultAlpha = 0.30

// Epsilon floors denominators that would otherwise be zero.
const Epsilon = 1e-9

// Direction selects whether a logistic score rises or falls with its input.
type Direction string

const (
	Growth Direction = "growth"
	Decay  Direction = "decay"
)

// normalizeAlpha falls back to DefaultAlpha for values outside (0, 1].
func normalizeAlpha(alpha float64) float64 {
	if alpha <= 0 || alpha > 1 || math.IsNaN(alpha) {
		return DefaultAlpha
	}
	return alpha
}

// EWMA returns the final exponentially weighted moving average of series.
// The average is seeded with the first observation. An empty series yields 0.
func EWMA(series []float64, alpha float64) float64 {
	smoothed := EWMASeries(series, alpha)
	if len(smoothed) == 0 {
		return 0
	}
	return smoothed[len(smoothed)-1]
}

// EWMASeries returns the smoothed value after each observation.
func EWMASeries(series []float64, alpha float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	alpha = normalizeAlpha(alpha)

	out := make([]float64, len(series))
	v := series[0]
	out[0] = v
	for i := 1; i < len(series); i++ {
		v = alpha*series[i] + (1-alpha)*v
		out[i] = v
	}
	return out
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation. Fewer than two samples yield 0.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// Erf approximates the error function with the Abramowitz-Stegun 7.1.26
// polynomial. Maximum absolute error is about 1.5e-7.
func Erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

// NormalCDF returns P(X <= x) for X ~ N(mean, std^2).
// A zero (or negative) std degenerates to a step at the mean.
func NormalCDF(x, mean, std float64) float64 {
	if std <= 0 {
		if x >= mean {
			return 1
		}
		return 0
	}
	return 0.5 * (1 + Erf((x-mean)/(std*math.Sqrt2)))
}

// LogisticScore maps a raw ratio onto 0..100 with a sigmoid centred at midpoint.
// Growth scores increase with x, Decay scores decrease with x.
func LogisticScore(x, midpoint, steepness float64, direction Direction) float64 {
	score := 100 / (1 + math.Exp(-steepness*(x-midpoint)))
	if direction == Decay {
		score = 100 - score
	}
	return clamp(score, 0, 100)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SafeDiv divides a by b, returning fallback when |b| is below Epsilon.
func SafeDiv(a, b, fallback float64) float64 {
	if math.Abs(b) < Epsilon {
		return fallback
	}
	return a / b
}
