package calculator

import "errors"

const (
	EMAFastSpan = 9
	EMASlowSpan = 21
)

// CalculateEMA computes an exponential moving average with alpha 2/(span+1),
// seeded by the first close. With fewer than span closes it returns the closes unchanged.
func CalculateEMA(closes []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(closes))
	if len(closes) < span {
		copy(out, closes)
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = alpha*closes[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}
