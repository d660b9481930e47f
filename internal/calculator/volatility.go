package calculator

import "FinSentinel/internal/model"

// VolatilityFallbackRatio is the share of close used when a bar has no high/low.
const VolatilityFallbackRatio = 0.01

// CalculateVolatility returns high-low per point, or 1% of close when the range is absent.
func CalculateVolatility(points []model.PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		if p.HasRange() {
			h, l := p.RangeOrClose()
			out[i] = h - l
		} else {
			out[i] = p.Close * VolatilityFallbackRatio
		}
	}
	return out
}
