package calculator

import (
	"errors"
	"math"
)

const (
	// RSIPeriod is the lookback of the relative strength index.
	RSIPeriod = 14
	// NeutralRSI is emitted for every row when the series is shorter than RSIPeriod.
	NeutralRSI = 50.0
	// MinAvgLoss replaces a zero average loss before dividing.
	MinAvgLoss = 0.001
)

// CalculateRSI computes RSI from simple rolling means of gains and losses.
// The first close change counts as zero. Rows inside the warm-up window are NaN.
// Returns NeutralRSI for every row when fewer than period closes are available.
func CalculateRSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]float64, len(closes))
	if len(closes) < period {
		for i := range out {
			out[i] = NeutralRSI
		}
		return out, nil
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := range closes {
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		avgGain := windowMean(gains, i, period)
		avgLoss := windowMean(losses, i, period)
		if avgLoss == 0 {
			avgLoss = MinAvgLoss
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out, nil
}

// windowMean averages values[end-period+1 .. end].
func windowMean(values []float64, end, period int) float64 {
	sum := 0.0
	for i := end - period + 1; i <= end; i++ {
		sum += values[i]
	}
	return sum / float64(period)
}
