package calculator

import (
	"fmt"
	"math"

	"FinSentinel/internal/model"

	"github.com/sirupsen/logrus"
)

// BuildFrame computes volatility, RSI and both EMAs for a series and drops any
// row left without a value. Row order is preserved.
func BuildFrame(series model.PriceSeries) (model.IndicatorFrame, error) {
	closes := series.Closes()
	vol := CalculateVolatility(series.Points)

	rsi, err := CalculateRSI(closes, RSIPeriod)
	if err != nil {
		return model.IndicatorFrame{}, fmt.Errorf("rsi: %w", err)
	}
	fast, err := CalculateEMA(closes, EMAFastSpan)
	if err != nil {
		return model.IndicatorFrame{}, fmt.Errorf("ema fast: %w", err)
	}
	slow, err := CalculateEMA(closes, EMASlowSpan)
	if err != nil {
		return model.IndicatorFrame{}, fmt.Errorf("ema slow: %w", err)
	}

	if len(closes) < RSIPeriod {
		logrus.WithField("symbol", series.Symbol).Warnf("only %d rows, RSI pinned to %.0f", len(closes), NeutralRSI)
	}

	frame := model.IndicatorFrame{Symbol: series.Symbol, Rows: make([]model.IndicatorRow, 0, len(closes))}
	for i, p := range series.Points {
		row := model.IndicatorRow{
			PricePoint: p,
			Volatility: vol[i],
			RSI:        rsi[i],
			EMAFast:    fast[i],
			EMASlow:    slow[i],
		}
		if unresolved(row) {
			continue
		}
		frame.Rows = append(frame.Rows, row)
	}
	return frame, nil
}

func unresolved(r model.IndicatorRow) bool {
	for _, v := range []float64{r.Close, r.Volatility, r.RSI, r.EMAFast, r.EMASlow} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
