package model

import "math"

// Signal is the final trade recommendation.
type Signal string

const (
	SignalStrongBuy      Signal = "STRONG_BUY"
	SignalBuy            Signal = "BUY"
	SignalWeakBuy        Signal = "WEAK_BUY"
	SignalSell           Signal = "SELL"
	SignalHoldOverbought Signal = "HOLD_OVERBOUGHT"
	SignalHoldOversold   Signal = "HOLD_OVERSOLD"
	SignalHold           Signal = "HOLD"
	SignalNeutral        Signal = "NEUTRAL"
)

// IsBuy reports whether the signal is an affirmed buy (STRONG_BUY, BUY or WEAK_BUY).
func (s Signal) IsBuy() bool {
	return s == SignalStrongBuy || s == SignalBuy || s == SignalWeakBuy
}

// IsSell reports whether the signal is an affirmed sell.
func (s Signal) IsSell() bool { return s == SignalSell }

// Confidence labels attached to a signal.
const (
	ConfidenceStandard = "Standard"
	ConfidenceHigh     = "High (Tech + Fundamentals)"
	ConfidenceLow      = "Low (Conflict)"
)

// Prediction is the output of one predict call. Values are kept at full
// precision; Rounded produces the two-decimal response form.
type Prediction struct {
	Symbol           string
	Period           string
	CurrentPrice     float64
	PredictedClose   float64
	RSI              float64
	ATR              float64
	AnalystScore     float64
	AnalystSentiment Sentiment
	Technical        Signal // signal after the RSI guard, before fundamentals
	Signal           Signal
	Target           float64
	StopLoss         float64
	Confidence       string
}

// Rounded returns a copy with every numeric field rounded to two decimals.
func (p Prediction) Rounded() Prediction {
	p.CurrentPrice = Round2(p.CurrentPrice)
	p.PredictedClose = Round2(p.PredictedClose)
	p.RSI = Round2(p.RSI)
	p.ATR = Round2(p.ATR)
	p.AnalystScore = Round2(p.AnalystScore)
	p.Target = Round2(p.Target)
	p.StopLoss = Round2(p.StopLoss)
	return p
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
