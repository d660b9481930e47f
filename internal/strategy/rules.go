package strategy

import "FinSentinel/internal/model"

// technicalSignal compares the forecast with the current close.
func technicalSignal(in Inputs) model.Signal {
	switch {
	case in.Predicted > in.Current:
		return model.SignalBuy
	case in.Predicted < in.Current:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}

// applyRSIGuard holds a buy into an overbought market and a sell into an oversold one.
// The held signals are final.
func applyRSIGuard(s model.Signal, rsi float64) model.Signal {
	switch {
	case s == model.SignalBuy && rsi > OverboughtRSI:
		return model.SignalHoldOverbought
	case s == model.SignalSell && rsi < OversoldRSI:
		return model.SignalHoldOversold
	}
	return s
}

// applyFundamentals adjusts only a plain technical BUY. Sells and holds pass through.
func applyFundamentals(s model.Signal, analystScore float64) (model.Signal, string) {
	if s != model.SignalBuy {
		return s, model.ConfidenceStandard
	}
	switch {
	case analystScore > 0:
		return model.SignalStrongBuy, model.ConfidenceHigh
	case analystScore < 0:
		return model.SignalWeakBuy, model.ConfidenceLow
	}
	return model.SignalBuy, model.ConfidenceStandard
}
