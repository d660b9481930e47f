package strategy

import "FinSentinel/internal/model"

const (
	// OverboughtRSI blocks a technical buy above this level.
	OverboughtRSI = 70.0
	// OversoldRSI blocks a technical sell below this level.
	OversoldRSI = 30.0
	// StopMultiplier scales ATR into the stop-loss distance of an affirmed trade.
	StopMultiplier = 1.5
	// TargetMultiplier scales ATR into the target distance.
	TargetMultiplier = 1.0
)

// Inputs are the values the decision table is evaluated on.
type Inputs struct {
	Predicted    float64
	Current      float64
	RSI          float64
	ATR          float64
	AnalystScore float64
}

// Decision is the outcome of the table, at full precision.
type Decision struct {
	Technical  model.Signal
	Signal     model.Signal
	Confidence string
	Target     float64
	StopLoss   float64
}

// levelRule derives target and stop from the inputs for a signal family.
type levelRule struct {
	Match  func(model.Signal) bool
	Target func(Inputs) float64
	Stop   func(Inputs) float64
}

// Levels is evaluated top to bottom; the last rule catches HOLD and NEUTRAL outcomes.
var Levels = []levelRule{
	{
		Match:  model.Signal.IsBuy,
		Target: func(in Inputs) float64 { return in.Predicted + TargetMultiplier*in.ATR },
		Stop:   func(in Inputs) float64 { return in.Current - StopMultiplier*in.ATR },
	},
	{
		Match:  model.Signal.IsSell,
		Target: func(in Inputs) float64 { return in.Predicted - TargetMultiplier*in.ATR },
		Stop:   func(in Inputs) float64 { return in.Current + StopMultiplier*in.ATR },
	},
	{
		Match:  func(model.Signal) bool { return true },
		Target: func(in Inputs) float64 { return in.Current + TargetMultiplier*in.ATR },
		Stop:   func(in Inputs) float64 { return in.Current - in.ATR },
	},
}

// Decide evaluates the table in order: technical base, RSI guard, fundamental
// adjustment, then target and stop-loss.
func Decide(in Inputs) Decision {
	technical := applyRSIGuard(technicalSignal(in), in.RSI)
	signal, confidence := applyFundamentals(technical, in.AnalystScore)

	d := Decision{Technical: technical, Signal: signal, Confidence: confidence}
	for _, rule := range Levels {
		if rule.Match(signal) {
			d.Target = rule.Target(in)
			d.StopLoss = rule.Stop(in)
			break
		}
	}
	return d
}
