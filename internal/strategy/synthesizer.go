package strategy

import (
	"context"
	"fmt"

	"FinSentinel/internal/calculator"
	"FinSentinel/internal/collector"
	"FinSentinel/internal/fundamental"
	"FinSentinel/internal/model"
	"FinSentinel/internal/predictor"

	"github.com/sirupsen/logrus"
)

// Synthesizer runs the full prediction pipeline for one symbol.
type Synthesizer struct {
	Collector *collector.Collector
}

// NewSynthesizer creates a Synthesizer over the given provider.
func NewSynthesizer(p collector.Provider) *Synthesizer {
	return &Synthesizer{Collector: collector.NewCollector(p)}
}

// Predict collects history, builds indicators, fits the model, scores the
// fundamentals and applies the decision table. The returned prediction is
// rounded to two decimals.
func (s *Synthesizer) Predict(ctx context.Context, symbol, period string) (*model.Prediction, error) {
	clean := collector.CleanSymbol(symbol)
	log := logrus.WithFields(logrus.Fields{"symbol": clean, "period": period})

	series, err := s.Collector.Collect(ctx, clean, period)
	if err != nil {
		return nil, err
	}
	frame, err := calculator.BuildFrame(series)
	if err != nil {
		return nil, fmt.Errorf("indicators for %s: %w", clean, err)
	}
	res, err := predictor.Predict(frame)
	if err != nil {
		return nil, fmt.Errorf("predict %s: %w", clean, err)
	}

	score, sentiment := fundamental.Score(s.Collector.Fundamentals(ctx, clean))
	d := Decide(Inputs{
		Predicted:    res.PredictedClose,
		Current:      res.CurrentPrice,
		RSI:          res.CurrentRSI,
		ATR:          res.ATR,
		AnalystScore: score,
	})

	p := model.Prediction{
		Symbol:           clean,
		Period:           period,
		CurrentPrice:     res.CurrentPrice,
		PredictedClose:   res.PredictedClose,
		RSI:              res.CurrentRSI,
		ATR:              res.ATR,
		AnalystScore:     score,
		AnalystSentiment: sentiment,
		Technical:        d.Technical,
		Signal:           d.Signal,
		Target:           d.Target,
		StopLoss:         d.StopLoss,
		Confidence:       d.Confidence,
	}.Rounded()

	log.WithFields(logrus.Fields{
		"signal":     p.Signal,
		"technical":  p.Technical,
		"rows":       res.TrainingRows,
		"confidence": p.Confidence,
	}).Info("prediction ready")
	return &p, nil
}
