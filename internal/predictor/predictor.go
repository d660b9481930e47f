package predictor

import (
	"fmt"

	"FinSentinel/internal/model"

	"gonum.org/v1/gonum/stat"
)

// MinTrainingRows is the fewest labeled rows a fit is attempted on.
const MinTrainingRows = 2

// Feature is one regression input column.
type Feature struct {
	Name  string
	Value func(model.IndicatorRow) float64
}

// Features is the fixed input set of the model.
var Features = []Feature{
	{"close", func(r model.IndicatorRow) float64 { return r.Close }},
	{"rsi", func(r model.IndicatorRow) float64 { return r.RSI }},
	{"ema_fast", func(r model.IndicatorRow) float64 { return r.EMAFast }},
	{"ema_slow", func(r model.IndicatorRow) float64 { return r.EMASlow }},
	{"volatility", func(r model.IndicatorRow) float64 { return r.Volatility }},
}

// Result is a one-step-ahead forecast together with the values the signal stage needs.
type Result struct {
	PredictedClose float64
	CurrentPrice   float64
	CurrentRSI     float64
	ATR            float64
	TrainingRows   int
	Model          LinearModel
}

// Predict fits the model on every row whose next close is known and forecasts
// the close after the most recent row. The model is refit on every call.
func Predict(frame model.IndicatorFrame) (Result, error) {
	training := frame.Len() - 1
	if training < MinTrainingRows {
		if training < 0 {
			training = 0
		}
		return Result{}, fmt.Errorf("%w: %d labeled rows for %s, need %d",
			model.ErrInsufficientTrainingData, training, frame.Symbol, MinTrainingRows)
	}

	x := make([][]float64, training)
	y := make([]float64, training)
	for i := 0; i < training; i++ {
		x[i] = featureVector(frame.Rows[i])
		y[i] = frame.Rows[i+1].Close
	}

	lm, err := FitOLS(x, y)
	if err != nil {
		return Result{}, fmt.Errorf("fit %s: %w", frame.Symbol, err)
	}

	last := frame.Last()
	return Result{
		PredictedClose: lm.Predict(featureVector(last)),
		CurrentPrice:   last.Close,
		CurrentRSI:     last.RSI,
		ATR:            averageVolatility(frame),
		TrainingRows:   training,
		Model:          lm,
	}, nil
}

func featureVector(r model.IndicatorRow) []float64 {
	v := make([]float64, len(Features))
	for i, f := range Features {
		v[i] = f.Value(r)
	}
	return v
}

// averageVolatility is the ATR proxy: mean volatility over the frame.
func averageVolatility(frame model.IndicatorFrame) float64 {
	if frame.Len() == 0 {
		return 0
	}
	vols := make([]float64, frame.Len())
	for i, r := range frame.Rows {
		vols[i] = r.Volatility
	}
	return stat.Mean(vols, nil)
}
