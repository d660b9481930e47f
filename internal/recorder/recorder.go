package recorder

import (
	"time"

	"FinSentinel/internal/model"

	"github.com/google/uuid"
)

// PredictionRecord is one journaled prediction.
type PredictionRecord struct {
	ID         uuid.UUID
	RecordedAt time.Time
	Prediction model.Prediction
}

// FailureRecord is one journaled prediction that could not be made.
type FailureRecord struct {
	ID         uuid.UUID
	RecordedAt time.Time
	Period     string
	Failure    model.PredictFailure
}

// Recorder journals predictions and plans for later review.
type Recorder interface {
	RecordPrediction(p *model.Prediction) (uuid.UUID, error)
	RecordFailure(period string, f *model.PredictFailure) (uuid.UUID, error)
	RecordPlan(p *model.AllocationPlan) (uuid.UUID, error)
	// Predictions returns the latest predictions for symbol, newest first.
	Predictions(symbol string, limit int) ([]PredictionRecord, error)
	Close() error
}
