package recorder

import (
	"FinSentinel/internal/model"

	"github.com/google/uuid"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPrediction(_ *model.Prediction) (uuid.UUID, error) { return uuid.Nil, nil }
func (n *NoopRecorder) RecordFailure(_ string, _ *model.PredictFailure) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (n *NoopRecorder) RecordPlan(_ *model.AllocationPlan) (uuid.UUID, error) { return uuid.Nil, nil }
func (n *NoopRecorder) Predictions(_ string, _ int) ([]PredictionRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
