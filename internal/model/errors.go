package model

import "errors"

var (
	// ErrProviderUnavailable means a collaborator call failed or returned a non-success status.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrSchemaMismatch means the provider table has an unsupported column count.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrInsufficientData means fewer than the minimum usable price rows.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInsufficientTrainingData means fewer than two labeled rows for regression.
	ErrInsufficientTrainingData = errors.New("insufficient training data")
)

// PredictFailure is the structured "cannot predict" result shown to end users.
type PredictFailure struct {
	Symbol string
	Kind   string
	Reason string
}

// CannotPredict classifies err into a PredictFailure. It returns nil for a nil error.
func CannotPredict(symbol string, err error) *PredictFailure {
	if err == nil {
		return nil
	}
	kind := "INTERNAL"
	switch {
	case errors.Is(err, ErrProviderUnavailable):
		kind = "PROVIDER_UNAVAILABLE"
	case errors.Is(err, ErrSchemaMismatch):
		kind = "SCHEMA_MISMATCH"
	case errors.Is(err, ErrInsufficientTrainingData):
		kind = "INSUFFICIENT_TRAINING_DATA"
	case errors.Is(err, ErrInsufficientData):
		kind = "INSUFFICIENT_DATA"
	}
	return &PredictFailure{Symbol: symbol, Kind: kind, Reason: err.Error()}
}
