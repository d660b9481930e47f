package recorder

import (
	"path/filepath"
	"testing"

	"FinSentinel/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "data", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorderPredictions(t *testing.T) {
	r := openTestRecorder(t)

	first := &model.Prediction{Symbol: "INFY", Period: "1mo", CurrentPrice: 1500, Signal: model.SignalBuy,
		Technical: model.SignalBuy, AnalystSentiment: model.SentimentNeutral, Confidence: model.ConfidenceStandard}
	second := &model.Prediction{Symbol: "INFY", Period: "1yr", CurrentPrice: 1510, Signal: model.SignalStrongBuy,
		Technical: model.SignalBuy, AnalystSentiment: model.SentimentBullish, Confidence: model.ConfidenceHigh}
	other := &model.Prediction{Symbol: "TCS", Signal: model.SignalSell}

	id1, err := r.RecordPrediction(first)
	require.NoError(t, err)
	id2, err := r.RecordPrediction(second)
	require.NoError(t, err)
	_, err = r.RecordPrediction(other)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id1)
	assert.NotEqual(t, id1, id2)

	recs, err := r.Predictions("INFY", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, id2, recs[0].ID)
	assert.Equal(t, *second, recs[0].Prediction)
	assert.Equal(t, *first, recs[1].Prediction)

	recs, err = r.Predictions("INFY", 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSQLiteRecorderFailuresAndPlans(t *testing.T) {
	r := openTestRecorder(t)

	id, err := r.RecordFailure("1mo", &model.PredictFailure{Symbol: "XYZ", Kind: "INSUFFICIENT_DATA", Reason: "no rows"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	plan := &model.AllocationPlan{
		Tier:         model.RiskLow,
		Monthly:      decimal.NewFromInt(20000),
		HorizonYears: 5,
		Deposit:      model.DepositLeg{Bank: "SBI RD Scheme", Amount: decimal.NewFromInt(14000)},
		Fund:         model.FundLeg{Name: "Liquid", Amount: decimal.NewFromInt(3600)},
		Equity:       model.EquityLeg{Symbol: "ITC", Amount: decimal.NewFromInt(2400), Quantity: model.Some(int64(5))},
		Projection:   model.Projection{Status: model.StatusAchievable},
	}
	id, err = r.RecordPlan(plan)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT equity_quantity FROM plans WHERE id = ?`, id.String()).Scan(&n))
	assert.Equal(t, 5, n)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	id, err := r.RecordPrediction(&model.Prediction{})
	assert.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
	recs, err := r.Predictions("X", 5)
	assert.NoError(t, err)
	assert.Empty(t, recs)
	assert.NoError(t, r.Close())
}
