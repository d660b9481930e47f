package scheduler

import (
	"context"
	"testing"
	"time"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/fund"
	"FinSentinel/internal/recorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	messages []string
}

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.messages = append(f.messages, text)
	return nil
}

func newTestScheduler(t *testing.T, mock *collector.MockProvider) (*Scheduler, *fakeSender, recorder.Recorder) {
	t.Helper()
	rates, err := fund.DefaultRateTable()
	require.NoError(t, err)
	planner := &fund.Planner{Provider: mock, Rates: rates, Select: fund.FixedSelector(0)}

	rec, err := recorder.NewSQLiteRecorder(t.TempDir() + "/journal.db")
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })

	sender := &fakeSender{}
	s := NewScheduler(context.Background(), mock, planner, sender, rec, []string{"RELIANCE", "INFY"}, "1yr")
	s.now = func() time.Time { return time.Date(2026, 3, 2, 15, 45, 0, 0, time.UTC) }
	return s, sender, rec
}

func TestScanNow(t *testing.T) {
	mock := &collector.MockProvider{History: collector.GenerateCloseTable(100, 1, 300)}
	s, sender, rec := newTestScheduler(t, mock)

	digest := s.ScanNow()

	require.Len(t, sender.messages, 1)
	assert.Equal(t, digest, sender.messages[0])
	assert.Contains(t, digest, "2026-03-02 15:45")
	assert.Contains(t, digest, "RELIANCE:")
	assert.Contains(t, digest, "INFY:")

	recs, err := rec.Predictions("INFY", 5)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestScanReportsFailures(t *testing.T) {
	s, sender, _ := newTestScheduler(t, &collector.MockProvider{})

	s.ScanNow()

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "RELIANCE: INSUFFICIENT_DATA")
	assert.Contains(t, sender.messages[0], "INFY: INSUFFICIENT_DATA")
}

func TestHandleCommand(t *testing.T) {
	mock := &collector.MockProvider{
		History: collector.GenerateOHLCVTable(100, 0.5, 120),
		Prices:  map[string]float64{"TCS": 4000},
	}
	s, _, _ := newTestScheduler(t, mock)

	assert.Contains(t, s.HandleCommand("/predict tcs.ns 3mo"), "TCS (3mo)")
	assert.Contains(t, s.HandleCommand("/history TCS"), "TCS history")
	assert.Contains(t, s.HandleCommand("/quote TCS LT"), "TCS: ₹4000.00")
	assert.Contains(t, s.HandleCommand("/quote TCS LT"), "LT: unavailable")

	plan := s.HandleCommand("/plan low 20000 1000000 5")
	assert.Contains(t, plan, "LOW risk plan")
	assert.Contains(t, plan, "Live price unavailable")

	assert.Contains(t, s.HandleCommand("/plan extreme 1 1 1"), "unknown risk tier")
	assert.Contains(t, s.HandleCommand("/plan low abc 1 1"), "invalid monthly amount")
	assert.Contains(t, s.HandleCommand("/bogus"), "Available commands")
	assert.Contains(t, s.HandleCommand(""), "Available commands")
}

func TestRegister(t *testing.T) {
	s, _, _ := newTestScheduler(t, &collector.MockProvider{})
	assert.NoError(t, s.Register("0 45 15 * * 1-5"))
	assert.Error(t, s.Register("not a cron"))
}
