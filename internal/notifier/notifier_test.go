package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"FinSentinel/internal/model"
	"FinSentinel/internal/recorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrediction(t *testing.T) {
	out := FormatPrediction(&model.Prediction{
		Symbol: "INFY", Period: "1mo", CurrentPrice: 1500, PredictedClose: 1512.34,
		Target: 1530.5, StopLoss: 1455, RSI: 61.2, ATR: 18, AnalystScore: 1.5,
		AnalystSentiment: model.SentimentBullish, Technical: model.SignalBuy,
		Signal: model.SignalStrongBuy, Confidence: model.ConfidenceHigh,
	})
	assert.Contains(t, out, "INFY (1mo): STRONG_BUY")
	assert.Contains(t, out, "predicted ₹1512.34")
	assert.Contains(t, out, "Stop-loss: ₹1455.00")
	assert.Contains(t, out, "BULLISH (+1.5)")
	assert.Contains(t, out, model.ConfidenceHigh)
}

func TestFormatPlan(t *testing.T) {
	out := FormatPlan(&model.AllocationPlan{
		Tier: model.RiskLow, Monthly: decimal.NewFromInt(20000), HorizonYears: 5, ExpectedReturn: 7.5,
		Deposit:    model.DepositLeg{Bank: "SBI RD Scheme", Amount: decimal.NewFromInt(14000), Details: "Interest Rate: 7.00%"},
		Fund:       model.FundLeg{Name: "HDFC Liquid Fund (Growth)", Amount: decimal.NewFromInt(3600), Note: "Live NAV unavailable"},
		Equity:     model.EquityLeg{Symbol: "ITC", Amount: decimal.NewFromInt(2400), Note: "Live price unavailable. Invest for long term."},
		Lifecycle:  "Step 1: Run the RD",
		Projection: model.Projection{ProjectedCorpus: 1459600.12, TargetCorpus: 1000000, Status: model.StatusAchievable, Message: "You are on track to hit your goal!"},
	})
	assert.Contains(t, out, "₹20000.00/month for 5 years")
	assert.Contains(t, out, "₹14000.00/month")
	assert.Contains(t, out, "Live NAV unavailable")
	assert.Contains(t, out, "ITC (NSE)")
	assert.Contains(t, out, "ACHIEVABLE")
	assert.Contains(t, out, "on track")
}

func TestFormatQuotesAndDigest(t *testing.T) {
	assert.Equal(t, "INFY: ₹1500.00\nTCS: unavailable", FormatQuotes(map[string]float64{"TCS": 0, "INFY": 1500}))

	at := time.Date(2026, 3, 2, 15, 45, 0, 0, time.UTC)
	out := FormatDigest(at,
		[]*model.Prediction{{Symbol: "LT", Signal: model.SignalSell, CurrentPrice: 3500}},
		[]*model.PredictFailure{{Symbol: "XYZ", Kind: "INSUFFICIENT_DATA"}})
	assert.Contains(t, out, "2026-03-02 15:45")
	assert.Contains(t, out, "LT: SELL")
	assert.Contains(t, out, "XYZ: INSUFFICIENT_DATA")

	assert.Contains(t, FormatDigest(at, nil, nil), "No symbols scanned.")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No journaled predictions for TCS.", FormatHistory("TCS", nil))

	out := FormatHistory("TCS", []recorder.PredictionRecord{{
		RecordedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local),
		Prediction: model.Prediction{Period: "1yr", CurrentPrice: 4000, PredictedClose: 4010, Signal: model.SignalBuy},
	}})
	assert.Contains(t, out, "2026-01-05 10:00  1yr  ₹4000.00 -> ₹4010.00  BUY")
}

func TestSendWithRetry(t *testing.T) {
	RetryBackoff = time.Millisecond
	defer func() { RetryBackoff = time.Second }()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "42", payload["chat_id"])
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.APIBase = srv.URL

	require.NoError(t, tn.SendWithRetry(context.Background(), "hello", 3))
	assert.Equal(t, int32(3), calls.Load())

	calls.Store(-100)
	err := tn.SendWithRetry(context.Background(), "hello", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 attempts failed")
}

func TestStartPolling(t *testing.T) {
	var sent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/botTOKEN/getUpdates":
			if r.URL.Query().Get("offset") == "0" {
				w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"text":" /quote TCS "}}]}`))
				return
			}
			<-r.Context().Done()
		case "/botTOKEN/sendMessage":
			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			sent.Store(payload["text"])
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.APIBase = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tn.StartPolling(ctx, func(cmd string) string { return "reply to " + cmd })
		close(done)
	}()

	require.Eventually(t, func() bool { return sent.Load() != nil }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "reply to /quote TCS", sent.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("polling did not stop")
	}
}
