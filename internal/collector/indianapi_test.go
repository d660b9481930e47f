package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"FinSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *IndianAPIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewIndianAPIProvider(ProviderConfig{BaseURL: srv.URL, APIKey: "secret"})
}

func TestIndianAPI_FetchPriceHistory(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/historical_data", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "1yr", r.URL.Query().Get("period"))
		assert.Equal(t, "TCS", r.URL.Query().Get("stock_name"))
		_, _ = w.Write([]byte(`{"datasets":[{"metric":"Price","values":[["2024-01-01","3500.5"],["2024-01-02",3510.25],["2024-01-03",null]]}]}`))
	})

	table, err := p.FetchPriceHistory(context.Background(), "TCS", MaxWindow)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"2024-01-02", "3510.25"}, table.Rows[1])
	assert.Equal(t, "", table.Rows[2][1])
	assert.Equal(t, 2, table.Columns())
}

func TestIndianAPI_FetchPriceHistoryObjectRows(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"datasets":[{"metric":"Price","values":[` +
			`{"date":"2024-01-01","price":"3500.5"},` +
			`{"Date":"2024-01-02","Close":3510.25},` +
			`7,` +
			`{"date":"2024-01-03","price":null}]}]}`))
	})

	table, err := p.FetchPriceHistory(context.Background(), "TCS", MaxWindow)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"2024-01-01", "3500.5"}, table.Rows[0])
	assert.Equal(t, []string{"2024-01-02", "3510.25"}, table.Rows[1])
	assert.Equal(t, []string{"2024-01-03", ""}, table.Rows[2])

	series, err := Normalize("TCS", table)
	require.NoError(t, err)
	assert.Equal(t, model.ShapeTwoColumn, series.Shape)
	require.Len(t, series.Points, 2)
	assert.InDelta(t, 3510.25, series.Points[1].Close, 1e-9)
}

func TestIndianAPI_FetchPriceHistoryObjectRowsWithRange(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"datasets":[{"metric":"Price","values":[` +
			`{"date":"2024-01-01","open":10,"high":12,"low":9,"close":11,"volume":1500}]}]}`))
	})

	table, err := p.FetchPriceHistory(context.Background(), "TCS", MaxWindow)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"2024-01-01", "10", "12", "9", "11", "1500"}, table.Rows[0])
}

func TestIndianAPI_NoDatasetsIsEmptyTable(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"datasets":[]}`))
	})
	table, err := p.FetchPriceHistory(context.Background(), "TCS", MaxWindow)
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestIndianAPI_NonSuccessStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	_, err := p.FetchPriceHistory(context.Background(), "TCS", MaxWindow)
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}

func TestIndianAPI_FetchFundamentals(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock", r.URL.Path)
		_, _ = w.Write([]byte(`{"recosBar":{"buy":10,"strongBuy":4,"hold":3,"sell":2,"strongSell":1},"percentChange":"2.75"}`))
	})
	snap, err := p.FetchFundamentals(context.Background(), "TCS")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 10, snap.Buy.Or(0))
	assert.Equal(t, 4, snap.StrongBuy.Or(0))
	assert.Equal(t, 1, snap.StrongSell.Or(0))
	assert.InDelta(t, 2.75, snap.PercentChange.Or(0), 1e-9)
}

func TestParseFundamentals_ListForm(t *testing.T) {
	snap := parseFundamentals(map[string]any{
		"recosBar":      []any{"Buy", "Strong Buy", "Sell", "Hold"},
		"percentChange": "not-a-number",
	})
	assert.Equal(t, 2, snap.Buy.Or(0))
	assert.Equal(t, 1, snap.Sell.Or(0))
	assert.False(t, snap.PercentChange.Present())
}

func TestIndianAPI_FetchLivePrice(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{`{"currentPrice":2450.5}`, 2450.5},
		{`{"lastPrice":"101.25"}`, 101.25},
		{`{"currentPrice":{"NSE":2400,"BSE":2399}}`, 2400},
		{`{"currentPrice":{"BSE":"2399"}}`, 2399},
		{`{"companyName":"X"}`, 0},
	}
	for _, tt := range tests {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ITC.NS", r.URL.Query().Get("name"))
			_, _ = w.Write([]byte(tt.body))
		})
		got, err := p.FetchLivePrice(context.Background(), "ITC")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.body)
	}
}

func TestIndianAPI_SearchFunds(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mutual_fund", r.URL.Path)
		assert.Equal(t, "Flexi Cap", r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`{"datasets":[{"schemeName":"Parag Parikh Flexi Cap","nav":78.12},{"fundName":"No Nav Fund"},{"name":"Zero Nav","price":0}]}`))
	})
	funds, err := p.SearchFunds(context.Background(), "Flexi Cap")
	require.NoError(t, err)
	require.Len(t, funds, 3)
	assert.Equal(t, "Parag Parikh Flexi Cap", funds[0].Name)
	assert.InDelta(t, 78.12, funds[0].NAV.Or(0), 1e-9)
	assert.False(t, funds[1].NAV.Present())
	assert.False(t, funds[2].NAV.Present())
}
