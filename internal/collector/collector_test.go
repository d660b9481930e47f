package collector

import (
	"context"
	"errors"
	"testing"

	"FinSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_AlwaysFetchesMaxWindow(t *testing.T) {
	mp := &MockProvider{History: GenerateCloseTable(100, 1, 300)}
	col := NewCollector(mp)

	s, err := col.Collect(context.Background(), "reliance.ns", "1mo")
	require.NoError(t, err)
	assert.Equal(t, []string{MaxWindow}, mp.Windows)
	assert.Equal(t, "RELIANCE", s.Symbol)
	assert.Equal(t, 22, s.Len())
}

func TestCollect_ProviderErrorIsUnavailable(t *testing.T) {
	mp := &MockProvider{HistoryErr: errors.New("connection reset")}
	_, err := NewCollector(mp).Collect(context.Background(), "TCS", "1yr")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}

func TestCollect_EmptyResponseIsInsufficientData(t *testing.T) {
	mp := &MockProvider{}
	_, err := NewCollector(mp).Collect(context.Background(), "TCS", "1yr")
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestCollect_TooFewRowsAfterTrim(t *testing.T) {
	mp := &MockProvider{History: GenerateCloseTable(100, 1, 4)}
	_, err := NewCollector(mp).Collect(context.Background(), "TCS", "7d")
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	mp.History = GenerateCloseTable(100, 1, 5)
	s, err := NewCollector(mp).Collect(context.Background(), "TCS", "7d")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())
}

func TestCleanSymbol(t *testing.T) {
	assert.Equal(t, "INFY", CleanSymbol(" infy.ns "))
	assert.Equal(t, "SBIN", CleanSymbol("SBIN.BO"))
	assert.Equal(t, "LT", CleanSymbol("LT"))
}

func TestQuotes_MissingPriceIsZero(t *testing.T) {
	mp := &MockProvider{Prices: map[string]float64{"TCS": 3500.5}}
	got := Quotes(context.Background(), mp, []string{"tcs", "INFY"})
	assert.Equal(t, map[string]float64{"TCS": 3500.5, "INFY": 0}, got)
}
