package collector

import (
	"context"
	"strconv"
	"time"

	"FinSentinel/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	History      model.RawTable
	HistoryErr   error
	Fundamentals *model.FundamentalSnapshot
	Prices       map[string]float64
	Funds        map[string][]FundCandidate

	// Windows records every window passed to FetchPriceHistory.
	Windows []string
	// Keywords records every fund search keyword.
	Keywords []string
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchPriceHistory(_ context.Context, _ string, window string) (model.RawTable, error) {
	m.Windows = append(m.Windows, window)
	if m.HistoryErr != nil {
		return model.RawTable{}, m.HistoryErr
	}
	return m.History, nil
}

func (m *MockProvider) FetchFundamentals(_ context.Context, _ string) (*model.FundamentalSnapshot, error) {
	return m.Fundamentals, nil
}

func (m *MockProvider) FetchLivePrice(_ context.Context, symbol string) (float64, error) {
	return m.Prices[symbol], nil
}

func (m *MockProvider) SearchFunds(_ context.Context, keyword string) ([]FundCandidate, error) {
	m.Keywords = append(m.Keywords, keyword)
	return m.Funds[keyword], nil
}

// GenerateCloseTable builds a two-column table of count daily closes starting at
// start and moving by step each day.
func GenerateCloseTable(start, step float64, count int) model.RawTable {
	rows := make([][]string, count)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		c := start + float64(i)*step
		rows[i] = []string{
			day.AddDate(0, 0, i).Format("2006-01-02"),
			strconv.FormatFloat(c, 'f', 4, 64),
		}
	}
	return model.RawTable{Rows: rows}
}

// GenerateOHLCVTable builds a six-column table around the same close path with a
// 1% high/low band.
func GenerateOHLCVTable(start, step float64, count int) model.RawTable {
	rows := make([][]string, count)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		c := start + float64(i)*step
		rows[i] = []string{
			day.AddDate(0, 0, i).Format("2006-01-02"),
			strconv.FormatFloat(c*0.999, 'f', 4, 64),
			strconv.FormatFloat(c*1.005, 'f', 4, 64),
			strconv.FormatFloat(c*0.995, 'f', 4, 64),
			strconv.FormatFloat(c, 'f', 4, 64),
			"1000000",
		}
	}
	return model.RawTable{Rows: rows}
}
