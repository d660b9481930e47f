package model

// IndicatorRow is a price point with its derived feature columns.
type IndicatorRow struct {
	PricePoint
	Volatility float64
	RSI        float64
	EMAFast    float64
	EMASlow    float64
}

// IndicatorFrame is a PriceSeries augmented with indicators. Every row has all
// columns resolved; warm-up rows without a value are not present.
type IndicatorFrame struct {
	Symbol string
	Rows   []IndicatorRow
}

// Len returns the number of rows.
func (f IndicatorFrame) Len() int { return len(f.Rows) }

// Last returns the most recent row. The frame must not be empty.
func (f IndicatorFrame) Last() IndicatorRow { return f.Rows[len(f.Rows)-1] }
