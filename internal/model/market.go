package model

import "time"

// RawSeriesShape is the column layout of a provider table, resolved once at ingestion.
type RawSeriesShape int

const (
	ShapeUnknown RawSeriesShape = iota
	ShapeTwoColumn
	ShapeFiveColumn
	ShapeSixColumn
)

func (s RawSeriesShape) String() string {
	switch s {
	case ShapeTwoColumn:
		return "date,close"
	case ShapeFiveColumn:
		return "date,open,high,low,close"
	case ShapeSixColumn:
		return "date,open,high,low,close,volume"
	default:
		return "unknown"
	}
}

// RawTable is the untyped tabular payload returned by a data provider.
// Cells are kept as text; a nil cell is represented by an empty string.
type RawTable struct {
	Rows [][]string
}

// Columns returns the widest row length, which is how the table's shape is judged.
func (t RawTable) Columns() int {
	n := 0
	for _, r := range t.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

// PricePoint is a single daily bar. Close is mandatory, the rest may be absent.
type PricePoint struct {
	Date   string
	Time   time.Time
	Open   Opt[float64]
	High   Opt[float64]
	Low    Opt[float64]
	Close  float64
	Volume Opt[float64]
}

// HasRange reports whether both high and low were supplied by the provider.
func (p PricePoint) HasRange() bool {
	return p.High.Present() && p.Low.Present()
}

// RangeOrClose returns high and low, proxied by close when absent.
func (p PricePoint) RangeOrClose() (high, low float64) {
	return p.High.Or(p.Close), p.Low.Or(p.Close)
}

// PriceSeries holds normalized, chronologically ordered price data.
type PriceSeries struct {
	Symbol string
	Shape  RawSeriesShape
	Points []PricePoint
}

// Closes returns the close column.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Len returns the number of points.
func (s PriceSeries) Len() int { return len(s.Points) }
