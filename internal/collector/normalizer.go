package collector

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"FinSentinel/internal/model"
)

// MinSeriesRows is the smallest trimmed series a prediction may run on.
const MinSeriesRows = 5

// DefaultPeriodRows is used for unrecognized period labels.
const DefaultPeriodRows = 252

var periodRows = map[string]int{
	"7d":  7,
	"1mo": 22,
	"3mo": 66,
	"6mo": 132,
	"1yr": 252,
}

// PeriodRows maps a lookback label to a trading-day count.
func PeriodRows(period string) int {
	if n, ok := periodRows[strings.ToLower(strings.TrimSpace(period))]; ok {
		return n
	}
	return DefaultPeriodRows
}

// columnLayout holds the cell index of each field; -1 means the shape has no such column.
type columnLayout struct {
	date, open, high, low, close, volume int
}

var layouts = map[model.RawSeriesShape]columnLayout{
	// Two-column rows keep high/low absent rather than copying close into them:
	// a zero-width range would give zero volatility, and the calculator's
	// 1%-of-close fallback only applies when the range is missing.
	model.ShapeTwoColumn:  {date: 0, open: -1, high: -1, low: -1, close: 1, volume: -1},
	model.ShapeFiveColumn: {date: 0, open: 1, high: 2, low: 3, close: 4, volume: -1},
	model.ShapeSixColumn:  {date: 0, open: 1, high: 2, low: 3, close: 4, volume: 5},
}

// ResolveShape maps a column count to a known layout. Tables wider than six
// columns use the first six.
func ResolveShape(columns int) (model.RawSeriesShape, error) {
	switch {
	case columns >= 6:
		return model.ShapeSixColumn, nil
	case columns == 5:
		return model.ShapeFiveColumn, nil
	case columns == 2:
		return model.ShapeTwoColumn, nil
	}
	return model.ShapeUnknown, fmt.Errorf("%w: %d columns", model.ErrSchemaMismatch, columns)
}

// Normalize converts a raw provider table into a PriceSeries. Rows with an
// unparseable close/high/low are dropped; duplicate dates keep the last row.
func Normalize(symbol string, table model.RawTable) (model.PriceSeries, error) {
	if len(table.Rows) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: provider returned no rows for %s", model.ErrInsufficientData, symbol)
	}
	shape, err := ResolveShape(table.Columns())
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("normalize %s: %w", symbol, err)
	}
	layout := layouts[shape]

	points := make([]model.PricePoint, 0, len(table.Rows))
	index := make(map[string]int, len(table.Rows))
	for _, row := range table.Rows {
		p, ok := parseRow(row, layout)
		if !ok {
			continue
		}
		if i, dup := index[p.Date]; dup {
			points[i] = p
			continue
		}
		index[p.Date] = len(points)
		points = append(points, p)
	}
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("%w: no parseable rows for %s", model.ErrInsufficientData, symbol)
	}

	if allDated(points) {
		sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	}
	return model.PriceSeries{Symbol: symbol, Shape: shape, Points: points}, nil
}

// Trim keeps the trailing rows for period.
func Trim(series model.PriceSeries, period string) model.PriceSeries {
	n := PeriodRows(period)
	if len(series.Points) > n {
		series.Points = series.Points[len(series.Points)-n:]
	}
	return series
}

func parseRow(row []string, l columnLayout) (model.PricePoint, bool) {
	date := strings.TrimSpace(cell(row, l.date))
	if date == "" {
		return model.PricePoint{}, false
	}
	closeV, ok := parseNumber(cell(row, l.close))
	if !ok {
		return model.PricePoint{}, false
	}
	p := model.PricePoint{Date: date, Close: closeV}
	if t, ok := parseDate(date); ok {
		p.Time = t
	}
	if l.high >= 0 {
		h, okH := parseNumber(cell(row, l.high))
		lo, okL := parseNumber(cell(row, l.low))
		if !okH || !okL {
			return model.PricePoint{}, false
		}
		p.High = model.Some(h)
		p.Low = model.Some(lo)
	}
	if l.open >= 0 {
		if v, ok := parseNumber(cell(row, l.open)); ok {
			p.Open = model.Some(v)
		}
	}
	if l.volume >= 0 {
		if v, ok := parseNumber(cell(row, l.volume)); ok {
			p.Volume = model.Some(v)
		}
	}
	return p, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func allDated(points []model.PricePoint) bool {
	for _, p := range points {
		if p.Time.IsZero() {
			return false
		}
	}
	return true
}
