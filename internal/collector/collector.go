package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"FinSentinel/internal/model"

	"github.com/sirupsen/logrus"
)

// Collector fetches price history and turns it into a trimmed PriceSeries.
type Collector struct {
	Provider Provider
}

// NewCollector creates a new Collector.
func NewCollector(p Provider) *Collector {
	return &Collector{Provider: p}
}

// CleanSymbol upper-cases a symbol and strips exchange suffixes.
func CleanSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.TrimSuffix(s, ".NS")
	return strings.TrimSuffix(s, ".BO")
}

// Collect fetches the maximum window, normalizes it and trims it to period.
func (c *Collector) Collect(ctx context.Context, symbol, period string) (model.PriceSeries, error) {
	clean := CleanSymbol(symbol)
	table, err := c.Provider.FetchPriceHistory(ctx, clean, MaxWindow)
	if err != nil {
		if !errors.Is(err, model.ErrProviderUnavailable) {
			err = fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
		}
		return model.PriceSeries{}, fmt.Errorf("fetch price history for %s: %w", clean, err)
	}

	series, err := Normalize(clean, table)
	if err != nil {
		return model.PriceSeries{}, err
	}
	series = Trim(series, period)
	if series.Len() < MinSeriesRows {
		return model.PriceSeries{}, fmt.Errorf("%w: %d rows for %s over %s, need %d",
			model.ErrInsufficientData, series.Len(), clean, period, MinSeriesRows)
	}

	logrus.WithFields(logrus.Fields{
		"symbol": clean,
		"period": period,
		"shape":  series.Shape.String(),
		"rows":   series.Len(),
	}).Debug("price series collected")
	return series, nil
}

// Fundamentals fetches the snapshot, degrading to nil on any failure.
func (c *Collector) Fundamentals(ctx context.Context, symbol string) *model.FundamentalSnapshot {
	clean := CleanSymbol(symbol)
	snap, err := c.Provider.FetchFundamentals(ctx, clean)
	if err != nil {
		logrus.WithField("symbol", clean).Warnf("fundamentals unavailable, scoring neutral: %v", err)
		return nil
	}
	return snap
}

// Quotes returns the live price per symbol; a symbol without a quote maps to 0.
func Quotes(ctx context.Context, p Provider, symbols []string) map[string]float64 {
	prices := make(map[string]float64, len(symbols))
	for _, s := range symbols {
		clean := CleanSymbol(s)
		price, err := p.FetchLivePrice(ctx, clean)
		if err != nil {
			logrus.WithField("symbol", clean).Warnf("live price unavailable: %v", err)
			price = 0
		}
		prices[clean] = price
	}
	return prices
}
