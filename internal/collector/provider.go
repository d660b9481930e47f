package collector

import (
	"context"

	"FinSentinel/internal/model"
)

// MaxWindow is the history window always requested from the provider so that
// indicators have warm-up rows regardless of the period the caller asked for.
const MaxWindow = "1yr"

// FundCandidate is one entry returned by a fund search.
type FundCandidate struct {
	Name string
	NAV  model.Opt[float64]
}

// Provider is the data collaborator. Implementations must not retry; the caller owns retry policy.
type Provider interface {
	// FetchPriceHistory returns raw rows for the window. Failures wrap model.ErrProviderUnavailable.
	FetchPriceHistory(ctx context.Context, symbol, window string) (model.RawTable, error)
	// FetchFundamentals returns nil, nil when the provider has nothing for the symbol.
	FetchFundamentals(ctx context.Context, symbol string) (*model.FundamentalSnapshot, error)
	// FetchLivePrice returns 0 when no price is quoted.
	FetchLivePrice(ctx context.Context, symbol string) (float64, error)
	SearchFunds(ctx context.Context, keyword string) ([]FundCandidate, error)
	Name() string
}
