package model

// Sentiment is the analyst-consensus label.
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentBearish Sentiment = "BEARISH"
	SentimentNeutral Sentiment = "NEUTRAL"
)

// FundamentalSnapshot carries analyst recommendation counts and daily momentum.
// Any field may be absent and absence is not an error.
type FundamentalSnapshot struct {
	StrongBuy     Opt[int]
	Buy           Opt[int]
	Hold          Opt[int]
	Sell          Opt[int]
	StrongSell    Opt[int]
	PercentChange Opt[float64]
}
