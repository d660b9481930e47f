package fundamental

import "FinSentinel/internal/model"

const (
	// NeutralScore is the score when nothing usable is known about the company.
	NeutralScore = 0.0
	// ConsensusWeight is added or removed on a clear analyst majority.
	ConsensusWeight = 1.0
	// ConsensusRatio is how many times one side must outnumber the other.
	ConsensusRatio = 2
	// MomentumWeight is added or removed on a strong daily move.
	MomentumWeight = 0.5
	// MomentumThreshold is the daily percent change that counts as strong.
	MomentumThreshold = 2.0
	// MissingCount stands in for an absent recommendation count.
	MissingCount = 0
)

// Score turns an analyst snapshot into a score and a sentiment label.
// A nil snapshot scores neutral. Score never fails.
func Score(snap *model.FundamentalSnapshot) (float64, model.Sentiment) {
	score, sentiment := NeutralScore, model.SentimentNeutral
	if snap == nil {
		return score, sentiment
	}

	buy := snap.Buy.Or(MissingCount) + snap.StrongBuy.Or(MissingCount)
	sell := snap.Sell.Or(MissingCount) + snap.StrongSell.Or(MissingCount)
	switch {
	case buy > sell*ConsensusRatio:
		score += ConsensusWeight
		sentiment = model.SentimentBullish
	case sell > buy*ConsensusRatio:
		score -= ConsensusWeight
		sentiment = model.SentimentBearish
	}

	if pct, ok := snap.PercentChange.Get(); ok {
		switch {
		case pct > MomentumThreshold:
			score += MomentumWeight
		case pct < -MomentumThreshold:
			score -= MomentumWeight
		}
	}
	return score, sentiment
}
