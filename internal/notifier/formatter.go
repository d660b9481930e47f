package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"FinSentinel/internal/model"
	"FinSentinel/internal/recorder"
)

var signalIcons = map[model.Signal]string{
	model.SignalStrongBuy:      "🟢",
	model.SignalBuy:            "🟢",
	model.SignalWeakBuy:        "🟡",
	model.SignalSell:           "🔴",
	model.SignalHoldOverbought: "⏸",
	model.SignalHoldOversold:   "⏸",
	model.SignalHold:           "⏸",
	model.SignalNeutral:        "⚪",
}

// FormatPrediction renders one prediction for a chat or terminal.
func FormatPrediction(p *model.Prediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s): %s\n", signalIcons[p.Signal], p.Symbol, p.Period, p.Signal)
	fmt.Fprintf(&b, "Price: ₹%.2f -> predicted ₹%.2f\n", p.CurrentPrice, p.PredictedClose)
	fmt.Fprintf(&b, "Target: ₹%.2f | Stop-loss: ₹%.2f\n", p.Target, p.StopLoss)
	fmt.Fprintf(&b, "RSI: %.2f | ATR: %.2f\n", p.RSI, p.ATR)
	fmt.Fprintf(&b, "Analysts: %s (%+.1f) | Technical: %s\n", p.AnalystSentiment, p.AnalystScore, p.Technical)
	fmt.Fprintf(&b, "Confidence: %s", p.Confidence)
	return b.String()
}

// FormatFailure renders a prediction that could not be made.
func FormatFailure(f *model.PredictFailure) string {
	return fmt.Sprintf("⚠️ %s: cannot predict (%s)\n%s", f.Symbol, f.Kind, f.Reason)
}

// FormatPlan renders an allocation plan.
func FormatPlan(p *model.AllocationPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s risk plan | ₹%s/month for %d years (expected %.1f%%)\n\n",
		p.Tier, p.Monthly.StringFixed(2), p.HorizonYears, p.ExpectedReturn)

	fmt.Fprintf(&b, "1. Recurring Deposit: %s\n   ₹%s/month | %s\n", p.Deposit.Bank, p.Deposit.Amount.StringFixed(2), p.Deposit.Details)

	fmt.Fprintf(&b, "2. Mutual Fund SIP: %s\n   ₹%s/month | Category: %s | NAV: ₹%.2f\n",
		p.Fund.Name, p.Fund.Amount.StringFixed(2), p.Fund.Category, p.Fund.NAV)
	if p.Fund.Note != "" {
		fmt.Fprintf(&b, "   %s\n", p.Fund.Note)
	}

	fmt.Fprintf(&b, "3. Direct Equity: %s (NSE)\n   ₹%s/month | %s\n\n", p.Equity.Symbol, p.Equity.Amount.StringFixed(2), p.Equity.Note)

	b.WriteString(p.Lifecycle)
	b.WriteString("\n\n")

	pr := p.Projection
	fmt.Fprintf(&b, "Projected corpus: ₹%.2f | Target: ₹%.2f | %s\n", pr.ProjectedCorpus, pr.TargetCorpus, pr.Status)
	b.WriteString(pr.Message)
	return b.String()
}

// FormatQuotes renders live prices sorted by symbol.
func FormatQuotes(prices map[string]float64) string {
	symbols := make([]string, 0, len(prices))
	for s := range prices {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var b strings.Builder
	for _, s := range symbols {
		if prices[s] > 0 {
			fmt.Fprintf(&b, "%s: ₹%.2f\n", s, prices[s])
		} else {
			fmt.Fprintf(&b, "%s: unavailable\n", s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDigest renders the scheduled watchlist scan.
func FormatDigest(at time.Time, preds []*model.Prediction, failures []*model.PredictFailure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 FinSentinel watchlist | %s\n", at.Format("2006-01-02 15:04"))
	for _, p := range preds {
		fmt.Fprintf(&b, "\n%s %s: %s @ ₹%.2f (target ₹%.2f, stop ₹%.2f, RSI %.1f)",
			signalIcons[p.Signal], p.Symbol, p.Signal, p.CurrentPrice, p.Target, p.StopLoss, p.RSI)
	}
	for _, f := range failures {
		fmt.Fprintf(&b, "\n⚠️ %s: %s", f.Symbol, f.Kind)
	}
	if len(preds) == 0 && len(failures) == 0 {
		b.WriteString("\nNo symbols scanned.")
	}
	return b.String()
}

// FormatHistory renders journaled predictions, newest first.
func FormatHistory(symbol string, recs []recorder.PredictionRecord) string {
	if len(recs) == 0 {
		return fmt.Sprintf("No journaled predictions for %s.", symbol)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🕑 %s history", symbol)
	for _, r := range recs {
		p := r.Prediction
		fmt.Fprintf(&b, "\n%s  %s  ₹%.2f -> ₹%.2f  %s",
			r.RecordedAt.Format("2006-01-02 15:04"), p.Period, p.CurrentPrice, p.PredictedClose, p.Signal)
	}
	return b.String()
}
