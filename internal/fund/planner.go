package fund

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TierProfile is the fixed allocation recipe for one risk tier.
type TierProfile struct {
	Tier           model.RiskTier
	DepositShare   decimal.Decimal
	ExpectedReturn float64
	Category       string
	FundKeywords   []string
	StockPicks     []string
}

// Tiers holds the allocation recipe per risk tier.
var Tiers = []TierProfile{
	{
		Tier:           model.RiskLow,
		DepositShare:   decimal.RequireFromString("0.70"),
		ExpectedReturn: 7.5,
		Category:       "Low Risk / Debt Scheme",
		FundKeywords:   []string{"Liquid", "Conservative Hybrid", "Corporate Bond"},
		StockPicks:     []string{"ITC", "HUL", "SBIN"},
	},
	{
		Tier:           model.RiskMedium,
		DepositShare:   decimal.RequireFromString("0.40"),
		ExpectedReturn: 10.5,
		Category:       "Moderate Risk / Equity",
		FundKeywords:   []string{"Nifty 50 Index", "Flexi Cap", "Large & Mid Cap"},
		StockPicks:     []string{"RELIANCE", "INFY", "TCS", "LT"},
	},
	{
		Tier:           model.RiskHigh,
		DepositShare:   decimal.RequireFromString("0.20"),
		ExpectedReturn: 14.0,
		Category:       "High Risk / Aggressive Equity",
		FundKeywords:   []string{"Small Cap", "Mid Cap", "Momentum"},
		StockPicks:     []string{"ZOMATO", "ADANIENT", "TATASTEEL", "DLF"},
	},
}

// FundShare is the part of the equity allocation that goes to the fund SIP;
// the rest buys the direct-equity pick.
var FundShare = decimal.RequireFromString("0.60")

const (
	// GraceMonths widens the deposit tenor filter beyond the horizon.
	GraceMonths = 12
	// FallbackDepositRate is assumed when no recurring deposit matches.
	FallbackDepositRate = 6.0
	// FallbackDepositBank names the generic deposit.
	FallbackDepositBank = "Any Nationalized Bank RD"
	// LifecycleLumpSum is the reference amount used to look up the reinvestment FD.
	LifecycleLumpSum = 50000.0
	// LifecycleYears is the reference horizon of the reinvestment FD.
	LifecycleYears = 1
	// FallbackFDRate is assumed when no fixed deposit matches.
	FallbackFDRate = 7.0
	// FallbackFDBank names the generic reinvestment bank.
	FallbackFDBank = "a top bank"
	// NoNAV is the NAV reported for a placeholder fund.
	NoNAV = 0.0
	// NAVUnavailableNote flags a placeholder fund.
	NAVUnavailableNote = "Live NAV unavailable"
)

var (
	errNonPositiveMonthly = errors.New("monthly contribution must be positive")
	errNonPositiveHorizon = errors.New("horizon must be at least one year")
)

// Profile returns the recipe for a tier.
func Profile(tier model.RiskTier) (TierProfile, bool) {
	for _, p := range Tiers {
		if p.Tier == tier {
			return p, true
		}
	}
	return TierProfile{}, false
}

// Planner builds allocation plans.
type Planner struct {
	Provider collector.Provider
	Rates    RateTable
	Select   Selector
}

// NewPlanner creates a Planner that picks funds and stocks at random.
func NewPlanner(p collector.Provider, rates RateTable) *Planner {
	return &Planner{Provider: p, Rates: rates, Select: RandomSelector{}}
}

// Plan splits a monthly contribution across a recurring deposit, a fund SIP and
// one stock, and projects the corpus against target. Lookups that fail degrade
// to labeled fallbacks; only invalid input is an error.
func (p *Planner) Plan(ctx context.Context, tier model.RiskTier, monthly, target decimal.Decimal, years int) (*model.AllocationPlan, error) {
	profile, ok := Profile(tier)
	if !ok {
		return nil, fmt.Errorf("unknown risk tier %q", tier)
	}
	if !monthly.IsPositive() {
		return nil, errNonPositiveMonthly
	}
	if years < 1 {
		return nil, errNonPositiveHorizon
	}
	log := logrus.WithField("tier", tier)

	depositAmt := monthly.Mul(profile.DepositShare).Round(2)
	equityAmt := monthly.Sub(depositAmt)
	fundAmt := equityAmt.Mul(FundShare).Round(2)
	stockAmt := equityAmt.Sub(fundAmt)

	plan := &model.AllocationPlan{
		Tier:           tier,
		Monthly:        monthly,
		HorizonYears:   years,
		ExpectedReturn: profile.ExpectedReturn,
		Deposit:        p.depositLeg(depositAmt, years),
		Fund:           p.fundLeg(ctx, profile, fundAmt),
		Equity:         p.equityLeg(ctx, profile, stockAmt),
	}
	plan.Lifecycle = p.lifecycle(years)
	plan.Projection = Assess(monthly.InexactFloat64(), profile.ExpectedReturn, years, target.InexactFloat64())

	log.WithFields(logrus.Fields{
		"monthly": monthly.StringFixed(2),
		"status":  plan.Projection.Status,
		"stock":   plan.Equity.Symbol,
	}).Info("allocation plan ready")
	return plan, nil
}

func (p *Planner) bestRate(kind string, amount float64, years int) (Rate, bool) {
	if p.Rates == nil {
		return Rate{}, false
	}
	return p.Rates.BestRate(kind, amount, years*12+GraceMonths)
}

func (p *Planner) depositLeg(amount decimal.Decimal, years int) model.DepositLeg {
	if r, ok := p.bestRate(KindRD, amount.InexactFloat64(), years); ok {
		return model.DepositLeg{
			Bank:    r.Bank + " RD Scheme",
			Amount:  amount,
			Rate:    r.InterestRate,
			Details: fmt.Sprintf("Interest Rate: %.2f%% | Tenure: Matches your goal", r.InterestRate),
		}
	}
	logrus.WithField("amount", amount.StringFixed(2)).Warnf("no recurring deposit matched, assuming %.1f%%", FallbackDepositRate)
	return model.DepositLeg{
		Bank:     FallbackDepositBank,
		Amount:   amount,
		Rate:     FallbackDepositRate,
		Fallback: true,
		Details:  "Start a standard monthly RD for capital protection.",
	}
}

func (p *Planner) fundLeg(ctx context.Context, profile TierProfile, amount decimal.Decimal) model.FundLeg {
	keyword := profile.FundKeywords[p.Select.Pick(len(profile.FundKeywords))]
	leg := model.FundLeg{Category: profile.Category, Amount: amount}

	candidates, err := p.Provider.SearchFunds(ctx, keyword)
	if err != nil {
		logrus.WithField("keyword", keyword).Warnf("fund search failed: %v", err)
	}
	var valid []collector.FundCandidate
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) != "" && c.NAV.Or(NoNAV) > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		leg.Name = fmt.Sprintf("HDFC %s Fund (Growth)", keyword)
		leg.NAV = NoNAV
		leg.Note = NAVUnavailableNote
		return leg
	}
	chosen := valid[p.Select.Pick(len(valid))]
	leg.Name = chosen.Name
	leg.NAV = chosen.NAV.Or(NoNAV)
	return leg
}

func (p *Planner) equityLeg(ctx context.Context, profile TierProfile, amount decimal.Decimal) model.EquityLeg {
	symbol := profile.StockPicks[p.Select.Pick(len(profile.StockPicks))]
	leg := model.EquityLeg{Symbol: symbol, Amount: amount}

	price, err := p.Provider.FetchLivePrice(ctx, symbol)
	if err != nil {
		logrus.WithField("symbol", symbol).Warnf("live price failed: %v", err)
		price = 0
	}
	if price <= 0 {
		leg.Note = "Live price unavailable. Invest for long term."
		return leg
	}

	leg.Price = model.Some(price)
	qty := amount.Div(decimal.NewFromFloat(price)).Floor().IntPart()
	if qty < 1 {
		leg.Note = fmt.Sprintf("Price (₹%.2f) is high. Accumulate cash or buy NIFTYBEES.", price)
		return leg
	}
	leg.Quantity = model.Some(qty)
	leg.Note = fmt.Sprintf("Buy ~%d shares monthly @ approx ₹%.2f", qty, price)
	return leg
}

func (p *Planner) lifecycle(years int) string {
	bank, rate := FallbackFDBank, FallbackFDRate
	if r, ok := p.bestRate(KindFD, LifecycleLumpSum, LifecycleYears); ok {
		bank, rate = r.Bank, r.InterestRate
	}
	return fmt.Sprintf("Step 1: Run the RD and SIPs strictly for the next %d years.\n"+
		"Step 2: When your RD matures (typically every 12-24 months), do not spend the maturity amount. "+
		"Reinvest the lump sum into a Fixed Deposit at %s (target rate ~%.2f%%) for the remaining duration of your goal.\n"+
		"Step 3: Review your mutual fund performance every 6 months.", years, bank, rate)
}
