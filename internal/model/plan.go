package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RiskTier drives allocation splits and return assumptions.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// ParseRiskTier accepts low/medium/high and the conservative/moderate/aggressive aliases.
func ParseRiskTier(s string) (RiskTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "conservative":
		return RiskLow, nil
	case "medium", "moderate":
		return RiskMedium, nil
	case "high", "aggressive":
		return RiskHigh, nil
	}
	return "", fmt.Errorf("unknown risk tier %q", s)
}

// DepositLeg is the recurring-deposit part of a plan.
type DepositLeg struct {
	Bank     string
	Amount   decimal.Decimal
	Rate     float64
	Fallback bool // no table entry matched; Rate is the generic assumption
	Details  string
}

// FundLeg is the fund-SIP part of a plan.
type FundLeg struct {
	Name     string
	Category string
	Amount   decimal.Decimal
	NAV      float64
	Note     string
}

// EquityLeg is the direct-equity part of a plan.
type EquityLeg struct {
	Symbol   string
	Amount   decimal.Decimal
	Price    Opt[float64]
	Quantity Opt[int64]
	Note     string
}

// ProjectionStatus is the goal outcome.
type ProjectionStatus string

const (
	StatusAchievable ProjectionStatus = "ACHIEVABLE"
	StatusShortfall  ProjectionStatus = "SHORTFALL"
)

// Projection compares the compounded corpus against the goal.
type Projection struct {
	ProjectedCorpus float64
	TargetCorpus    float64
	Status          ProjectionStatus
	ShortfallAmount float64
	Message         string
}

// AllocationPlan is the per-request output of the allocation planner.
type AllocationPlan struct {
	Tier           RiskTier
	Monthly        decimal.Decimal
	HorizonYears   int
	ExpectedReturn float64
	Deposit        DepositLeg
	Fund           FundLeg
	Equity         EquityLeg
	Lifecycle      string
	Projection     Projection
}

// Total returns the sum of the three legs.
func (p *AllocationPlan) Total() decimal.Decimal {
	return p.Deposit.Amount.Add(p.Fund.Amount).Add(p.Equity.Amount)
}
