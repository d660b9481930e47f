package fund

import (
	"fmt"
	"math"

	"FinSentinel/internal/model"
)

const (
	msgOnTrack   = "You are on track to hit your goal!"
	msgShortfall = "You might fall short by ₹%.0f. Consider increasing investment or extending time."
)

// Project returns the future value of monthly contributions made at the start
// of each month for years, compounded monthly at ratePct per annum.
func Project(monthly, ratePct float64, years int) float64 {
	n := float64(12 * years)
	i := ratePct / 1200
	if i == 0 {
		return monthly * n
	}
	return monthly * ((math.Pow(1+i, n) - 1) / i) * (1 + i)
}

// Assess projects the corpus and compares it with target.
func Assess(monthly, ratePct float64, years int, target float64) model.Projection {
	fv := Project(monthly, ratePct, years)
	shortfall := target - fv

	p := model.Projection{
		ProjectedCorpus: model.Round2(fv),
		TargetCorpus:    target,
		Status:          model.StatusAchievable,
		Message:         msgOnTrack,
	}
	if shortfall > 0 {
		p.Status = model.StatusShortfall
		p.ShortfallAmount = model.Round2(shortfall)
		p.Message = fmt.Sprintf(msgShortfall, math.RoundToEven(shortfall))
	}
	return p
}
