package fund

import (
	"testing"

	"FinSentinel/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestProjectZeroRate(t *testing.T) {
	assert.Equal(t, 240000.0, Project(10000, 0, 2))
}

func TestProjectAnnuityDue(t *testing.T) {
	// One year at 12% compounds at 1% a month with deposits at the start of each month.
	want := 0.0
	for m := 0; m < 12; m++ {
		want = (want + 1000) * 1.01
	}
	assert.InDelta(t, want, Project(1000, 12, 1), 1e-6)
}

func TestProjectIncreasesWithRate(t *testing.T) {
	prev := Project(5000, 0, 10)
	for _, r := range []float64{0.5, 1, 4, 7.5, 10.5, 14, 20} {
		fv := Project(5000, r, 10)
		assert.Greater(t, fv, prev, "rate %.1f", r)
		prev = fv
	}
}

func TestAssess(t *testing.T) {
	t.Run("exact target is achievable", func(t *testing.T) {
		p := Assess(10000, 0, 2, 240000)
		assert.Equal(t, model.StatusAchievable, p.Status)
		assert.Equal(t, 0.0, p.ShortfallAmount)
		assert.Equal(t, msgOnTrack, p.Message)
	})
	t.Run("shortfall", func(t *testing.T) {
		p := Assess(10000, 0, 2, 250000)
		assert.Equal(t, model.StatusShortfall, p.Status)
		assert.Equal(t, 10000.0, p.ShortfallAmount)
		assert.Equal(t, "You might fall short by ₹10000. Consider increasing investment or extending time.", p.Message)
	})
}
