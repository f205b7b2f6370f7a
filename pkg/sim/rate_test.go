package sim

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDistributeRateConservesTotalOverPeriod(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.IntRange(0, 1000).Draw(t, "rate")
		period := rapid.IntRange(1, 50).Draw(t, "period")
		startTick := rapid.IntRange(0, 500).Draw(t, "startTick")

		total := 0
		for i := 0; i < period; i++ {
			total += distributeRate(rate, period, startTick+i)
		}
		if total != rate {
			t.Fatalf("sum over one full period = %d, want %d (rate=%d period=%d)", total, rate, rate, period)
		}
	})
}

func TestDistributeRateNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.IntRange(0, 1000).Draw(t, "rate")
		period := rapid.IntRange(1, 50).Draw(t, "period")
		tick := rapid.IntRange(0, 10000).Draw(t, "tick")
		if got := distributeRate(rate, period, tick); got < 0 {
			t.Fatalf("distributeRate(%d,%d,%d) = %d, want >= 0", rate, period, tick, got)
		}
	})
}
