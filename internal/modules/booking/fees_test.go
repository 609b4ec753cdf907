package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeBoundaries(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	in := func(days int) int { return DaysUntilVisit(now.AddDate(0, 0, days), now) }

	assert.Equal(t, int64(0), DefaultFeeSchedule.CancellationFee(in(20)))
	assert.Equal(t, int64(25), DefaultFeeSchedule.CancellationFee(in(10)))
	assert.Equal(t, int64(50), DefaultFeeSchedule.CancellationFee(in(3)))
	assert.Equal(t, int64(15), DefaultFeeSchedule.ModificationFee(in(10)))
	assert.Equal(t, int64(30), DefaultFeeSchedule.ModificationFee(in(3)))

	// tier edges
	assert.Equal(t, int64(0), DefaultFeeSchedule.CancellationFee(14))
	assert.Equal(t, int64(25), DefaultFeeSchedule.CancellationFee(13))
	assert.Equal(t, int64(25), DefaultFeeSchedule.CancellationFee(7))
	assert.Equal(t, int64(50), DefaultFeeSchedule.CancellationFee(6))
	assert.Equal(t, int64(0), DefaultFeeSchedule.ModificationFee(14))
	assert.Equal(t, int64(15), DefaultFeeSchedule.ModificationFee(7))
	assert.Equal(t, int64(30), DefaultFeeSchedule.ModificationFee(6))

	// visits already past fall into the closest tier
	assert.Equal(t, int64(50), DefaultFeeSchedule.CancellationFee(-3))
	assert.Equal(t, int64(30), DefaultFeeSchedule.ModificationFee(-3))
}

func TestDaysUntilVisit_RoundsUp(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysUntilVisit(now.Add(6*24*time.Hour+time.Hour), now))
	assert.Equal(t, 6, DaysUntilVisit(now.Add(6*24*time.Hour), now))
	assert.Equal(t, 1, DaysUntilVisit(now.Add(time.Minute), now))
	assert.Equal(t, 0, DaysUntilVisit(now, now))
	assert.Equal(t, -1, DaysUntilVisit(now.Add(-36*time.Hour), now))
}

func TestFeeMessages(t *testing.T) {
	assert.Equal(t, "A cancellation fee of $50 will be charged.", CancellationMessage(50))
	assert.Equal(t, "Free cancellation - no charges applied.", CancellationMessage(0))
	assert.Equal(t, "A modification fee of $15 will be charged.", ModificationMessage(15))
	assert.Equal(t, "Free modification - no charges applied.", ModificationMessage(0))
}

func TestFeeSchedule_EmptyChargesNothing(t *testing.T) {
	var s FeeSchedule
	assert.Zero(t, s.CancellationFee(1))
	assert.Zero(t, s.ModificationFee(1))
}
