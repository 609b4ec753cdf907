package booking

import (
	"fmt"
	"time"
)

// FeeTier applies when the visit is at least MinDays away. The tier with the
// smallest MinDays also covers visits that are already in the past.
type FeeTier struct {
	MinDays            int   `json:"minDays"`
	CancellationCharge int64 `json:"cancellationCharge"`
	ModificationCharge int64 `json:"modificationCharge"`
}

// FeeSchedule is ordered by MinDays, largest first.
type FeeSchedule struct {
	Tiers []FeeTier `json:"tiers"`
}

var DefaultFeeSchedule = FeeSchedule{
	Tiers: []FeeTier{
		{MinDays: 14, CancellationCharge: 0, ModificationCharge: 0},
		{MinDays: 7, CancellationCharge: 25, ModificationCharge: 15},
		{MinDays: 0, CancellationCharge: 50, ModificationCharge: 30},
	},
}

func (s FeeSchedule) tierFor(daysUntilVisit int) FeeTier {
	for _, t := range s.Tiers {
		if daysUntilVisit >= t.MinDays {
			return t
		}
	}
	if len(s.Tiers) == 0 {
		return FeeTier{}
	}
	return s.Tiers[len(s.Tiers)-1]
}

func (s FeeSchedule) CancellationFee(daysUntilVisit int) int64 {
	return s.tierFor(daysUntilVisit).CancellationCharge
}

func (s FeeSchedule) ModificationFee(daysUntilVisit int) int64 {
	return s.tierFor(daysUntilVisit).ModificationCharge
}

// DaysUntilVisit rounds the remaining time up to whole days, so a visit
// 6 days and 1 hour away counts as 7 days.
func DaysUntilVisit(visit, now time.Time) int {
	const day = 24 * time.Hour
	d := visit.Sub(now)
	days := d / day
	if d%day > 0 {
		days++
	}
	return int(days)
}

func CancellationMessage(charge int64) string {
	if charge > 0 {
		return fmt.Sprintf("A cancellation fee of $%d will be charged.", charge)
	}
	return "Free cancellation - no charges applied."
}

func ModificationMessage(charge int64) string {
	if charge > 0 {
		return fmt.Sprintf("A modification fee of $%d will be charged.", charge)
	}
	return "Free modification - no charges applied."
}
