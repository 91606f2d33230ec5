package ledger

// ReviewPolicy is the spaced-repetition schedule: how many days must
// elapse after the Nth review before the record is due again, and how
// many correct reviews it takes to master a record. The expanding
// intervals mean each successful pass roughly doubles-to-triples the
// next wait.
type ReviewPolicy struct {
	// IntervalsDays is indexed by review count. A count at or past the
	// end uses the last interval.
	IntervalsDays []int

	// MasteryThreshold is the review count at which a correct answer
	// masters the record.
	MasteryThreshold int
}

// DefaultReviewPolicy returns the standard schedule:
// review count 0 → always due, 1 → 1 day, 2 → 3, 3 → 7, 4 → 14, 5+ → 30.
func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{
		IntervalsDays:    []int{0, 1, 3, 7, 14, 30},
		MasteryThreshold: 3,
	}
}

// IntervalDays returns the wait in days for the given review count.
func (p ReviewPolicy) IntervalDays(reviewCount int) int {
	if len(p.IntervalsDays) == 0 {
		return 0
	}
	if reviewCount < 0 {
		reviewCount = 0
	}
	if reviewCount >= len(p.IntervalsDays) {
		return p.IntervalsDays[len(p.IntervalsDays)-1]
	}
	return p.IntervalsDays[reviewCount]
}
