package ledger

import (
	"testing"
	"time"
)

func TestIntervalDays(t *testing.T) {
	policy := DefaultReviewPolicy()

	tests := []struct {
		reviewCount int
		want        int
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 7},
		{4, 14},
		{5, 30},
		{9, 30},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := policy.IntervalDays(tt.reviewCount); got != tt.want {
			t.Errorf("IntervalDays(%d) = %d, want %d", tt.reviewCount, got, tt.want)
		}
	}
}

func TestIntervalDaysEmptyPolicy(t *testing.T) {
	if got := (ReviewPolicy{}).IntervalDays(4); got != 0 {
		t.Errorf("IntervalDays on empty policy = %d, want 0", got)
	}
}

func TestNeedsReviewBoundary(t *testing.T) {
	policy := DefaultReviewPolicy()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	reviewed := now.Add(-3 * 24 * time.Hour)
	rec := MistakeRecord{ReviewCount: 2, LastReviewedAt: &reviewed}
	if !rec.NeedsReview(policy, now) {
		t.Error("record exactly at interval should be due")
	}

	recent := now.Add(-2 * 24 * time.Hour)
	rec.LastReviewedAt = &recent
	if rec.NeedsReview(policy, now) {
		t.Error("record inside interval should not be due")
	}
}
