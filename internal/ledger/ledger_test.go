package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/nehal/linguo/internal/store"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// testClock is a settable time source.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLedger(t *testing.T) (*Ledger, *store.MemoryKV, *testClock) {
	t.Helper()
	kv := store.NewMemoryKV()
	clock := &testClock{t: baseTime}
	l, err := Load(context.Background(), kv, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return l, kv, clock
}

func sampleMistake() NewMistake {
	return NewMistake{
		Question:      "What is the past tense of 'go'?",
		CorrectAnswer: "went",
		UserAnswer:    "goed",
		Explanation:   "'Go' is irregular; its past tense is 'went'.",
		Type:          TypeFillBlank,
		Difficulty:    DifficultyBeginner,
		Topic:         TopicDailyLife,
		Focus:         FocusGrammar,
	}
}

func TestRecordAssignsIDAndPersists(t *testing.T) {
	l, kv, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Record() assigned empty ID")
	}
	if rec.ReviewCount != 0 {
		t.Errorf("ReviewCount = %d, want 0", rec.ReviewCount)
	}
	if !rec.CreatedAt.Equal(baseTime) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, baseTime)
	}

	// A fresh ledger over the same KV sees the record.
	reloaded, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Len() != 1 {
		t.Errorf("reloaded Len() = %d, want 1", reloaded.Len())
	}
}

func TestRecordDeduplicates(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	first, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	dup := sampleMistake()
	dup.UserAnswer = "goes" // different wrong answer, same question+answer pair
	second, err := l.Record(ctx, dup)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("duplicate got new ID %q, want existing %q", second.ID, first.ID)
	}
	if second.UserAnswer != "goed" {
		t.Errorf("duplicate overwrote UserAnswer: got %q", second.UserAnswer)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestRecordsMostRecentFirst(t *testing.T) {
	l, _, clock := newTestLedger(t)
	ctx := context.Background()

	m1 := sampleMistake()
	if _, err := l.Record(ctx, m1); err != nil {
		t.Fatal(err)
	}

	clock.Advance(time.Hour)
	m2 := sampleMistake()
	m2.Question = "Translate 'bonjour'"
	m2.CorrectAnswer = "hello"
	if _, err := l.Record(ctx, m2); err != nil {
		t.Fatal(err)
	}

	records := l.Records()
	if len(records) != 2 {
		t.Fatalf("len(Records()) = %d, want 2", len(records))
	}
	if records[0].Question != m2.Question {
		t.Errorf("Records()[0].Question = %q, want newest %q", records[0].Question, m2.Question)
	}
}

func TestMarkReviewedMastersAtThreshold(t *testing.T) {
	l, _, clock := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		clock.Advance(48 * time.Hour)
		if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
			t.Fatalf("MarkReviewed() #%d error = %v", i, err)
		}
	}

	got, ok := l.Get(rec.ID)
	if !ok {
		t.Fatal("record disappeared")
	}
	if got.ReviewCount != 3 {
		t.Errorf("ReviewCount = %d, want 3", got.ReviewCount)
	}
	if !got.IsMastered() {
		t.Error("record not mastered after 3 correct reviews")
	}

	// A fourth review of a mastered record changes nothing.
	clock.Advance(48 * time.Hour)
	if err := l.MarkReviewed(ctx, rec.ID, false); err != nil {
		t.Fatal(err)
	}
	after, _ := l.Get(rec.ID)
	if after.ReviewCount != 3 || !after.IsMastered() {
		t.Errorf("mastered record mutated: count=%d mastered=%v", after.ReviewCount, after.IsMastered())
	}
}

func TestMarkReviewedWrongDoesNotMaster(t *testing.T) {
	l, _, clock := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}

	if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
		t.Fatal(err)
	}
	if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Hour)
	if err := l.MarkReviewed(ctx, rec.ID, false); err != nil {
		t.Fatal(err)
	}

	got, _ := l.Get(rec.ID)
	if got.ReviewCount != 3 {
		t.Errorf("ReviewCount = %d, want 3", got.ReviewCount)
	}
	if got.IsMastered() {
		t.Error("record mastered on a wrong answer")
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(clock.Now()) {
		t.Errorf("LastReviewedAt = %v, want %v", got.LastReviewedAt, clock.Now())
	}

	// The next correct review crosses the threshold.
	if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
		t.Fatal(err)
	}
	after, _ := l.Get(rec.ID)
	if !after.IsMastered() {
		t.Error("record not mastered on correct review past threshold")
	}
}

func TestMarkReviewedUnknownIDNoOp(t *testing.T) {
	l, _, _ := newTestLedger(t)
	if err := l.MarkReviewed(context.Background(), "missing", true); err != nil {
		t.Errorf("MarkReviewed(unknown) error = %v, want nil", err)
	}
}

func TestPendingReviewSchedule(t *testing.T) {
	l, _, clock := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}

	// Never reviewed: always due.
	if got := l.PendingReview(); len(got) != 1 {
		t.Fatalf("PendingReview() before any review = %d records, want 1", len(got))
	}

	// First correct review. The next interval is 1 day.
	if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
		t.Fatal(err)
	}
	if got := l.PendingReview(); len(got) != 0 {
		t.Errorf("PendingReview() right after review = %d records, want 0", len(got))
	}

	clock.Advance(12 * time.Hour)
	if got := l.PendingReview(); len(got) != 0 {
		t.Errorf("PendingReview() after 12h = %d records, want 0", len(got))
	}

	clock.Advance(12 * time.Hour)
	if got := l.PendingReview(); len(got) != 1 {
		t.Errorf("PendingReview() after 1 day = %d records, want 1", len(got))
	}

	// Second correct review. The next interval is 3 days.
	if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * 24 * time.Hour)
	if got := l.PendingReview(); len(got) != 0 {
		t.Errorf("PendingReview() after 2 days = %d records, want 0", len(got))
	}
	clock.Advance(24 * time.Hour)
	if got := l.PendingReview(); len(got) != 1 {
		t.Errorf("PendingReview() after 3 days = %d records, want 1", len(got))
	}
}

func TestPendingReviewExcludesMastered(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := l.MarkReviewed(ctx, rec.ID, true); err != nil {
			t.Fatal(err)
		}
	}

	if got := l.PendingReview(); len(got) != 0 {
		t.Errorf("PendingReview() includes mastered record")
	}
	if got := l.MasteredRecords(); len(got) != 1 {
		t.Errorf("MasteredRecords() = %d, want 1", len(got))
	}
}

func TestDeleteAndClearMastered(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	rec1, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}
	m2 := sampleMistake()
	m2.Question = "Translate 'merci'"
	m2.CorrectAnswer = "thank you"
	rec2, err := l.Record(ctx, m2)
	if err != nil {
		t.Fatal(err)
	}

	if err := l.Delete(ctx, rec1.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() after delete = %d, want 1", l.Len())
	}
	if err := l.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(unknown) error = %v, want nil", err)
	}

	for i := 0; i < 3; i++ {
		if err := l.MarkReviewed(ctx, rec2.ID, true); err != nil {
			t.Fatal(err)
		}
	}
	removed, err := l.ClearMastered(ctx)
	if err != nil {
		t.Fatalf("ClearMastered() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("ClearMastered() = %d, want 1", removed)
	}
	if l.Len() != 0 {
		t.Errorf("Len() after clear = %d, want 0", l.Len())
	}
}

func TestFilterByTopicAndFocus(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	grammar := sampleMistake()
	if _, err := l.Record(ctx, grammar); err != nil {
		t.Fatal(err)
	}
	vocab := sampleMistake()
	vocab.Question = "Translate 'gare'"
	vocab.CorrectAnswer = "train station"
	vocab.Topic = TopicTravel
	vocab.Focus = FocusVocabulary
	if _, err := l.Record(ctx, vocab); err != nil {
		t.Fatal(err)
	}

	if got := l.ByTopic(TopicTravel); len(got) != 1 || got[0].Question != vocab.Question {
		t.Errorf("ByTopic(travel) = %v", got)
	}
	if got := l.ByFocus(FocusGrammar); len(got) != 1 || got[0].Question != grammar.Question {
		t.Errorf("ByFocus(grammar) = %v", got)
	}
	if got := l.ByTopic(TopicBusiness); len(got) != 0 {
		t.Errorf("ByTopic(business) = %d records, want 0", len(got))
	}
}

func TestLoadToleratesCorruptData(t *testing.T) {
	kv := store.NewMemoryKV()
	ctx := context.Background()
	if err := kv.Set(ctx, storageKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	l, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load() with corrupt data error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestRecordRollsBackOnPersistFailure(t *testing.T) {
	l, kv, _ := newTestLedger(t)
	ctx := context.Background()

	kv.FailWrites = true
	if _, err := l.Record(ctx, sampleMistake()); err == nil {
		t.Fatal("Record() with failing store returned nil error")
	}
	if l.Len() != 0 {
		t.Errorf("Len() after failed Record = %d, want 0", l.Len())
	}

	kv.FailWrites = false
	rec, err := l.Record(ctx, sampleMistake())
	if err != nil {
		t.Fatal(err)
	}

	kv.FailWrites = true
	if err := l.MarkReviewed(ctx, rec.ID, true); err == nil {
		t.Fatal("MarkReviewed() with failing store returned nil error")
	}
	got, _ := l.Get(rec.ID)
	if got.ReviewCount != 0 || got.LastReviewedAt != nil {
		t.Errorf("failed review mutated record: %+v", got)
	}
}

func TestRecordsReturnsSnapshot(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	if _, err := l.Record(ctx, sampleMistake()); err != nil {
		t.Fatal(err)
	}

	snap := l.Records()
	snap[0].Question = "mutated"

	if got := l.Records()[0].Question; got == "mutated" {
		t.Error("Records() exposes internal state")
	}
}
