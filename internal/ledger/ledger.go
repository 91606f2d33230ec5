package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nehal/linguo/internal/store"
)

// storageKey is the KV key the whole collection is persisted under.
const storageKey = "linguo.mistakes.v1"

// NewMistake is the caller-supplied portion of a record. The ledger
// assigns the ID and all review bookkeeping.
type NewMistake struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Explanation   string
	Feedback      string
	Type          QuestionType
	Difficulty    Difficulty
	Topic         Topic
	Focus         Focus
	Options       []string
}

// Ledger tracks wrong answers and schedules them for spaced review.
// All mutations are serialized and persisted synchronously, so a write
// that returns without error is durable.
type Ledger struct {
	mu      sync.Mutex
	records []MistakeRecord

	kv     store.KV
	events store.EventRepo
	policy ReviewPolicy
	now    func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPolicy overrides the default review schedule.
func WithPolicy(p ReviewPolicy) Option {
	return func(l *Ledger) { l.policy = p }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithEventRepo attaches an event log. Review outcomes are appended to
// it on a best-effort basis.
func WithEventRepo(events store.EventRepo) Option {
	return func(l *Ledger) { l.events = events }
}

// Load builds a Ledger from the persisted collection. A missing or
// undecodable value starts the ledger empty rather than failing; a
// corrupt blob should never lock the learner out of the app.
func Load(ctx context.Context, kv store.KV, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		kv:     kv,
		policy: DefaultReviewPolicy(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	raw, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	if raw != nil {
		var records []MistakeRecord
		if err := json.Unmarshal(raw, &records); err == nil {
			l.records = records
		}
	}
	return l, nil
}

// Record adds a mistake at the front of the collection. If a record
// with the same question and correct answer already exists it is left
// untouched and returned instead, so repeating the same error does not
// inflate the ledger.
func (l *Ledger) Record(ctx context.Context, m NewMistake) (MistakeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].Question == m.Question && l.records[i].CorrectAnswer == m.CorrectAnswer {
			return l.records[i], nil
		}
	}

	rec := MistakeRecord{
		ID:            uuid.NewString(),
		Question:      m.Question,
		CorrectAnswer: m.CorrectAnswer,
		UserAnswer:    m.UserAnswer,
		Explanation:   m.Explanation,
		Feedback:      m.Feedback,
		Type:          m.Type,
		Difficulty:    m.Difficulty,
		Topic:         m.Topic,
		Focus:         m.Focus,
		Options:       append([]string(nil), m.Options...),
		CreatedAt:     l.now(),
	}

	l.records = append([]MistakeRecord{rec}, l.records...)
	if err := l.persist(ctx); err != nil {
		l.records = l.records[1:]
		return MistakeRecord{}, err
	}
	return rec, nil
}

// MarkReviewed records a review outcome for the given record. Every
// review increments the count and stamps lastReviewedAt; a correct
// answer additionally masters the record once the count reaches the
// policy threshold. Unknown IDs and already-mastered records are
// no-ops.
func (l *Ledger) MarkReviewed(ctx context.Context, id string, wasCorrect bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return nil
	}
	rec := &l.records[idx]
	if rec.IsMastered() {
		return nil
	}

	prev := *rec
	now := l.now()
	rec.ReviewCount++
	rec.LastReviewedAt = &now
	if wasCorrect && rec.ReviewCount >= l.policy.MasteryThreshold {
		rec.MasteredAt = &now
	}

	if err := l.persist(ctx); err != nil {
		l.records[idx] = prev
		return err
	}

	if l.events != nil {
		_ = l.events.AppendReview(ctx, store.ReviewEventData{
			RecordID:    rec.ID,
			Topic:       string(rec.Topic),
			Focus:       string(rec.Focus),
			Correct:     wasCorrect,
			ReviewCount: rec.ReviewCount,
			Mastered:    rec.IsMastered(),
		})
	}
	return nil
}

// Delete removes the record with the given ID. Unknown IDs are no-ops.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return nil
	}

	prev := l.records
	l.records = append(append([]MistakeRecord{}, l.records[:idx]...), l.records[idx+1:]...)
	if err := l.persist(ctx); err != nil {
		l.records = prev
		return err
	}
	return nil
}

// ClearMastered removes all mastered records and returns how many were
// removed.
func (l *Ledger) ClearMastered(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.records[:0:0]
	for _, r := range l.records {
		if !r.IsMastered() {
			kept = append(kept, r)
		}
	}
	removed := len(l.records) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	prev := l.records
	l.records = kept
	if err := l.persist(ctx); err != nil {
		l.records = prev
		return 0, err
	}
	return removed, nil
}

// PendingReview returns unmastered records that are due under the
// review schedule, most recent first.
func (l *Ledger) PendingReview() []MistakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	var due []MistakeRecord
	for _, r := range l.records {
		if !r.IsMastered() && r.NeedsReview(l.policy, now) {
			due = append(due, r)
		}
	}
	return due
}

// MasteredRecords returns all mastered records, most recent first.
func (l *Ledger) MasteredRecords() []MistakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []MistakeRecord
	for _, r := range l.records {
		if r.IsMastered() {
			out = append(out, r)
		}
	}
	return out
}

// ByTopic returns unmastered records for the given topic, most recent first.
func (l *Ledger) ByTopic(topic Topic) []MistakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []MistakeRecord
	for _, r := range l.records {
		if r.Topic == topic && !r.IsMastered() {
			out = append(out, r)
		}
	}
	return out
}

// ByFocus returns unmastered records for the given skill focus, most
// recent first.
func (l *Ledger) ByFocus(focus Focus) []MistakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []MistakeRecord
	for _, r := range l.records {
		if r.Focus == focus && !r.IsMastered() {
			out = append(out, r)
		}
	}
	return out
}

// Get returns the record with the given ID, or false if absent.
func (l *Ledger) Get(id string) (MistakeRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return MistakeRecord{}, false
	}
	return l.records[idx], true
}

// Len returns the total number of records, mastered included.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Records returns a snapshot of the full collection, most recent first.
func (l *Ledger) Records() []MistakeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]MistakeRecord(nil), l.records...)
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection. Callers hold l.mu.
func (l *Ledger) persist(ctx context.Context) error {
	raw, err := json.Marshal(l.records)
	if err != nil {
		return fmt.Errorf("encode mistakes: %w", err)
	}
	if err := l.kv.Set(ctx, storageKey, raw); err != nil {
		return fmt.Errorf("save mistakes: %w", err)
	}
	return nil
}
