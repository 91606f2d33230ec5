package ledger

import "time"

// QuestionType describes how a quiz question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeTrueFalse      QuestionType = "true_false"
	TypeMatching       QuestionType = "matching"
	TypeTranslation    QuestionType = "translation"
	TypeConversation   QuestionType = "conversation"
)

// HasOptions reports whether the question type carries an ordered
// option list (choice-style questions).
func (t QuestionType) HasOptions() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse || t == TypeMatching
}

// Difficulty is the learner-facing difficulty band.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Topic is a closed set of learning domains.
type Topic string

const (
	TopicDailyLife  Topic = "daily_life"
	TopicTravel     Topic = "travel"
	TopicBusiness   Topic = "business"
	TopicFood       Topic = "food"
	TopicCulture    Topic = "culture"
	TopicTechnology Topic = "technology"
	TopicHealth     Topic = "health"
	TopicEducation  Topic = "education"
)

// Focus is a closed set of skill areas.
type Focus string

const (
	FocusVocabulary Focus = "vocabulary"
	FocusGrammar    Focus = "grammar"
	FocusListening  Focus = "listening"
	FocusReading    Focus = "reading"
	FocusWriting    Focus = "writing"
	FocusSpeaking   Focus = "speaking"
)

// MistakeRecord is a single wrong answer tracked for spaced review.
// Records are owned exclusively by the Ledger; consumers read snapshots.
type MistakeRecord struct {
	ID string `json:"id"`

	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	UserAnswer    string `json:"user_answer"`
	Explanation   string `json:"explanation"`
	Feedback      string `json:"feedback,omitempty"`

	Type       QuestionType `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`
	Topic      Topic        `json:"topic"`
	Focus      Focus        `json:"focus"`
	Options    []string     `json:"options,omitempty"`

	CreatedAt      time.Time  `json:"created_at"`
	ReviewCount    int        `json:"review_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	MasteredAt     *time.Time `json:"mastered_at,omitempty"`
}

// IsMastered reports whether the record has reached mastery.
func (r *MistakeRecord) IsMastered() bool {
	return r.MasteredAt != nil
}

// DaysSinceCreated returns whole days elapsed since the record was created.
func (r *MistakeRecord) DaysSinceCreated(now time.Time) int {
	return int(now.Sub(r.CreatedAt).Hours() / 24.0)
}

// NeedsReview reports whether the record is due under the given policy.
// A never-reviewed record is always due.
func (r *MistakeRecord) NeedsReview(policy ReviewPolicy, now time.Time) bool {
	if r.LastReviewedAt == nil {
		return true
	}
	interval := policy.IntervalDays(r.ReviewCount)
	elapsed := int(now.Sub(*r.LastReviewedAt).Hours() / 24.0)
	return elapsed >= interval
}
