package contentgen

import (
	"time"

	"github.com/nehal/linguo/internal/ledger"
)

// LearnerProfile describes the learner the content is generated for.
type LearnerProfile struct {
	Name           string            `json:"name"`
	NativeLanguage string            `json:"native_language"`
	TargetLanguage string            `json:"target_language"`
	Difficulty     ledger.Difficulty `json:"difficulty"`
	Interests      []string          `json:"interests,omitempty"`
}

// QuizQuestion is a single question inside a generated quiz.
type QuizQuestion struct {
	ID            string              `json:"id"`
	Type          ledger.QuestionType `json:"type"`
	Question      string              `json:"question"`
	CorrectAnswer string              `json:"correct_answer"`
	Options       []string            `json:"options,omitempty"`
	Explanation   string              `json:"explanation"`
	Difficulty    ledger.Difficulty   `json:"difficulty"`
	Topic         ledger.Topic        `json:"topic"`
	Focus         ledger.Focus        `json:"focus"`

	// Conversation is set for dialogue-based questions only.
	Conversation *Conversation `json:"conversation,omitempty"`
}

// Quiz is an ordered set of questions produced by one generation call.
type Quiz struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Questions         []QuizQuestion    `json:"questions"`
	EstimatedDuration time.Duration     `json:"estimated_duration"`
	CreatedAt         time.Time         `json:"created_at"`
	Topic             ledger.Topic      `json:"topic"`
	Difficulty        ledger.Difficulty `json:"difficulty"`

	// SourceMistakeIDs is set when the quiz was derived from ledger
	// records. Questions[i] is derived from SourceMistakeIDs[i].
	SourceMistakeIDs []string `json:"source_mistake_ids,omitempty"`
}

// IsMistakeBased reports whether the quiz was derived from recorded
// mistakes.
func (q *Quiz) IsMistakeBased() bool {
	return len(q.SourceMistakeIDs) > 0
}

// ConversationLine is one turn in a generated dialogue.
type ConversationLine struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// Conversation is a generated dialogue, optionally with comprehension
// questions attached.
type Conversation struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Scenario  string             `json:"scenario"`
	Lines     []ConversationLine `json:"lines"`
	Questions []QuizQuestion     `json:"questions,omitempty"`
	Topic     ledger.Topic       `json:"topic"`
	CreatedAt time.Time          `json:"created_at"`
}

// Article is a generated reading passage with comprehension questions.
type Article struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	WordCount  int               `json:"word_count"`
	Topic      ledger.Topic      `json:"topic"`
	Difficulty ledger.Difficulty `json:"difficulty"`
	Focus      ledger.Focus      `json:"focus"`
	Questions  []QuizQuestion    `json:"questions"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Verification is the judgment produced for a free-form answer.
type Verification struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
	Feedback    string `json:"feedback"`
}
