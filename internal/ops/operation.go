package ops

import "time"

// Context identifies the kind of background operation. At most one
// active operation exists per context at any time.
type Context string

const (
	ContextQuizGeneration        Context = "quiz_generation"
	ContextMistakeQuizGeneration Context = "mistake_quiz_generation"
	ContextAnswerVerification    Context = "answer_verification"
	ContextSpeechProcessing      Context = "speech_processing"
	ContextKeyValidation         Context = "key_validation"
	ContextDataSync              Context = "data_sync"
	ContextGeneral               Context = "general"
)

// Priority returns the display priority of the context, higher first.
// Content generation blocks the learner's primary task, so it outranks
// everything; background sync must never visually interrupt.
func (c Context) Priority() int {
	switch c {
	case ContextQuizGeneration, ContextMistakeQuizGeneration:
		return 60
	case ContextAnswerVerification:
		return 50
	case ContextSpeechProcessing:
		return 40
	case ContextKeyValidation:
		return 30
	case ContextDataSync:
		return 20
	default:
		return 10
	}
}

// DefaultMessage returns the status line shown when the caller supplies
// none.
func (c Context) DefaultMessage() string {
	switch c {
	case ContextQuizGeneration:
		return "Generating quiz..."
	case ContextMistakeQuizGeneration:
		return "Building review quiz..."
	case ContextAnswerVerification:
		return "Checking your answer..."
	case ContextSpeechProcessing:
		return "Processing audio..."
	case ContextKeyValidation:
		return "Validating key..."
	case ContextDataSync:
		return "Syncing..."
	default:
		return "Working..."
	}
}

// StatusKind is the operation state machine's node label.
type StatusKind string

const (
	StatusLoading   StatusKind = "loading"
	StatusProgress  StatusKind = "progress"
	StatusSuccess   StatusKind = "success"
	StatusError     StatusKind = "error"
	StatusCancelled StatusKind = "cancelled"
)

// Active reports whether the status is non-terminal.
func (k StatusKind) Active() bool {
	return k == StatusLoading || k == StatusProgress
}

// Status is the current state of an operation.
type Status struct {
	Kind StatusKind

	// Fraction is meaningful only for StatusProgress, clamped to [0,1].
	Fraction float64

	// Message carries the terminal detail for success and error states.
	Message string
}

// Operation is one registered unit of background work. Values handed
// out by the Manager are snapshots; the Manager owns the live state.
type Operation struct {
	ID      string
	Context Context
	Message string
	Status  Status

	StartTime   time.Time
	LastUpdated time.Time

	CanCancel         bool
	AutoHideOnSuccess bool
	SuccessDuration   time.Duration
}

// Elapsed returns how long the operation has been running.
func (o *Operation) Elapsed(now time.Time) time.Duration {
	return now.Sub(o.StartTime)
}
