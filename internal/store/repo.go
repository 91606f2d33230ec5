package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single provider call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored provider call event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption over a grouping key.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// OperationEventData captures the terminal transition of an operation.
type OperationEventData struct {
	OperationID string
	Context     string
	Outcome     string
	Message     string
	DurationMs  int64
}

// ReviewEventData captures a single review pass over a mistake record.
type ReviewEventData struct {
	RecordID    string
	Topic       string
	Focus       string
	Correct     bool
	ReviewCount int
	Mastered    bool
}

// EventRepo provides append and query access to the diagnostic event log.
type EventRepo interface {
	// AppendLLMRequest records a generative provider call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendOperation records an operation's terminal transition.
	AppendOperation(ctx context.Context, data OperationEventData) error

	// AppendReview records a review pass over a mistake record.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// QueryLLMEvents returns provider call events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
