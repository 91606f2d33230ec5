package ops

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nehal/linguo/internal/store"
)

// Config holds the display timing policy for terminal operations.
type Config struct {
	// SuccessDuration is how long a successful operation stays visible.
	SuccessDuration time.Duration

	// ErrorDuration is how long a failed operation stays visible.
	// Errors are shown longer than successes because they need to be
	// read, not just acknowledged.
	ErrorDuration time.Duration

	// CancelledDuration is how long a cancelled operation stays visible.
	CancelledDuration time.Duration

	// SettleDelay is the pause between progress reaching 1.0 and the
	// automatic success transition.
	SettleDelay time.Duration

	// MaxRecent bounds the recently-completed list.
	MaxRecent int
}

// DefaultConfig returns the standard timing policy.
func DefaultConfig() Config {
	return Config{
		SuccessDuration:   2 * time.Second,
		ErrorDuration:     4 * time.Second,
		CancelledDuration: time.Second,
		SettleDelay:       400 * time.Millisecond,
		MaxRecent:         20,
	}
}

// StartOptions configures a new operation.
type StartOptions struct {
	// Message overrides the context's default status line.
	Message string

	// CanCancel marks the operation user-cancellable. OnCancel, if set,
	// is invoked exactly once when the operation is cancelled.
	CanCancel bool
	OnCancel  func()

	// AutoHideOnSuccess controls whether a successful operation is
	// removed from the recent list automatically. Defaults to true.
	AutoHideOnSuccess *bool

	// SuccessDuration overrides the configured success display time.
	SuccessDuration time.Duration
}

// operationState is the Manager's live record for one operation.
type operationState struct {
	op Operation

	onCancel      func()
	cancelInvoked bool

	settleEntry *timerEntry
}

// Manager is the process-wide registry of concurrent operations. All
// mutations are serialized through one mutex; timer callbacks re-enter
// through the same public surface, so transitions for a given id are
// strictly ordered.
type Manager struct {
	mu     sync.Mutex
	ops    map[string]*operationState
	byCtx  map[Context]string
	recent []Operation

	cfg    Config
	dq     *delayQueue
	events store.EventRepo
	now    func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithEventRepo attaches an event log. Terminal transitions are
// appended to it on a best-effort basis.
func WithEventRepo(events store.EventRepo) ManagerOption {
	return func(m *Manager) { m.events = events }
}

// WithClock overrides the time source for operation timestamps. Used by
// tests. Timer deadlines still follow the wall clock.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// NewManager creates an operation manager with the given timing policy.
func NewManager(cfg Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		ops:   make(map[string]*operationState),
		byCtx: make(map[Context]string),
		cfg:   cfg,
		dq:    newDelayQueue(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start registers a new operation and returns its handle id. Any
// active operation under the same context is silently superseded; last
// request wins.
func (m *Manager) Start(opCtx Context, opts StartOptions) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prevID, ok := m.byCtx[opCtx]; ok {
		m.removeLocked(prevID)
	}

	message := opts.Message
	if message == "" {
		message = opCtx.DefaultMessage()
	}
	autoHide := true
	if opts.AutoHideOnSuccess != nil {
		autoHide = *opts.AutoHideOnSuccess
	}
	successDuration := opts.SuccessDuration
	if successDuration <= 0 {
		successDuration = m.cfg.SuccessDuration
	}

	now := m.now()
	st := &operationState{
		op: Operation{
			ID:                uuid.NewString(),
			Context:           opCtx,
			Message:           message,
			Status:            Status{Kind: StatusLoading},
			StartTime:         now,
			LastUpdated:       now,
			CanCancel:         opts.CanCancel,
			AutoHideOnSuccess: autoHide,
			SuccessDuration:   successDuration,
		},
		onCancel: opts.OnCancel,
	}

	m.ops[st.op.ID] = st
	m.byCtx[opCtx] = st.op.ID
	return st.op.ID
}

// UpdateProgress moves an active operation to the given progress
// fraction, clamped to [0,1]. Reaching 1.0 schedules an automatic
// success transition after the settle delay. Unknown or terminal ids
// are no-ops.
func (m *Manager) UpdateProgress(id string, fraction float64, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.ops[id]
	if !ok || !st.op.Status.Kind.Active() {
		return
	}

	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	st.op.Status = Status{Kind: StatusProgress, Fraction: fraction}
	if message != "" {
		st.op.Message = message
	}
	st.op.LastUpdated = m.now()

	if fraction >= 1 {
		m.dq.Cancel(st.settleEntry)
		st.settleEntry = m.dq.Schedule(time.Now().Add(m.cfg.SettleDelay), func() {
			m.Complete(id, true, "")
		})
	}
}

// Complete transitions the operation to success or error, moves it to
// the recently-completed list, and schedules its removal. Unknown or
// terminal ids are no-ops.
func (m *Manager) Complete(id string, success bool, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.ops[id]
	if !ok || !st.op.Status.Kind.Active() {
		return
	}

	kind := StatusSuccess
	hideAfter := st.op.SuccessDuration
	if !success {
		kind = StatusError
		hideAfter = m.cfg.ErrorDuration
	}
	// Errors and cancellations always auto-hide; successes honor the
	// operation's AutoHideOnSuccess flag.
	m.finishLocked(st, Status{Kind: kind, Message: message}, hideAfter, !success || st.op.AutoHideOnSuccess)
}

// Cancel invokes the operation's cancellation callback exactly once and
// transitions it to cancelled. Unknown or terminal ids are no-ops.
func (m *Manager) Cancel(id string) {
	m.mu.Lock()

	st, ok := m.ops[id]
	if !ok || !st.op.Status.Kind.Active() {
		m.mu.Unlock()
		return
	}

	var onCancel func()
	if st.onCancel != nil && !st.cancelInvoked {
		st.cancelInvoked = true
		onCancel = st.onCancel
	}

	m.finishLocked(st, Status{Kind: StatusCancelled}, m.cfg.CancelledDuration, true)
	m.mu.Unlock()

	// Cooperative: the callback asks the work to stop, nothing is
	// interrupted forcibly. Invoked outside the lock since it may call
	// back into the manager.
	if onCancel != nil {
		onCancel()
	}
}

// finishLocked applies a terminal status, records the event, moves the
// operation into the recent list, and schedules its auto-hide.
func (m *Manager) finishLocked(st *operationState, status Status, hideAfter time.Duration, autoHide bool) {
	id := st.op.ID
	now := m.now()

	st.op.Status = status
	st.op.LastUpdated = now
	if status.Message != "" {
		st.op.Message = status.Message
	}

	m.dq.Cancel(st.settleEntry)

	delete(m.ops, id)
	if m.byCtx[st.op.Context] == id {
		delete(m.byCtx, st.op.Context)
	}

	m.recent = append([]Operation{st.op}, m.recent...)
	if m.cfg.MaxRecent > 0 && len(m.recent) > m.cfg.MaxRecent {
		m.recent = m.recent[:m.cfg.MaxRecent]
	}

	if autoHide {
		m.dq.Schedule(time.Now().Add(hideAfter), func() {
			m.dropRecent(id)
		})
	}

	if m.events != nil {
		_ = m.events.AppendOperation(context.Background(), store.OperationEventData{
			OperationID: id,
			Context:     string(st.op.Context),
			Outcome:     string(status.Kind),
			Message:     st.op.Message,
			DurationMs:  now.Sub(st.op.StartTime).Milliseconds(),
		})
	}
}

// dropRecent removes a terminal operation from the recent list.
func (m *Manager) dropRecent(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recent {
		if m.recent[i].ID == id {
			m.recent = append(m.recent[:i], m.recent[i+1:]...)
			return
		}
	}
}

// Stop force-removes an operation without a terminal transition. Used
// for teardown, not normal completion.
func (m *Manager) Stop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
}

// StopContext force-removes the active operation for a context, if any.
func (m *Manager) StopContext(opCtx Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byCtx[opCtx]; ok {
		m.removeLocked(id)
	}
}

// StopAll force-removes every operation and clears the recent list.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.ops {
		m.removeLocked(id)
	}
	m.recent = nil
}

// Close shuts down the manager's timer goroutine.
func (m *Manager) Close() {
	m.dq.Stop()
}

func (m *Manager) removeLocked(id string) {
	st, ok := m.ops[id]
	if !ok {
		return
	}
	m.dq.Cancel(st.settleEntry)
	delete(m.ops, id)
	if m.byCtx[st.op.Context] == id {
		delete(m.byCtx, st.op.Context)
	}
}

// Get returns a snapshot of the operation with the given id.
func (m *Manager) Get(id string) (Operation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.ops[id]; ok {
		return st.op, true
	}
	for _, op := range m.recent {
		if op.ID == id {
			return op, true
		}
	}
	return Operation{}, false
}

// Active returns snapshots of all active operations.
func (m *Manager) Active() []Operation {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Operation, 0, len(m.ops))
	for _, st := range m.ops {
		out = append(out, st.op)
	}
	return out
}

// Recent returns snapshots of recently completed operations, newest
// first.
func (m *Manager) Recent() []Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Operation(nil), m.recent...)
}

// Primary returns the active operation that should be displayed most
// prominently: highest context priority, ties broken by longest elapsed
// time. Returns false when nothing is active.
func (m *Manager) Primary() (Operation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var best *operationState
	for _, st := range m.ops {
		if best == nil {
			best = st
			continue
		}
		bp, sp := best.op.Context.Priority(), st.op.Context.Priority()
		if sp > bp || (sp == bp && st.op.StartTime.Before(best.op.StartTime)) {
			best = st
		}
	}
	if best == nil {
		return Operation{}, false
	}
	return best.op, true
}

// Run wraps fn in an operation: starts it, completes it with success on
// a nil return or with the error's text otherwise, and returns fn's
// error unchanged. Cancelling the operation cancels the context passed
// to fn.
func (m *Manager) Run(ctx context.Context, opCtx Context, message string, fn func(context.Context) error) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := m.Start(opCtx, StartOptions{
		Message:   message,
		CanCancel: true,
		OnCancel:  cancel,
	})

	err := fn(runCtx)
	if err != nil {
		m.Complete(id, false, err.Error())
		return err
	}
	m.Complete(id, true, "")
	return nil
}

// RunValue is Run for units of work that produce a value. The value and
// error pass through unchanged; only the display state is managed.
func RunValue[T any](ctx context.Context, m *Manager, opCtx Context, message string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := m.Run(ctx, opCtx, message, func(runCtx context.Context) error {
		v, err := fn(runCtx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
