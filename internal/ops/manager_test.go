package ops

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testConfig shrinks every duration so timer-driven transitions settle
// within a few tens of milliseconds.
func testConfig() Config {
	return Config{
		SuccessDuration:   40 * time.Millisecond,
		ErrorDuration:     400 * time.Millisecond,
		CancelledDuration: 20 * time.Millisecond,
		SettleDelay:       10 * time.Millisecond,
		MaxRecent:         20,
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(testConfig())
	t.Cleanup(m.Close)
	return m
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func TestStartUsesDefaultMessage(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextQuizGeneration, StartOptions{})
	op, ok := m.Get(id)
	if !ok {
		t.Fatal("operation not found after Start")
	}
	if op.Message != ContextQuizGeneration.DefaultMessage() {
		t.Errorf("Message = %q, want default", op.Message)
	}
	if op.Status.Kind != StatusLoading {
		t.Errorf("Status = %s, want loading", op.Status.Kind)
	}
}

func TestStartSupersedesSameContext(t *testing.T) {
	m := newTestManager(t)

	first := m.Start(ContextQuizGeneration, StartOptions{})
	second := m.Start(ContextQuizGeneration, StartOptions{})

	active := m.Active()
	if len(active) != 1 {
		t.Fatalf("len(Active()) = %d, want 1", len(active))
	}
	if active[0].ID != second {
		t.Errorf("active id = %q, want second %q", active[0].ID, second)
	}
	if _, ok := m.Get(first); ok {
		t.Error("superseded operation still retrievable")
	}
}

func TestDifferentContextsCoexist(t *testing.T) {
	m := newTestManager(t)

	m.Start(ContextQuizGeneration, StartOptions{})
	m.Start(ContextDataSync, StartOptions{})

	if got := len(m.Active()); got != 2 {
		t.Errorf("len(Active()) = %d, want 2", got)
	}
}

func TestUpdateProgressClampsAndIgnoresUnknown(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextDataSync, StartOptions{})
	m.UpdateProgress(id, -0.5, "")
	op, _ := m.Get(id)
	if op.Status.Kind != StatusProgress || op.Status.Fraction != 0 {
		t.Errorf("Status = %+v, want progress 0", op.Status)
	}

	m.UpdateProgress(id, 0.7, "halfway there")
	op, _ = m.Get(id)
	if op.Status.Fraction != 0.7 || op.Message != "halfway there" {
		t.Errorf("Status = %+v msg=%q", op.Status, op.Message)
	}

	// Unknown id must not panic or create state.
	m.UpdateProgress("no-such-id", 0.5, "")
	if got := len(m.Active()); got != 1 {
		t.Errorf("len(Active()) = %d, want 1", got)
	}
}

func TestProgressCompleteAutoSuccess(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextQuizGeneration, StartOptions{})
	m.UpdateProgress(id, 1.0, "")

	ok := eventually(t, time.Second, func() bool {
		op, found := m.Get(id)
		return found && op.Status.Kind == StatusSuccess
	})
	if !ok {
		op, found := m.Get(id)
		t.Fatalf("no auto-success after progress 1.0 (found=%v op=%+v)", found, op)
	}
	if got := len(m.Active()); got != 0 {
		t.Errorf("len(Active()) = %d, want 0", got)
	}
}

func TestCompleteSuccessAutoHides(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextDataSync, StartOptions{})
	m.Complete(id, true, "synced")

	op, ok := m.Get(id)
	if !ok || op.Status.Kind != StatusSuccess {
		t.Fatalf("Get() after Complete = %+v, %v", op, ok)
	}
	if got := len(m.Recent()); got != 1 {
		t.Errorf("len(Recent()) = %d, want 1", got)
	}

	hidden := eventually(t, time.Second, func() bool {
		return len(m.Recent()) == 0
	})
	if !hidden {
		t.Error("successful operation never auto-hid")
	}
}

func TestErrorsDisplayLongerThanSuccesses(t *testing.T) {
	m := newTestManager(t)

	okID := m.Start(ContextDataSync, StartOptions{})
	errID := m.Start(ContextGeneral, StartOptions{})
	m.Complete(okID, true, "")
	m.Complete(errID, false, "network unreachable")

	// After the success duration the error must still be visible.
	successGone := eventually(t, time.Second, func() bool {
		for _, op := range m.Recent() {
			if op.ID == okID {
				return false
			}
		}
		return true
	})
	if !successGone {
		t.Fatal("success never auto-hid")
	}

	stillThere := false
	for _, op := range m.Recent() {
		if op.ID == errID {
			stillThere = true
			if op.Status.Kind != StatusError {
				t.Errorf("error op status = %s", op.Status.Kind)
			}
		}
	}
	if !stillThere {
		t.Error("error hidden as fast as success")
	}

	errGone := eventually(t, 2*time.Second, func() bool {
		return len(m.Recent()) == 0
	})
	if !errGone {
		t.Error("error never auto-hid")
	}
}

func TestCompleteTerminalIsIrreversible(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextDataSync, StartOptions{})
	m.Complete(id, false, "failed")
	m.Complete(id, true, "succeeded after all")
	m.UpdateProgress(id, 0.5, "")

	op, ok := m.Get(id)
	if !ok {
		t.Fatal("operation missing from recent")
	}
	if op.Status.Kind != StatusError {
		t.Errorf("Status = %s, want error to stick", op.Status.Kind)
	}
}

func TestCancelInvokesCallbackOnce(t *testing.T) {
	m := newTestManager(t)

	calls := 0
	id := m.Start(ContextSpeechProcessing, StartOptions{
		CanCancel: true,
		OnCancel:  func() { calls++ },
	})

	m.Cancel(id)
	m.Cancel(id)

	if calls != 1 {
		t.Errorf("cancel callback invoked %d times, want 1", calls)
	}
	op, ok := m.Get(id)
	if !ok || op.Status.Kind != StatusCancelled {
		t.Errorf("Get() after cancel = %+v, %v", op, ok)
	}
}

func TestCancelUnknownIDNoOp(t *testing.T) {
	m := newTestManager(t)
	m.Cancel("no-such-id") // must not panic
}

func TestStopSkipsTerminalTransition(t *testing.T) {
	m := newTestManager(t)

	id := m.Start(ContextDataSync, StartOptions{})
	m.Stop(id)

	if _, ok := m.Get(id); ok {
		t.Error("stopped operation still retrievable")
	}
	if got := len(m.Recent()); got != 0 {
		t.Errorf("len(Recent()) after Stop = %d, want 0", got)
	}
}

func TestStopContextAndStopAll(t *testing.T) {
	m := newTestManager(t)

	m.Start(ContextQuizGeneration, StartOptions{})
	m.Start(ContextDataSync, StartOptions{})

	m.StopContext(ContextQuizGeneration)
	if got := len(m.Active()); got != 1 {
		t.Errorf("len(Active()) after StopContext = %d, want 1", got)
	}

	m.Start(ContextGeneral, StartOptions{})
	m.StopAll()
	if got := len(m.Active()); got != 0 {
		t.Errorf("len(Active()) after StopAll = %d, want 0", got)
	}
}

func TestPrimarySelection(t *testing.T) {
	m := newTestManager(t)

	if _, ok := m.Primary(); ok {
		t.Error("Primary() with no operations returned one")
	}

	m.Start(ContextDataSync, StartOptions{})
	verifyID := m.Start(ContextAnswerVerification, StartOptions{})

	primary, ok := m.Primary()
	if !ok || primary.ID != verifyID {
		t.Errorf("Primary() = %+v, want answer verification %q", primary, verifyID)
	}

	quizID := m.Start(ContextQuizGeneration, StartOptions{})
	primary, ok = m.Primary()
	if !ok || primary.ID != quizID {
		t.Errorf("Primary() = %+v, want quiz generation %q", primary, quizID)
	}
}

func TestPrimaryTieBreakLongestRunning(t *testing.T) {
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	current := base
	m := NewManager(testConfig(), WithClock(func() time.Time { return current }))
	defer m.Close()

	older := m.Start(ContextQuizGeneration, StartOptions{})
	current = base.Add(time.Second)
	m.Start(ContextMistakeQuizGeneration, StartOptions{})

	primary, ok := m.Primary()
	if !ok || primary.ID != older {
		t.Errorf("Primary() = %+v, want longest-running %q", primary, older)
	}
}

func TestRunSuccessAndError(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	err := m.Run(ctx, ContextDataSync, "", func(context.Context) error { return nil })
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	recent := m.Recent()
	if len(recent) != 1 || recent[0].Status.Kind != StatusSuccess {
		t.Errorf("Recent() after successful Run = %+v", recent)
	}

	wantErr := errors.New("generator exploded")
	err = m.Run(ctx, ContextGeneral, "", func(context.Context) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want the original error", err)
	}
	found := false
	for _, op := range m.Recent() {
		if op.Status.Kind == StatusError && op.Message == "generator exploded" {
			found = true
		}
	}
	if !found {
		t.Errorf("error run not visible in Recent(): %+v", m.Recent())
	}
}

func TestRunValuePassesValueThrough(t *testing.T) {
	m := newTestManager(t)

	got, err := RunValue(context.Background(), m, ContextQuizGeneration, "", func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Errorf("RunValue() = %d, %v, want 42, nil", got, err)
	}
}

func TestRunCancellationCancelsContext(t *testing.T) {
	m := newTestManager(t)

	started := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background(), ContextSpeechProcessing, "", func(runCtx context.Context) error {
			ops := m.Active()
			if len(ops) == 1 {
				started <- ops[0].ID
			}
			<-runCtx.Done()
			return runCtx.Err()
		})
	}()

	select {
	case id := <-started:
		m.Cancel(id)
	case <-time.After(time.Second):
		t.Fatal("operation never started")
	}

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() after cancel = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled work never unblocked")
	}
}

func TestContextPriorityOrdering(t *testing.T) {
	order := []Context{
		ContextQuizGeneration,
		ContextAnswerVerification,
		ContextSpeechProcessing,
		ContextKeyValidation,
		ContextDataSync,
		ContextGeneral,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1].Priority() <= order[i].Priority() {
			t.Errorf("Priority(%s)=%d not above Priority(%s)=%d",
				order[i-1], order[i-1].Priority(), order[i], order[i].Priority())
		}
	}
	if ContextQuizGeneration.Priority() != ContextMistakeQuizGeneration.Priority() {
		t.Error("quiz and mistake-quiz generation should share the top priority")
	}
}
