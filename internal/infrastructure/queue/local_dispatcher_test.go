package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"avaliadores_api/internal/usecase"
)

type stubProcessor struct {
	processErr error
	processed  chan string
	failed     chan string
}

func newStubProcessor(processErr error) *stubProcessor {
	return &stubProcessor{
		processErr: processErr,
		processed:  make(chan string, 8),
		failed:     make(chan string, 8),
	}
}

func (p *stubProcessor) Process(ctx context.Context, solicitacaoID, taskID string) (usecase.ProcessOutcome, error) {
	p.processed <- solicitacaoID
	if p.processErr != nil {
		return usecase.OutcomeFailure, p.processErr
	}
	return usecase.OutcomeSuccess, nil
}

func (p *stubProcessor) MarkFailed(ctx context.Context, solicitacaoID, message string) {
	p.failed <- solicitacaoID
}

func waitFor(t *testing.T, ch chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func TestLocalDispatcher_DispatchRunsProcessor(t *testing.T) {
	proc := newStubProcessor(nil)
	d := NewLocalDispatcher(proc, 2, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Start(ctx) }()

	taskID, err := d.Dispatch(context.Background(), "sol-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taskID == "" {
		t.Fatalf("expected generated task id")
	}
	waitFor(t, proc.processed, "sol-1")
}

func TestLocalDispatcher_QueueFull(t *testing.T) {
	proc := newStubProcessor(nil)
	d := NewLocalDispatcher(proc, 1, 1)
	// Workers are never started, so the buffer fills after one dispatch.

	if _, err := d.Dispatch(context.Background(), "sol-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := d.Dispatch(context.Background(), "sol-2")
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestLocalDispatcher_FaultCallsOnFailureHook(t *testing.T) {
	proc := newStubProcessor(errors.New("repo down"))
	d := NewLocalDispatcher(proc, 1, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = d.Start(ctx) }()

	if _, err := d.Dispatch(context.Background(), "sol-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitFor(t, proc.processed, "sol-1")
	waitFor(t, proc.failed, "sol-1")
}

func TestLocalDispatcher_StartStopsOnCancel(t *testing.T) {
	proc := newStubProcessor(nil)
	d := NewLocalDispatcher(proc, 2, 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("workers did not stop")
	}
}
