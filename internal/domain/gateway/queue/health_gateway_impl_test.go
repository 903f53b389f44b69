package queue

import (
	"context"
	"errors"
	"testing"

	"todo-api/internal/domain/model"
)

type stubSender struct {
	err   error
	calls int
}

func (s *stubSender) SendMessage(_ context.Context, _ string, _ any) error {
	s.calls++
	return s.err
}

func TestTrackedSenderHealth(t *testing.T) {
	ctx := context.Background()
	stub := &stubSender{}
	tracked := NewTrackedSender("sqs", stub)

	if got := tracked.Health(ctx).Status; got != model.StatusUnknown {
		t.Fatalf("initial status: got %s, want %s", got, model.StatusUnknown)
	}

	if err := tracked.SendMessage(ctx, "todo-events", map[string]string{"type": "todo.created"}); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	health := tracked.Health(ctx)
	if health.Status != model.StatusUp {
		t.Errorf("status after success: got %s, want %s", health.Status, model.StatusUp)
	}
	if health.Details["published"] != "1" || health.Details["driver"] != "sqs" {
		t.Errorf("details: got %v", health.Details)
	}

	stub.err = errors.New("queue unavailable")
	if err := tracked.SendMessage(ctx, "todo-events", nil); err == nil {
		t.Fatal("SendMessage: expected error")
	}
	health = tracked.Health(ctx)
	if health.Status != model.StatusDown {
		t.Errorf("status after failure: got %s, want %s", health.Status, model.StatusDown)
	}
	if health.Details["last_error"] != "queue unavailable" || health.Details["failed"] != "1" {
		t.Errorf("details: got %v", health.Details)
	}

	stub.err = nil
	_ = tracked.SendMessage(ctx, "todo-events", nil)
	if got := tracked.Health(ctx).Status; got != model.StatusUp {
		t.Errorf("status after recovery: got %s, want %s", got, model.StatusUp)
	}
	if stub.calls != 3 {
		t.Errorf("calls: got %d, want 3", stub.calls)
	}
}

func TestLogSender(t *testing.T) {
	if err := (LogSender{}).SendMessage(context.Background(), "todo-events", "payload"); err != nil {
		t.Errorf("LogSender: got %v, want nil", err)
	}
}
