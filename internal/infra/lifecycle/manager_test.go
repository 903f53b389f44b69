package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	_ "todo-api/configs"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	manager := NewManager(time.Second)

	var order []string
	for _, name := range []string{"storage", "events", "http"} {
		name := name
		manager.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	manager.Register("ignored", nil)

	if err := manager.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	want := []string{"http", "events", "storage"}
	if len(order) != len(want) {
		t.Fatalf("order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestShutdownJoinsErrorsAndContinues(t *testing.T) {
	manager := NewManager(time.Second)
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	ran := 0
	manager.Register("a", func(context.Context) error { ran++; return errFirst })
	manager.Register("b", func(context.Context) error { ran++; return nil })
	manager.Register("c", func(context.Context) error { ran++; return errSecond })

	err := manager.Shutdown(context.Background())
	if !errors.Is(err, errFirst) || !errors.Is(err, errSecond) {
		t.Errorf("Shutdown: got %v, want both errors", err)
	}
	if ran != 3 {
		t.Errorf("ran: got %d, want 3", ran)
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown: got %v, want nil", err)
	}
	if ran != 3 {
		t.Errorf("second Shutdown ran hooks again: %d", ran)
	}
}

func TestShutdownAppliesTimeout(t *testing.T) {
	manager := NewManager(20 * time.Millisecond)
	manager.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := manager.Shutdown(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shutdown: got %v, want deadline exceeded", err)
	}
}

func TestNewManagerDefaultTimeout(t *testing.T) {
	if got := NewManager(0).timeout; got != defaultTimeout {
		t.Errorf("timeout: got %v, want %v", got, defaultTimeout)
	}
}
