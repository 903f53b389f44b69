package todo

import (
	"context"
	"errors"
	"testing"

	_ "todo-api/configs"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type recordingSender struct {
	err          error
	destinations []string
	events       []model.TodoEvent
}

func (s *recordingSender) SendMessage(_ context.Context, destination string, body any) error {
	s.destinations = append(s.destinations, destination)
	if event, ok := body.(model.TodoEvent); ok {
		s.events = append(s.events, event)
	}
	return s.err
}

// failingGateway fails every call with err
type failingGateway struct {
	db.TodoGateway
	err error
}

func (g failingGateway) FindAll(context.Context) ([]entity.Todo, error) { return nil, g.err }
func (g failingGateway) FindByID(context.Context, string) (*entity.Todo, error) {
	return nil, g.err
}
func (g failingGateway) DeleteAll(context.Context) (int64, error) { return 0, g.err }

func hasCode(err error, code model.ErrorCode) bool {
	dErr, ok := model.AsDomainError(err)
	return ok && dErr.Code == code
}

func ptr[T any](v T) *T {
	return &v
}

func newUseCase(sender *recordingSender) UseCase {
	return NewTodoUseCase(db.NewMemoryTodoGateway(), sender, "todo-events")
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	useCase := newUseCase(sender)

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Title != "buy milk" || created.Completed {
		t.Errorf("Create: got %+v", created)
	}

	found, err := useCase.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if *found != *created {
		t.Errorf("FindByID: got %+v, want %+v", found, created)
	}

	if len(sender.events) != 1 || sender.events[0].Type != model.TodoCreated {
		t.Fatalf("events: got %+v, want one %s", sender.events, model.TodoCreated)
	}
	if sender.destinations[0] != "todo-events" {
		t.Errorf("destination: got %q, want %q", sender.destinations[0], "todo-events")
	}
	if sender.events[0].Todo == nil || sender.events[0].Todo.ID != created.ID {
		t.Errorf("event todo: got %+v", sender.events[0].Todo)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	useCase := newUseCase(sender)

	_, err := useCase.Create(ctx, model.CreateTodoDTO{Title: ""})
	dErr, ok := model.AsDomainError(err)
	if !ok || dErr.Code != model.ErrCodeInvalid {
		t.Fatalf("Create(empty): got %v, want INVALID domain error", err)
	}
	if len(dErr.Issues) != 1 || dErr.Issues[0].Message != "Title is required" {
		t.Errorf("issues: got %+v", dErr.Issues)
	}

	list, _ := useCase.FindAll(ctx)
	if list.Count != 0 {
		t.Errorf("collection changed: count %d", list.Count)
	}
	if len(sender.events) != 0 {
		t.Errorf("events published on rejected create: %+v", sender.events)
	}
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	useCase := newUseCase(&recordingSender{})

	tests := []struct {
		name string
		call func() error
	}{
		{"FindByID", func() error { _, err := useCase.FindByID(ctx, "missing"); return err }},
		{"UpdateByID", func() error {
			_, err := useCase.UpdateByID(ctx, "missing", model.UpdateTodoDTO{Completed: ptr(true)})
			return err
		}},
		{"DeleteByID", func() error { _, err := useCase.DeleteByID(ctx, "missing"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !hasCode(err, model.ErrCodeNotFound) {
				t.Fatalf("got %v, want NOT_FOUND", err)
			}
			if err.Error() != "Todo not found" {
				t.Errorf("message: got %q, want %q", err.Error(), "Todo not found")
			}
		})
	}
}

func TestUpdateDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	sender := &recordingSender{}
	useCase := newUseCase(sender)

	first, _ := useCase.Create(ctx, model.CreateTodoDTO{Title: "first"})
	_, _ = useCase.Create(ctx, model.CreateTodoDTO{Title: "second"})

	updated, err := useCase.UpdateByID(ctx, first.ID, model.UpdateTodoDTO{Completed: ptr(true)})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if !updated.Completed || updated.Title != "first" {
		t.Errorf("UpdateByID: got %+v", updated)
	}

	report, err := useCase.Report(ctx)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if *report != (model.TodoReport{Total: 2, Completed: 1, Pending: 1}) {
		t.Errorf("Report: got %+v", report)
	}

	deleted, err := useCase.DeleteByID(ctx, first.ID)
	if err != nil || deleted.ID != first.ID {
		t.Fatalf("DeleteByID: got (%+v, %v)", deleted, err)
	}

	count, err := useCase.DeleteAll(ctx)
	if err != nil || count != 1 {
		t.Fatalf("DeleteAll: got (%d, %v), want (1, nil)", count, err)
	}

	list, _ := useCase.FindAll(ctx)
	if list.Count != 0 || list.Todos == nil {
		t.Errorf("FindAll after DeleteAll: got %#v", list)
	}

	wantTypes := []model.TodoEventType{model.TodoCreated, model.TodoCreated, model.TodoUpdated, model.TodoDeleted, model.TodoCleared}
	if len(sender.events) != len(wantTypes) {
		t.Fatalf("events: got %d, want %d", len(sender.events), len(wantTypes))
	}
	for i, want := range wantTypes {
		if sender.events[i].Type != want {
			t.Errorf("events[%d]: got %s, want %s", i, sender.events[i].Type, want)
		}
	}
	if sender.events[4].DeletedCount != 1 {
		t.Errorf("cleared count: got %d, want 1", sender.events[4].DeletedCount)
	}
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	useCase := newUseCase(&recordingSender{err: errors.New("broker down")})

	created, err := useCase.Create(ctx, model.CreateTodoDTO{Title: "buy milk"})
	if err != nil || created == nil {
		t.Fatalf("Create: got (%v, %v), want record", created, err)
	}
}

func TestNilSender(t *testing.T) {
	useCase := NewTodoUseCase(db.NewMemoryTodoGateway(), nil, "")
	if _, err := useCase.Create(context.Background(), model.CreateTodoDTO{Title: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestGatewayErrorsAreInternal(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	useCase := NewTodoUseCase(failingGateway{err: cause}, nil, "")

	_, err := useCase.FindAll(ctx)
	if !hasCode(err, model.ErrCodeInternal) {
		t.Fatalf("FindAll: got %v, want INTERNAL", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("FindAll: cause not wrapped: %v", err)
	}

	if _, err := useCase.FindByID(ctx, "x"); !hasCode(err, model.ErrCodeInternal) {
		t.Errorf("FindByID: got %v, want INTERNAL", err)
	}
	if _, err := useCase.DeleteAll(ctx); !hasCode(err, model.ErrCodeInternal) {
		t.Errorf("DeleteAll: got %v, want INTERNAL", err)
	}
}
