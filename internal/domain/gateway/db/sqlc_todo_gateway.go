package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

const todoColumns = `id, title, completed, created_at, updated_at`

// the seq column only exists to keep insertion order stable
const createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL UNIQUE,
		title      TEXT NOT NULL CHECK (title <> ''),
		completed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`

type rowScanner interface {
	Scan(dest ...any) error
}

type SQLCTodoGateway struct {
	DB  *sql.DB
	now func() time.Time
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db, now: time.Now}
}

// EnsureSchema creates the todos table when missing
func (gateway *SQLCTodoGateway) EnsureSchema(ctx context.Context) error {
	if _, err := gateway.DB.ExecContext(ctx, createTodosTable); err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}
	return nil
}

func (gateway *SQLCTodoGateway) FindAll(ctx context.Context) (results []entity.Todo, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results = make([]entity.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *todo)
	}
	return results, rows.Err()
}

func (gateway *SQLCTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return todo, err
}

func (gateway *SQLCTodoGateway) Count(ctx context.Context) (int64, error) {
	var count int64
	err := gateway.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count)
	return count, err
}

func (gateway *SQLCTodoGateway) Create(ctx context.Context, title string) (*entity.Todo, error) {
	todo := entity.NewTodo(title, gateway.now())

	_, err := gateway.DB.ExecContext(ctx, `
		INSERT INTO todos (id, title, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		todo.ID, todo.Title, todo.Completed, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (gateway *SQLCTodoGateway) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (updated *entity.Todo, err error) {
	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil || updated == nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := scanTodo(tx.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1
		FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Apply(dto.Title, dto.Completed, gateway.now())

	_, err = tx.ExecContext(ctx, `
		UPDATE todos
		SET title = $1, completed = $2, updated_at = $3
		WHERE id = $4`,
		existing.Title, existing.Completed, existing.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return existing, nil
}

func (gateway *SQLCTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		DELETE FROM todos
		WHERE id = $1
		RETURNING `+todoColumns, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return todo, err
}

func (gateway *SQLCTodoGateway) DeleteAll(ctx context.Context) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM todos`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanTodo(row rowScanner) (*entity.Todo, error) {
	var todo entity.Todo
	if err := row.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
		return nil, err
	}
	todo.CreatedAt = entity.Timestamp(todo.CreatedAt)
	todo.UpdatedAt = entity.Timestamp(todo.UpdatedAt)
	return &todo, nil
}
