package model

import "todo-api/internal/domain/entity"

type TodoListResponse struct {
	Todos []entity.Todo `json:"todos"`
	Count int           `json:"count"`
}

type TodoDeletedResponse struct {
	Message string      `json:"message"`
	Deleted entity.Todo `json:"deleted"`
}

type TodosClearedResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type InfoEndpoints struct {
	Todos string `json:"todos"`
}

type InfoResponse struct {
	Message   string        `json:"message"`
	Version   string        `json:"version"`
	Endpoints InfoEndpoints `json:"endpoints"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationIssue points at the offending body field.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Issues []ValidationIssue `json:"issues"`
}

// TodoReport summarizes the store for the scheduled report.
type TodoReport struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
