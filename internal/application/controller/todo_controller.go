package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/validator"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/msg"
)

type TodoController struct {
	api       *echo.Group
	useCase   todo.UseCase
	validator *validator.Validator
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, validator *validator.Validator) *TodoController {
	return &TodoController{api: api, useCase: useCase, validator: validator}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.UpdateByID)
	controller.api.DELETE("/todos/:id", controller.DeleteByID)
	controller.api.DELETE("/todos", controller.DeleteAll)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve every todo in insertion order
// @Tags todos
// @Produce json
// @Success 200 {object} model.TodoListResponse "Todos and their count"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} entity.Todo
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Router /api/todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	todo, err := controller.useCase.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo with the given title; completed starts as false
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo to create"
// @Success 201 {object} entity.Todo
// @Failure 400 {object} model.ValidationErrorResponse "Invalid body"
// @Router /api/todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return respondError(c, err)
	}

	dto, err := controller.validator.ValidateCreate(body)
	if err != nil {
		return respondError(c, err)
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateByID godoc
// @Summary Update a todo
// @Description Partial update: only the supplied fields change
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Fields to update"
// @Success 200 {object} entity.Todo
// @Failure 400 {object} model.ValidationErrorResponse "Invalid body"
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Router /api/todos/{id} [put]
func (controller *TodoController) UpdateByID(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return respondError(c, err)
	}

	// body is validated before the record lookup
	dto, err := controller.validator.ValidateUpdate(body)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := controller.useCase.UpdateByID(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteByID godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo id"
// @Success 200 {object} model.TodoDeletedResponse
// @Failure 404 {object} model.ErrorResponse "Todo not found"
// @Router /api/todos/{id} [delete]
func (controller *TodoController) DeleteByID(c echo.Context) error {
	deleted, err := controller.useCase.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.TodoDeletedResponse{
		Message: msg.GetMessage("todo.message.deleted"),
		Deleted: *deleted,
	})
}

// DeleteAll godoc
// @Summary Delete every todo
// @Tags todos
// @Produce json
// @Success 200 {object} model.TodosClearedResponse
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/todos [delete]
func (controller *TodoController) DeleteAll(c echo.Context) error {
	count, err := controller.useCase.DeleteAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.TodosClearedResponse{
		Message:      msg.GetMessage("todo.message.cleared", count),
		DeletedCount: count,
	})
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// body limit exceeded while streaming
		return nil, httpErr
	}
	if err != nil {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.invalid-body"), []model.ValidationIssue{
			{Path: "", Message: err.Error()},
		})
	}
	return body, nil
}
