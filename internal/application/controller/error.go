package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// respondError maps domain errors to HTTP responses; anything else is a 500.
func respondError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, model.ErrorResponse{Error: http.StatusText(httpErr.Code)})
	}

	dErr, ok := model.AsDomainError(err)
	if !ok {
		log.Error(msg.GetMessage("todo.error.internal"), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: msg.GetMessage("todo.error.internal")})
	}

	switch dErr.Code {
	case model.ErrCodeNotFound:
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: dErr.Message})
	case model.ErrCodeInvalid:
		issues := dErr.Issues
		if issues == nil {
			issues = []model.ValidationIssue{}
		}
		return c.JSON(http.StatusBadRequest, model.ValidationErrorResponse{Error: dErr.Message, Issues: issues})
	default:
		log.Error(dErr.Message, zap.Error(dErr.Unwrap()))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: dErr.Message})
	}
}
