package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/validator"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
)

type Options struct {
	TodoUseCase   todo.UseCase
	HealthUseCase health.UseCase
	Validator     *validator.Validator
	Version       string
	ContextPath   string
	Swagger       bool
}

// New builds the echo instance with middleware and every route registered.
func New(options Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e)

	api := e.Group(options.ContextPath)

	controller.NewInfoController(e, options.Version, options.ContextPath).InitInfoRoutes()
	controller.NewHealthController(e, options.HealthUseCase).InitHealthRoutes()
	controller.NewTodoController(api, options.TodoUseCase, options.Validator).InitTodoRoutes()

	if options.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}
