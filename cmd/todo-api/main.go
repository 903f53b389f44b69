package main

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"todo-api/configs"
	"todo-api/internal/application/schedule"
	"todo-api/internal/application/server"
	"todo-api/internal/application/validator"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/lifecycle"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0.0
// @description CRUD over a collection of todo records.
// @BasePath /
func main() {
	defer func() { _ = log.Sync() }()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := lifecycle.NotifyContext(context.Background())
	defer stop()

	manager := lifecycle.NewManager(resource.GetDuration("app.server.shutdown-timeout"))
	deps := newDependencies(manager)

	// Init gateways
	storage, err := deps.todoStorage(ctx, resource.GetString("app.todo.storage"))
	if err != nil {
		log.Fatal(err.Error())
	}
	events, err := deps.eventSender(ctx, resource.GetString("app.events.driver"))
	if err != nil {
		log.Fatal(err.Error())
	}

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(storage.gateway, events.sender, events.destination)
	healthUseCase := health.NewHealthUseCase(storage.health, events.sender)

	// Init Routes
	e := server.New(server.Options{
		TodoUseCase:   todoUseCase,
		HealthUseCase: healthUseCase,
		Validator:     validator.MustNew(),
		Version:       configs.Env.Version,
		ContextPath:   configs.Env.ContextPath,
		Swagger:       resource.GetBool("app.server.swagger"),
	})

	// Init Schedule
	reportScheduler := schedule.NewTodoReportScheduler(todoUseCase, resource.GetString("app.todo.report.cron"))
	if err := reportScheduler.InitTodoReportScheduleTasks(); err != nil {
		log.Fatal(err.Error())
	}
	manager.Register("scheduler", reportScheduler.Stop)
	manager.Register("http", e.Shutdown)

	// Start Routes
	go func() {
		addr := ":" + configs.Env.Port
		var err error
		if resource.GetBool("app.server.h2c") {
			err = e.StartH2CServer(addr, &http2.Server{})
		} else {
			err = e.Start(addr)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err.Error())
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", configs.Env.Port), zap.String("port", configs.Env.Port))

	<-ctx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		log.Error(err.Error())
	}
	log.Info(msg.GetMessage("app.stopped"))
}
