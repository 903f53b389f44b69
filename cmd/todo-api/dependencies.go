package main

import (
	"context"
	"errors"
	"fmt"

	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	awsinfra "todo-api/internal/infra/aws"
	gorminfra "todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/internal/infra/lifecycle"
	redisinfra "todo-api/internal/infra/redis"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

type storage struct {
	gateway db.TodoGateway
	health  db.HealthDBGateway
}

type events struct {
	sender      *queue.TrackedSender
	destination string
}

// dependencies builds infra clients once and registers their shutdown.
type dependencies struct {
	manager *lifecycle.Manager
	redis   *redis.Client
}

func newDependencies(manager *lifecycle.Manager) *dependencies {
	return &dependencies{manager: manager}
}

func (deps *dependencies) redisClient(ctx context.Context) (*redis.Client, error) {
	if deps.redis != nil {
		return deps.redis, nil
	}

	client, err := redisinfra.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	deps.manager.Register("redis", func(context.Context) error { return client.Close() })
	deps.redis = client
	return client, nil
}

func (deps *dependencies) todoStorage(ctx context.Context, backend string) (*storage, error) {
	log.Info(msg.GetMessage("todo.storage.selected", backend))

	switch backend {
	case "", "memory":
		gateway := db.NewMemoryTodoGateway()
		return &storage{gateway: gateway, health: gateway}, nil

	case "postgres":
		conn, err := sqlc.Open(ctx)
		if err != nil {
			return nil, err
		}
		deps.manager.Register("postgres", func(context.Context) error { return conn.Close() })

		gateway := db.NewSQLCTodoGateway(conn)
		if err := gateway.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return &storage{gateway: gateway, health: db.NewSQLCHealthDBGateway(conn)}, nil

	case "gorm":
		conn, err := gorminfra.Open()
		if err != nil {
			return nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		deps.manager.Register("gorm", func(context.Context) error { return sqlDB.Close() })

		gateway := db.NewGormTodoGateway(conn)
		if err := gateway.AutoMigrate(ctx); err != nil {
			return nil, err
		}
		return &storage{gateway: gateway, health: db.NewGormHealthDBGateway(conn)}, nil

	case "redis":
		client, err := deps.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		gateway := db.NewRedisTodoGateway(client)
		return &storage{gateway: gateway, health: gateway}, nil
	}

	return nil, errors.New(msg.GetMessage("todo.error.unknown-storage", backend))
}

func (deps *dependencies) eventSender(ctx context.Context, driver string) (*events, error) {
	log.Info(msg.GetMessage("events.selected", driver))

	switch driver {
	case "", "none":
		return &events{sender: queue.NewTrackedSender("none", queue.LogSender{})}, nil

	case "sqs":
		cfg, err := awsinfra.LoadConfig(ctx)
		if err != nil {
			return nil, err
		}
		sender := awsinfra.NewSQSSenderAdapter(awsinfra.NewSqsClient(cfg))
		return &events{
			sender:      queue.NewTrackedSender(driver, sender),
			destination: resource.GetString("app.events.queue"),
		}, nil

	case "redis":
		client, err := deps.redisClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("events: %w", err)
		}
		return &events{
			sender:      queue.NewTrackedSender(driver, redisinfra.NewPubSubSenderAdapter(client)),
			destination: resource.GetString("app.events.channel"),
		}, nil
	}

	return nil, errors.New(msg.GetMessage("events.unknown-driver", driver))
}
