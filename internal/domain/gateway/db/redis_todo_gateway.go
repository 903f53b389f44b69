package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

const redisTxRetries = 5

// RedisTodoGateway stores each todo as a JSON value and keeps the insertion order in a list of ids.
type RedisTodoGateway struct {
	client *redis.Client
	health *redis.HealthChecker
	now    func() time.Time
}

var _ TodoGateway = (*RedisTodoGateway)(nil)
var _ HealthDBGateway = (*RedisTodoGateway)(nil)

func NewRedisTodoGateway(client *redis.Client) *RedisTodoGateway {
	return &RedisTodoGateway{
		client: client,
		health: redis.NewHealthChecker(client),
		now:    time.Now,
	}
}

func (gateway *RedisTodoGateway) itemKey(id string) string {
	return gateway.client.Key("item", id)
}

func (gateway *RedisTodoGateway) indexKey() string {
	return gateway.client.Key("index")
}

func (gateway *RedisTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	rdb := gateway.client.GetClient()

	ids, err := rdb.LRange(ctx, gateway.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	results := make([]entity.Todo, 0, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gateway.itemKey(id)
	}

	values, err := rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// removed between LRANGE and MGET
			continue
		}
		var todo entity.Todo
		if err := json.Unmarshal([]byte(raw), &todo); err != nil {
			return nil, fmt.Errorf("decode todo %s: %w", ids[i], err)
		}
		results = append(results, todo)
	}
	return results, nil
}

func (gateway *RedisTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var todo entity.Todo
	found, err := gateway.client.GetJSON(ctx, gateway.itemKey(id), &todo)
	if err != nil || !found {
		return nil, err
	}
	return &todo, nil
}

func (gateway *RedisTodoGateway) Count(ctx context.Context) (int64, error) {
	return gateway.client.GetClient().LLen(ctx, gateway.indexKey()).Result()
}

func (gateway *RedisTodoGateway) Create(ctx context.Context, title string) (*entity.Todo, error) {
	todo := entity.NewTodo(title, gateway.now())

	payload, err := json.Marshal(todo)
	if err != nil {
		return nil, err
	}

	_, err = gateway.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, gateway.itemKey(todo.ID), payload, 0)
		pipe.RPush(ctx, gateway.indexKey(), todo.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *RedisTodoGateway) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	key := gateway.itemKey(id)
	var updated *entity.Todo

	err := gateway.client.Watch(ctx, redisTxRetries, func(tx *goredis.Tx) error {
		updated = nil

		var todo entity.Todo
		found, err := redis.DecodeJSON(tx.Get(ctx, key), &todo)
		if err != nil || !found {
			return err
		}

		todo.Apply(dto.Title, dto.Completed, gateway.now())
		payload, err := json.Marshal(todo)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err == nil {
			updated = &todo
		}
		return err
	}, key)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (gateway *RedisTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	key := gateway.itemKey(id)
	var deleted *entity.Todo

	err := gateway.client.Watch(ctx, redisTxRetries, func(tx *goredis.Tx) error {
		deleted = nil

		var todo entity.Todo
		found, err := redis.DecodeJSON(tx.Get(ctx, key), &todo)
		if err != nil || !found {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.LRem(ctx, gateway.indexKey(), 1, id)
			return nil
		})
		if err == nil {
			deleted = &todo
		}
		return err
	}, key)
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (gateway *RedisTodoGateway) DeleteAll(ctx context.Context) (int64, error) {
	index := gateway.indexKey()
	var count int64

	err := gateway.client.Watch(ctx, redisTxRetries, func(tx *goredis.Tx) error {
		ids, err := tx.LRange(ctx, index, 0, -1).Result()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(ids)+1)
		for _, id := range ids {
			keys = append(keys, gateway.itemKey(id))
		}
		keys = append(keys, index)

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Del(ctx, keys...)
			return nil
		})
		if err == nil {
			count = int64(len(ids))
		}
		return err
	}, index)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (gateway *RedisTodoGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.health.HealthCheck(ctx)

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	check.Details["backend"] = "redis"

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
