package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with additional functionality
type Client struct {
	rdb    *redis.Client
	config *Config
}

// NewClient creates a new Redis client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = NewRedisConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Redis configuration: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:           config.Addr(),
		Password:       config.Password,
		DB:             config.Database,
		MinIdleConns:   config.MinIdleConns,
		MaxActiveConns: config.MaxActive,
		MaxRetries:     config.MaxRetries,
		DialTimeout:    config.DialTimeout,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
	})

	return &Client{
		rdb:    rdb,
		config: config,
	}, nil
}

// Ping tests the connection to Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis client connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// GetConfig returns the Redis configuration
func (c *Client) GetConfig() *Config {
	return c.config
}

// Key joins parts under the configured namespace, e.g. "todo:item:<id>"
func (c *Client) Key(parts ...string) string {
	if c.config.Namespace == "" {
		return strings.Join(parts, ":")
	}
	return c.config.Namespace + ":" + strings.Join(parts, ":")
}

// GetJSON retrieves a JSON value by key into dest. It reports false when the key does not exist.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return decodeJSON(c.rdb.Get(ctx, key), dest)
}

// Watch runs fn in an optimistic transaction, retrying up to maxRetries times when a watched key changes.
func (c *Client) Watch(ctx context.Context, maxRetries int, fn func(*redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := c.rdb.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("transaction on %v aborted after %d retries: %w", keys, maxRetries, redis.TxFailedErr)
}

// TxPipelined runs fn inside MULTI/EXEC
func (c *Client) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	return c.rdb.TxPipelined(ctx, fn)
}

// Publish publishes a message to a channel
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Stats returns connection pool statistics
func (c *Client) Stats() *redis.PoolStats {
	return c.rdb.PoolStats()
}

// DecodeJSON unmarshals the result of a GET issued inside a transaction.
func DecodeJSON(cmd *redis.StringCmd, dest interface{}) (bool, error) {
	return decodeJSON(cmd, dest)
}

func decodeJSON(cmd *redis.StringCmd, dest interface{}) (bool, error) {
	val, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		// key doesn't exist; not an error
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal JSON value: %w", err)
	}
	return true, nil
}
