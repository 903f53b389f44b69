package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const defaultTimeout = 15 * time.Second

// StopFunc releases one component of the application.
type StopFunc func(ctx context.Context) error

type component struct {
	name string
	stop StopFunc
}

// Manager stops registered components in reverse registration order.
type Manager struct {
	timeout time.Duration

	mutex      sync.Mutex
	components []component
	stopped    bool
}

func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Manager{timeout: timeout}
}

// Register adds a component; nil stop functions are ignored.
func (manager *Manager) Register(name string, stop StopFunc) {
	if stop == nil {
		return
	}
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	manager.components = append(manager.components, component{name: name, stop: stop})
}

// Shutdown runs every stop function within the configured timeout. A second call is a no-op.
func (manager *Manager) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, manager.timeout)
	defer cancel()

	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if manager.stopped {
		return nil
	}
	manager.stopped = true

	var result error
	for i := len(manager.components) - 1; i >= 0; i-- {
		c := manager.components[i]
		if err := c.stop(ctx); err != nil {
			log.Error(msg.GetMessage("app.component-stop-failed", c.name), zap.String("component", c.name), zap.Error(err))
			result = errors.Join(result, err)
			continue
		}
		log.Info(msg.GetMessage("app.component-stopped", c.name), zap.String("component", c.name))
	}
	return result
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			log.Info(msg.GetMessage("app.stopping", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
