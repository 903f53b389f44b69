package queue

import (
	"context"
	"strconv"
	"sync"
	"time"

	"todo-api/internal/domain/model"
)

// TrackedSender wraps a Sender and reports its delivery history as a health component.
type TrackedSender struct {
	sender    Sender
	driver    string
	mutex     sync.RWMutex
	published int64
	failed    int64
	lastError string
	lastSent  time.Time
}

var _ Sender = (*TrackedSender)(nil)
var _ HealthGateway = (*TrackedSender)(nil)

func NewTrackedSender(driver string, sender Sender) *TrackedSender {
	return &TrackedSender{
		sender: sender,
		driver: driver,
	}
}

func (gateway *TrackedSender) SendMessage(ctx context.Context, destination string, body any) error {
	err := gateway.sender.SendMessage(ctx, destination, body)

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.lastSent = time.Now()
	if err != nil {
		gateway.failed++
		gateway.lastError = err.Error()
		return err
	}
	gateway.published++
	gateway.lastError = ""
	return nil
}

// Health is UNKNOWN until the first delivery, DOWN when the last delivery failed.
func (gateway *TrackedSender) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	details := map[string]string{
		"driver":    gateway.driver,
		"published": strconv.FormatInt(gateway.published, 10),
		"failed":    strconv.FormatInt(gateway.failed, 10),
	}

	if gateway.published == 0 && gateway.failed == 0 {
		details["message"] = "No events published yet"
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: details}
	}

	details["last_sent"] = gateway.lastSent.UTC().Format(time.RFC3339)
	if gateway.lastError != "" {
		details["last_error"] = gateway.lastError
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
