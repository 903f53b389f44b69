package queue

import (
	"context"

	"go.uber.org/zap"

	"todo-api/pkg/log"
)

// LogSender only logs events; used when no broker is configured.
type LogSender struct{}

var _ Sender = LogSender{}

func (LogSender) SendMessage(_ context.Context, destination string, body any) error {
	log.Debug("event", zap.String("destination", destination), zap.Any("body", body))
	return nil
}
