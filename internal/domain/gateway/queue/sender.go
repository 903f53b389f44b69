package queue

import "context"

// Sender delivers a JSON-serializable body to a named destination (queue or channel).
type Sender interface {
	SendMessage(ctx context.Context, destination string, body any) error
}
