package service

import (
	"context"
	"errors"

	"github.com/thepKz/gender-care-sub009/internal/logging"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

// EventPublisher is satisfied by events.Producer. Services treat a nil
// publisher as "events disabled".
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

// publish sends a domain event and only logs on failure; an unreachable
// broker must not fail the request.
func publish(ctx context.Context, p EventPublisher, topic, key string, event any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "topic", topic, "error", err)
	}
}
