package eventbus

import (
	"context"
)

// Publisher is what Runner.publishEvents sends a schedule's domain events
// to after a successful save. RabbitMQPublisher is the production
// implementation; NoopPublisher (rabbitmq_publisher.go) is NewRunner's
// fallback when none is configured.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}
