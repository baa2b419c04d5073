// Package producer provides the publish capability output writers send
// through: a small fire-and-forget Publisher interface and a Kafka
// implementation of it.
package producer

import "context"

// Publisher is a fire-and-forget publish capability. Publish queues the
// payload for delivery to the given topic and returns without waiting for a
// broker acknowledgement.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Stop flushes any queued messages and releases the underlying client,
	// honoring the context's deadline.
	Stop(ctx context.Context) error
}
