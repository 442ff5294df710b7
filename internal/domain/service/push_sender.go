// Package service defines interfaces for external collaborators consumed by
// the use case layer.
package service

import (
	"context"
)

// PushSender is the fire-and-forget delivery sink for push notifications,
// keyed by opaque device tokens. Implementations must be safe for concurrent
// use. Delivery failures are reported to the caller as errors but are never
// fatal to a fan-out: the caller absorbs them per token.
type PushSender interface {
	// Send submits one push message to a single device token. Platform
	// delivery hints (sound, priority, channel) are fixed configuration of
	// the implementation, not parameters.
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
