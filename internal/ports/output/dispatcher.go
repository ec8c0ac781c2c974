package output

import (
	"context"

	"langtoken/internal/domain/events"
)

// ReplacementObserver inspects and may mutate a replacement event.
// Returning an error aborts the dispatch and propagates to the caller.
type ReplacementObserver func(ctx context.Context, ev *events.Replacement) error

// EventDispatcher delivers a replacement event to every observer
// subscribed under name, synchronously and in subscription order.
type EventDispatcher interface {
	Dispatch(ctx context.Context, name string, ev *events.Replacement) error
}
