// Package dispatch provides the in-process event bus token resolution
// uses as its extensibility hook.
package dispatch

import (
	"context"

	"langtoken/internal/domain/events"
	"langtoken/internal/ports/output"
)

var _ output.EventDispatcher = (*Bus)(nil)

// Bus delivers events synchronously to observers in subscription order.
// Subscribe is expected to happen during wiring, before any Dispatch;
// the bus does no locking of its own.
type Bus struct {
	observers map[string][]output.ReplacementObserver
}

func NewBus() *Bus {
	return &Bus{observers: map[string][]output.ReplacementObserver{}}
}

// Subscribe appends an observer for the named event.
func (b *Bus) Subscribe(name string, obs output.ReplacementObserver) {
	b.observers[name] = append(b.observers[name], obs)
}

// Dispatch runs every observer subscribed under name against the event,
// in subscription order. The first observer error aborts the dispatch
// and is returned unchanged.
func (b *Bus) Dispatch(ctx context.Context, name string, ev *events.Replacement) error {
	for _, obs := range b.observers[name] {
		if err := obs(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
