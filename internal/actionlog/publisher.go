package actionlog

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// EventActionResolved is the bus topic entries are published on
const EventActionResolved = "combat.action.resolved"

// Context keys set on published events
const (
	KeyEntry    = "entry"
	KeyActionID = "action_id"
	KeyType     = "type"
	KeySummary  = "summary"
)

// Publisher sends entries to an rpg-toolkit event bus
type Publisher struct {
	bus *rpgevents.Bus
}

// NewPublisher wraps a bus. A nil bus gets a fresh one.
func NewPublisher(bus *rpgevents.Bus) *Publisher {
	if bus == nil {
		bus = rpgevents.NewBus()
	}
	return &Publisher{bus: bus}
}

// Bus returns the underlying bus so callers can subscribe
func (p *Publisher) Bus() *rpgevents.Bus {
	return p.bus
}

// Subscribe registers fn for every published entry and returns the
// subscription id
func (p *Publisher) Subscribe(priority int, fn func(ctx context.Context, entry *Entry) error) string {
	return p.bus.SubscribeFunc(EventActionResolved, priority, func(ctx context.Context, e rpgevents.Event) error {
		entry, ok := EntryFromEvent(e)
		if !ok {
			return nil
		}
		return fn(ctx, entry)
	})
}

// Unsubscribe removes a subscription made with Subscribe
func (p *Publisher) Unsubscribe(id string) error {
	return p.bus.Unsubscribe(id)
}

// Publish sends one entry. actor and target become the event's source and
// target and may be nil.
func (p *Publisher) Publish(ctx context.Context, entry *Entry, actor, target core.Entity) error {
	if entry == nil {
		return errors.InvalidArgument("entry is required")
	}

	event := rpgevents.NewGameEvent(EventActionResolved, actor, target)
	event.Context().Set(KeyEntry, entry)
	event.Context().Set(KeyActionID, entry.ActionID)
	event.Context().Set(KeyType, string(entry.Type))
	event.Context().Set(KeySummary, entry.Summary)
	for k, v := range entry.Details {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s entry %s", entry.Type, entry.ActionID)
	}
	return nil
}

// EntryFromEvent recovers the entry carried by a published event
func EntryFromEvent(e rpgevents.Event) (*Entry, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.Context().Get(KeyEntry)
	if !ok {
		return nil, false
	}
	entry, ok := v.(*Entry)
	return entry, ok
}
