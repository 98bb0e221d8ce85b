package actionlog

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Recorder keeps entries in memory and forwards them to an optional
// publisher. It is safe for concurrent use.
type Recorder struct {
	mu        sync.RWMutex
	entries   []*Entry
	seen      map[string]struct{}
	publisher *Publisher
}

// NewRecorder creates a recorder. publisher may be nil.
func NewRecorder(publisher *Publisher) *Recorder {
	return &Recorder{
		seen:      make(map[string]struct{}),
		publisher: publisher,
	}
}

// Record stores an entry and publishes it. An entry already recorded for
// the same action, type, actor and target is ignored so a replayed action
// logs once.
func (r *Recorder) Record(ctx context.Context, entry *Entry, actor, target core.Entity) error {
	if entry == nil {
		return nil
	}

	r.mu.Lock()
	key := entryKey(entry)
	if key != "" {
		if _, ok := r.seen[key]; ok {
			r.mu.Unlock()
			return nil
		}
		r.seen[key] = struct{}{}
	}
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	if r.publisher == nil {
		return nil
	}
	if err := r.publisher.Publish(ctx, entry, actor, target); err != nil {
		log.Printf("[ACTIONLOG] Failed to publish %s: %v", entry.ActionID, err)
		return err
	}
	return nil
}

// Entries returns a copy of everything recorded so far
func (r *Recorder) Entries() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// ForAction returns the entries recorded for one action id
func (r *Recorder) ForAction(actionID string) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Entry
	for _, e := range r.entries {
		if e.ActionID == actionID {
			out = append(out, e)
		}
	}
	return out
}

// Summaries returns the summary lines in order
func (r *Recorder) Summaries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Summary)
	}
	return out
}

// Reset drops everything recorded
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.seen = make(map[string]struct{})
}

func entryKey(e *Entry) string {
	if e.ActionID == "" {
		return ""
	}
	return e.ActionID + "|" + string(e.Type) + "|" + e.ActorID + "|" + e.TargetID + "|" + e.Summary
}
