package kb

import (
	"github.com/arglab/defarg/internal/proof"
	"github.com/arglab/defarg/internal/term"
	"github.com/google/uuid"
)

// EventKind discriminates the four notifications a KnowledgeBase publishes.
type EventKind int

const (
	// EventRulesAdded fires after rules (a user rule plus any
	// contrapositions, or a single defeasible rule) are added.
	EventRulesAdded EventKind = iota
	// EventRulesDeleted fires after rules are removed.
	EventRulesDeleted
	// EventOrderingChanged fires after a preference ordering is inserted
	// or deleted.
	EventOrderingChanged
	// EventUpdated fires whenever the proof set changes, whether new
	// proofs were added (Added true) or existing ones were invalidated by
	// a deletion (Added false).
	EventUpdated
)

// Event is delivered to every Observer subscribed to a KnowledgeBase.
// Subscribers run synchronously, in subscription order, and must not
// mutate the knowledge base from within the callback.
type Event struct {
	Kind     EventKind
	Rules    []term.Rule
	Ordering term.Ordering
	Proofs   []*proof.Proof
	Added    bool
}

// Observer receives KnowledgeBase events. See Event.
type Observer func(Event)

type subscription struct {
	id uuid.UUID
	fn Observer
}

// Subscribe registers obs to receive every future event and returns a
// handle that Unsubscribe accepts to remove it. Grounded on the pack's
// idiom of uuid.New()-keyed handles (server/token.go, server/dao/*) applied
// to the func-callback registration shape of
// internal/ictiobus/parse.(*lrParser).RegisterTraceListener.
func (kb *KnowledgeBase) Subscribe(obs Observer) uuid.UUID {
	id := uuid.New()
	kb.observers = append(kb.observers, subscription{id: id, fn: obs})
	return id
}

// Unsubscribe removes a previously registered observer. It is a no-op if id
// is not currently subscribed.
func (kb *KnowledgeBase) Unsubscribe(id uuid.UUID) {
	for i, s := range kb.observers {
		if s.id == id {
			kb.observers = append(kb.observers[:i], kb.observers[i+1:]...)
			return
		}
	}
}

func (kb *KnowledgeBase) publish(e Event) {
	for _, s := range kb.observers {
		s.fn(e)
	}
}
