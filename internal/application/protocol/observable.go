package protocol

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

// Observable fans a committed transition out to registered listeners.
// Listeners are invoked synchronously in registration order; a panicking
// listener is logged and skipped, it never undoes the persisted transition.
type Observable struct {
	mu        sync.RWMutex
	listeners []negotiation.Listener
	logger    zerolog.Logger
}

// NewObservable creates an empty listener registry.
func NewObservable(logger zerolog.Logger) *Observable {
	return &Observable{logger: logger.With().Str("service", "observable").Logger()}
}

// RegisterListener appends a listener. The listener set is meant to be wired
// at startup; listeners sharing mutable state must synchronize themselves.
func (o *Observable) RegisterListener(l negotiation.Listener) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, l)
}

// Requested notifies listeners of a committed REQUESTED transition.
func (o *Observable) Requested(n *negotiation.Negotiation) {
	o.dispatch("requested", n, negotiation.Listener.Requested)
}

// Offered notifies listeners of a committed OFFERED transition.
func (o *Observable) Offered(n *negotiation.Negotiation) {
	o.dispatch("offered", n, negotiation.Listener.Offered)
}

// Accepted notifies listeners of a committed ACCEPTED transition.
func (o *Observable) Accepted(n *negotiation.Negotiation) {
	o.dispatch("accepted", n, negotiation.Listener.Accepted)
}

// Agreed notifies listeners of a committed AGREED transition.
func (o *Observable) Agreed(n *negotiation.Negotiation) {
	o.dispatch("agreed", n, negotiation.Listener.Agreed)
}

// Verified notifies listeners of a committed VERIFIED transition.
func (o *Observable) Verified(n *negotiation.Negotiation) {
	o.dispatch("verified", n, negotiation.Listener.Verified)
}

// Finalized notifies listeners of a committed FINALIZED transition.
func (o *Observable) Finalized(n *negotiation.Negotiation) {
	o.dispatch("finalized", n, negotiation.Listener.Finalized)
}

// Terminated notifies listeners of a committed TERMINATED transition.
func (o *Observable) Terminated(n *negotiation.Negotiation) {
	o.dispatch("terminated", n, negotiation.Listener.Terminated)
}

func (o *Observable) dispatch(event string, n *negotiation.Negotiation, notify func(negotiation.Listener, *negotiation.Negotiation)) {
	o.mu.RLock()
	listeners := make([]negotiation.Listener, len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.RUnlock()

	for _, l := range listeners {
		o.safeNotify(event, n, l, notify)
	}
}

func (o *Observable) safeNotify(event string, n *negotiation.Negotiation, l negotiation.Listener, notify func(negotiation.Listener, *negotiation.Negotiation)) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().Str("event", event).Str("negotiationId", n.ID).Interface("panic", r).Msg("listener panicked")
		}
	}()
	notify(l, n)
}
