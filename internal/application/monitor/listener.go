package monitor

import (
	"github.com/rs/zerolog"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

// Listener writes one structured log entry per committed negotiation
// transition.
type Listener struct {
	logger zerolog.Logger
}

// NewListener creates the state-transition monitor.
func NewListener(logger zerolog.Logger) *Listener {
	return &Listener{logger: logger.With().Str("service", "monitor").Logger()}
}

func (l *Listener) Requested(n *negotiation.Negotiation)  { l.log("requested", n) }
func (l *Listener) Offered(n *negotiation.Negotiation)    { l.log("offered", n) }
func (l *Listener) Accepted(n *negotiation.Negotiation)   { l.log("accepted", n) }
func (l *Listener) Agreed(n *negotiation.Negotiation)     { l.log("agreed", n) }
func (l *Listener) Verified(n *negotiation.Negotiation)   { l.log("verified", n) }
func (l *Listener) Finalized(n *negotiation.Negotiation)  { l.log("finalized", n) }

func (l *Listener) Terminated(n *negotiation.Negotiation) {
	l.logger.Info().
		Str("negotiationId", n.ID).
		Str("counterParty", n.CounterPartyID).
		Str("reason", n.TerminationReason).
		Str("code", n.TerminationCode).
		Msg("negotiation terminated")
}

func (l *Listener) log(event string, n *negotiation.Negotiation) {
	l.logger.Info().
		Str("event", event).
		Str("negotiationId", n.ID).
		Str("counterParty", n.CounterPartyID).
		Str("state", string(n.State)).
		Msg("negotiation event")
}
