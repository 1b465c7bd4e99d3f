package negotiation

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTransition signals a guard rejected the requested transition.
	ErrInvalidTransition = errors.New("invalid negotiation state transition")
	// ErrAgreementExists signals an attempt to attach a second agreement.
	ErrAgreementExists = errors.New("negotiation already carries an agreement")
)

// Negotiation is one bilateral contract-negotiation instance. The state field
// only ever advances along the edges admitted by the guard predicates; all
// mutation happens read-modify-write under a store lease.
type Negotiation struct {
	ID                     string     `json:"id"`
	CorrelationID          string     `json:"correlationId"`
	CounterPartyID         string     `json:"counterPartyId"`
	CounterPartyAddress    string     `json:"counterPartyAddress"`
	Protocol               string     `json:"protocol"`
	Type                   Type       `json:"type"`
	TenantID               string     `json:"tenantId"`
	State                  State      `json:"state"`
	StateTimestamp         time.Time  `json:"stateTimestamp"`
	ContractOffers         []Offer    `json:"contractOffers"`
	Agreement              *Agreement `json:"agreement,omitempty"`
	LastProcessedMessageID string     `json:"lastProcessedMessageId,omitempty"`
	TerminationReason      string     `json:"terminationReason,omitempty"`
	TerminationCode        string     `json:"terminationCode,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// LastOffer returns the current offer, i.e. the last one appended.
func (n *Negotiation) LastOffer() *Offer {
	if len(n.ContractOffers) == 0 {
		return nil
	}
	return &n.ContractOffers[len(n.ContractOffers)-1]
}

// AppendOffer records a newly received offer as the current one. Offers are
// only ever appended, never removed or reordered.
func (n *Negotiation) AppendOffer(o Offer) {
	n.ContractOffers = append(n.ContractOffers, o)
}

// IsReplay reports whether messageID was already processed, in which case the
// message must be absorbed without re-mutating state.
func (n *Negotiation) IsReplay(messageID string) bool {
	return messageID != "" && n.LastProcessedMessageID == messageID
}

// CanBeRequested guards the inbound request message on the provider side.
func (n *Negotiation) CanBeRequested() bool {
	return n.Type == TypeProvider && requestedPredecessors[n.State]
}

// CanBeOffered guards the inbound offer message on the consumer side.
func (n *Negotiation) CanBeOffered() bool {
	return n.Type == TypeConsumer && offeredPredecessors[n.State]
}

// CanBeAccepted guards the inbound accepted event.
func (n *Negotiation) CanBeAccepted() bool {
	return acceptedPredecessors[n.State]
}

// CanBeAgreed guards the inbound agreement message on the consumer side.
func (n *Negotiation) CanBeAgreed() bool {
	return n.Type == TypeConsumer && agreedPredecessors[n.State]
}

// CanBeVerified guards the inbound verification message on the provider side.
func (n *Negotiation) CanBeVerified() bool {
	return n.Type == TypeProvider && verifiedPredecessors[n.State]
}

// CanBeFinalized guards the inbound finalized event on the consumer side.
func (n *Negotiation) CanBeFinalized() bool {
	return n.Type == TypeConsumer && finalizedPredecessors[n.State] && !n.State.IsTerminal()
}

// CanBeTerminated guards the inbound termination message. Termination is
// reachable from every non-terminal state for either role.
func (n *Negotiation) CanBeTerminated() bool {
	return !n.State.IsTerminal()
}

// TransitionRequested moves the negotiation to REQUESTED.
func (n *Negotiation) TransitionRequested() error {
	if !n.CanBeRequested() {
		return ErrInvalidTransition
	}
	n.transitionTo(StateRequested)
	return nil
}

// TransitionOffered moves the negotiation to OFFERED.
func (n *Negotiation) TransitionOffered() error {
	if !n.CanBeOffered() {
		return ErrInvalidTransition
	}
	n.transitionTo(StateOffered)
	return nil
}

// TransitionAccepted moves the negotiation to ACCEPTED.
func (n *Negotiation) TransitionAccepted() error {
	if !n.CanBeAccepted() {
		return ErrInvalidTransition
	}
	n.transitionTo(StateAccepted)
	return nil
}

// TransitionAgreed moves the negotiation to AGREED and attaches the
// agreement. The agreement is set exactly once.
func (n *Negotiation) TransitionAgreed(agreement *Agreement) error {
	if !n.CanBeAgreed() {
		return ErrInvalidTransition
	}
	if n.Agreement != nil {
		return ErrAgreementExists
	}
	n.Agreement = agreement
	n.transitionTo(StateAgreed)
	return nil
}

// TransitionVerified moves the negotiation to VERIFIED.
func (n *Negotiation) TransitionVerified() error {
	if !n.CanBeVerified() {
		return ErrInvalidTransition
	}
	n.transitionTo(StateVerified)
	return nil
}

// TransitionFinalized moves the negotiation to FINALIZED.
func (n *Negotiation) TransitionFinalized() error {
	if !n.CanBeFinalized() {
		return ErrInvalidTransition
	}
	n.transitionTo(StateFinalized)
	return nil
}

// TransitionTerminated moves the negotiation to TERMINATED, carrying the
// optional reason and code from the termination message.
func (n *Negotiation) TransitionTerminated(reason, code string) error {
	if !n.CanBeTerminated() {
		return ErrInvalidTransition
	}
	n.TerminationReason = reason
	n.TerminationCode = code
	n.transitionTo(StateTerminated)
	return nil
}

func (n *Negotiation) transitionTo(target State) {
	n.State = target
	n.StateTimestamp = time.Now().UTC()
	n.UpdatedAt = n.StateTimestamp
}

// Copy returns a deep copy of the negotiation so callers outside the lease
// scope cannot alias the stored value.
func (n *Negotiation) Copy() *Negotiation {
	dup := *n
	if n.ContractOffers != nil {
		dup.ContractOffers = make([]Offer, len(n.ContractOffers))
		copy(dup.ContractOffers, n.ContractOffers)
	}
	if n.Agreement != nil {
		agreement := *n.Agreement
		dup.Agreement = &agreement
	}
	return &dup
}
