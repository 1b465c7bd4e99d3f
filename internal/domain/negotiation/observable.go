package negotiation

// Listener receives one synchronous callback per successful, already
// persisted transition. Fan-out is best-effort: a failing listener must not
// undo the committed transition.
type Listener interface {
	Requested(n *Negotiation)
	Offered(n *Negotiation)
	Accepted(n *Negotiation)
	Agreed(n *Negotiation)
	Verified(n *Negotiation)
	Finalized(n *Negotiation)
	Terminated(n *Negotiation)
}
