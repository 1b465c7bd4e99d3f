package negotiation

// State represents the negotiation protocol state.
type State string

const (
	StateInitial     State = "INITIAL"
	StateRequesting  State = "REQUESTING"
	StateRequested   State = "REQUESTED"
	StateOffering    State = "OFFERING"
	StateOffered     State = "OFFERED"
	StateAccepting   State = "ACCEPTING"
	StateAccepted    State = "ACCEPTED"
	StateAgreeing    State = "AGREEING"
	StateAgreed      State = "AGREED"
	StateVerifying   State = "VERIFYING"
	StateVerified    State = "VERIFIED"
	StateFinalizing  State = "FINALIZING"
	StateFinalized   State = "FINALIZED"
	StateTerminating State = "TERMINATING"
	StateTerminated  State = "TERMINATED"
)

// IsTerminal reports whether s is an absorbing state with no outgoing edges.
func (s State) IsTerminal() bool {
	return s == StateFinalized || s == StateTerminated
}

// Type is the immutable role a connector plays in a negotiation.
type Type string

const (
	TypeConsumer Type = "CONSUMER"
	TypeProvider Type = "PROVIDER"
)

// Predecessor sets for inbound transitions. The intermediate *-ING states
// belong to the outbound manager side; inbound processing never lands on
// them, so they appear only as termination predecessors.
var (
	requestedPredecessors = map[State]bool{StateInitial: true, StateOffered: true}
	offeredPredecessors   = map[State]bool{StateInitial: true, StateRequested: true}
	acceptedPredecessors  = map[State]bool{StateOffered: true}
	agreedPredecessors    = map[State]bool{StateRequested: true, StateAccepted: true}
	verifiedPredecessors  = map[State]bool{StateAgreed: true}
	finalizedPredecessors = map[State]bool{StateVerified: true}
)
