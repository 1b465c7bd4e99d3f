package negotiation

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_validator.go -package=mocks . Validator

import (
	"context"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
)

// Validator checks message-specific business rules against the verified
// caller identity. Each method returns nil on success; the failure detail is
// only surfaced to the authenticated direct caller.
type Validator interface {
	// ValidateInitialOffer checks the offer referenced by an initiating
	// message against the catalog and its policy.
	ValidateInitialOffer(ctx context.Context, agent *identity.ParticipantAgent, offer *Offer) error
	// ValidateRequest checks that the caller is the recorded counterparty of
	// an existing negotiation.
	ValidateRequest(ctx context.Context, agent *identity.ParticipantAgent, n *Negotiation) error
	// ValidateConfirmed checks that an inbound agreement matches the last
	// offer recorded on the negotiation.
	ValidateConfirmed(ctx context.Context, agent *identity.ParticipantAgent, agreement *Agreement, latestOffer *Offer) error
}
