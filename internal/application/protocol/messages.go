package protocol

import (
	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

// RequestMessage is an inbound contract request (consumer → provider). An
// empty ProviderPID marks the initiating message of a new negotiation.
type RequestMessage struct {
	ID              string                       `json:"id"`
	ProviderPID     string                       `json:"providerPid,omitempty"`
	ConsumerPID     string                       `json:"consumerPid"`
	CallbackAddress string                       `json:"callbackAddress,omitempty"`
	Protocol        string                       `json:"protocol,omitempty"`
	Token           identity.TokenRepresentation `json:"-"`
	Offer           negotiation.Offer            `json:"offer"`
}

// OfferMessage is an inbound contract offer (provider → consumer). An empty
// ConsumerPID marks the initiating message of a new negotiation.
type OfferMessage struct {
	ID              string                       `json:"id"`
	ProviderPID     string                       `json:"providerPid"`
	ConsumerPID     string                       `json:"consumerPid,omitempty"`
	CallbackAddress string                       `json:"callbackAddress,omitempty"`
	Protocol        string                       `json:"protocol,omitempty"`
	Token           identity.TokenRepresentation `json:"-"`
	Offer           negotiation.Offer            `json:"offer"`
}

// EventMessage carries the accepted and finalized protocol events.
type EventMessage struct {
	ID        string                       `json:"id"`
	ProcessID string                       `json:"processId"`
	Token     identity.TokenRepresentation `json:"-"`
}

// AgreementMessage carries the agreement from provider to consumer.
type AgreementMessage struct {
	ID        string                       `json:"id"`
	ProcessID string                       `json:"processId"`
	Token     identity.TokenRepresentation `json:"-"`
	Agreement negotiation.Agreement        `json:"agreement"`
}

// VerificationMessage carries the consumer's agreement verification.
type VerificationMessage struct {
	ID        string                       `json:"id"`
	ProcessID string                       `json:"processId"`
	Token     identity.TokenRepresentation `json:"-"`
}

// TerminationMessage ends a negotiation with an optional reason and code.
type TerminationMessage struct {
	ID        string                       `json:"id"`
	ProcessID string                       `json:"processId"`
	Token     identity.TokenRepresentation `json:"-"`
	Reason    string                       `json:"reason,omitempty"`
	Code      string                       `json:"code,omitempty"`
}
