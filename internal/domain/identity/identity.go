package identity

import (
	"context"
	"errors"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_service.go -package=mocks . Service

// ErrTokenVerification signals that a bearer token could not be verified.
var ErrTokenVerification = errors.New("identity: token verification failed")

// TokenRepresentation is the raw bearer token as received on the wire.
type TokenRepresentation struct {
	Token string `json:"token"`
}

// ParticipantAgent is the verified identity of a remote protocol caller.
type ParticipantAgent struct {
	Identity string
	TenantID string
	Claims   map[string]interface{}
}

// VerificationContext parameterizes token verification with the policy
// governing the targeted negotiation (or initial offer) and the inbound
// message kind.
type VerificationContext struct {
	Policy  policy.Policy
	Message string
}

// Service exchanges a token representation for a verified participant agent.
type Service interface {
	VerifyToken(ctx context.Context, token TokenRepresentation, vctx VerificationContext) (*ParticipantAgent, error)
}
