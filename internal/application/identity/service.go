package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	domainIdentity "github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
)

// Service verifies HMAC-signed bearer tokens and derives the participant
// agent from their claims.
type Service struct {
	secret []byte
	logger zerolog.Logger
}

// NewService creates a token verification service.
func NewService(secret string, logger zerolog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		logger: logger.With().Str("service", "identity").Logger(),
	}
}

// VerifyToken parses and validates the bearer token. The participant
// identity is taken from the client_id claim, falling back to sub; the
// owning tenant from the tenant claim. When the governing policy names an
// assignee, the verified identity must match it.
func (s *Service) VerifyToken(ctx context.Context, token domainIdentity.TokenRepresentation, vctx domainIdentity.VerificationContext) (*domainIdentity.ParticipantAgent, error) {
	if token.Token == "" {
		return nil, fmt.Errorf("%w: empty token", domainIdentity.ErrTokenVerification)
	}

	parsed, err := jwt.Parse(token.Token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("message", vctx.Message).Msg("token rejected")
		return nil, fmt.Errorf("%w: %v", domainIdentity.ErrTokenVerification, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid claims", domainIdentity.ErrTokenVerification)
	}

	agent := &domainIdentity.ParticipantAgent{Claims: map[string]interface{}(claims)}
	if v, ok := claims["client_id"].(string); ok && v != "" {
		agent.Identity = v
	} else if v, ok := claims["sub"].(string); ok {
		agent.Identity = v
	}
	if agent.Identity == "" {
		return nil, fmt.Errorf("%w: token carries no participant identity", domainIdentity.ErrTokenVerification)
	}
	if v, ok := claims["tenant"].(string); ok {
		agent.TenantID = v
	}

	if assignee := vctx.Policy.Assignee; assignee != "" && assignee != agent.Identity {
		return nil, fmt.Errorf("%w: token subject is not the policy assignee", domainIdentity.ErrTokenVerification)
	}

	return agent, nil
}
