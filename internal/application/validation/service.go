package validation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

// Service implements negotiation.Validator using the offer catalog and the
// policy engine.
type Service struct {
	resolver negotiation.OfferResolver
	engine   policy.Engine
	logger   zerolog.Logger
}

// NewService creates a validation service.
func NewService(resolver negotiation.OfferResolver, engine policy.Engine, logger zerolog.Logger) *Service {
	return &Service{
		resolver: resolver,
		engine:   engine,
		logger:   logger.With().Str("service", "validation").Logger(),
	}
}

// ValidateInitialOffer checks that the offer of an initiating message
// references a catalog offer for the same asset and that its policy admits
// the caller.
func (s *Service) ValidateInitialOffer(ctx context.Context, agent *identity.ParticipantAgent, offer *negotiation.Offer) error {
	if offer == nil || offer.OfferID == "" {
		return fmt.Errorf("offer id is required")
	}
	resolved, err := s.resolver.Resolve(ctx, offer.OfferID)
	if err != nil {
		return err
	}
	if resolved == nil {
		return fmt.Errorf("offer not found: %s", offer.OfferID)
	}
	if offer.AssetID != "" && offer.AssetID != resolved.Offer.AssetID {
		return fmt.Errorf("offer %s does not target asset %s", offer.OfferID, offer.AssetID)
	}
	if err := s.engine.Evaluate(ctx, resolved.Offer.Policy, evaluationParams(agent)); err != nil {
		s.logger.Debug().Err(err).Str("offerId", offer.OfferID).Str("identity", agent.Identity).Msg("initial offer rejected")
		return fmt.Errorf("offer policy rejected caller: %w", err)
	}
	return nil
}

// ValidateRequest checks that the caller is the counterparty recorded on the
// negotiation.
func (s *Service) ValidateRequest(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
	if agent.Identity != n.CounterPartyID {
		return fmt.Errorf("caller %s is not the negotiation counterparty", agent.Identity)
	}
	return nil
}

// ValidateConfirmed checks an inbound agreement against the last recorded
// offer: same asset, same policy target, and the caller must be the recorded
// counterparty.
func (s *Service) ValidateConfirmed(ctx context.Context, agent *identity.ParticipantAgent, agreement *negotiation.Agreement, latestOffer *negotiation.Offer) error {
	if agreement == nil {
		return fmt.Errorf("agreement is required")
	}
	if latestOffer == nil {
		return fmt.Errorf("negotiation carries no offer to confirm")
	}
	if agreement.AssetID != latestOffer.AssetID {
		return fmt.Errorf("agreement asset %s does not match offered asset %s", agreement.AssetID, latestOffer.AssetID)
	}
	if target := latestOffer.Policy.Target; target != "" && agreement.Policy.Target != target {
		return fmt.Errorf("agreement policy target does not match offered policy")
	}
	if agreement.ProviderID != "" && agent.Identity != agreement.ProviderID {
		return fmt.Errorf("caller %s is not the agreement provider", agent.Identity)
	}
	return nil
}

func evaluationParams(agent *identity.ParticipantAgent) map[string]interface{} {
	params := map[string]interface{}{
		"identity": agent.Identity,
		"tenant":   agent.TenantID,
	}
	for k, v := range agent.Claims {
		params["claims."+k] = v
	}
	return params
}
