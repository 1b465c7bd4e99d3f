package protocol

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

// Service handles inbound contract-negotiation protocol messages. Each
// mutation operation runs authenticate → validate → lease → guard →
// transition → persist → notify; the store lease acquired in step one scopes
// the whole sequence, so at most one caller mutates a negotiation at a time.
type Service struct {
	store      negotiation.Store
	identity   identity.Service
	validator  negotiation.Validator
	resolver   negotiation.OfferResolver
	observable *Observable
	holder     string
	logger     zerolog.Logger
}

// NewService creates the protocol service. The holder id identifies this
// runtime as a lease owner.
func NewService(
	store negotiation.Store,
	identitySvc identity.Service,
	validator negotiation.Validator,
	resolver negotiation.OfferResolver,
	observable *Observable,
	logger zerolog.Logger,
) *Service {
	return &Service{
		store:      store,
		identity:   identitySvc,
		validator:  validator,
		resolver:   resolver,
		observable: observable,
		holder:     uuid.NewString(),
		logger:     logger.With().Str("service", "protocol").Logger(),
	}
}

// FindByID is the read-only lookup. It never locks.
func (s *Service) FindByID(ctx context.Context, id string) (*negotiation.Negotiation, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, notFoundf("no negotiation with id %s found", id)
	}
	return n, nil
}

// GetNegotiations is the read-side listing over the store query.
func (s *Service) GetNegotiations(ctx context.Context, spec negotiation.QuerySpec) ([]*negotiation.Negotiation, error) {
	iter, err := s.store.Query(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var result []*negotiation.Negotiation
	for iter.Next() {
		result = append(result, iter.Value())
	}
	return result, iter.Err()
}

// Requested processes an inbound contract request on the provider side. A
// message without a provider pid initiates a new negotiation.
func (s *Service) Requested(ctx context.Context, msg RequestMessage) (*negotiation.Negotiation, error) {
	if msg.ProviderPID == "" {
		return s.initiate(ctx, initiation{
			messageID:       msg.ID,
			kind:            "requested",
			token:           msg.Token,
			correlationID:   msg.ConsumerPID,
			callbackAddress: msg.CallbackAddress,
			protocol:        msg.Protocol,
			typ:             negotiation.TypeProvider,
			offer:           msg.Offer,
		})
	}
	return s.processInbound(ctx, msg.ProviderPID, inbound{messageID: msg.ID, kind: "requested", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		func(n *negotiation.Negotiation) error {
			if err := n.TransitionRequested(); err != nil {
				return err
			}
			n.AppendOffer(msg.Offer)
			return nil
		},
		s.observable.Requested,
	)
}

// Offered processes an inbound contract offer on the consumer side. A
// message without a consumer pid initiates a new negotiation.
func (s *Service) Offered(ctx context.Context, msg OfferMessage) (*negotiation.Negotiation, error) {
	if msg.ConsumerPID == "" {
		return s.initiate(ctx, initiation{
			messageID:       msg.ID,
			kind:            "offered",
			token:           msg.Token,
			correlationID:   msg.ProviderPID,
			callbackAddress: msg.CallbackAddress,
			protocol:        msg.Protocol,
			typ:             negotiation.TypeConsumer,
			offer:           msg.Offer,
		})
	}
	return s.processInbound(ctx, msg.ConsumerPID, inbound{messageID: msg.ID, kind: "offered", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		func(n *negotiation.Negotiation) error {
			if err := n.TransitionOffered(); err != nil {
				return err
			}
			n.AppendOffer(msg.Offer)
			return nil
		},
		s.observable.Offered,
	)
}

// Accepted processes the consumer's accepted event on the provider side.
func (s *Service) Accepted(ctx context.Context, msg EventMessage) (*negotiation.Negotiation, error) {
	return s.processInbound(ctx, msg.ProcessID, inbound{messageID: msg.ID, kind: "accepted", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		(*negotiation.Negotiation).TransitionAccepted,
		s.observable.Accepted,
	)
}

// Agreed processes the provider's agreement on the consumer side. The
// agreement is re-stamped with the negotiation's owning tenant before it is
// persisted, regardless of the tenant value carried by the message.
func (s *Service) Agreed(ctx context.Context, msg AgreementMessage) (*negotiation.Negotiation, error) {
	return s.processInbound(ctx, msg.ProcessID, inbound{messageID: msg.ID, kind: "agreed", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateConfirmed(ctx, agent, &msg.Agreement, n.LastOffer())
		},
		func(n *negotiation.Negotiation) error {
			agreement := msg.Agreement
			agreement.TenantID = n.TenantID
			if agreement.ID == "" {
				agreement.ID = uuid.NewString()
			}
			if agreement.SigningDate.IsZero() {
				agreement.SigningDate = time.Now().UTC()
			}
			return n.TransitionAgreed(&agreement)
		},
		s.observable.Agreed,
	)
}

// Verified processes the consumer's agreement verification on the provider
// side.
func (s *Service) Verified(ctx context.Context, msg VerificationMessage) (*negotiation.Negotiation, error) {
	return s.processInbound(ctx, msg.ProcessID, inbound{messageID: msg.ID, kind: "verified", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		(*negotiation.Negotiation).TransitionVerified,
		s.observable.Verified,
	)
}

// Finalized processes the provider's finalized event on the consumer side.
func (s *Service) Finalized(ctx context.Context, msg EventMessage) (*negotiation.Negotiation, error) {
	return s.processInbound(ctx, msg.ProcessID, inbound{messageID: msg.ID, kind: "finalized", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		(*negotiation.Negotiation).TransitionFinalized,
		s.observable.Finalized,
	)
}

// Terminated processes an inbound termination from either role.
func (s *Service) Terminated(ctx context.Context, msg TerminationMessage) (*negotiation.Negotiation, error) {
	return s.processInbound(ctx, msg.ProcessID, inbound{messageID: msg.ID, kind: "terminated", token: msg.Token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		func(n *negotiation.Negotiation) error {
			return n.TransitionTerminated(msg.Reason, msg.Code)
		},
		s.observable.Terminated,
	)
}

// inbound carries the fields common to every non-initiating message.
type inbound struct {
	messageID string
	kind      string
	token     identity.TokenRepresentation
}

// processInbound runs the orchestration contract for a message addressed to
// an existing negotiation. The lease acquired up front is released exactly
// once: by Save on every exit path after acquisition.
func (s *Service) processInbound(
	ctx context.Context,
	processID string,
	msg inbound,
	validate func(context.Context, *identity.ParticipantAgent, *negotiation.Negotiation) error,
	apply func(*negotiation.Negotiation) error,
	notify func(*negotiation.Negotiation),
) (*negotiation.Negotiation, error) {
	if processID == "" {
		return nil, badRequestf("process id is required")
	}
	if msg.messageID == "" {
		return nil, badRequestf("message id is required")
	}

	n, err := s.acquire(ctx, processID)
	if err != nil {
		return nil, err
	}

	agent, err := s.authenticate(ctx, msg.token, s.governingPolicy(n), msg.kind)
	if err != nil {
		return nil, s.abort(ctx, n, err)
	}

	// a caller from another tenant must not learn the negotiation exists; a
	// token without a tenant claim is out of scope for a tenant-owned instance
	if n.TenantID != "" && agent.TenantID != n.TenantID {
		return nil, s.abort(ctx, n, notFoundf("no negotiation with id %s found", processID))
	}

	if err := validate(ctx, agent, n); err != nil {
		if KindOf(err) == 0 {
			err = badRequestf("%v", err)
		}
		return nil, s.abort(ctx, n, err)
	}

	if n.IsReplay(msg.messageID) {
		if err := s.store.Save(ctx, n, s.holder); err != nil {
			return nil, err
		}
		return n, nil
	}

	if err := apply(n); err != nil {
		if errors.Is(err, negotiation.ErrInvalidTransition) || errors.Is(err, negotiation.ErrAgreementExists) {
			return nil, s.abort(ctx, n, conflictf("negotiation %s cannot be %s", n.ID, msg.kind))
		}
		return nil, s.abort(ctx, n, err)
	}
	n.LastProcessedMessageID = msg.messageID

	if err := s.store.Save(ctx, n, s.holder); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("negotiationId", n.ID).
		Str("counterParty", n.CounterPartyID).
		Str("state", string(n.State)).
		Msg("negotiation transitioned")
	notify(n)
	return n, nil
}

// initiation carries the fields needed to create a negotiation from an
// initiating message.
type initiation struct {
	messageID       string
	kind            string
	token           identity.TokenRepresentation
	correlationID   string
	callbackAddress string
	protocol        string
	typ             negotiation.Type
	offer           negotiation.Offer
}

// initiate handles an initiating message: the offer is resolved first so its
// policy can parameterize authentication and its tenant can own the new
// instance. Redelivery is detected through the correlation id before any
// state is created.
func (s *Service) initiate(ctx context.Context, init initiation) (*negotiation.Negotiation, error) {
	if init.messageID == "" {
		return nil, badRequestf("message id is required")
	}
	if init.correlationID == "" {
		return nil, badRequestf("counterparty process id is required")
	}

	existing, err := s.store.FindForCorrelationID(ctx, init.correlationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// the correlation id already maps to a live instance: whether this is
		// a redelivery or a re-initiation, it is handled as a message addressed
		// to that instance, so it passes authentication and counterparty
		// validation before the replay check can absorb it
		return s.redeliverAsUpdate(ctx, existing.ID, init)
	}

	resolved, err := s.resolver.Resolve(ctx, init.offer.OfferID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, notFoundf("no offer with id %s found", init.offer.OfferID)
	}

	agent, err := s.authenticate(ctx, init.token, resolved.Offer.Policy, init.kind)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateInitialOffer(ctx, agent, &init.offer); err != nil {
		if KindOf(err) == 0 {
			err = badRequestf("%v", err)
		}
		return nil, err
	}

	now := time.Now().UTC()
	n := &negotiation.Negotiation{
		ID:                  uuid.NewString(),
		CorrelationID:       init.correlationID,
		CounterPartyID:      agent.Identity,
		CounterPartyAddress: init.callbackAddress,
		Protocol:            init.protocol,
		Type:                init.typ,
		TenantID:            resolved.TenantID,
		State:               negotiation.StateInitial,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var transition func() error
	var notify func(*negotiation.Negotiation)
	if init.typ == negotiation.TypeProvider {
		transition, notify = n.TransitionRequested, s.observable.Requested
	} else {
		transition, notify = n.TransitionOffered, s.observable.Offered
	}
	if err := transition(); err != nil {
		return nil, conflictf("negotiation %s cannot be %s", n.ID, init.kind)
	}
	n.AppendOffer(init.offer)
	n.LastProcessedMessageID = init.messageID

	if err := s.store.Save(ctx, n, s.holder); err != nil {
		if errors.Is(err, negotiation.ErrDuplicateCorrelation) {
			// a concurrent delivery of the same initiating message won the
			// insert; process this one against the winner instance, where the
			// replay check absorbs it
			winner, ferr := s.store.FindForCorrelationID(ctx, init.correlationID)
			if ferr != nil {
				return nil, ferr
			}
			if winner != nil {
				return s.redeliverAsUpdate(ctx, winner.ID, init)
			}
		}
		return nil, err
	}

	s.logger.Info().
		Str("negotiationId", n.ID).
		Str("type", string(n.Type)).
		Str("counterParty", n.CounterPartyID).
		Str("state", string(n.State)).
		Msg("negotiation created")
	notify(n)
	return n, nil
}

func (s *Service) redeliverAsUpdate(ctx context.Context, id string, init initiation) (*negotiation.Negotiation, error) {
	var notify func(*negotiation.Negotiation)
	var apply func(*negotiation.Negotiation) error
	if init.typ == negotiation.TypeProvider {
		notify = s.observable.Requested
		apply = func(n *negotiation.Negotiation) error {
			if err := n.TransitionRequested(); err != nil {
				return err
			}
			n.AppendOffer(init.offer)
			return nil
		}
	} else {
		notify = s.observable.Offered
		apply = func(n *negotiation.Negotiation) error {
			if err := n.TransitionOffered(); err != nil {
				return err
			}
			n.AppendOffer(init.offer)
			return nil
		}
	}
	return s.processInbound(ctx, id, inbound{messageID: init.messageID, kind: init.kind, token: init.token},
		func(ctx context.Context, agent *identity.ParticipantAgent, n *negotiation.Negotiation) error {
			return s.validator.ValidateRequest(ctx, agent, n)
		},
		apply,
		notify,
	)
}

func (s *Service) acquire(ctx context.Context, id string) (*negotiation.Negotiation, error) {
	n, err := s.store.Acquire(ctx, id, s.holder)
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrNotFound):
			return nil, notFoundf("no negotiation with id %s found", id)
		case errors.Is(err, negotiation.ErrLeased):
			return nil, unavailablef("negotiation %s is being processed, retry later", id)
		}
		return nil, err
	}
	return n, nil
}

// abort persists the entity untouched so the lease is released, then returns
// the business failure.
func (s *Service) abort(ctx context.Context, n *negotiation.Negotiation, failure error) error {
	if err := s.store.Save(ctx, n, s.holder); err != nil {
		s.logger.Error().Err(err).Str("negotiationId", n.ID).Msg("failed to release lease")
	}
	return failure
}

func (s *Service) authenticate(ctx context.Context, token identity.TokenRepresentation, pol policy.Policy, kind string) (*identity.ParticipantAgent, error) {
	agent, err := s.identity.VerifyToken(ctx, token, identity.VerificationContext{Policy: pol, Message: kind})
	if err != nil {
		if errors.Is(err, identity.ErrTokenVerification) {
			return nil, badRequestf("token verification failed")
		}
		return nil, err
	}
	return agent, nil
}

// governingPolicy is the policy that parameterizes authentication: the
// agreement's once settled, otherwise the current offer's.
func (s *Service) governingPolicy(n *negotiation.Negotiation) policy.Policy {
	if n.Agreement != nil {
		return n.Agreement.Policy
	}
	if offer := n.LastOffer(); offer != nil {
		return offer.Policy
	}
	return policy.Policy{}
}
