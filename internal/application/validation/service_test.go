package validation

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dataspace-hub/dataspace-hub/internal/application/policy"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
	negotiationMocks "github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation/mocks"
	domainPolicy "github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
	policyMocks "github.com/dataspace-hub/dataspace-hub/internal/domain/policy/mocks"
)

func newAgent(id string) *identity.ParticipantAgent {
	return &identity.ParticipantAgent{Identity: id, TenantID: "tenant-a"}
}

func TestValidateInitialOffer(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewEngine(zerolog.Nop())

	catalogOffer := negotiation.Offer{
		OfferID: "offer-1",
		AssetID: "asset-1",
		Policy: domainPolicy.Policy{
			Target: "asset-1",
			Permissions: []domainPolicy.Permission{{
				Action:      "use",
				Constraints: []domainPolicy.Constraint{{Expression: "identity == 'did:web:consumer'"}},
			}},
		},
	}

	t.Run("valid offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := negotiationMocks.NewMockOfferResolver(ctrl)
		resolver.EXPECT().Resolve(ctx, "offer-1").Return(&negotiation.ResolvedOffer{Offer: catalogOffer, TenantID: "tenant-a"}, nil)

		svc := NewService(resolver, engine, zerolog.Nop())
		err := svc.ValidateInitialOffer(ctx, newAgent("did:web:consumer"), &negotiation.Offer{OfferID: "offer-1", AssetID: "asset-1"})
		require.NoError(t, err)
	})

	t.Run("unknown offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := negotiationMocks.NewMockOfferResolver(ctrl)
		resolver.EXPECT().Resolve(ctx, "missing").Return(nil, nil)

		svc := NewService(resolver, engine, zerolog.Nop())
		err := svc.ValidateInitialOffer(ctx, newAgent("did:web:consumer"), &negotiation.Offer{OfferID: "missing"})
		require.Error(t, err)
	})

	t.Run("asset mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := negotiationMocks.NewMockOfferResolver(ctrl)
		resolver.EXPECT().Resolve(ctx, "offer-1").Return(&negotiation.ResolvedOffer{Offer: catalogOffer}, nil)

		svc := NewService(resolver, engine, zerolog.Nop())
		err := svc.ValidateInitialOffer(ctx, newAgent("did:web:consumer"), &negotiation.Offer{OfferID: "offer-1", AssetID: "asset-9"})
		require.Error(t, err)
	})

	t.Run("policy rejects caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := negotiationMocks.NewMockOfferResolver(ctrl)
		resolver.EXPECT().Resolve(ctx, "offer-1").Return(&negotiation.ResolvedOffer{Offer: catalogOffer}, nil)

		svc := NewService(resolver, engine, zerolog.Nop())
		err := svc.ValidateInitialOffer(ctx, newAgent("did:web:eve"), &negotiation.Offer{OfferID: "offer-1", AssetID: "asset-1"})
		require.ErrorIs(t, err, domainPolicy.ErrDenied)
	})

	t.Run("engine failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := negotiationMocks.NewMockOfferResolver(ctrl)
		resolver.EXPECT().Resolve(ctx, "offer-1").Return(&negotiation.ResolvedOffer{Offer: catalogOffer}, nil)
		broken := policyMocks.NewMockEngine(ctrl)
		broken.EXPECT().Evaluate(ctx, gomock.Any(), gomock.Any()).Return(domainPolicy.ErrDenied)

		svc := NewService(resolver, broken, zerolog.Nop())
		err := svc.ValidateInitialOffer(ctx, newAgent("did:web:consumer"), &negotiation.Offer{OfferID: "offer-1", AssetID: "asset-1"})
		require.ErrorIs(t, err, domainPolicy.ErrDenied)
	})

	t.Run("missing offer id", func(t *testing.T) {
		svc := NewService(nil, engine, zerolog.Nop())
		require.Error(t, svc.ValidateInitialOffer(ctx, newAgent("did:web:consumer"), &negotiation.Offer{}))
	})
}

func TestValidateRequest(t *testing.T) {
	svc := NewService(nil, policy.NewEngine(zerolog.Nop()), zerolog.Nop())
	n := &negotiation.Negotiation{CounterPartyID: "did:web:consumer"}

	require.NoError(t, svc.ValidateRequest(context.Background(), newAgent("did:web:consumer"), n))
	require.Error(t, svc.ValidateRequest(context.Background(), newAgent("did:web:eve"), n))
}

func TestValidateConfirmed(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil, policy.NewEngine(zerolog.Nop()), zerolog.Nop())
	offer := &negotiation.Offer{
		OfferID: "offer-1",
		AssetID: "asset-1",
		Policy:  domainPolicy.Policy{Target: "asset-1"},
	}
	agreement := &negotiation.Agreement{
		ID:         "agr-1",
		ProviderID: "did:web:provider",
		AssetID:    "asset-1",
		Policy:     domainPolicy.Policy{Target: "asset-1"},
	}

	t.Run("matching agreement", func(t *testing.T) {
		require.NoError(t, svc.ValidateConfirmed(ctx, newAgent("did:web:provider"), agreement, offer))
	})

	t.Run("asset mismatch", func(t *testing.T) {
		bad := *agreement
		bad.AssetID = "asset-2"
		require.Error(t, svc.ValidateConfirmed(ctx, newAgent("did:web:provider"), &bad, offer))
	})

	t.Run("policy target mismatch", func(t *testing.T) {
		bad := *agreement
		bad.Policy = domainPolicy.Policy{Target: "asset-2"}
		require.Error(t, svc.ValidateConfirmed(ctx, newAgent("did:web:provider"), &bad, offer))
	})

	t.Run("caller is not the provider", func(t *testing.T) {
		require.Error(t, svc.ValidateConfirmed(ctx, newAgent("did:web:eve"), agreement, offer))
	})

	t.Run("no recorded offer", func(t *testing.T) {
		require.Error(t, svc.ValidateConfirmed(ctx, newAgent("did:web:provider"), agreement, nil))
	})
}
