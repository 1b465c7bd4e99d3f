package negotiation

import (
	"context"
	"time"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_resolver.go -package=mocks . OfferResolver

// Offer is one set of usage terms proposed during a negotiation. The policy
// snapshot is opaque to the negotiation core.
type Offer struct {
	OfferID string        `json:"offerId"`
	AssetID string        `json:"assetId"`
	Policy  policy.Policy `json:"policy"`
}

// Agreement records the terms both parties settled on. It is created once
// and immutable thereafter.
type Agreement struct {
	ID          string        `json:"id"`
	ProviderID  string        `json:"providerId"`
	ConsumerID  string        `json:"consumerId"`
	AssetID     string        `json:"assetId"`
	Policy      policy.Policy `json:"policy"`
	SigningDate time.Time     `json:"signingDate"`
	TenantID    string        `json:"tenantId"`
}

// ResolvedOffer is an offer looked up from the catalog together with the
// tenant that owns it.
type ResolvedOffer struct {
	Offer    Offer
	TenantID string
}

// OfferResolver resolves an offer id against the connector's catalog.
// An unknown offer id yields (nil, nil).
type OfferResolver interface {
	Resolve(ctx context.Context, offerID string) (*ResolvedOffer, error)
}
