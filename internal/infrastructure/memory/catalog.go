package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

var _ negotiation.OfferResolver = (*Catalog)(nil)

// Catalog is a static offer catalog keyed by offer id.
type Catalog struct {
	mu     sync.RWMutex
	offers map[string]negotiation.ResolvedOffer
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{offers: make(map[string]negotiation.ResolvedOffer)}
}

// Register adds or replaces an offer.
func (c *Catalog) Register(offer negotiation.Offer, tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offers[offer.OfferID] = negotiation.ResolvedOffer{Offer: offer, TenantID: tenantID}
}

// Resolve returns the catalog entry for offerID, (nil, nil) when unknown.
func (c *Catalog) Resolve(ctx context.Context, offerID string) (*negotiation.ResolvedOffer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resolved, ok := c.offers[offerID]
	if !ok {
		return nil, nil
	}
	return &resolved, nil
}

type catalogEntry struct {
	Offer    negotiation.Offer `json:"offer"`
	TenantID string            `json:"tenantId"`
}

// LoadFile populates the catalog from a JSON file holding a list of
// offer/tenant entries.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}
	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}
	for _, e := range entries {
		c.Register(e.Offer, e.TenantID)
	}
	return nil
}
