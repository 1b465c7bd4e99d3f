// Package memory provides in-memory implementations of the negotiation
// store and offer catalog, used by tests and ephemeral deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

var _ negotiation.Store = (*Store)(nil)

type record struct {
	value        *negotiation.Negotiation
	leaseHolder  string
	leaseExpires time.Time
}

// Store keeps negotiations in a map guarded by one mutex; lease semantics
// match the postgres store.
type Store struct {
	mu       sync.Mutex
	records  map[string]*record
	leaseTTL time.Duration
}

// NewStore creates an empty store handing out leases of the given duration.
func NewStore(leaseTTL time.Duration) *Store {
	return &Store{
		records:  make(map[string]*record),
		leaseTTL: leaseTTL,
	}
}

// FindByID returns a copy of the stored negotiation, (nil, nil) when absent.
func (s *Store) FindByID(ctx context.Context, id string) (*negotiation.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return rec.value.Copy(), nil
}

// FindForCorrelationID returns a copy of the negotiation whose correlation
// id matches, (nil, nil) when absent.
func (s *Store) FindForCorrelationID(ctx context.Context, correlationID string) (*negotiation.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.value.CorrelationID == correlationID {
			return rec.value.Copy(), nil
		}
	}
	return nil, nil
}

// Acquire atomically claims the lease for holder. An expired lease counts as
// free; reacquisition by the same holder extends the lease.
func (s *Store) Acquire(ctx context.Context, id, holder string) (*negotiation.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, negotiation.ErrNotFound
	}
	now := time.Now()
	if rec.leaseHolder != "" && rec.leaseHolder != holder && rec.leaseExpires.After(now) {
		return nil, negotiation.ErrLeased
	}
	rec.leaseHolder = holder
	rec.leaseExpires = now.Add(s.leaseTTL)
	return rec.value.Copy(), nil
}

// Save stores a copy of n and releases holder's lease. Unknown ids are
// inserted unless another negotiation already claims the same correlation id
// and role; a live lease held by someone else is left untouched.
func (s *Store) Save(ctx context.Context, n *negotiation.Negotiation, holder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[n.ID]
	if !ok {
		if n.CorrelationID != "" {
			for _, other := range s.records {
				if other.value.CorrelationID == n.CorrelationID && other.value.Type == n.Type {
					return negotiation.ErrDuplicateCorrelation
				}
			}
		}
		s.records[n.ID] = &record{value: n.Copy()}
		return nil
	}
	rec.value = n.Copy()
	if rec.leaseHolder == holder {
		rec.leaseHolder = ""
		rec.leaseExpires = time.Time{}
	}
	return nil
}

// Query filters the stored negotiations and returns them as a snapshot
// iterator.
func (s *Store) Query(ctx context.Context, spec negotiation.QuerySpec) (negotiation.Iterator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*negotiation.Negotiation
	for _, rec := range s.records {
		n := rec.value
		if spec.State != nil && n.State != *spec.State {
			continue
		}
		if spec.Type != nil && n.Type != *spec.Type {
			continue
		}
		if spec.TenantID != "" && n.TenantID != spec.TenantID {
			continue
		}
		if spec.CounterPartyID != "" && n.CounterPartyID != spec.CounterPartyID {
			continue
		}
		matched = append(matched, n.Copy())
	}

	if spec.Offset > 0 {
		if spec.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[spec.Offset:]
		}
	}
	if spec.Limit > 0 && spec.Limit < len(matched) {
		matched = matched[:spec.Limit]
	}
	return &sliceIterator{items: matched}, nil
}

type sliceIterator struct {
	items []*negotiation.Negotiation
	pos   int
}

func (it *sliceIterator) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Value() *negotiation.Negotiation { return it.items[it.pos-1] }
func (it *sliceIterator) Err() error                      { return nil }
func (it *sliceIterator) Close()                          {}
