package negotiation

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_store.go -package=mocks . Store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound signals the negotiation does not exist in the store.
	ErrNotFound = errors.New("negotiation not found")
	// ErrLeased signals the negotiation is exclusively held by another holder.
	ErrLeased = errors.New("negotiation is leased by another holder")
	// ErrDuplicateCorrelation signals an insert lost against a concurrently
	// created negotiation for the same correlation id and role.
	ErrDuplicateCorrelation = errors.New("negotiation already exists for correlation id")
)

// QuerySpec filters and pages a read-side listing.
type QuerySpec struct {
	State          *State
	Type           *Type
	TenantID       string
	CounterPartyID string
	Limit          int
	Offset         int
}

// Iterator is a lazily produced sequence of negotiations. Callers must Close
// it regardless of how far they advanced.
type Iterator interface {
	Next() bool
	Value() *Negotiation
	Err() error
	Close()
}

// Store is the durable keyed storage for negotiations. The lease handed out
// by Acquire is the sole mechanism guaranteeing at most one concurrent
// mutator per negotiation id.
type Store interface {
	// FindByID is a non-locking point read. Absence is (nil, nil).
	FindByID(ctx context.Context, id string) (*Negotiation, error)
	// FindForCorrelationID is a non-locking read by the counterparty's id.
	// Absence is (nil, nil).
	FindForCorrelationID(ctx context.Context, correlationID string) (*Negotiation, error)
	// Acquire atomically reads the negotiation and marks it exclusively held
	// by holder for the store's lease duration. It fails with ErrNotFound if
	// the entity does not exist and ErrLeased if another holder's lease is
	// still live. Reacquisition by the same holder extends the lease.
	Acquire(ctx context.Context, id, holder string) (*Negotiation, error)
	// Save persists the negotiation and unconditionally releases any lease
	// held by holder, whether or not a mutation occurred. Unknown ids are
	// inserted; an insert colliding with an existing negotiation for the same
	// correlation id and role fails with ErrDuplicateCorrelation.
	Save(ctx context.Context, n *Negotiation, holder string) error
	// Query returns a closeable iterator over negotiations matching spec.
	// Read-side only; results carry no lease.
	Query(ctx context.Context, spec QuerySpec) (Iterator, error)
}
