package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

var _ negotiation.Store = (*NegotiationStore)(nil)

const negotiationColumns = `id, correlation_id, counter_party_id, counter_party_address, protocol, type, tenant_id, state, state_timestamp, contract_offers, agreement, last_processed_message_id, termination_reason, termination_code, created_at, updated_at`

// NegotiationStore implements negotiation.Store on postgres. The lease is a
// holder/expiry column pair claimed by a single atomic UPDATE, so two
// concurrent acquirers can never both win.
type NegotiationStore struct {
	pool     *pgxpool.Pool
	leaseTTL time.Duration
}

// NewNegotiationStore creates a store handing out leases of the given
// duration.
func NewNegotiationStore(pool *pgxpool.Pool, leaseTTL time.Duration) *NegotiationStore {
	return &NegotiationStore{pool: pool, leaseTTL: leaseTTL}
}

func (r *NegotiationStore) FindByID(ctx context.Context, id string) (*negotiation.Negotiation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+negotiationColumns+`
		FROM negotiations WHERE id=$1
	`, id)
	return scanNegotiation(row)
}

func (r *NegotiationStore) FindForCorrelationID(ctx context.Context, correlationID string) (*negotiation.Negotiation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+negotiationColumns+`
		FROM negotiations WHERE correlation_id=$1
	`, correlationID)
	return scanNegotiation(row)
}

// Acquire claims the lease in one statement: the row is updated only when
// the lease is free, already ours, or expired. No row back means the id is
// unknown or another holder's lease is live.
func (r *NegotiationStore) Acquire(ctx context.Context, id, holder string) (*negotiation.Negotiation, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE negotiations
		SET lease_holder=$2, lease_expires_at=$3
		WHERE id=$1 AND (lease_holder IS NULL OR lease_holder=$2 OR lease_expires_at < NOW())
		RETURNING `+negotiationColumns+`
	`, id, holder, time.Now().UTC().Add(r.leaseTTL))

	n, err := scanNegotiation(row)
	if err != nil {
		return nil, err
	}
	if n != nil {
		return n, nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM negotiations WHERE id=$1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, negotiation.ErrLeased
	}
	return nil, negotiation.ErrNotFound
}

// Save upserts the negotiation and releases the lease when held by holder.
// A live lease owned by someone else is left untouched.
func (r *NegotiationStore) Save(ctx context.Context, n *negotiation.Negotiation, holder string) error {
	offers, err := json.Marshal(n.ContractOffers)
	if err != nil {
		return fmt.Errorf("failed to encode contract offers: %w", err)
	}
	var agreement []byte
	if n.Agreement != nil {
		agreement, err = json.Marshal(n.Agreement)
		if err != nil {
			return fmt.Errorf("failed to encode agreement: %w", err)
		}
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO negotiations
		(id, correlation_id, counter_party_id, counter_party_address, protocol, type, tenant_id, state, state_timestamp, contract_offers, agreement, last_processed_message_id, termination_reason, termination_code, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (id) DO UPDATE SET
			correlation_id=EXCLUDED.correlation_id,
			counter_party_id=EXCLUDED.counter_party_id,
			counter_party_address=EXCLUDED.counter_party_address,
			protocol=EXCLUDED.protocol,
			tenant_id=EXCLUDED.tenant_id,
			state=EXCLUDED.state,
			state_timestamp=EXCLUDED.state_timestamp,
			contract_offers=EXCLUDED.contract_offers,
			agreement=EXCLUDED.agreement,
			last_processed_message_id=EXCLUDED.last_processed_message_id,
			termination_reason=EXCLUDED.termination_reason,
			termination_code=EXCLUDED.termination_code,
			updated_at=EXCLUDED.updated_at,
			lease_holder=CASE WHEN negotiations.lease_holder=$17 THEN NULL ELSE negotiations.lease_holder END,
			lease_expires_at=CASE WHEN negotiations.lease_holder=$17 THEN NULL ELSE negotiations.lease_expires_at END
	`, n.ID, n.CorrelationID, n.CounterPartyID, n.CounterPartyAddress, n.Protocol, n.Type, n.TenantID, n.State, n.StateTimestamp, offers, agreement, n.LastProcessedMessageID, n.TerminationReason, n.TerminationCode, n.CreatedAt, n.UpdatedAt, holder)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// the correlation unique index: a concurrent insert won
		return negotiation.ErrDuplicateCorrelation
	}
	return err
}

func (r *NegotiationStore) Query(ctx context.Context, spec negotiation.QuerySpec) (negotiation.Iterator, error) {
	query := `SELECT ` + negotiationColumns + ` FROM negotiations`
	args := []interface{}{}
	where := ""
	and := func(clause string) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	if spec.State != nil {
		args = append(args, *spec.State)
		and("state=$" + strconv.Itoa(len(args)))
	}
	if spec.Type != nil {
		args = append(args, *spec.Type)
		and("type=$" + strconv.Itoa(len(args)))
	}
	if spec.TenantID != "" {
		args = append(args, spec.TenantID)
		and("tenant_id=$" + strconv.Itoa(len(args)))
	}
	if spec.CounterPartyID != "" {
		args = append(args, spec.CounterPartyID)
		and("counter_party_id=$" + strconv.Itoa(len(args)))
	}
	query += where + " ORDER BY created_at DESC"
	if spec.Limit > 0 {
		args = append(args, spec.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if spec.Offset > 0 {
		args = append(args, spec.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &rowIterator{rows: rows}, nil
}

type rowIterator struct {
	rows pgx.Rows
	cur  *negotiation.Negotiation
	err  error
}

func (it *rowIterator) Next() bool {
	if it.err != nil || !it.rows.Next() {
		return false
	}
	n, err := scanNegotiation(it.rows)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = n
	return true
}

func (it *rowIterator) Value() *negotiation.Negotiation { return it.cur }

func (it *rowIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

func (it *rowIterator) Close() { it.rows.Close() }

func scanNegotiation(row pgx.Row) (*negotiation.Negotiation, error) {
	var n negotiation.Negotiation
	var offers []byte
	var agreement []byte
	err := row.Scan(
		&n.ID, &n.CorrelationID, &n.CounterPartyID, &n.CounterPartyAddress, &n.Protocol,
		&n.Type, &n.TenantID, &n.State, &n.StateTimestamp, &offers, &agreement,
		&n.LastProcessedMessageID, &n.TerminationReason, &n.TerminationCode,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if len(offers) > 0 {
		if err := json.Unmarshal(offers, &n.ContractOffers); err != nil {
			return nil, fmt.Errorf("failed to decode contract offers: %w", err)
		}
	}
	if len(agreement) > 0 {
		n.Agreement = &negotiation.Agreement{}
		if err := json.Unmarshal(agreement, n.Agreement); err != nil {
			return nil, fmt.Errorf("failed to decode agreement: %w", err)
		}
	}
	return &n, nil
}
