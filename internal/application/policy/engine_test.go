package policy

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainPolicy "github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

func policyWith(expressions ...string) domainPolicy.Policy {
	constraints := make([]domainPolicy.Constraint, 0, len(expressions))
	for _, e := range expressions {
		constraints = append(constraints, domainPolicy.Constraint{Expression: e})
	}
	return domainPolicy.Policy{
		Permissions: []domainPolicy.Permission{{Action: "use", Constraints: constraints}},
	}
}

func TestEvaluate(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	ctx := context.Background()

	t.Run("all constraints hold", func(t *testing.T) {
		p := policyWith("identity == 'did:web:consumer'", "message != 'termination'")
		err := engine.Evaluate(ctx, p, map[string]interface{}{
			"identity": "did:web:consumer",
			"message":  "request",
		})
		require.NoError(t, err)
	})

	t.Run("violated constraint is denied", func(t *testing.T) {
		p := policyWith("identity == 'did:web:consumer'")
		err := engine.Evaluate(ctx, p, map[string]interface{}{"identity": "did:web:eve"})
		require.ErrorIs(t, err, domainPolicy.ErrDenied)
	})

	t.Run("empty and literal expressions", func(t *testing.T) {
		require.NoError(t, engine.Evaluate(ctx, policyWith("", "true"), nil))
		require.ErrorIs(t, engine.Evaluate(ctx, policyWith("false"), nil), domainPolicy.ErrDenied)
	})

	t.Run("no permissions means no constraints", func(t *testing.T) {
		require.NoError(t, engine.Evaluate(ctx, domainPolicy.Policy{}, nil))
	})

	t.Run("malformed expression", func(t *testing.T) {
		err := engine.Evaluate(ctx, policyWith("identity =="), nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainPolicy.ErrDenied)
	})

	t.Run("non-boolean result", func(t *testing.T) {
		err := engine.Evaluate(ctx, policyWith("1 + 1"), nil)
		require.Error(t, err)
	})
}
