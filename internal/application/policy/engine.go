package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/rs/zerolog"

	domainPolicy "github.com/dataspace-hub/dataspace-hub/internal/domain/policy"
)

// Engine evaluates policy constraints as boolean expressions over the
// verification parameters.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine creates a constraint evaluation engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("service", "policy").Logger()}
}

// Evaluate checks every constraint of every permission. Empty expressions and
// "true"/"false" literals are supported. A non-boolean result is an
// evaluation error, a false result wraps domainPolicy.ErrDenied.
func (e *Engine) Evaluate(ctx context.Context, p domainPolicy.Policy, params map[string]interface{}) error {
	for _, perm := range p.Permissions {
		for _, c := range perm.Constraints {
			ok, err := evaluateExpression(c.Expression, params)
			if err != nil {
				return fmt.Errorf("policy: constraint %q: %w", c.Expression, err)
			}
			if !ok {
				e.logger.Debug().Str("action", perm.Action).Str("constraint", c.Expression).Msg("constraint violated")
				return fmt.Errorf("%w: action %q constraint %q", domainPolicy.ErrDenied, perm.Action, c.Expression)
			}
		}
	}
	return nil
}

func evaluateExpression(expression string, params map[string]interface{}) (bool, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return true, nil
	}
	switch strings.ToLower(expr) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	parsed, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return false, err
	}
	result, err := parsed.Evaluate(params)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to boolean")
	}
	return b, nil
}
