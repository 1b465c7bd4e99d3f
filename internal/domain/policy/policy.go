package policy

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_engine.go -package=mocks . Engine

// ErrDenied signals that a policy evaluation rejected the request.
var ErrDenied = errors.New("policy: evaluation denied")

// Policy is a snapshot of the usage terms attached to an offer or agreement.
// It is carried through the negotiation core opaquely and only interpreted
// by an Engine.
type Policy struct {
	Assigner    string       `json:"assigner,omitempty"`
	Assignee    string       `json:"assignee,omitempty"`
	Target      string       `json:"target,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission grants an action subject to constraints.
type Permission struct {
	Action      string       `json:"action"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// Constraint is a boolean expression over the evaluation parameters.
type Constraint struct {
	Expression string `json:"expression"`
}

// Engine evaluates a policy against caller-supplied parameters and returns
// nil when every constraint holds. A violated constraint yields an error
// wrapping ErrDenied.
type Engine interface {
	Evaluate(ctx context.Context, p Policy, params map[string]interface{}) error
}
