// Package transform defines the fermion-to-qubit transformation strategy
// interface and the registry that resolves configured transformation names.
// The package ships no transformation algorithms; backends (or embedders with
// custom encodings) implement Transform and register themselves.
package transform

import (
	"context"
	"errors"

	"github.com/ZPBQuantum/tequila/pkg/operator"
)

// Transform converts a fermion operator into a qubit operator under a named
// encoding (Jordan-Wigner, Bravyi-Kitaev, or a custom scheme).
type Transform interface {
	Name() string
	Apply(ctx context.Context, src operator.FermionOperator) (operator.QubitOperator, error)
}

// ApplyFunc adapts a plain function into a Transform.
type ApplyFunc func(ctx context.Context, src operator.FermionOperator) (operator.QubitOperator, error)

type funcTransform struct {
	name string
	fn   ApplyFunc
}

// NewFunc wraps fn as a Transform with the given registry name.
func NewFunc(name string, fn ApplyFunc) Transform {
	return funcTransform{name: name, fn: fn}
}

func (t funcTransform) Name() string { return t.name }

func (t funcTransform) Apply(ctx context.Context, src operator.FermionOperator) (operator.QubitOperator, error) {
	if t.fn == nil {
		return nil, errors.New("transform: " + t.name + " has no implementation")
	}
	return t.fn(ctx, src)
}
