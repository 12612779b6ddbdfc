package hamiltonian

import (
	"context"
	"errors"
	"testing"

	"github.com/ZPBQuantum/tequila/pkg/operator"
	"github.com/ZPBQuantum/tequila/pkg/transform"
	"github.com/rs/zerolog"
)

// Construction normally rejects unknown names eagerly; this bypasses New to
// confirm the computation path raises the same ParameterError with its own
// call site.
func TestQubitOperatorReportsUnknownTransformation(t *testing.T) {
	h := &Hamiltonian{
		source:   NewStatic(operator.FermionIdentity(1), 1),
		params:   Parameters{Transformation: "ghost"},
		registry: transform.NewRegistry(),
		logger:   zerolog.Nop(),
	}

	_, err := h.QubitOperator(context.Background())
	if err == nil {
		t.Fatalf("expected parameter error")
	}
	var paramErr *ParameterError
	if !errors.As(err, &paramErr) {
		t.Fatalf("expected ParameterError, got %T: %v", err, err)
	}
	if paramErr.CalledFrom != "Hamiltonian.QubitOperator" {
		t.Fatalf("unexpected call site %q", paramErr.CalledFrom)
	}
	if paramErr.Value != "ghost" {
		t.Fatalf("unexpected value %q", paramErr.Value)
	}
}

func TestResolvePrefersBuiltinFamilies(t *testing.T) {
	registry := transform.NewRegistry()
	registry.MustRegister(transform.NewFunc("jordan-wigner", nil))

	h := &Hamiltonian{
		source:   NewStatic(operator.FermionIdentity(1), 1),
		params:   Parameters{Transformation: "J-W"},
		registry: registry,
		logger:   zerolog.Nop(),
	}

	tr, err := h.resolve("test")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tr.Name() != "jordan-wigner" {
		t.Fatalf("expected jordan-wigner transform, got %q", tr.Name())
	}
}
