package hamiltonian

import (
	"fmt"

	"github.com/ZPBQuantum/tequila/pkg/operator"
)

// Source supplies the fermionic side of a Hamiltonian. Implementations own
// the physics (molecular integrals, lattice models, ...); the Hamiltonian
// only verifies, fetches and transforms what they return.
type Source interface {
	// FermionicHamiltonian returns the operator to be transformed. It is
	// fetched on every computation; Sources that want caching do it
	// themselves.
	FermionicHamiltonian() (operator.Fermionic, error)

	// NQubits returns the number of qubits the transformed operator acts on.
	NQubits() (int, error)

	// Verify checks internal consistency before any computation. Returning
	// an error aborts the computation with a ValidationError.
	Verify() error
}

// Unimplemented is an embeddable Source base. Every capability not overridden
// by the embedder fails with ErrNotImplemented, so partially wired sources
// fail loudly instead of producing garbage. Verify defaults to passing.
type Unimplemented struct{}

func (Unimplemented) FermionicHamiltonian() (operator.Fermionic, error) {
	return nil, fmt.Errorf("%w: FermionicHamiltonian must be provided, do not use the base directly", ErrNotImplemented)
}

func (Unimplemented) NQubits() (int, error) {
	return 0, fmt.Errorf("%w: NQubits must be provided, do not use the base directly", ErrNotImplemented)
}

func (Unimplemented) Verify() error {
	return nil
}

// Static is a Source around a fixed fermionic operator, for embedders whose
// Hamiltonian is already assembled (and for tests and examples).
type Static struct {
	Operator operator.Fermionic
	Qubits   int
}

// NewStatic wraps op as a Source reporting the given qubit count.
func NewStatic(op operator.Fermionic, qubits int) *Static {
	return &Static{Operator: op, Qubits: qubits}
}

func (s *Static) FermionicHamiltonian() (operator.Fermionic, error) {
	if s.Operator == nil {
		return nil, fmt.Errorf("hamiltonian: static source has no operator")
	}
	return s.Operator, nil
}

func (s *Static) NQubits() (int, error) {
	return s.Qubits, nil
}

func (s *Static) Verify() error {
	if s.Operator == nil {
		return fmt.Errorf("static source has no operator")
	}
	if s.Qubits < 0 {
		return fmt.Errorf("static source has negative qubit count %d", s.Qubits)
	}
	return nil
}
