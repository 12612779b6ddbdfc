package operator

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// InteractionOperator holds a second-quantized Hamiltonian in integral form:
// a scalar constant, a one-body matrix h[p][q] and a two-body tensor
// h[p][q][r][s]. The tensor follows the physicist convention used by the
// ladder expansion below: h2[p,q,r,s] multiplies p^ q^ r s.
type InteractionOperator struct {
	Constant complex128
	OneBody  *mat.CDense
	// TwoBody stores the rank-4 tensor flattened row-major over
	// (p, q, r, s); empty means no two-body part.
	TwoBody []complex128

	modes int
}

// NewInteractionOperator validates tensor shapes and returns the assembled
// operator. oneBody must be square; twoBody must be empty or n^4 long for the
// same n.
func NewInteractionOperator(constant complex128, oneBody *mat.CDense, twoBody []complex128) (*InteractionOperator, error) {
	op := &InteractionOperator{Constant: constant, OneBody: oneBody, TwoBody: twoBody}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks tensor shapes and caches the mode count.
func (op *InteractionOperator) Validate() error {
	if op == nil {
		return errors.New("operator: interaction operator is nil")
	}
	if op.OneBody == nil {
		return errors.New("operator: one-body matrix is required")
	}
	rows, cols := op.OneBody.Dims()
	if rows != cols {
		return fmt.Errorf("operator: one-body matrix must be square, got %dx%d", rows, cols)
	}
	if n := len(op.TwoBody); n != 0 && n != rows*rows*rows*rows {
		return fmt.Errorf("operator: two-body tensor has %d entries, want %d", n, rows*rows*rows*rows)
	}
	op.modes = rows
	return nil
}

// NModes returns the number of fermionic modes (the one-body dimension).
func (op *InteractionOperator) NModes() int {
	if op.modes == 0 && op.OneBody != nil {
		rows, _ := op.OneBody.Dims()
		op.modes = rows
	}
	return op.modes
}

// TwoBodyAt returns h2[p,q,r,s]; zero when no two-body tensor is present.
func (op *InteractionOperator) TwoBodyAt(p, q, r, s int) complex128 {
	if len(op.TwoBody) == 0 {
		return 0
	}
	n := op.NModes()
	return op.TwoBody[((p*n+q)*n+r)*n+s]
}

// SetTwoBody writes h2[p,q,r,s], allocating the tensor on first use.
func (op *InteractionOperator) SetTwoBody(p, q, r, s int, c complex128) {
	n := op.NModes()
	if len(op.TwoBody) == 0 {
		op.TwoBody = make([]complex128, n*n*n*n)
	}
	op.TwoBody[((p*n+q)*n+r)*n+s] = c
}

// FermionOperator expands the integral tensors into ladder-operator terms:
// constant + sum h1[p,q] p^ q + sum h2[p,q,r,s] p^ q^ r s. Zero entries are
// skipped. This is a mechanical re-indexing; no qubit transformation happens
// here.
func (op *InteractionOperator) FermionOperator() (FermionOperator, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}

	out := NewFermionOperator()
	if op.Constant != 0 {
		out[""] += op.Constant
	}

	n := op.NModes()
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			c := op.OneBody.At(p, q)
			if c == 0 {
				continue
			}
			if err := out.AddTerm([]LadderFactor{
				{Mode: p, Creation: true},
				{Mode: q},
			}, c); err != nil {
				return nil, err
			}
		}
	}

	if len(op.TwoBody) == 0 {
		return out, nil
	}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					c := op.TwoBodyAt(p, q, r, s)
					if c == 0 {
						continue
					}
					if err := out.AddTerm([]LadderFactor{
						{Mode: p, Creation: true},
						{Mode: q, Creation: true},
						{Mode: r},
						{Mode: s},
					}, c); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return out, nil
}
