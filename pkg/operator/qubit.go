package operator

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// Pauli identifies a single-qubit Pauli basis.
type Pauli byte

const (
	PauliX Pauli = 'X'
	PauliY Pauli = 'Y'
	PauliZ Pauli = 'Z'
)

// Valid reports whether the value is one of X, Y, or Z.
func (p Pauli) Valid() bool {
	switch p {
	case PauliX, PauliY, PauliZ:
		return true
	default:
		return false
	}
}

// PauliFactor is a single Pauli acting on one qubit.
type PauliFactor struct {
	Qubit int
	Op    Pauli
}

func (f PauliFactor) String() string {
	return string(f.Op) + strconv.Itoa(f.Qubit)
}

// QubitTerm pairs a product of Pauli factors with its coefficient. The empty
// factor list denotes the identity.
type QubitTerm struct {
	Factors     []PauliFactor
	Coefficient complex128
}

// QubitOperator is a weighted sum of Pauli strings, keyed by the canonical
// term representation ("X0 Z3"; "" is the identity). Coefficients are
// complex128 as produced by fermion-to-qubit transform backends.
type QubitOperator map[string]complex128

// NewQubitOperator returns an empty qubit operator.
func NewQubitOperator() QubitOperator {
	return make(QubitOperator)
}

// QubitIdentity returns c times the identity operator.
func QubitIdentity(c complex128) QubitOperator {
	return QubitOperator{"": c}
}

// PauliKey canonicalises a factor product: factors sorted by qubit index,
// space separated. Duplicate qubits and invalid Pauli labels are rejected;
// combining repeated factors on one qubit is algebra the backends own.
func PauliKey(factors []PauliFactor) (string, error) {
	if len(factors) == 0 {
		return "", nil
	}
	sorted := make([]PauliFactor, len(factors))
	copy(sorted, factors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Qubit < sorted[j].Qubit })

	parts := make([]string, 0, len(sorted))
	for i, f := range sorted {
		if !f.Op.Valid() {
			return "", fmt.Errorf("operator: invalid pauli label %q", string(f.Op))
		}
		if f.Qubit < 0 {
			return "", fmt.Errorf("operator: negative qubit index %d", f.Qubit)
		}
		if i > 0 && sorted[i-1].Qubit == f.Qubit {
			return "", fmt.Errorf("operator: duplicate qubit %d in pauli term", f.Qubit)
		}
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " "), nil
}

// ParsePauliTerm parses a canonical-form term such as "X0 Z3". The empty
// string parses to the identity (no factors).
func ParsePauliTerm(term string) ([]PauliFactor, error) {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return nil, nil
	}
	factors := make([]PauliFactor, 0, len(fields))
	for _, field := range fields {
		op := Pauli(field[0])
		if !op.Valid() {
			return nil, fmt.Errorf("operator: invalid pauli label in %q", field)
		}
		qubit, err := strconv.Atoi(field[1:])
		if err != nil || qubit < 0 {
			return nil, fmt.Errorf("operator: invalid qubit index in %q", field)
		}
		factors = append(factors, PauliFactor{Qubit: qubit, Op: op})
	}
	return factors, nil
}

// AddTerm accumulates c onto the term described by factors.
func (q QubitOperator) AddTerm(factors []PauliFactor, c complex128) error {
	key, err := PauliKey(factors)
	if err != nil {
		return err
	}
	q[key] += c
	return nil
}

// Add accumulates every term of other into q.
func (q QubitOperator) Add(other QubitOperator) {
	for key, c := range other {
		q[key] += c
	}
}

// Scale multiplies every coefficient by c.
func (q QubitOperator) Scale(c complex128) {
	for key := range q {
		q[key] *= c
	}
}

// Compress removes terms whose coefficient magnitude is at or below tol.
func (q QubitOperator) Compress(tol float64) {
	for key, c := range q {
		if cmplx.Abs(c) <= tol {
			delete(q, key)
		}
	}
}

// Terms returns the operator contents sorted by term key, identity first.
func (q QubitOperator) Terms() []QubitTerm {
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	terms := make([]QubitTerm, 0, len(keys))
	for _, key := range keys {
		factors, err := ParsePauliTerm(key)
		if err != nil {
			continue
		}
		terms = append(terms, QubitTerm{Factors: factors, Coefficient: q[key]})
	}
	return terms
}

// NQubits returns one past the highest qubit index touched by any term.
func (q QubitOperator) NQubits() int {
	max := 0
	for key := range q {
		factors, err := ParsePauliTerm(key)
		if err != nil {
			continue
		}
		for _, f := range factors {
			if f.Qubit+1 > max {
				max = f.Qubit + 1
			}
		}
	}
	return max
}

// Equal reports exact coefficient equality after dropping zero entries.
func (q QubitOperator) Equal(other QubitOperator) bool {
	return q.AlmostEqual(other, 0)
}

// AlmostEqual reports whether the two operators differ by at most tol in any
// coefficient.
func (q QubitOperator) AlmostEqual(other QubitOperator, tol float64) bool {
	for key, c := range q {
		if !coeffClose(c, other[key], tol) {
			return false
		}
	}
	for key, c := range other {
		if _, ok := q[key]; !ok && !coeffClose(c, 0, tol) {
			return false
		}
	}
	return true
}

func (q QubitOperator) String() string {
	terms := q.Terms()
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		label := "I"
		if len(term.Factors) > 0 {
			labels := make([]string, 0, len(term.Factors))
			for _, f := range term.Factors {
				labels = append(labels, f.String())
			}
			label = strings.Join(labels, " ")
		}
		parts = append(parts, fmt.Sprintf("%v [%s]", term.Coefficient, label))
	}
	return strings.Join(parts, " + ")
}

func coeffClose(a, b complex128, tol float64) bool {
	if tol == 0 {
		return a == b
	}
	return math.Abs(real(a)-real(b)) <= tol && math.Abs(imag(a)-imag(b)) <= tol
}
