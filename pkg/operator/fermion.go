package operator

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// LadderFactor is a single fermionic creation or annihilation operator acting
// on one mode. Creation renders as "p^", annihilation as "p".
type LadderFactor struct {
	Mode     int
	Creation bool
}

func (f LadderFactor) String() string {
	if f.Creation {
		return strconv.Itoa(f.Mode) + "^"
	}
	return strconv.Itoa(f.Mode)
}

// FermionTerm pairs an ordered ladder-operator product with its coefficient.
// Order is significant; ladder operators do not commute.
type FermionTerm struct {
	Factors     []LadderFactor
	Coefficient complex128
}

// Fermionic is anything that can produce a fermion-operator representation of
// itself. FermionOperator satisfies it trivially; InteractionOperator expands
// its tensors. Hamiltonian sources return this so transform backends always
// receive the ladder-operator form.
type Fermionic interface {
	FermionOperator() (FermionOperator, error)
}

// FermionOperator is a weighted sum of ladder-operator products, keyed by the
// canonical term representation ("2^ 0"; "" is the identity).
type FermionOperator map[string]complex128

// NewFermionOperator returns an empty fermion operator.
func NewFermionOperator() FermionOperator {
	return make(FermionOperator)
}

// FermionIdentity returns c times the identity.
func FermionIdentity(c complex128) FermionOperator {
	return FermionOperator{"": c}
}

// FermionOperator satisfies Fermionic; the operator is already in ladder form.
func (f FermionOperator) FermionOperator() (FermionOperator, error) {
	return f, nil
}

// LadderKey renders a factor product in canonical text form, preserving the
// given operator order.
func LadderKey(factors []LadderFactor) (string, error) {
	if len(factors) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		if f.Mode < 0 {
			return "", fmt.Errorf("operator: negative mode index %d", f.Mode)
		}
		parts = append(parts, f.String())
	}
	return strings.Join(parts, " "), nil
}

// ParseLadderTerm parses a canonical-form term such as "2^ 0". The empty
// string parses to the identity.
func ParseLadderTerm(term string) ([]LadderFactor, error) {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return nil, nil
	}
	factors := make([]LadderFactor, 0, len(fields))
	for _, field := range fields {
		creation := strings.HasSuffix(field, "^")
		raw := strings.TrimSuffix(field, "^")
		mode, err := strconv.Atoi(raw)
		if err != nil || mode < 0 {
			return nil, fmt.Errorf("operator: invalid ladder factor %q", field)
		}
		factors = append(factors, LadderFactor{Mode: mode, Creation: creation})
	}
	return factors, nil
}

// AddTerm accumulates c onto the term described by factors.
func (f FermionOperator) AddTerm(factors []LadderFactor, c complex128) error {
	key, err := LadderKey(factors)
	if err != nil {
		return err
	}
	f[key] += c
	return nil
}

// Add accumulates every term of other into f.
func (f FermionOperator) Add(other FermionOperator) {
	for key, c := range other {
		f[key] += c
	}
}

// Scale multiplies every coefficient by c.
func (f FermionOperator) Scale(c complex128) {
	for key := range f {
		f[key] *= c
	}
}

// Compress removes terms whose coefficient magnitude is at or below tol.
func (f FermionOperator) Compress(tol float64) {
	for key, c := range f {
		if cmplx.Abs(c) <= tol {
			delete(f, key)
		}
	}
}

// Terms returns the operator contents sorted by term key, identity first.
func (f FermionOperator) Terms() []FermionTerm {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	terms := make([]FermionTerm, 0, len(keys))
	for _, key := range keys {
		factors, err := ParseLadderTerm(key)
		if err != nil {
			continue
		}
		terms = append(terms, FermionTerm{Factors: factors, Coefficient: f[key]})
	}
	return terms
}

// NModes returns one past the highest mode index touched by any term.
func (f FermionOperator) NModes() int {
	max := 0
	for key := range f {
		factors, err := ParseLadderTerm(key)
		if err != nil {
			continue
		}
		for _, factor := range factors {
			if factor.Mode+1 > max {
				max = factor.Mode + 1
			}
		}
	}
	return max
}

// Equal reports exact coefficient equality after dropping zero entries.
func (f FermionOperator) Equal(other FermionOperator) bool {
	return f.AlmostEqual(other, 0)
}

// AlmostEqual reports whether the two operators differ by at most tol in any
// coefficient.
func (f FermionOperator) AlmostEqual(other FermionOperator, tol float64) bool {
	for key, c := range f {
		if !coeffClose(c, other[key], tol) {
			return false
		}
	}
	for key, c := range other {
		if _, ok := f[key]; !ok && !coeffClose(c, 0, tol) {
			return false
		}
	}
	return true
}

func (f FermionOperator) String() string {
	terms := f.Terms()
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		label := "I"
		if len(term.Factors) > 0 {
			labels := make([]string, 0, len(term.Factors))
			for _, factor := range term.Factors {
				labels = append(labels, factor.String())
			}
			label = strings.Join(labels, " ")
		}
		parts = append(parts, fmt.Sprintf("%v [%s]", term.Coefficient, label))
	}
	return strings.Join(parts, " + ")
}
