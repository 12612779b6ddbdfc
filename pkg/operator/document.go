package operator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML form of a fermionic Hamiltonian. Two layouts
// are accepted: integral tensors (constant/one_body/two_body) decoding to an
// InteractionOperator, or an explicit term list decoding to a
// FermionOperator. Mixing both layouts is rejected.
type Document struct {
	Constant float64        `yaml:"constant"`
	OneBody  [][]float64    `yaml:"one_body"`
	TwoBody  []TwoBodyEntry `yaml:"two_body"`
	Terms    []TermEntry    `yaml:"terms"`
}

// TwoBodyEntry is a sparse two-body tensor element h2[p,q,r,s].
type TwoBodyEntry struct {
	P     int     `yaml:"p"`
	Q     int     `yaml:"q"`
	R     int     `yaml:"r"`
	S     int     `yaml:"s"`
	Value float64 `yaml:"value"`
}

// TermEntry is one ladder-operator term in canonical text form, e.g.
// {ops: "1^ 0", value: 0.5}.
type TermEntry struct {
	Ops   string  `yaml:"ops"`
	Value float64 `yaml:"value"`
}

// DecodeDocument reads a YAML operator document. Unknown keys are rejected so
// typos in hand-written files surface immediately.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("operator: decode document: %w", err)
	}
	return doc, nil
}

// LoadDocument reads a YAML operator document from disk.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("operator: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeDocument(f)
}

// Operator materialises the document into its fermionic representation.
func (doc Document) Operator() (Fermionic, error) {
	hasTensors := len(doc.OneBody) > 0 || len(doc.TwoBody) > 0
	if len(doc.Terms) > 0 {
		if hasTensors {
			return nil, errors.New("operator: document mixes terms with integral tensors")
		}
		return doc.fermionOperator()
	}
	if !hasTensors && doc.Constant == 0 {
		return nil, errors.New("operator: document is empty")
	}
	return doc.interactionOperator()
}

func (doc Document) fermionOperator() (FermionOperator, error) {
	out := NewFermionOperator()
	for _, entry := range doc.Terms {
		factors, err := ParseLadderTerm(entry.Ops)
		if err != nil {
			return nil, err
		}
		if err := out.AddTerm(factors, complex(entry.Value, 0)); err != nil {
			return nil, err
		}
	}
	if doc.Constant != 0 {
		out[""] += complex(doc.Constant, 0)
	}
	return out, nil
}

func (doc Document) interactionOperator() (*InteractionOperator, error) {
	n := len(doc.OneBody)
	if n == 0 {
		return nil, errors.New("operator: document has no one_body matrix")
	}
	data := make([]complex128, 0, n*n)
	for i, row := range doc.OneBody {
		if len(row) != n {
			return nil, fmt.Errorf("operator: one_body row %d has %d entries, want %d", i, len(row), n)
		}
		for _, v := range row {
			data = append(data, complex(v, 0))
		}
	}

	op := &InteractionOperator{
		Constant: complex(doc.Constant, 0),
		OneBody:  mat.NewCDense(n, n, data),
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	for _, entry := range doc.TwoBody {
		if entry.P < 0 || entry.P >= n || entry.Q < 0 || entry.Q >= n ||
			entry.R < 0 || entry.R >= n || entry.S < 0 || entry.S >= n {
			return nil, fmt.Errorf("operator: two_body index (%d,%d,%d,%d) out of range for %d modes",
				entry.P, entry.Q, entry.R, entry.S, n)
		}
		op.SetTwoBody(entry.P, entry.Q, entry.R, entry.S, complex(entry.Value, 0))
	}
	return op, nil
}
