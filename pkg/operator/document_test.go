package operator_test

import (
	"strings"
	"testing"

	"github.com/ZPBQuantum/tequila/pkg/operator"
	"github.com/google/go-cmp/cmp"
)

const tensorDoc = `
constant: 0.5
one_body:
  - [1.0, 0.2]
  - [0.2, -1.0]
two_body:
  - {p: 0, q: 1, r: 1, s: 0, value: 0.25}
`

const termDoc = `
terms:
  - {ops: "1^ 0", value: 0.5}
  - {ops: "0^ 1", value: 0.5}
  - {ops: "", value: -0.25}
`

func TestDecodeTensorDocument(t *testing.T) {
	doc, err := operator.DecodeDocument(strings.NewReader(tensorDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	src, err := doc.Operator()
	if err != nil {
		t.Fatalf("operator: %v", err)
	}
	interaction, ok := src.(*operator.InteractionOperator)
	if !ok {
		t.Fatalf("expected interaction operator, got %T", src)
	}
	if interaction.NModes() != 2 {
		t.Fatalf("expected 2 modes, got %d", interaction.NModes())
	}

	got, err := interaction.FermionOperator()
	if err != nil {
		t.Fatalf("fermion operator: %v", err)
	}
	want := operator.FermionOperator{
		"":          0.5,
		"0^ 0":      1,
		"0^ 1":      0.2,
		"1^ 0":      0.2,
		"1^ 1":      -1,
		"0^ 1^ 1 0": 0.25,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTermDocument(t *testing.T) {
	doc, err := operator.DecodeDocument(strings.NewReader(termDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	src, err := doc.Operator()
	if err != nil {
		t.Fatalf("operator: %v", err)
	}
	got, ok := src.(operator.FermionOperator)
	if !ok {
		t.Fatalf("expected fermion operator, got %T", src)
	}

	want := operator.FermionOperator{
		"1^ 0": 0.5,
		"0^ 1": 0.5,
		"":     -0.25,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("term mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := operator.DecodeDocument(strings.NewReader("transformation: JW\n"))
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDocumentRejectsMixedLayout(t *testing.T) {
	doc := operator.Document{
		OneBody: [][]float64{{1}},
		Terms:   []operator.TermEntry{{Ops: "0^ 0", Value: 1}},
	}
	if _, err := doc.Operator(); err == nil {
		t.Fatalf("expected mixed layout error")
	}
}

func TestDocumentRejectsEmpty(t *testing.T) {
	if _, err := (operator.Document{}).Operator(); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestDocumentRejectsRaggedOneBody(t *testing.T) {
	doc := operator.Document{OneBody: [][]float64{{1, 2}, {3}}}
	if _, err := doc.Operator(); err == nil {
		t.Fatalf("expected ragged matrix error")
	}
}

func TestDocumentRejectsTwoBodyOutOfRange(t *testing.T) {
	doc := operator.Document{
		OneBody: [][]float64{{1}},
		TwoBody: []operator.TwoBodyEntry{{P: 0, Q: 0, R: 0, S: 1, Value: 1}},
	}
	if _, err := doc.Operator(); err == nil {
		t.Fatalf("expected out of range error")
	}
}
