package hamiltonian_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZPBQuantum/tequila/pkg/hamiltonian"
)

func TestDefaultParameters(t *testing.T) {
	params := hamiltonian.DefaultParameters()
	if params.Transformation != "JW" {
		t.Fatalf("expected JW default, got %q", params.Transformation)
	}
	if !params.JordanWigner() {
		t.Fatalf("default parameters must report Jordan-Wigner")
	}
	if params.BravyiKitaev() {
		t.Fatalf("default parameters must not report Bravyi-Kitaev")
	}
}

func TestJordanWignerPredicate(t *testing.T) {
	for _, name := range []string{"JW", "jw", "J-W", "Jordan-Wigner"} {
		params := hamiltonian.Parameters{Transformation: name}
		if !params.JordanWigner() {
			t.Fatalf("expected JordanWigner() for %q", name)
		}
		if params.BravyiKitaev() {
			t.Fatalf("%q must not report Bravyi-Kitaev", name)
		}
	}
}

func TestBravyiKitaevPredicate(t *testing.T) {
	for _, name := range []string{"BK", "bk", "B-K", "Bravyi-Kitaev"} {
		params := hamiltonian.Parameters{Transformation: name}
		if !params.BravyiKitaev() {
			t.Fatalf("expected BravyiKitaev() for %q", name)
		}
		if params.JordanWigner() {
			t.Fatalf("%q must not report Jordan-Wigner", name)
		}
	}
}

func TestPredicatesRejectUnrelatedNames(t *testing.T) {
	for _, name := range []string{"", "JWX", "jordanwigner", "custom_transform"} {
		params := hamiltonian.Parameters{Transformation: name}
		if params.JordanWigner() || params.BravyiKitaev() {
			t.Fatalf("%q must not match a built-in family", name)
		}
	}
}

func TestParametersRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := hamiltonian.Parameters{Transformation: "B-K"}
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := hamiltonian.DecodeParameters(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %#v != %#v", out, in)
	}
}

func TestDecodeParametersRejectsUnknownKeys(t *testing.T) {
	_, err := hamiltonian.DecodeParameters(strings.NewReader("transformation: JW\nbasis: sto-3g\n"))
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
}
