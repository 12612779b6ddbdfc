package transform_test

import (
	"context"
	"testing"

	"github.com/ZPBQuantum/tequila/pkg/operator"
	"github.com/ZPBQuantum/tequila/pkg/transform"
	"github.com/google/go-cmp/cmp"
)

func identityTransform(name string) transform.Transform {
	return transform.NewFunc(name, func(_ context.Context, src operator.FermionOperator) (operator.QubitOperator, error) {
		return operator.QubitIdentity(complex(float64(len(src)), 0)), nil
	})
}

func TestRegistryRegisterAndResolve(t *testing.T) {
	registry := transform.NewRegistry()
	if err := registry.Register(identityTransform("JW")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Registration under an alias lands on the canonical name.
	if !registry.Has(transform.JordanWigner) {
		t.Fatalf("expected canonical jordan-wigner entry")
	}
	for _, name := range []string{"JW", "j-w", "Jordan-Wigner"} {
		if _, err := registry.Resolve(name); err != nil {
			t.Fatalf("resolve %q: %v", name, err)
		}
	}
}

func TestRegistryExactMatchForCustomNames(t *testing.T) {
	registry := transform.NewRegistry()
	registry.MustRegister(identityTransform("parity"))

	if _, err := registry.Resolve("parity"); err != nil {
		t.Fatalf("resolve parity: %v", err)
	}
	if _, err := registry.Resolve("Parity"); err == nil {
		t.Fatalf("custom names are case-sensitive, Parity must not resolve")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := transform.NewRegistry()
	registry.MustRegister(identityTransform("JW"))
	if err := registry.Register(identityTransform("jordan-wigner")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := transform.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil transform")
	}
	if err := registry.Register(identityTransform("")); err == nil {
		t.Fatalf("expected error for unnamed transform")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := transform.NewRegistry()
	registry.MustRegister(identityTransform("parity"))
	registry.MustRegister(identityTransform("BK"))
	registry.MustRegister(identityTransform("JW"))

	want := []string{transform.BravyiKitaev, transform.JordanWigner, "parity"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestFuncTransformApplies(t *testing.T) {
	tr := identityTransform("probe")
	got, err := tr.Apply(context.Background(), operator.FermionOperator{"0^ 0": 1, "1^ 1": 1})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !got.Equal(operator.QubitIdentity(2)) {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestFuncTransformWithoutImplementation(t *testing.T) {
	tr := transform.NewFunc("hollow", nil)
	if _, err := tr.Apply(context.Background(), nil); err == nil {
		t.Fatalf("expected error from transform without implementation")
	}
}
