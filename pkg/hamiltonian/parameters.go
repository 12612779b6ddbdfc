package hamiltonian

import (
	"fmt"
	"io"
	"os"

	"github.com/ZPBQuantum/tequila/pkg/transform"
	"gopkg.in/yaml.v3"
)

// Parameters configures a Hamiltonian. The only field is the requested
// fermion-to-qubit transformation name: either one of the built-in alias
// spellings (JW/J-W/Jordan-Wigner, BK/B-K/Bravyi-Kitaev, any case) or the
// exact name of a registered custom transform.
type Parameters struct {
	Transformation string `yaml:"transformation"`
}

// DefaultParameters returns the Jordan-Wigner default configuration.
func DefaultParameters() Parameters {
	return Parameters{Transformation: "JW"}
}

// JordanWigner reports whether the configured transformation is one of the
// Jordan-Wigner spellings. Pure query, no side effects.
func (p Parameters) JordanWigner() bool {
	return transform.IsJordanWigner(p.Transformation)
}

// BravyiKitaev reports whether the configured transformation is one of the
// Bravyi-Kitaev spellings. Pure query, no side effects.
func (p Parameters) BravyiKitaev() bool {
	return transform.IsBravyiKitaev(p.Transformation)
}

// DecodeParameters reads a YAML parameters document. Unknown keys are
// rejected so stale or misspelled fields surface immediately.
func DecodeParameters(r io.Reader) (Parameters, error) {
	var p Parameters
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Parameters{}, fmt.Errorf("hamiltonian: decode parameters: %w", err)
	}
	return p, nil
}

// LoadParameters reads a YAML parameters document from disk.
func LoadParameters(path string) (Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("hamiltonian: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeParameters(f)
}

// Encode writes the parameters as YAML.
func (p Parameters) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("hamiltonian: encode parameters: %w", err)
	}
	return nil
}
