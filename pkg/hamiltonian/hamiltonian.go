// Package hamiltonian exposes the qubit-Hamiltonian base abstraction: a
// Source supplies a fermionic Hamiltonian, the configured transformation is
// resolved through a transform.Registry, and QubitOperator returns the
// transformed result. There is no caching; every call re-verifies and
// recomputes.
package hamiltonian

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZPBQuantum/tequila/pkg/operator"
	"github.com/ZPBQuantum/tequila/pkg/transform"
	"github.com/rs/zerolog"
)

// Option customises the Hamiltonian configuration.
type Option func(*Hamiltonian)

// WithParameters replaces the default (Jordan-Wigner) parameters.
func WithParameters(p Parameters) Option {
	return func(h *Hamiltonian) {
		h.params = p
	}
}

// WithRegistry injects a transform registry, typically shared with a backend
// that registered the built-in encodings.
func WithRegistry(registry *transform.Registry) Option {
	return func(h *Hamiltonian) {
		h.registry = registry
	}
}

// WithTransforms registers additional transforms on the Hamiltonian's
// registry during construction. Registration failures surface from New.
func WithTransforms(transforms ...transform.Transform) Option {
	return func(h *Hamiltonian) {
		h.pending = append(h.pending, transforms...)
	}
}

// WithLogger attaches a logger for dispatch diagnostics. The default is a
// no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Hamiltonian) {
		h.logger = logger
	}
}

// Hamiltonian binds a Source to a transformation configuration. Construct
// with New; the zero value is not usable.
type Hamiltonian struct {
	source   Source
	params   Parameters
	registry *transform.Registry
	logger   zerolog.Logger
	pending  []transform.Transform
}

// New assembles a Hamiltonian over source. The configured transformation is
// resolved eagerly: an unrecognized custom name fails here with a
// ParameterError rather than on first use. A built-in alias whose backend has
// not been registered yet is tolerated until QubitOperator runs, so wiring
// order between backends and Hamiltonians does not matter.
func New(source Source, opts ...Option) (*Hamiltonian, error) {
	if source == nil {
		return nil, errors.New("hamiltonian: source is required")
	}

	h := &Hamiltonian{
		source: source,
		params: DefaultParameters(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.registry == nil {
		h.registry = transform.NewRegistry()
	}
	for _, t := range h.pending {
		if err := h.registry.Register(t); err != nil {
			return nil, err
		}
	}
	h.pending = nil

	if err := h.checkTransformation("hamiltonian.New"); err != nil {
		return nil, err
	}
	return h, nil
}

// Parameters returns the active configuration.
func (h *Hamiltonian) Parameters() Parameters {
	return h.params
}

// Registry returns the transform registry in use.
func (h *Hamiltonian) Registry() *transform.Registry {
	return h.registry
}

// NQubits reports the qubit count of the transformed operator, delegating to
// the source.
func (h *Hamiltonian) NQubits() (int, error) {
	return h.source.NQubits()
}

// Verify checks the parameters and the source. Failures come back as a
// ValidationError and abort any computation.
func (h *Hamiltonian) Verify() error {
	if strings.TrimSpace(h.params.Transformation) == "" {
		return &ValidationError{Err: errors.New("transformation must not be empty")}
	}
	if err := h.source.Verify(); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// QubitOperator produces the qubit form of the source Hamiltonian: verify,
// resolve the configured transformation, fetch the fermionic Hamiltonian,
// convert it to ladder form and apply the transform. Nothing is cached;
// consecutive calls over an unchanged source return equal operators.
func (h *Hamiltonian) QubitOperator(ctx context.Context) (operator.QubitOperator, error) {
	if ctx == nil {
		return nil, errors.New("hamiltonian: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := h.Verify(); err != nil {
		return nil, err
	}

	tr, err := h.resolve("Hamiltonian.QubitOperator")
	if err != nil {
		return nil, err
	}

	src, err := h.source.FermionicHamiltonian()
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: fermionic hamiltonian: %w", err)
	}
	if src == nil {
		return nil, errors.New("hamiltonian: source returned a nil fermionic hamiltonian")
	}

	fop, err := src.FermionOperator()
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: fermion operator conversion: %w", err)
	}

	h.logger.Debug().
		Str("transformation", tr.Name()).
		Int("fermion_terms", len(fop)).
		Msg("applying fermion-to-qubit transform")

	out, err := tr.Apply(ctx, fop)
	if err != nil {
		return nil, fmt.Errorf("hamiltonian: apply %s: %w", tr.Name(), err)
	}
	return out, nil
}

// resolve maps the configured transformation name to a registered transform.
// Built-in aliases fold to their canonical registry names; anything else must
// match a registered custom transform exactly or a ParameterError is
// returned.
func (h *Hamiltonian) resolve(calledFrom string) (transform.Transform, error) {
	name := h.params.Transformation
	if h.params.JordanWigner() || h.params.BravyiKitaev() {
		tr, err := h.registry.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("hamiltonian: transformation %q: %w", name, err)
		}
		return tr, nil
	}
	if tr, err := h.registry.Get(name); err == nil {
		return tr, nil
	}
	return nil, &ParameterError{
		Name:       "transformation",
		Type:       fmt.Sprintf("%T", h.params),
		Value:      name,
		CalledFrom: calledFrom,
	}
}

// checkTransformation implements New's eager validation: built-in aliases
// always pass (their backend may be registered later), unknown custom names
// fail immediately.
func (h *Hamiltonian) checkTransformation(calledFrom string) error {
	if strings.TrimSpace(h.params.Transformation) == "" {
		return &ValidationError{Err: errors.New("transformation must not be empty")}
	}
	if transform.Builtin(h.params.Transformation) {
		return nil
	}
	_, err := h.resolve(calledFrom)
	return err
}
