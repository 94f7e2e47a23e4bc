// Package infer hosts inference sessions: the owners of inference
// variables and the observers of the bounds the type algebra accretes on
// them. Constraint reduction itself lives in the caller; this package only
// provides the variable lifecycle and the sequenced bound-event log.
package infer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/breakbot-playground/pmd/internal/types"
)

// BoundEvent records one bound accretion, in program order within the
// session.
type BoundEvent struct {
	Var   *types.InferenceVar
	Kind  types.BoundKind
	Bound types.Type
}

func (e BoundEvent) String() string {
	return fmt.Sprintf("%s %s-bound %s", e.Var, e.Kind, e.Bound)
}

// Session owns a set of inference variables. Sessions are single-threaded;
// distinct sessions over disjoint term graphs may run in parallel but must
// never share variables.
type Session struct {
	id      uuid.UUID
	counter int
	vars    []*types.InferenceVar
	events  []BoundEvent
	observe func(BoundEvent)
}

func NewSession() *Session {
	return &Session{id: uuid.New()}
}

// ID identifies the session, for attributing bound events in diagnostics.
func (s *Session) ID() string { return s.id.String() }

// Observe installs a callback invoked on every bound event, after it is
// logged. At most one observer is active.
func (s *Session) Observe(fn func(BoundEvent)) { s.observe = fn }

// Fresh allocates a new inference variable owned by this session. The name
// hint is decorated with a per-session ordinal.
func (s *Session) Fresh(nameHint string) *types.InferenceVar {
	s.counter++
	v := types.NewInferenceVar(fmt.Sprintf("%s#%d", nameHint, s.counter))
	v.SetListener(func(iv *types.InferenceVar, kind types.BoundKind, bound types.Type) {
		ev := BoundEvent{Var: iv, Kind: kind, Bound: bound}
		s.events = append(s.events, ev)
		if s.observe != nil {
			s.observe(ev)
		}
	})
	s.vars = append(s.vars, v)
	return v
}

// Vars lists the session's variables in allocation order.
func (s *Session) Vars() []*types.InferenceVar { return s.vars }

// Events returns the bound-event log in accretion order.
func (s *Session) Events() []BoundEvent { return s.events }

// BoundsOf reads the accumulated bounds of one of the session's variables.
func (s *Session) BoundsOf(v *types.InferenceVar, kind types.BoundKind) []types.Type {
	return v.BoundsOf(kind)
}
