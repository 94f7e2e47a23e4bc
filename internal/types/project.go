package types

// ProjectUpwards returns a supertype of t that mentions no restricted
// variable (capture or inference variable), JLS 4.10.5. The result is t
// itself when t is already free of them.
func (ts *TypeSystem) ProjectUpwards(t Type) Type {
	p := &projector{ts: ts, up: true}
	return p.project(t)
}

// ProjectDownwards returns a subtype of t free of restricted variables, or
// nil: downward projection is partial and nil propagates through composite
// terms.
func (ts *TypeSystem) ProjectDownwards(t Type) Type {
	p := &projector{ts: ts, up: false}
	return p.project(t)
}

type projector struct {
	ts *TypeSystem
	up bool
}

// invert returns the projector of the opposite direction.
func (p *projector) invert() *projector {
	return &projector{ts: p.ts, up: !p.up}
}

func (p *projector) project(t Type) Type {
	switch tt := t.(type) {
	case *TypeVar:
		if !tt.IsCaptured() {
			return t
		}
		if p.up {
			return p.project(tt.UpperBound())
		}
		return p.project(tt.LowerBound())

	case *InferenceVar:
		if p.up {
			return p.ts.Object
		}
		return nil

	case *NullType:
		if p.up {
			return t
		}
		return nil

	case *WildcardType:
		return p.projectWildcard(tt)

	case *ClassType:
		return p.projectClass(tt)

	case *IntersectionType:
		super := p.project(tt.Superclass)
		ifaces := p.projectList(tt.Interfaces)
		if super == nil || ifaces == nil {
			return nil
		}
		if super == tt.Superclass && sameList(ifaces, tt.Interfaces) {
			return t
		}
		return &IntersectionType{Superclass: super, Interfaces: ifaces, ts: tt.ts}

	case *ArrayType:
		comp := p.project(tt.Component)
		if comp == nil {
			return nil
		}
		if comp == tt.Component {
			return t
		}
		return &ArrayType{Component: comp, ts: tt.ts}

	default:
		// Primitives, sentinels and declared variables pass through both
		// ways.
		return t
	}
}

// projectList applies project element-wise, returning nil if any element
// projects to nil. The input slice is returned as-is when no element
// changed; otherwise the copy is allocated once, on the first change.
func (p *projector) projectList(list []Type) []Type {
	if len(list) == 0 {
		return list
	}
	var out []Type
	for i, t := range list {
		mapped := p.project(t)
		if mapped == nil {
			return nil
		}
		if out == nil {
			if mapped == t {
				continue
			}
			out = make([]Type, len(list))
			copy(out, list[:i])
		}
		out[i] = mapped
	}
	if out == nil {
		return list
	}
	return out
}

func (p *projector) projectWildcard(w *WildcardType) Type {
	if w.Upper {
		bound := p.project(w.Bound)
		if bound == nil {
			return nil
		}
		if bound == w.Bound {
			return w
		}
		return p.ts.Wildcard(true, bound)
	}
	// Lower-bounded: the bound moves against the projection direction.
	bound := p.invert().project(w.Bound)
	if bound == nil {
		if p.up {
			return p.ts.UnboundedWild
		}
		return nil
	}
	if bound == w.Bound {
		return w
	}
	return p.ts.Wildcard(false, bound)
}

func (p *projector) projectClass(c *ClassType) Type {
	encl := c.Enclosing
	if encl != nil {
		pe := p.project(encl)
		if pe == nil {
			return nil
		}
		encl = pe.(*ClassType)
	}

	params := c.Symbol.TypeParams()
	var args []Type
	for i, a := range c.Args {
		mapped := p.projectArg(a, params, i)
		if mapped == nil {
			return nil
		}
		if args == nil {
			if mapped == a {
				continue
			}
			args = make([]Type, len(c.Args))
			copy(args, c.Args[:i])
		}
		args[i] = mapped
	}

	if args == nil && encl == c.Enclosing {
		return c
	}
	if args == nil {
		args = c.Args
	}
	return &ClassType{
		Symbol:           c.Symbol,
		Args:             args,
		Enclosing:        encl,
		ErasedSupertypes: c.ErasedSupertypes,
		ts:               c.ts,
	}
}

// projectArg handles one type-argument position. Wildcard arguments project
// through the wildcard rules; a proper-type argument that projection would
// change is rewrapped as a wildcard upwards and fails downwards.
func (p *projector) projectArg(a Type, params []*TypeVar, i int) Type {
	if _, isWild := a.(*WildcardType); isWild {
		return p.project(a)
	}
	mapped := p.project(a)
	if mapped == a {
		return a
	}
	if !p.up {
		return nil
	}

	var declaredBound Type = p.ts.Object
	var formals []Type
	if i < len(params) {
		declaredBound = params[i].UpperBound()
		formals = make([]Type, len(params))
		for j, f := range params {
			formals[j] = f
		}
	}

	// An F-bounded parameter, or an upper projection that does not stay
	// above the declared bound, forces the extends form.
	if MentionsAny(declaredBound, formals) || !p.ts.IsSubtype(declaredBound, mapped, false) {
		return p.ts.Wildcard(true, mapped)
	}
	if down := p.invert().project(a); down != nil {
		return p.ts.Wildcard(false, down)
	}
	return p.ts.UnboundedWild
}
