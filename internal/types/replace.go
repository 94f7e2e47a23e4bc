package types

// Subst maps substitution variables (declared type parameters or capture
// variables) to type terms. A nil Subst is the identity.
type Subst map[*TypeVar]Type

// IsEmpty reports whether applying s can never change a term.
func (s Subst) IsEmpty() bool { return len(s) == 0 }

// Compose returns a substitution equivalent to applying s first, then next.
func (s Subst) Compose(next Subst) Subst {
	if s.IsEmpty() {
		return next
	}
	if next.IsEmpty() {
		return s
	}
	out := make(Subst, len(s)+len(next))
	for k, v := range s {
		out[k] = ApplySubst(v, next)
	}
	for k, v := range next {
		if _, shadowed := out[k]; !shadowed {
			out[k] = v
		}
	}
	return out
}

// ApplySubst applies sigma to t. The result is pointer-identical to t when
// no descendant mentions a key of sigma; in particular ApplySubst(t, nil)
// returns t itself.
func ApplySubst(t Type, sigma Subst) Type {
	if sigma.IsEmpty() || t == nil {
		return t
	}
	switch tt := t.(type) {
	case *TypeVar:
		if repl, ok := sigma[tt]; ok {
			return repl
		}
		return t

	case *ClassType:
		args := SubstList(tt.Args, sigma)
		encl := tt.Enclosing
		if encl != nil {
			if e, ok := ApplySubst(encl, sigma).(*ClassType); ok {
				encl = e
			}
		}
		if sameList(args, tt.Args) && encl == tt.Enclosing {
			return t
		}
		return &ClassType{
			Symbol:           tt.Symbol,
			Args:             args,
			Enclosing:        encl,
			ErasedSupertypes: tt.ErasedSupertypes,
			ts:               tt.ts,
		}

	case *ArrayType:
		comp := ApplySubst(tt.Component, sigma)
		if comp == tt.Component {
			return t
		}
		return &ArrayType{Component: comp, ts: tt.ts}

	case *WildcardType:
		bound := ApplySubst(tt.Bound, sigma)
		if bound == tt.Bound {
			return t
		}
		return &WildcardType{Upper: tt.Upper, Bound: bound, ts: tt.ts}

	case *IntersectionType:
		super := ApplySubst(tt.Superclass, sigma)
		ifaces := SubstList(tt.Interfaces, sigma)
		if super == tt.Superclass && sameList(ifaces, tt.Interfaces) {
			return t
		}
		return &IntersectionType{Superclass: super, Interfaces: ifaces, ts: tt.ts}

	default:
		// Primitives, null, sentinels and inference variables have no
		// substitutable structure.
		return t
	}
}

// sameList reports whether two slices are the same backing sequence.
func sameList(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// SubstList applies sigma element-wise. The input slice is returned as-is
// when no element changed; otherwise the copy is allocated once, on the
// first change.
func SubstList(list []Type, sigma Subst) []Type {
	if len(list) == 0 || sigma.IsEmpty() {
		return list
	}
	var out []Type
	for i, t := range list {
		mapped := ApplySubst(t, sigma)
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

// SubstInBounds applies sigma inside v's bounds, in place, and returns v.
// The variable keeps its identity; only freshly created capture variables
// may be targeted, before they are shared.
func SubstInBounds(v *TypeVar, sigma Subst) *TypeVar {
	v.Upper = ApplySubst(v.Upper, sigma)
	if v.Lower != nil {
		v.Lower = ApplySubst(v.Lower, sigma)
	}
	return v
}
