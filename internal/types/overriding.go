package types

// renaming builds the substitution mapping from's type parameters to to's,
// positionally. Nil when the counts differ or there is nothing to rename.
func renaming(from, to []*TypeVar) (Subst, bool) {
	if len(from) != len(to) {
		return nil, false
	}
	if len(from) == 0 {
		return nil, true
	}
	sigma := make(Subst, len(from))
	for i, f := range from {
		sigma[f] = to[i]
	}
	return sigma, true
}

// HaveSameTypeParams reports whether two methods declare the same type
// parameters: same count and pairwise structurally equal bounds, after
// renaming m2's parameters to m1's.
func HaveSameTypeParams(m1, m2 *MethodSig) bool {
	sigma, ok := renaming(m2.TypeParams, m1.TypeParams)
	if !ok {
		return false
	}
	for i, p := range m1.TypeParams {
		q := m2.TypeParams[i]
		if !IsSameType(p.UpperBound(), ApplySubst(q.UpperBound(), sigma)) {
			return false
		}
	}
	return true
}

// HaveSameSignature reports whether m1 and m2 have the same signature,
// JLS 8.4.2: same name, same arity, same type parameters, and pairwise
// equal formal parameter types once m2's type parameters are renamed to
// m1's. Thrown types are not part of the signature.
func HaveSameSignature(m1, m2 *MethodSig) bool {
	if m1.Name() != m2.Name() || m1.Arity() != m2.Arity() {
		return false
	}
	if !HaveSameTypeParams(m1, m2) {
		return false
	}
	sigma, _ := renaming(m2.TypeParams, m1.TypeParams)
	for i, p := range m1.Params {
		if !IsSameType(p, ApplySubst(m2.Params[i], sigma)) {
			return false
		}
	}
	return true
}

// IsSubSignature reports whether m1's signature subsumes m2's, JLS 8.4.2:
// m1 has the same signature as m2, or as the erasure of m2. The relation is
// asymmetric: a generic m1 is never a subsignature of a non-generic m2 by
// erasure.
func IsSubSignature(m1, m2 *MethodSig) bool {
	if HaveSameSignature(m1, m2) {
		return true
	}
	return HaveSameSignature(m1, eraseSig(m2))
}

// AreOverrideEquivalent reports whether either method is a subsignature of
// the other, JLS 8.4.2. When exactly one side is generic it is erased first.
func AreOverrideEquivalent(m1, m2 *MethodSig) bool {
	if m1.Arity() != m2.Arity() {
		return false
	}
	g1 := len(m1.TypeParams) > 0
	g2 := len(m2.TypeParams) > 0
	if g1 != g2 {
		if g1 {
			m1 = eraseSig(m1)
		} else {
			m2 = eraseSig(m2)
		}
	}
	return IsSubSignature(m1, m2) || IsSubSignature(m2, m1)
}

// IsReturnTypeSubstitutable implements JLS 8.4.5 for m1 overriding m2.
func (ts *TypeSystem) IsReturnTypeSubstitutable(m1, m2 *MethodSig) bool {
	r1, r2 := m1.Return, m2.Return

	if r1 == Type(ts.NoType) {
		return IsSameType(r1, r2)
	}
	if IsPrimitive(r1) {
		return IsSameType(r1, r2)
	}
	if c, ok := r1.(*ClassType); ok && c.IsRaw() && ts.IsConvertibleUnchecked(r1, r2) {
		return true
	}
	adapted := adaptReturn(m1, m2)
	if adapted != nil && ts.IsSubtype(adapted, r2, false) {
		return true
	}
	if !HaveSameSignature(m1, m2) {
		return IsSameType(r1, Erasure(r2))
	}
	return false
}

// overridableIn is the JLS 8.4.6.1 access condition: m is overridable from
// ctx when it is not private and, for package-private methods, declared in
// ctx's package.
func overridableIn(m *MethodSig, ctx ClassSymbol) bool {
	mods := m.Modifiers()
	switch {
	case mods.IsPrivate():
		return false
	case mods.IsPublic() || mods.IsProtected():
		return true
	default:
		return SamePackage(m.Sym.Owner(), ctx)
	}
}

// Overrides reports whether m1 overrides m2 when both are viewed as members
// of origin, JLS 8.4.8.1. Static-vs-instance mismatches are not consulted
// here; callers diagnose those separately.
//
// Two paths accept: a direct override, where m1's declaring class extends
// m2's, and an inherited concrete implementation satisfying an abstract or
// default m2 that origin inherits from both sides.
func (ts *TypeSystem) Overrides(m1, m2 *MethodSig, origin *ClassType) bool {
	if m1.IsConstructor() || m2.IsConstructor() {
		return false
	}

	m1Owner := m1.OwnerType()
	m2Owner := m2.OwnerType()
	if m1Owner == nil || m2Owner == nil {
		return false
	}

	// Direct override.
	if overridableIn(m2, m1Owner.Symbol) &&
		ts.AsSuper(m1Owner, m2Owner.Symbol) != nil &&
		m1Owner.Symbol.BinaryName() != m2Owner.Symbol.BinaryName() {
		if ts.isSubSigInOrigin(m1, m2, m1Owner) {
			return true
		}
	}

	// Inherited implementation: a concrete m1 inherited by origin satisfies
	// an abstract or default m2 from elsewhere in origin's hierarchy.
	if origin != nil &&
		!m1.IsAbstract() &&
		(m2.IsAbstract() || m2.Sym.IsDefault()) &&
		overridableIn(m2, origin.Symbol) &&
		ts.IsSubtype(origin, m2Owner, false) {
		return ts.isSubSigInOrigin(m1, m2, origin)
	}
	return false
}

// adaptReturn maps m1's return type into m2's type-parameter space: a
// positional renaming when both methods declare the same number of type
// parameters, the erasure when only m1 is generic. Nil when no adaptation
// applies.
func adaptReturn(m1, m2 *MethodSig) Type {
	if sigma, ok := renaming(m1.TypeParams, m2.TypeParams); ok {
		return ApplySubst(m1.Return, sigma)
	}
	if len(m1.TypeParams) > 0 && len(m2.TypeParams) == 0 {
		return Erasure(m1.Return)
	}
	return nil
}

// isSubSigInOrigin compares the two signatures as members of origin: both
// are substituted by origin's parameterisation, or erased when origin is
// raw. A pair where exactly one side is generic is normalized by erasing
// the generic side, so a generic redeclaration of an inherited non-generic
// method counts as an override here; the name-clash diagnosis is a separate
// concern of the caller.
func (ts *TypeSystem) isSubSigInOrigin(m1, m2 *MethodSig, origin *ClassType) bool {
	if origin.IsRaw() {
		return IsSubSignature(eraseSig(m1), eraseSig(m2))
	}
	sigma := origin.TypeParamSubst()
	m1 = substSig(m1, sigma)
	m2 = substSig(m2, sigma)
	if (len(m1.TypeParams) > 0) != (len(m2.TypeParams) > 0) {
		if len(m1.TypeParams) > 0 {
			m1 = eraseSig(m1)
		} else {
			m2 = eraseSig(m2)
		}
	}
	return IsSubSignature(m1, m2)
}

// substSig applies sigma across a signature view. Type parameters keep
// their identity; only the component types are rewritten.
func substSig(m *MethodSig, sigma Subst) *MethodSig {
	params := SubstList(m.Params, sigma)
	ret := ApplySubst(m.Return, sigma)
	thrown := SubstList(m.Thrown, sigma)
	decl := ApplySubst(m.Declaring, sigma)
	if sameList(params, m.Params) && ret == m.Return &&
		sameList(thrown, m.Thrown) && decl == m.Declaring {
		return m
	}
	return &MethodSig{
		Declaring:  decl,
		Sym:        m.Sym,
		TypeParams: m.TypeParams,
		Params:     params,
		Return:     ret,
		Thrown:     thrown,
	}
}
