package types

// NonWildcardParameterization rewrites a wildcard-parameterised type into a
// proper parameterisation, JLS 9.9: every wildcard argument is replaced by a
// witness drawn from its bound and the declared bound of the formal. Nil
// when a declared bound mentions a formal (F-bound), which makes the
// parameterisation inexpressible.
func (ts *TypeSystem) NonWildcardParameterization(c *ClassType) *ClassType {
	if !hasWildcardArgs(c) {
		return c
	}
	params := c.Symbol.TypeParams()
	if len(params) != len(c.Args) {
		return nil
	}

	formals := make([]Type, len(params))
	for i, p := range params {
		formals[i] = p
	}
	for _, p := range params {
		if MentionsAny(p.UpperBound(), formals) {
			return nil
		}
	}

	args := make([]Type, len(c.Args))
	for i, a := range c.Args {
		w, isWild := a.(*WildcardType)
		if !isWild {
			args[i] = a
			continue
		}
		declared := params[i].UpperBound()
		switch {
		case w.IsUnbounded():
			args[i] = declared
		case w.Upper:
			args[i] = ts.Glb(w.Bound, declared)
		default:
			args[i] = w.Bound
		}
	}
	return c.WithArgs(args)
}

// FindFunctionalInterfaceMethod computes the function type of a functional
// interface, JLS 9.9: the single abstract method the interface contributes,
// viewed from the given parameterisation. Nil when t is not a functional
// interface or its function type is not expressible.
func (ts *TypeSystem) FindFunctionalInterfaceMethod(t Type) *MethodSig {
	c, ok := t.(*ClassType)
	if !ok {
		return nil
	}
	if !c.Symbol.IsInterface() || c.Symbol.IsAnnotation() {
		return nil
	}

	if c.IsRaw() {
		fn := ts.FindFunctionalInterfaceMethod(c.GenericDecl())
		if fn == nil {
			return nil
		}
		return eraseSig(fn)
	}
	if c.IsParameterized() && hasWildcardArgs(c) {
		c = ts.NonWildcardParameterization(c)
		if c == nil {
			return nil
		}
	}

	candidates := ts.abstractInterfaceMethods(c)
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}

	// More than one abstract method survives; the function type exists only
	// if one of them subsumes every other.
	var dominant []*MethodSig
outer:
	for _, m := range candidates {
		for _, n := range candidates {
			if m == n {
				continue
			}
			if !IsSubSignature(m, n) || !ts.IsReturnTypeSubstitutable(m, n) {
				continue outer
			}
		}
		dominant = append(dominant, m)
	}
	if len(dominant) == 0 {
		return nil
	}

	best := dominant[0]
	for _, m := range dominant[1:] {
		if ts.IsSubtype(m.Return, best.Return, false) {
			best = m
		}
	}
	return best
}

// abstractInterfaceMethods collects the abstract methods t inherits or
// declares, excluding any whose signature matches a public method of
// Object (those are implemented by every class, JLS 9.2).
func (ts *TypeSystem) abstractInterfaceMethods(c *ClassType) []*MethodSig {
	objectMethods := ts.publicObjectMethods()

	var out []*MethodSig
	for _, sup := range ts.SuperTypeSet(c) {
		sc, ok := sup.(*ClassType)
		if !ok || !sc.Symbol.IsInterface() {
			continue
		}
		for _, m := range sc.Symbol.DeclaredMethods() {
			if !m.Modifiers().IsAbstract() || m.IsConstructor() {
				continue
			}
			sig := ts.SigOf(sc, m)
			matchesObject := false
			for _, om := range objectMethods {
				if HaveSameSignature(sig, om) {
					matchesObject = true
					break
				}
			}
			if !matchesObject {
				out = append(out, sig)
			}
		}
	}
	return out
}

func (ts *TypeSystem) publicObjectMethods() []*MethodSig {
	var out []*MethodSig
	for _, m := range ts.Object.Symbol.DeclaredMethods() {
		if m.Modifiers().IsPublic() {
			out = append(out, ts.SigOf(ts.Object, m))
		}
	}
	return out
}
