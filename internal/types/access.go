package types

// Accessible is the JLS 6.6 member-access predicate: whether a member with
// the given modifiers, declared in owner, is visible from ctx. A nil owner
// models the synthetic members of array types, which are always visible.
func Accessible(mods Modifier, owner, ctx ClassSymbol) bool {
	if owner == nil {
		return true
	}
	switch {
	case mods.IsPublic():
		return true
	case mods.IsPrivate():
		return ctx != nil && nestRootName(ctx) == nestRootName(owner)
	case mods.IsProtected():
		if ctx == nil {
			return false
		}
		return SamePackage(owner, ctx) ||
			(!ctx.IsInterface() && isSubclassSymbol(ctx, owner))
	default:
		return ctx != nil && SamePackage(owner, ctx) && !ctx.IsInterface()
	}
}

func nestRootName(sym ClassSymbol) string {
	if root := sym.NestRoot(); root != nil {
		return root.BinaryName()
	}
	return sym.BinaryName()
}

// isSubclassSymbol walks ctx's superclass chain looking for owner.
func isSubclassSymbol(ctx, owner ClassSymbol) bool {
	for cur := ctx; cur != nil; {
		if cur.BinaryName() == owner.BinaryName() {
			return true
		}
		sc, ok := cur.Superclass().(*ClassType)
		if !ok {
			return false
		}
		cur = sc.Symbol
	}
	return false
}

// OverloadComparator reduces a set of applicable method signatures to the
// most specific ones. Overload resolution proper lives outside this module;
// MethodsOf only invokes the hook.
type OverloadComparator interface {
	MostSpecific(candidates []*MethodSig) []*MethodSig
}

// MethodsOf enumerates the methods named name that t declares or inherits,
// filtered by staticness and by accessibility from ctx, each viewed from
// the supertype instance that declares it. When cmp is non-nil the result
// is reduced to the most specific overloads.
func (ts *TypeSystem) MethodsOf(t Type, name string, staticOnly bool, ctx ClassSymbol, cmp OverloadComparator) []*MethodSig {
	var out []*MethodSig
	for _, sup := range ts.SuperTypeSet(t) {
		sc, ok := sup.(*ClassType)
		if !ok {
			continue
		}
		for _, m := range sc.Symbol.DeclaredMethods() {
			if m.Name() != name || m.IsConstructor() {
				continue
			}
			if staticOnly && !m.Modifiers().IsStatic() {
				continue
			}
			if !Accessible(m.Modifiers(), m.Owner(), ctx) {
				continue
			}
			out = append(out, ts.SigOf(sc, m))
		}
	}
	if cmp != nil && len(out) > 1 {
		out = cmp.MostSpecific(out)
	}
	return out
}

// SigOf builds the signature of m viewed from the declaring instance.
// Raw declaring types erase the member; parameterised ones substitute their
// arguments into it.
func (ts *TypeSystem) SigOf(declaring *ClassType, m MethodSymbol) *MethodSig {
	sig := &MethodSig{
		Declaring:  declaring,
		Sym:        m,
		TypeParams: m.TypeParams(),
		Params:     m.ParamTypes(),
		Return:     m.ReturnType(),
		Thrown:     m.ThrownTypes(),
	}
	if declaring.IsRaw() || declaring.ErasedSupertypes {
		return eraseSig(sig)
	}
	if sigma := declaring.TypeParamSubst(); sigma != nil {
		return substSig(sig, sigma)
	}
	return sig
}
