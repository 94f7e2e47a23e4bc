package types

// TypeParamSubst maps the symbol's formal type parameters to this type's
// arguments. Nil for raw and non-generic types.
func (t *ClassType) TypeParamSubst() Subst {
	params := t.Symbol.TypeParams()
	if len(params) == 0 || len(t.Args) != len(params) {
		return nil
	}
	sigma := make(Subst, len(params))
	for i, p := range params {
		sigma[p] = t.Args[i]
	}
	return sigma
}

// SuperClassType is the superclass of this type instance: the declared
// generic superclass with this type's arguments substituted in, or its
// erasure for raw types. Nil for Object, interfaces and unresolved symbols.
func (t *ClassType) SuperClassType() Type {
	decl := t.Symbol.Superclass()
	if decl == nil {
		return nil
	}
	if t.IsRaw() || t.ErasedSupertypes {
		return Erasure(decl)
	}
	return ApplySubst(decl, t.TypeParamSubst())
}

// SuperInterfaceTypes are the superinterfaces of this type instance, in
// declaration order, substituted or erased like SuperClassType.
func (t *ClassType) SuperInterfaceTypes() []Type {
	decl := t.Symbol.Superinterfaces()
	if t.IsRaw() || t.ErasedSupertypes {
		return EraseList(decl)
	}
	return SubstList(decl, t.TypeParamSubst())
}

// SuperTypeSet enumerates the reflexive-transitive supertypes of t as an
// insertion-ordered set: the type itself, then the superclass chain
// depth-first, then interfaces in declaration order, with Object as the
// final fallback for interfaces that declare none.
//
// Panics on the null type, whose supertype set is not representable, and on
// wildcards and inference variables, which are not proper types.
func (ts *TypeSystem) SuperTypeSet(t Type) []Type {
	e := &superTypeEnum{ts: ts, seen: make(map[any]struct{})}
	e.walk(t)
	return e.out
}

type superTypeEnum struct {
	ts   *TypeSystem
	seen map[any]struct{}
	out  []Type
}

// setKey dedupes structurally for value-like terms and by identity for
// identity-carrying variables.
func setKey(t Type) any {
	switch t.(type) {
	case *TypeVar, *InferenceVar:
		return t
	default:
		return t.String()
	}
}

func (e *superTypeEnum) add(t Type) bool {
	k := setKey(t)
	if _, dup := e.seen[k]; dup {
		return false
	}
	e.seen[k] = struct{}{}
	e.out = append(e.out, t)
	return true
}

func (e *superTypeEnum) walk(t Type) {
	switch tt := t.(type) {
	case *NullType:
		panic(NewNullSupertypeError())

	case *PrimitiveType:
		e.add(tt)
		for _, wider := range widening[tt.Tag] {
			e.add(e.ts.Primitive(wider))
		}

	case *ClassType:
		e.walkClass(tt)

	case *ArrayType:
		if !e.add(tt) {
			return
		}
		if !IsPrimitive(tt.Component) {
			for _, comp := range e.ts.SuperTypeSet(tt.Component) {
				e.add(e.ts.ArrayOf(comp))
			}
		}
		e.add(e.ts.Cloneable)
		e.add(e.ts.Serializable)
		e.add(e.ts.Object)

	case *TypeVar:
		if !e.add(tt) {
			return
		}
		e.walk(tt.UpperBound())

	case *IntersectionType:
		if !e.add(tt) {
			return
		}
		for _, comp := range tt.Components() {
			e.walk(comp)
		}

	case *SentinelType:
		e.add(tt)
		e.add(e.ts.Object)

	default:
		panic(NewUnknownTermError("SuperTypeSet", t))
	}
}

func (e *superTypeEnum) walkClass(c *ClassType) {
	if !e.add(c) {
		return
	}
	if sc := c.SuperClassType(); sc != nil {
		e.walk(sc)
	}
	ifaces := c.SuperInterfaceTypes()
	for _, i := range ifaces {
		e.walk(i)
	}
	if c.Symbol.IsInterface() && len(ifaces) == 0 {
		e.add(e.ts.Object)
	}
}
