package types

// Erasure computes the erasure of t, JLS 4.6: type arguments stripped, type
// variables replaced by the erasure of their leftmost bound. The result is
// pointer-identical to t when erasure changes nothing.
func Erasure(t Type) Type {
	switch tt := t.(type) {
	case *ClassType:
		encl := tt.Enclosing
		if encl != nil {
			encl = Erasure(encl).(*ClassType)
		}
		if len(tt.Args) == 0 && encl == tt.Enclosing &&
			(tt.ErasedSupertypes || len(tt.Symbol.TypeParams()) == 0) {
			return t
		}
		raw := tt.ts.RawType(tt.Symbol)
		raw.Enclosing = encl
		return raw

	case *ArrayType:
		comp := Erasure(tt.Component)
		if comp == tt.Component {
			return t
		}
		return &ArrayType{Component: comp, ts: tt.ts}

	case *TypeVar:
		return Erasure(leftmostBound(tt.UpperBound()))

	case *IntersectionType:
		return Erasure(leftmostBound(tt))

	case *WildcardType:
		return Erasure(tt.UpperBound())

	default:
		return t
	}
}

// EraseList erases element-wise, preserving the input slice when nothing
// changed.
func EraseList(list []Type) []Type {
	var out []Type
	for i, t := range list {
		e := Erasure(t)
		if out == nil {
			if e == t {
				continue
			}
			out = make([]Type, len(list))
			copy(out, list[:i])
		}
		out[i] = e
	}
	if out == nil {
		return list
	}
	return out
}

// leftmostBound picks the bound erasure starts from. For an intersection
// whose class component is just Object, the first interface is the leftmost
// declared bound.
func leftmostBound(bound Type) Type {
	it, ok := bound.(*IntersectionType)
	if !ok {
		return bound
	}
	if c, isClass := it.Superclass.(*ClassType); isClass &&
		c.Symbol.BinaryName() == ObjectName && len(it.Interfaces) > 0 {
		return it.Interfaces[0]
	}
	return it.Superclass
}

// eraseSig is the erasure of a method signature: no type parameters, erased
// formals and return type.
func eraseSig(m *MethodSig) *MethodSig {
	return &MethodSig{
		Declaring:  Erasure(m.Declaring),
		Sym:        m.Sym,
		TypeParams: nil,
		Params:     EraseList(m.Params),
		Return:     Erasure(m.Return),
		Thrown:     EraseList(m.Thrown),
	}
}
