package types

// Well-known binary names the algebra needs by identity.
const (
	ObjectName       = "java.lang.Object"
	CloneableName    = "java.lang.Cloneable"
	SerializableName = "java.io.Serializable"
)

var boxedNames = map[PrimitiveKind]string{
	Boolean: "java.lang.Boolean",
	Char:    "java.lang.Character",
	Byte:    "java.lang.Byte",
	Short:   "java.lang.Short",
	Int:     "java.lang.Integer",
	Long:    "java.lang.Long",
	Float:   "java.lang.Float",
	Double:  "java.lang.Double",
}

// widening is the primitive widening lattice, JLS 5.1.2. Reflexivity is
// handled by the lookup, not the table.
var widening = map[PrimitiveKind][]PrimitiveKind{
	Byte:  {Short, Int, Long, Float, Double},
	Short: {Int, Long, Float, Double},
	Char:  {Int, Long, Float, Double},
	Int:   {Long, Float, Double},
	Long:  {Float, Double},
	Float: {Double},
}

// SymbolResolver supplies class symbols by binary name. Resolution never
// fails: unknown names yield an unresolved symbol.
type SymbolResolver interface {
	Resolve(binaryName string) ClassSymbol
}

// TypeSystem interns the distinguished terms and provides the constructors
// the algebra builds types with. It is read-only after construction and safe
// for concurrent readers.
type TypeSystem struct {
	resolver SymbolResolver

	Null       *NullType
	Unresolved *SentinelType
	Error      *SentinelType
	NoType     *SentinelType

	Object       *ClassType
	Cloneable    *ClassType
	Serializable *ClassType

	// UnboundedWild is the interned `?` wildcard.
	UnboundedWild *WildcardType

	primitives map[PrimitiveKind]*PrimitiveType
	boxed      map[PrimitiveKind]*ClassType
	unboxed    map[string]*PrimitiveType
}

// NewTypeSystem builds a type system over the given symbol source. The
// well-known java.lang types are resolved eagerly and interned.
func NewTypeSystem(resolver SymbolResolver) *TypeSystem {
	ts := &TypeSystem{
		resolver:   resolver,
		Null:       &NullType{},
		Unresolved: &SentinelType{Tag: UnresolvedSentinel},
		Error:      &SentinelType{Tag: ErrorSentinel},
		NoType:     &SentinelType{Tag: NoTypeSentinel},
		primitives: make(map[PrimitiveKind]*PrimitiveType),
		boxed:      make(map[PrimitiveKind]*ClassType),
		unboxed:    make(map[string]*PrimitiveType),
	}

	ts.Object = ts.Declaration(resolver.Resolve(ObjectName))
	ts.Cloneable = ts.Declaration(resolver.Resolve(CloneableName))
	ts.Serializable = ts.Declaration(resolver.Resolve(SerializableName))
	ts.UnboundedWild = &WildcardType{Upper: true, Bound: ts.Object, ts: ts}

	for kind := Boolean; kind <= Double; kind++ {
		ts.primitives[kind] = &PrimitiveType{Tag: kind, ts: ts}
	}
	for kind, name := range boxedNames {
		box := ts.Declaration(resolver.Resolve(name))
		ts.boxed[kind] = box
		ts.unboxed[name] = ts.primitives[kind]
	}
	return ts
}

// Primitive returns the interned primitive of the given kind.
func (ts *TypeSystem) Primitive(kind PrimitiveKind) *PrimitiveType {
	return ts.primitives[kind]
}

// Resolve looks up a class symbol by binary name.
func (ts *TypeSystem) Resolve(binaryName string) ClassSymbol {
	return ts.resolver.Resolve(binaryName)
}

// Declaration returns the generic type declaration of sym: the symbol
// applied to its own formal parameters, or the plain type for non-generic
// symbols.
func (ts *TypeSystem) Declaration(sym ClassSymbol) *ClassType {
	params := sym.TypeParams()
	if len(params) == 0 {
		return &ClassType{Symbol: sym, ts: ts}
	}
	args := make([]Type, len(params))
	for i, p := range params {
		args[i] = p
	}
	return &ClassType{Symbol: sym, Args: args, ts: ts}
}

// RawType returns sym viewed with no type arguments. For generic symbols the
// result is the raw type and carries erased supertypes.
func (ts *TypeSystem) RawType(sym ClassSymbol) *ClassType {
	return &ClassType{
		Symbol:           sym,
		ErasedSupertypes: len(sym.TypeParams()) > 0,
		ts:               ts,
	}
}

// Parameterize returns sym applied to the given arguments.
func (ts *TypeSystem) Parameterize(sym ClassSymbol, args ...Type) *ClassType {
	if len(args) == 0 {
		return ts.RawType(sym)
	}
	return &ClassType{Symbol: sym, Args: args, ts: ts}
}

// InnerType returns sym viewed as a member of the given enclosing instance.
func (ts *TypeSystem) InnerType(enclosing *ClassType, sym ClassSymbol, args ...Type) *ClassType {
	return &ClassType{Symbol: sym, Args: args, Enclosing: enclosing, ts: ts}
}

// ArrayOf returns the array type with the given component.
func (ts *TypeSystem) ArrayOf(component Type) *ArrayType {
	return &ArrayType{Component: component, ts: ts}
}

// Wildcard builds a wildcard type argument. Wildcard(true, Object) is the
// interned unbounded wildcard.
func (ts *TypeSystem) Wildcard(upper bool, bound Type) *WildcardType {
	if upper && bound == Type(ts.Object) {
		return ts.UnboundedWild
	}
	return &WildcardType{Upper: upper, Bound: bound, ts: ts}
}

// NewTypeVar creates a declared type parameter. The upper bound defaults to
// Object when nil.
func (ts *TypeSystem) NewTypeVar(name string, upper Type) *TypeVar {
	if upper == nil {
		upper = ts.Object
	}
	return &TypeVar{Name: name, Upper: upper, Lower: ts.Null, ts: ts}
}

// Box returns the wrapper class type of a primitive.
func (ts *TypeSystem) Box(p *PrimitiveType) *ClassType { return ts.boxed[p.Tag] }

// Unbox returns the primitive a wrapper class unboxes to, nil for
// non-wrapper types.
func (ts *TypeSystem) Unbox(t Type) *PrimitiveType {
	c, ok := t.(*ClassType)
	if !ok {
		return nil
	}
	return ts.unboxed[c.Symbol.BinaryName()]
}

// isPrimitiveSubtype is the widening lattice check, reflexive.
func isPrimitiveSubtype(t, s *PrimitiveType) bool {
	if t.Tag == s.Tag {
		return true
	}
	for _, wider := range widening[t.Tag] {
		if wider == s.Tag {
			return true
		}
	}
	return false
}

// Intersect builds a normalized intersection of the given components:
// nested intersections are flattened, duplicates and redundant supertypes
// dropped, the superclass component placed first. A single surviving
// component is returned as itself.
//
// Panics when two class components are subtype-incomparable, which no
// well-formed bound produces.
func (ts *TypeSystem) Intersect(components ...Type) Type {
	var flat []Type
	for _, c := range components {
		if it, ok := c.(*IntersectionType); ok {
			flat = append(flat, it.Components()...)
		} else {
			flat = append(flat, c)
		}
	}
	if len(flat) == 0 {
		panic(NewMalformedIntersectionError("empty intersection"))
	}

	// Drop components subsumed by another (keep the most specific ones).
	var kept []Type
	for i, c := range flat {
		redundant := false
		for j, other := range flat {
			if i == j {
				continue
			}
			if IsSameType(c, other) {
				redundant = j < i
			} else if ts.IsSubtype(other, c, false) {
				redundant = true
			}
			if redundant {
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}

	if len(kept) == 1 {
		return kept[0]
	}

	superclass := Type(ts.Object)
	var interfaces []Type
	for _, c := range kept {
		if isInterfaceComponent(c) {
			interfaces = append(interfaces, c)
			continue
		}
		if superclass != Type(ts.Object) {
			panic(NewMalformedIntersectionError("two incomparable class components: " +
				superclass.String() + " and " + c.String()))
		}
		superclass = c
	}
	if len(interfaces) == 0 {
		return superclass
	}
	return &IntersectionType{Superclass: superclass, Interfaces: interfaces, ts: ts}
}

// Glb is the greatest lower bound of the given types, JLS 5.1.10: their
// normalized intersection.
func (ts *TypeSystem) Glb(components ...Type) Type {
	return ts.Intersect(components...)
}

// IsConvertibleUnchecked reports whether from is a subtype of to when
// unchecked conversion is admitted. It also holds wherever the plain subtype
// check holds.
func (ts *TypeSystem) IsConvertibleUnchecked(from, to Type) bool {
	return ts.IsSubtype(from, to, true)
}

func isInterfaceComponent(t Type) bool {
	c, ok := t.(*ClassType)
	return ok && c.Symbol.IsInterface()
}
