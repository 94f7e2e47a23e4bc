package types

import (
	"strings"
)

// Type is the interface for all Java type terms.
//
// Terms are immutable once constructed, with one exception: InferenceVar
// carries mutable bound sets owned by an inference session. Structural
// operations (substitution, comparison, subtyping) live as free functions
// and TypeSystem methods; the terms themselves only expose their shape.
type Type interface {
	String() string
	Kind() TermKind
}

// TermKind tags the variant of a type term.
type TermKind int

const (
	KindPrimitive TermKind = iota
	KindNull
	KindSentinel
	KindClass
	KindArray
	KindWildcard
	KindTypeVar
	KindInferenceVar
	KindIntersection
)

func (k TermKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindNull:
		return "null"
	case KindSentinel:
		return "sentinel"
	case KindClass:
		return "class"
	case KindArray:
		return "array"
	case KindWildcard:
		return "wildcard"
	case KindTypeVar:
		return "typevar"
	case KindInferenceVar:
		return "ivar"
	case KindIntersection:
		return "intersection"
	default:
		return "invalid"
	}
}

// PrimitiveKind identifies one of the eight Java primitive types.
type PrimitiveKind int

const (
	Boolean PrimitiveKind = iota
	Char
	Byte
	Short
	Int
	Long
	Float
	Double
)

func (p PrimitiveKind) String() string {
	switch p {
	case Boolean:
		return "boolean"
	case Char:
		return "char"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "invalid"
	}
}

// PrimitiveType is one of the eight primitives. Instances are interned by the
// TypeSystem; compare by pointer.
type PrimitiveType struct {
	Tag PrimitiveKind
	ts  *TypeSystem
}

func (t *PrimitiveType) Kind() TermKind { return KindPrimitive }
func (t *PrimitiveType) String() string { return t.Tag.String() }

// NullType is the bottom of the reference-type lattice. A single instance
// exists per TypeSystem.
type NullType struct{}

func (t *NullType) Kind() TermKind { return KindNull }
func (t *NullType) String() string { return "null" }

// SentinelKind distinguishes the non-class sentinel terms.
type SentinelKind int

const (
	// UnresolvedSentinel stands in for a type whose symbol could not be
	// resolved. It satisfies subtype checks on the left so a single missing
	// class does not cascade.
	UnresolvedSentinel SentinelKind = iota
	// ErrorSentinel marks a term produced from malformed source.
	ErrorSentinel
	// NoTypeSentinel is the "void"/absent type.
	NoTypeSentinel
)

func (k SentinelKind) String() string {
	switch k {
	case UnresolvedSentinel:
		return "(*unresolved*)"
	case ErrorSentinel:
		return "(*error*)"
	case NoTypeSentinel:
		return "void"
	default:
		return "invalid"
	}
}

// SentinelType is an interned singleton term with no structure of its own.
// The TypeSystem provides the instances; compare by pointer.
type SentinelType struct {
	Tag SentinelKind
}

func (t *SentinelType) Kind() TermKind { return KindSentinel }
func (t *SentinelType) String() string { return t.Tag.String() }

// ClassType is a (possibly parameterised, possibly raw) class or interface
// type. Args empty on a generic symbol means the raw type. Enclosing is the
// outer type for inner member classes, nil otherwise.
type ClassType struct {
	Symbol    ClassSymbol
	Args      []Type
	Enclosing *ClassType

	// ErasedSupertypes is set on raw types and types derived from them: the
	// supertypes of such a type are themselves erased.
	ErasedSupertypes bool

	ts *TypeSystem
}

func (t *ClassType) Kind() TermKind { return KindClass }

// IsRaw reports whether this is a generic class viewed with no type arguments.
func (t *ClassType) IsRaw() bool {
	return len(t.Args) == 0 && len(t.Symbol.TypeParams()) > 0
}

// IsParameterized reports whether this type has explicit type arguments.
func (t *ClassType) IsParameterized() bool { return len(t.Args) > 0 }

// IsGenericDecl reports whether the arguments are exactly the declared type
// parameters, i.e. the type as written at its own declaration.
func (t *ClassType) IsGenericDecl() bool {
	params := t.Symbol.TypeParams()
	if len(t.Args) != len(params) || len(params) == 0 {
		return false
	}
	for i, a := range t.Args {
		if a != Type(params[i]) {
			return false
		}
	}
	return true
}

// GenericDecl returns the declaration form of this class: the symbol applied
// to its own formal type parameters, or the type itself for non-generic
// symbols.
func (t *ClassType) GenericDecl() *ClassType {
	params := t.Symbol.TypeParams()
	if len(params) == 0 {
		return t.ts.Declaration(t.Symbol)
	}
	args := make([]Type, len(params))
	for i, p := range params {
		args[i] = p
	}
	return &ClassType{Symbol: t.Symbol, Args: args, Enclosing: t.Enclosing, ts: t.ts}
}

// WithArgs returns a copy of this class type carrying the given arguments.
func (t *ClassType) WithArgs(args []Type) *ClassType {
	return &ClassType{
		Symbol:           t.Symbol,
		Args:             args,
		Enclosing:        t.Enclosing,
		ErasedSupertypes: t.ErasedSupertypes,
		ts:               t.ts,
	}
}

func (t *ClassType) String() string {
	var sb strings.Builder
	if t.Enclosing != nil {
		sb.WriteString(t.Enclosing.String())
		sb.WriteByte('.')
		sb.WriteString(t.Symbol.SimpleName())
	} else {
		sb.WriteString(t.Symbol.BinaryName())
	}
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	return sb.String()
}

// ArrayType is a Java array type with the given component.
type ArrayType struct {
	Component Type
	ts        *TypeSystem
}

func (t *ArrayType) Kind() TermKind { return KindArray }
func (t *ArrayType) String() string { return t.Component.String() + "[]" }

// WildcardType is an upper- or lower-bounded wildcard type argument. Exactly
// one side is non-trivial: upper wildcards have Bound as their extends-bound
// (Object for the unbounded wildcard), lower wildcards have Bound as their
// super-bound.
type WildcardType struct {
	Upper bool
	Bound Type
	ts    *TypeSystem
}

func (t *WildcardType) Kind() TermKind { return KindWildcard }

// IsUnbounded reports whether this is the plain `?` wildcard.
func (t *WildcardType) IsUnbounded() bool {
	return t.Upper && t.Bound == Type(t.ts.Object)
}

// UpperBound returns the extends-bound, Object for lower-bounded wildcards.
func (t *WildcardType) UpperBound() Type {
	if t.Upper {
		return t.Bound
	}
	return t.ts.Object
}

// LowerBound returns the super-bound, the null type for upper-bounded
// wildcards.
func (t *WildcardType) LowerBound() Type {
	if t.Upper {
		return t.ts.Null
	}
	return t.Bound
}

func (t *WildcardType) String() string {
	if t.IsUnbounded() {
		return "?"
	}
	if t.Upper {
		return "? extends " + t.Bound.String()
	}
	return "? super " + t.Bound.String()
}

// TypeVar is a type variable: either a declared type parameter (upper bound
// only) or a capture variable (upper and lower bound, derived from the
// wildcard it captured). Identity is by pointer; capture variables are fresh
// on every capture.
type TypeVar struct {
	Name string

	// Upper is the declared bound, possibly an intersection. Never nil after
	// construction (defaults to Object).
	Upper Type

	// Lower is the lower bound of a capture variable; the null type for
	// declared parameters.
	Lower Type

	// Captured is the wildcard a capture variable originated from, nil for
	// declared type parameters.
	Captured *WildcardType

	ts *TypeSystem
}

func (t *TypeVar) Kind() TermKind { return KindTypeVar }

// IsCaptured reports whether this variable was introduced by wildcard
// capture.
func (t *TypeVar) IsCaptured() bool { return t.Captured != nil }

// UpperBound returns the upper bound, defaulting to Object.
func (t *TypeVar) UpperBound() Type {
	if t.Upper == nil {
		return t.ts.Object
	}
	return t.Upper
}

// LowerBound returns the lower bound, the null type when absent.
func (t *TypeVar) LowerBound() Type {
	if t.Lower == nil {
		return t.ts.Null
	}
	return t.Lower
}

func (t *TypeVar) String() string {
	if t.IsCaptured() {
		return "capture of " + t.Captured.String()
	}
	return t.Name
}

// BoundKind keys the three bound sets of an inference variable.
type BoundKind int

const (
	BoundUpper BoundKind = iota
	BoundLower
	BoundEq
)

func (k BoundKind) String() string {
	switch k {
	case BoundUpper:
		return "upper"
	case BoundLower:
		return "lower"
	case BoundEq:
		return "eq"
	default:
		return "invalid"
	}
}

// BoundListener observes bound accretion on an inference variable. The
// inference session installs one to sequence bound events.
type BoundListener func(v *InferenceVar, kind BoundKind, bound Type)

// InferenceVar is a mutable variable owned by an inference session. Its
// bound sets only ever grow during a session; comparisons in inference mode
// accrete bounds on it as a side effect.
//
// Not safe for concurrent use: a session is single-threaded by contract.
type InferenceVar struct {
	Name string

	bounds   map[BoundKind][]Type
	listener BoundListener
}

func NewInferenceVar(name string) *InferenceVar {
	return &InferenceVar{
		Name:   name,
		bounds: make(map[BoundKind][]Type),
	}
}

func (t *InferenceVar) Kind() TermKind { return KindInferenceVar }
func (t *InferenceVar) String() string { return t.Name }

// SetListener installs the bound observer. At most one listener is active.
func (t *InferenceVar) SetListener(l BoundListener) { t.listener = l }

// AddBound records a bound of the given kind. Duplicate bounds (same kind,
// identical term) are kept once; the set never shrinks.
func (t *InferenceVar) AddBound(kind BoundKind, bound Type) {
	for _, b := range t.bounds[kind] {
		if b == bound {
			return
		}
	}
	t.bounds[kind] = append(t.bounds[kind], bound)
	if t.listener != nil {
		t.listener(t, kind, bound)
	}
}

// BoundsOf returns the accumulated bounds of one kind, in accretion order.
// The returned slice is shared; callers must not mutate it.
func (t *InferenceVar) BoundsOf(kind BoundKind) []Type { return t.bounds[kind] }

// IntersectionType is `S & I1 & ... & Ik`: at most one non-interface
// component (the superclass, always first) plus pairwise-incomparable
// interface components.
type IntersectionType struct {
	// Superclass is the sole class component; Object when every component is
	// an interface.
	Superclass Type

	// Interfaces are the interface components, k >= 1 unless the superclass
	// is a proper class carrying the whole bound.
	Interfaces []Type

	ts *TypeSystem
}

func (t *IntersectionType) Kind() TermKind { return KindIntersection }

// Components returns all components, superclass first.
func (t *IntersectionType) Components() []Type {
	comps := make([]Type, 0, len(t.Interfaces)+1)
	comps = append(comps, t.Superclass)
	comps = append(comps, t.Interfaces...)
	return comps
}

func (t *IntersectionType) String() string {
	parts := make([]string, 0, len(t.Interfaces)+1)
	parts = append(parts, t.Superclass.String())
	for _, i := range t.Interfaces {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, " & ")
}

// AsList views a term as its component list: the components of an
// intersection, or the term itself as a singleton.
func AsList(t Type) []Type {
	if it, ok := t.(*IntersectionType); ok {
		return it.Components()
	}
	return []Type{t}
}

// IsPrimitive reports whether t is a primitive type.
func IsPrimitive(t Type) bool { return t != nil && t.Kind() == KindPrimitive }

// IsUnresolved reports whether t is the unresolved or error sentinel, or a
// class type whose symbol failed to resolve.
func IsUnresolved(t Type) bool {
	switch tt := t.(type) {
	case *SentinelType:
		return tt.Tag == UnresolvedSentinel || tt.Tag == ErrorSentinel
	case *ClassType:
		return tt.Symbol.IsUnresolved()
	}
	return false
}
