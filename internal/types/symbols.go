package types

import "strings"

// Modifier is the subset of Java access and member modifiers the algebra
// consults. Values match the JVM access-flag bits.
type Modifier uint16

const (
	ModPublic    Modifier = 0x0001
	ModPrivate   Modifier = 0x0002
	ModProtected Modifier = 0x0004
	ModStatic    Modifier = 0x0008
	ModFinal     Modifier = 0x0010
	ModAbstract  Modifier = 0x0400
)

func (m Modifier) IsPublic() bool    { return m&ModPublic != 0 }
func (m Modifier) IsPrivate() bool   { return m&ModPrivate != 0 }
func (m Modifier) IsProtected() bool { return m&ModProtected != 0 }
func (m Modifier) IsStatic() bool    { return m&ModStatic != 0 }
func (m Modifier) IsAbstract() bool  { return m&ModAbstract != 0 }

// IsPackagePrivate reports the absence of any explicit access modifier.
func (m Modifier) IsPackagePrivate() bool {
	return m&(ModPublic|ModPrivate|ModProtected) == 0
}

// ClassSymbol is the view of a class or interface declaration the algebra
// consumes. Symbol loading lives outside this package; internal/symbols
// provides the concrete implementation.
type ClassSymbol interface {
	// BinaryName is the fully qualified binary name, e.g. "java.util.Map$Entry".
	BinaryName() string
	SimpleName() string
	PackageName() string

	Modifiers() Modifier
	IsInterface() bool
	IsAnnotation() bool

	// IsUnresolved reports whether this symbol stands in for a class that
	// could not be loaded.
	IsUnresolved() bool

	// EnclosingClass is the lexically enclosing class, nil for top-level
	// classes.
	EnclosingClass() ClassSymbol

	// NestRoot is the outermost enclosing class, the symbol itself for
	// top-level classes. Private-member access is nest-based.
	NestRoot() ClassSymbol

	// TypeParams are the declared formal type parameters, identity-carrying.
	TypeParams() []*TypeVar

	// Superclass is the declared generic superclass type (mentioning the
	// formals), nil for Object, interfaces and unresolved symbols.
	Superclass() Type

	// Superinterfaces are the declared generic superinterface types, in
	// declaration order.
	Superinterfaces() []Type

	// DeclaredMethods lists the methods declared directly in this class, in
	// declaration order.
	DeclaredMethods() []MethodSymbol
}

// MethodSymbol is the view of a method declaration the algebra consumes.
type MethodSymbol interface {
	Name() string
	Modifiers() Modifier
	Owner() ClassSymbol

	IsConstructor() bool

	// IsDefault reports a default interface method.
	IsDefault() bool

	// TypeParams are the method's own formal type parameters.
	TypeParams() []*TypeVar

	ParamTypes() []Type
	ReturnType() Type
	ThrownTypes() []Type
}

// MethodSig is a method signature viewed from a particular parameterisation
// of its declaring type. The same declared method seen from different
// declaring-type instantiations yields different sigs.
type MethodSig struct {
	// Declaring is the type the method is viewed from.
	Declaring Type

	Sym MethodSymbol

	TypeParams []*TypeVar
	Params     []Type
	Return     Type
	Thrown     []Type
}

func (m *MethodSig) Name() string        { return m.Sym.Name() }
func (m *MethodSig) Modifiers() Modifier { return m.Sym.Modifiers() }
func (m *MethodSig) IsConstructor() bool { return m.Sym.IsConstructor() }
func (m *MethodSig) IsAbstract() bool    { return m.Sym.Modifiers().IsAbstract() }

// Arity is the number of formal parameters.
func (m *MethodSig) Arity() int { return len(m.Params) }

// OwnerType returns the declaring type as a class type when it is one.
func (m *MethodSig) OwnerType() *ClassType {
	c, _ := m.Declaring.(*ClassType)
	return c
}

func (m *MethodSig) String() string {
	var sb strings.Builder
	if len(m.TypeParams) > 0 {
		sb.WriteByte('<')
		for i, p := range m.TypeParams {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
		}
		sb.WriteString("> ")
	}
	sb.WriteString(m.Return.String())
	sb.WriteByte(' ')
	sb.WriteString(m.Sym.Name())
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// SamePackage reports whether two symbols live in the same package.
func SamePackage(a, b ClassSymbol) bool {
	return a.PackageName() == b.PackageName()
}
