package symbols

import (
	"strings"

	"github.com/breakbot-playground/pmd/internal/types"
)

// ClassSymbol is the concrete class-declaration record backing the algebra's
// symbol view. Hierarchies are cyclic (every class mentions Object), so
// symbols are created bare and wired afterwards with the setters.
type ClassSymbol struct {
	binaryName string
	mods       types.Modifier
	iface      bool
	annotation bool
	unresolved bool

	enclosing *ClassSymbol

	typeParams      []*types.TypeVar
	superclass      types.Type
	superinterfaces []types.Type
	methods         []types.MethodSymbol
}

var _ types.ClassSymbol = (*ClassSymbol)(nil)

func (c *ClassSymbol) BinaryName() string { return c.binaryName }

func (c *ClassSymbol) SimpleName() string {
	name := c.binaryName
	if i := strings.LastIndexByte(name, '$'); i >= 0 {
		return name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (c *ClassSymbol) PackageName() string {
	outer := c.binaryName
	if i := strings.IndexByte(outer, '$'); i >= 0 {
		outer = outer[:i]
	}
	if i := strings.LastIndexByte(outer, '.'); i >= 0 {
		return outer[:i]
	}
	return ""
}

func (c *ClassSymbol) Modifiers() types.Modifier { return c.mods }
func (c *ClassSymbol) IsInterface() bool         { return c.iface }
func (c *ClassSymbol) IsAnnotation() bool        { return c.annotation }
func (c *ClassSymbol) IsUnresolved() bool        { return c.unresolved }

func (c *ClassSymbol) EnclosingClass() types.ClassSymbol {
	if c.enclosing == nil {
		return nil
	}
	return c.enclosing
}

func (c *ClassSymbol) NestRoot() types.ClassSymbol {
	root := c
	for root.enclosing != nil {
		root = root.enclosing
	}
	return root
}

func (c *ClassSymbol) TypeParams() []*types.TypeVar   { return c.typeParams }
func (c *ClassSymbol) Superclass() types.Type         { return c.superclass }
func (c *ClassSymbol) Superinterfaces() []types.Type  { return c.superinterfaces }
func (c *ClassSymbol) DeclaredMethods() []types.MethodSymbol {
	return c.methods
}

// SetTypeParams installs the formal type parameters. Bounds may be filled
// in later through the variables themselves.
func (c *ClassSymbol) SetTypeParams(params ...*types.TypeVar) { c.typeParams = params }

func (c *ClassSymbol) SetSuperclass(t types.Type)          { c.superclass = t }
func (c *ClassSymbol) SetSuperinterfaces(ts ...types.Type) { c.superinterfaces = ts }
func (c *ClassSymbol) SetEnclosing(outer *ClassSymbol)     { c.enclosing = outer }

// AddMethod declares a method on this class and returns its symbol.
func (c *ClassSymbol) AddMethod(m *MethodSymbol) *MethodSymbol {
	m.owner = c
	c.methods = append(c.methods, m)
	return m
}

// MethodSymbol is the concrete method-declaration record.
type MethodSymbol struct {
	name        string
	mods        types.Modifier
	owner       *ClassSymbol
	constructor bool
	dflt        bool

	typeParams []*types.TypeVar
	params     []types.Type
	ret        types.Type
	thrown     []types.Type
}

var _ types.MethodSymbol = (*MethodSymbol)(nil)

// NewMethod builds a method declaration; ret must never be nil (use the
// type system's NoType for void).
func NewMethod(name string, mods types.Modifier, ret types.Type, params ...types.Type) *MethodSymbol {
	return &MethodSymbol{name: name, mods: mods, ret: ret, params: params}
}

// NewConstructor builds a constructor declaration.
func NewConstructor(mods types.Modifier, params ...types.Type) *MethodSymbol {
	return &MethodSymbol{name: "<init>", mods: mods, constructor: true, params: params}
}

func (m *MethodSymbol) Name() string                   { return m.name }
func (m *MethodSymbol) Modifiers() types.Modifier      { return m.mods }
func (m *MethodSymbol) Owner() types.ClassSymbol       { return m.owner }
func (m *MethodSymbol) IsConstructor() bool            { return m.constructor }
func (m *MethodSymbol) IsDefault() bool                { return m.dflt }
func (m *MethodSymbol) TypeParams() []*types.TypeVar   { return m.typeParams }
func (m *MethodSymbol) ParamTypes() []types.Type       { return m.params }
func (m *MethodSymbol) ReturnType() types.Type         { return m.ret }
func (m *MethodSymbol) ThrownTypes() []types.Type      { return m.thrown }

func (m *MethodSymbol) SetTypeParams(params ...*types.TypeVar) *MethodSymbol {
	m.typeParams = params
	return m
}

func (m *MethodSymbol) SetThrown(ts ...types.Type) *MethodSymbol {
	m.thrown = ts
	return m
}

// MarkDefault flags a default interface method.
func (m *MethodSymbol) MarkDefault() *MethodSymbol {
	m.dflt = true
	return m
}
