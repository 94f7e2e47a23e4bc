// Package classtable loads declarative class hierarchies from YAML and
// builds the symbol table the type algebra runs over.
//
// Real class-file loading is a separate collaborator; a class table gives
// tests and the inspector a complete symbol source without it. A document
// looks like:
//
//	classes:
//	  - name: com.acme.Shape
//	    kind: interface
//	    methods:
//	      - name: area
//	        return: double
//	  - name: com.acme.Circle
//	    implements: [com.acme.Shape]
//	    methods:
//	      - name: area
//	        modifiers: [public]
//	        return: double
//
// Type references use Java source syntax (`java.util.List<? extends
// Number>`, `int[]`). Unqualified names resolve against the type parameters
// in scope, then java.lang, java.util and java.io, in that order.
package classtable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/breakbot-playground/pmd/internal/symbols"
	"github.com/breakbot-playground/pmd/internal/types"
)

// Config is the top-level classtable document.
type Config struct {
	Classes []ClassDef `yaml:"classes"`
}

// ClassDef declares one class or interface.
type ClassDef struct {
	// Name is the binary name (e.g. "com.acme.Outer$Inner").
	Name string `yaml:"name"`

	// Kind is "class" (the default), "interface" or "annotation".
	Kind string `yaml:"kind,omitempty"`

	// Modifiers lists access and member modifiers by keyword
	// ("public", "protected", "private", "abstract", "static", "final").
	Modifiers []string `yaml:"modifiers,omitempty"`

	// TypeParams declares the formal type parameters, in order.
	TypeParams []TypeParamDef `yaml:"type_params,omitempty"`

	// Extends is the superclass reference. Defaults to java.lang.Object
	// for classes; must be empty for interfaces.
	Extends string `yaml:"extends,omitempty"`

	// Implements lists superinterface references, in declaration order.
	Implements []string `yaml:"implements,omitempty"`

	Methods []MethodDef `yaml:"methods,omitempty"`
}

// TypeParamDef declares a formal type parameter. Bound references may
// mention sibling parameters; an empty bound means java.lang.Object.
// Intersections join components with "&".
type TypeParamDef struct {
	Name  string `yaml:"name"`
	Bound string `yaml:"bound,omitempty"`
}

// MethodDef declares one method.
type MethodDef struct {
	Name       string         `yaml:"name"`
	Modifiers  []string       `yaml:"modifiers,omitempty"`
	TypeParams []TypeParamDef `yaml:"type_params,omitempty"`
	Params     []string       `yaml:"params,omitempty"`

	// Return is the return type reference; empty means void.
	Return string `yaml:"return,omitempty"`

	Throws []string `yaml:"throws,omitempty"`

	// Default flags a default interface method.
	Default bool `yaml:"default,omitempty"`
}

var modifierBits = map[string]types.Modifier{
	"public":    types.ModPublic,
	"private":   types.ModPrivate,
	"protected": types.ModProtected,
	"static":    types.ModStatic,
	"final":     types.ModFinal,
	"abstract":  types.ModAbstract,
}

// Load parses a classtable document.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing classtable: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile parses the document at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Validate checks the document shape before any symbol is built.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Classes))
	for _, cd := range c.Classes {
		if cd.Name == "" {
			return NewInvalidClassError("", "missing name")
		}
		if _, dup := seen[cd.Name]; dup {
			return NewInvalidClassError(cd.Name, "declared twice")
		}
		seen[cd.Name] = struct{}{}
		switch cd.Kind {
		case "", "class", "interface", "annotation":
		default:
			return NewInvalidClassError(cd.Name, "unknown kind "+cd.Kind)
		}
		if cd.IsInterface() && cd.Extends != "" {
			return NewInvalidClassError(cd.Name, "interfaces cannot extend a class")
		}
		for _, m := range cd.Modifiers {
			if _, ok := modifierBits[m]; !ok {
				return NewInvalidClassError(cd.Name, "unknown modifier "+m)
			}
		}
		for _, md := range cd.Methods {
			if md.Name == "" {
				return NewInvalidClassError(cd.Name, "method with no name")
			}
			for _, m := range md.Modifiers {
				if _, ok := modifierBits[m]; !ok {
					return NewInvalidClassError(cd.Name, "unknown modifier "+m+" on "+md.Name)
				}
			}
		}
	}
	return nil
}

// IsInterface reports whether the definition is an interface or annotation.
func (c *ClassDef) IsInterface() bool {
	return c.Kind == "interface" || c.Kind == "annotation"
}

func (c *ClassDef) modifiers() types.Modifier {
	var mods types.Modifier
	for _, m := range c.Modifiers {
		mods |= modifierBits[m]
	}
	if c.IsInterface() {
		mods |= types.ModAbstract
	}
	return mods
}

func (m *MethodDef) modifiers(ownerIsInterface bool) types.Modifier {
	var mods types.Modifier
	for _, mod := range m.Modifiers {
		mods |= modifierBits[mod]
	}
	if ownerIsInterface && !m.Default && !mods.IsStatic() {
		mods |= types.ModPublic | types.ModAbstract
	}
	return mods
}

// Build constructs a prelude-seeded universe extended with the document's
// classes.
func (c *Config) Build() (*symbols.Table, *types.TypeSystem, error) {
	table, ts := symbols.NewUniverse()

	// Phase 1: bare symbols, so references between table classes resolve.
	for i := range c.Classes {
		cd := &c.Classes[i]
		table.Declare(cd.Name, cd.modifiers(), cd.IsInterface(), cd.Kind == "annotation")
	}

	// Phase 2: type parameters, supertypes, members.
	for i := range c.Classes {
		cd := &c.Classes[i]
		if err := c.wireClass(cd, table, ts); err != nil {
			return nil, nil, err
		}
	}
	return table, ts, nil
}

func (c *Config) wireClass(cd *ClassDef, table *symbols.Table, ts *types.TypeSystem) error {
	sym := table.Lookup(cd.Name)

	scope := make(map[string]*types.TypeVar)
	params, err := buildTypeParams(cd.TypeParams, scope, table, ts)
	if err != nil {
		return NewInvalidClassError(cd.Name, err.Error())
	}
	sym.SetTypeParams(params...)

	resolve := func(ref string) (types.Type, error) {
		return ParseTypeRef(ref, scope, table, ts)
	}

	if cd.IsInterface() {
		// Interfaces have no superclass; Object membership is implied.
	} else if cd.Extends != "" {
		super, err := resolve(cd.Extends)
		if err != nil {
			return NewInvalidClassError(cd.Name, err.Error())
		}
		sym.SetSuperclass(super)
	} else {
		sym.SetSuperclass(ts.Object)
	}

	if len(cd.Implements) > 0 {
		ifaces := make([]types.Type, len(cd.Implements))
		for i, ref := range cd.Implements {
			iface, err := resolve(ref)
			if err != nil {
				return NewInvalidClassError(cd.Name, err.Error())
			}
			ifaces[i] = iface
		}
		sym.SetSuperinterfaces(ifaces...)
	}

	for i := range cd.Methods {
		if err := c.wireMethod(&cd.Methods[i], cd, sym, scope, table, ts); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) wireMethod(md *MethodDef, cd *ClassDef, sym *symbols.ClassSymbol,
	classScope map[string]*types.TypeVar, table *symbols.Table, ts *types.TypeSystem) error {

	scope := make(map[string]*types.TypeVar, len(classScope))
	for k, v := range classScope {
		scope[k] = v
	}
	mparams, err := buildTypeParams(md.TypeParams, scope, table, ts)
	if err != nil {
		return NewInvalidClassError(cd.Name, md.Name+": "+err.Error())
	}

	params := make([]types.Type, len(md.Params))
	for i, ref := range md.Params {
		p, err := ParseTypeRef(ref, scope, table, ts)
		if err != nil {
			return NewInvalidClassError(cd.Name, md.Name+": "+err.Error())
		}
		params[i] = p
	}

	ret := types.Type(ts.NoType)
	if md.Return != "" && md.Return != "void" {
		r, err := ParseTypeRef(md.Return, scope, table, ts)
		if err != nil {
			return NewInvalidClassError(cd.Name, md.Name+": "+err.Error())
		}
		ret = r
	}

	thrown := make([]types.Type, 0, len(md.Throws))
	for _, ref := range md.Throws {
		th, err := ParseTypeRef(ref, scope, table, ts)
		if err != nil {
			return NewInvalidClassError(cd.Name, md.Name+": "+err.Error())
		}
		thrown = append(thrown, th)
	}

	m := symbols.NewMethod(md.Name, md.modifiers(cd.IsInterface()), ret, params...)
	m.SetTypeParams(mparams...)
	if len(thrown) > 0 {
		m.SetThrown(thrown...)
	}
	if md.Default {
		m.MarkDefault()
	}
	sym.AddMethod(m)
	return nil
}

// buildTypeParams creates the variables first so bounds may mention
// siblings (F-bounds), then parses the bounds.
func buildTypeParams(defs []TypeParamDef, scope map[string]*types.TypeVar,
	table *symbols.Table, ts *types.TypeSystem) ([]*types.TypeVar, error) {

	if len(defs) == 0 {
		return nil, nil
	}
	params := make([]*types.TypeVar, len(defs))
	for i, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("type parameter %d has no name", i)
		}
		params[i] = ts.NewTypeVar(d.Name, nil)
		scope[d.Name] = params[i]
	}
	for i, d := range defs {
		if d.Bound == "" {
			continue
		}
		bound, err := ParseTypeRef(d.Bound, scope, table, ts)
		if err != nil {
			return nil, fmt.Errorf("bound of %s: %w", d.Name, err)
		}
		params[i].Upper = bound
	}
	return params, nil
}
