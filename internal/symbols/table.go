package symbols

import (
	"github.com/breakbot-playground/pmd/internal/types"
)

// Table is the symbol registry the type system resolves class symbols
// through. Unknown names resolve to cached unresolved symbols instead of
// failing, so a missing class degrades checks instead of aborting them.
type Table struct {
	classes    map[string]*ClassSymbol
	unresolved map[string]*ClassSymbol
}

var _ types.SymbolResolver = (*Table)(nil)

func NewTable() *Table {
	return &Table{
		classes:    make(map[string]*ClassSymbol),
		unresolved: make(map[string]*ClassSymbol),
	}
}

// Declare registers a bare class symbol under its binary name and returns
// it. Redeclaring a name returns the existing symbol.
func (t *Table) Declare(binaryName string, mods types.Modifier, iface, annotation bool) *ClassSymbol {
	if existing, ok := t.classes[binaryName]; ok {
		return existing
	}
	sym := &ClassSymbol{
		binaryName: binaryName,
		mods:       mods,
		iface:      iface,
		annotation: annotation,
	}
	t.classes[binaryName] = sym
	return sym
}

// Lookup returns the declared symbol for a binary name, nil when unknown.
func (t *Table) Lookup(binaryName string) *ClassSymbol { return t.classes[binaryName] }

// Resolve implements types.SymbolResolver. Names with no declaration yield
// an interned unresolved symbol.
func (t *Table) Resolve(binaryName string) types.ClassSymbol {
	if sym, ok := t.classes[binaryName]; ok {
		return sym
	}
	if sym, ok := t.unresolved[binaryName]; ok {
		return sym
	}
	sym := &ClassSymbol{binaryName: binaryName, mods: types.ModPublic, unresolved: true}
	t.unresolved[binaryName] = sym
	return sym
}

// Names lists the declared binary names, in no particular order.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.classes))
	for name := range t.classes {
		out = append(out, name)
	}
	return out
}

// NewUniverse builds a table pre-seeded with the java.lang prelude and a
// type system resolving through it. This is the standard entry point for
// tests and the inspector.
func NewUniverse() (*Table, *types.TypeSystem) {
	table := NewTable()
	table.declarePrelude()
	ts := types.NewTypeSystem(table)
	table.wirePrelude(ts)
	return table, ts
}
