package symbols

import (
	"testing"

	"github.com/breakbot-playground/pmd/internal/types"
)

func TestUniversePrelude(t *testing.T) {
	table, ts := NewUniverse()

	for _, name := range []string{
		"java.lang.Object",
		"java.lang.String",
		"java.lang.Cloneable",
		"java.io.Serializable",
		"java.util.List",
		"java.util.ArrayList",
		"java.lang.Enum",
	} {
		if table.Lookup(name) == nil {
			t.Errorf("prelude misses %s", name)
		}
	}

	if ts.Object == nil || ts.Object.Symbol.BinaryName() != types.ObjectName {
		t.Fatal("type system must intern Object")
	}
	if ts.Object.Symbol.IsUnresolved() {
		t.Error("Object must resolve against the prelude")
	}

	str := table.Lookup("java.lang.String")
	if str.PackageName() != "java.lang" || str.SimpleName() != "String" {
		t.Errorf("String name parts = %q / %q", str.PackageName(), str.SimpleName())
	}
	if len(table.Lookup("java.util.List").TypeParams()) != 1 {
		t.Error("List declares one type parameter")
	}
	if !table.Lookup("java.util.List").IsInterface() {
		t.Error("List is an interface")
	}
}

func TestResolveUnknownName(t *testing.T) {
	table, _ := NewUniverse()

	sym := table.Resolve("com.missing.Gone")
	if !sym.IsUnresolved() {
		t.Error("unknown names resolve to unresolved symbols")
	}
	if again := table.Resolve("com.missing.Gone"); again != sym {
		t.Error("unresolved symbols are interned per name")
	}
	if table.Lookup("com.missing.Gone") != nil {
		t.Error("resolution must not declare the name")
	}
}

func TestNestRoot(t *testing.T) {
	table, _ := NewUniverse()

	outer := table.Declare("com.acme.Outer", types.ModPublic, false, false)
	inner := table.Declare("com.acme.Outer$Inner", types.ModPublic, false, false)
	inner.SetEnclosing(outer)
	deep := table.Declare("com.acme.Outer$Inner$Deep", types.ModPublic, false, false)
	deep.SetEnclosing(inner)

	if deep.NestRoot() != types.ClassSymbol(outer) {
		t.Errorf("nest root of Deep = %v, want Outer", deep.NestRoot())
	}
	if outer.NestRoot() != types.ClassSymbol(outer) {
		t.Error("a top-level class is its own nest root")
	}
	if deep.SimpleName() != "Deep" {
		t.Errorf("simple name = %q", deep.SimpleName())
	}
	if deep.PackageName() != "com.acme" {
		t.Errorf("package = %q", deep.PackageName())
	}
}

func TestDeclareIsIdempotent(t *testing.T) {
	table, _ := NewUniverse()
	a := table.Declare("com.acme.Once", types.ModPublic, false, false)
	b := table.Declare("com.acme.Once", 0, true, false)
	if a != b {
		t.Error("redeclaring a name must return the existing symbol")
	}
}
