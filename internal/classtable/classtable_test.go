package classtable

import (
	"errors"
	"testing"

	"github.com/breakbot-playground/pmd/internal/types"
)

const shapesDoc = `
classes:
  - name: com.acme.Shape
    kind: interface
    methods:
      - name: area
        return: double
  - name: com.acme.Circle
    modifiers: [public]
    implements: [com.acme.Shape]
    methods:
      - name: area
        modifiers: [public]
        return: double
      - name: radius
        modifiers: [public]
        return: double
  - name: com.acme.Box
    modifiers: [public]
    type_params:
      - name: T
        bound: Comparable<T>
    extends: java.lang.Object
    implements: [java.lang.Iterable<T>]
    methods:
      - name: put
        modifiers: [public]
        params: [T]
      - name: take
        modifiers: [public]
        return: T
      - name: copyTo
        modifiers: [public]
        type_params:
          - name: U
        params: ["java.util.List<? super U>", "U[]"]
        throws: [java.lang.Exception]
`

func TestBuildShapes(t *testing.T) {
	cfg, err := Load([]byte(shapesDoc))
	if err != nil {
		t.Fatal(err)
	}
	table, ts, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}

	shape := table.Lookup("com.acme.Shape")
	if shape == nil || !shape.IsInterface() {
		t.Fatal("Shape must be declared as an interface")
	}
	circle := table.Lookup("com.acme.Circle")
	if circle == nil {
		t.Fatal("Circle must be declared")
	}
	if !ts.IsSubtype(ts.Declaration(circle), ts.Declaration(shape), false) {
		t.Error("Circle <: Shape must hold")
	}

	area := circle.DeclaredMethods()[0]
	if area.Name() != "area" || area.ReturnType() != types.Type(ts.Primitive(types.Double)) {
		t.Errorf("area = %s %s", area.ReturnType(), area.Name())
	}

	box := table.Lookup("com.acme.Box")
	if len(box.TypeParams()) != 1 {
		t.Fatal("Box declares one type parameter")
	}
	tv := box.TypeParams()[0]
	bound, ok := tv.UpperBound().(*types.ClassType)
	if !ok || bound.Symbol.BinaryName() != "java.lang.Comparable" {
		t.Fatalf("bound of T = %s, want Comparable<T>", tv.UpperBound())
	}
	if len(bound.Args) != 1 || bound.Args[0] != types.Type(tv) {
		t.Errorf("bound argument = %v, want the parameter itself", bound.Args)
	}

	var copyTo types.MethodSymbol
	for _, m := range box.DeclaredMethods() {
		if m.Name() == "copyTo" {
			copyTo = m
		}
	}
	if copyTo == nil {
		t.Fatal("copyTo must be declared")
	}
	if len(copyTo.TypeParams()) != 1 {
		t.Error("copyTo declares a method type parameter")
	}
	if got := copyTo.ParamTypes()[0].String(); got != "java.util.List<? super U>" {
		t.Errorf("param 0 = %s", got)
	}
	if _, isArr := copyTo.ParamTypes()[1].(*types.ArrayType); !isArr {
		t.Errorf("param 1 = %s, want an array", copyTo.ParamTypes()[1])
	}
	if copyTo.ReturnType() != types.Type(ts.NoType) {
		t.Errorf("missing return means void, got %s", copyTo.ReturnType())
	}
	if len(copyTo.ThrownTypes()) != 1 {
		t.Errorf("thrown = %v", copyTo.ThrownTypes())
	}

	// Explicit modifiers are kept; interface methods default to public abstract.
	if mods := area.Modifiers(); !mods.IsPublic() {
		t.Errorf("explicit modifiers respected, got %v", mods)
	}
	shapeArea := shape.DeclaredMethods()[0]
	if mods := shapeArea.Modifiers(); !mods.IsPublic() || !mods.IsAbstract() {
		t.Errorf("interface methods default to public abstract, got %v", mods)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "classes:\n  - kind: class\n"},
		{"duplicate", "classes:\n  - name: a.B\n  - name: a.B\n"},
		{"bad kind", "classes:\n  - name: a.B\n    kind: struct\n"},
		{"interface extends", "classes:\n  - name: a.B\n    kind: interface\n    extends: a.C\n"},
		{"bad modifier", "classes:\n  - name: a.B\n    modifiers: [sealed]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.doc))
			var invalid *InvalidClassError
			if err == nil || !errors.As(err, &invalid) {
				t.Errorf("Load = %v, want an InvalidClassError", err)
			}
		})
	}
}

func TestParseTypeRef(t *testing.T) {
	cfg := &Config{}
	table, ts, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"int", "int"},
		{"java.lang.String", "java.lang.String"},
		{"String", "java.lang.String"},
		{"List<String>", "java.util.List<java.lang.String>"},
		{"java.util.List<? extends Number>", "java.util.List<? extends java.lang.Number>"},
		{"?", "?"},
		{"? super Integer", "? super java.lang.Integer"},
		{"int[][]", "int[][]"},
		{"List<String>[]", "java.util.List<java.lang.String>[]"},
		{"CharSequence & Serializable", "java.lang.Object & java.lang.CharSequence & java.io.Serializable"},
	}
	for _, tc := range tests {
		t.Run(tc.ref, func(t *testing.T) {
			got, err := ParseTypeRef(tc.ref, nil, table, ts)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseTypeRef(%q) = %s, want %s", tc.ref, got, tc.want)
			}
		})
	}

	t.Run("unknown name resolves unresolved", func(t *testing.T) {
		got, err := ParseTypeRef("com.missing.Gone", nil, table, ts)
		if err != nil {
			t.Fatal(err)
		}
		if !types.IsUnresolved(got) {
			t.Errorf("%s should be unresolved", got)
		}
	})

	t.Run("trailing garbage fails", func(t *testing.T) {
		_, err := ParseTypeRef("java.lang.String>", nil, table, ts)
		var bad *BadTypeRefError
		if err == nil || !errors.As(err, &bad) {
			t.Errorf("err = %v, want BadTypeRefError", err)
		}
	})

	t.Run("scope wins over classes", func(t *testing.T) {
		v := ts.NewTypeVar("String", nil)
		got, err := ParseTypeRef("String", map[string]*types.TypeVar{"String": v}, table, ts)
		if err != nil {
			t.Fatal(err)
		}
		if got != types.Type(v) {
			t.Errorf("scope must shadow class names, got %s", got)
		}
	})
}
