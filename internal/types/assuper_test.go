package types_test

import (
	"testing"

	"github.com/breakbot-playground/pmd/internal/types"
)

func TestAsSuper(t *testing.T) {
	table, ts := universe(t)
	str := classOf(t, table, ts, "java.lang.String")
	arrayList := classOf(t, table, ts, "java.util.ArrayList", str)

	tests := []struct {
		name   string
		t      types.Type
		target string
		want   types.Type // nil means no match
	}{
		{"ArrayList<String> as List", arrayList, "java.util.List", classOf(t, table, ts, "java.util.List", str)},
		{"ArrayList<String> as Collection", arrayList, "java.util.Collection", classOf(t, table, ts, "java.util.Collection", str)},
		{"ArrayList<String> as AbstractList", arrayList, "java.util.AbstractList", classOf(t, table, ts, "java.util.AbstractList", str)},
		{"ArrayList<String> as Object", arrayList, "java.lang.Object", ts.Object},
		{"ArrayList<String> as itself", arrayList, "java.util.ArrayList", arrayList},
		{"String as List", str, "java.util.List", nil},
		{"String as Comparable", str, "java.lang.Comparable", classOf(t, table, ts, "java.lang.Comparable", str)},
		{"List<String> as Iterable", classOf(t, table, ts, "java.util.List", str), "java.lang.Iterable", classOf(t, table, ts, "java.lang.Iterable", str)},
		{"raw ArrayList as List", rawOf(t, table, ts, "java.util.ArrayList"), "java.util.List", rawOf(t, table, ts, "java.util.List")},
		{"String[] as Cloneable", ts.ArrayOf(str), "java.lang.Cloneable", ts.Cloneable},
		{"String[] as List", ts.ArrayOf(str), "java.util.List", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ts.AsSuper(tc.t, table.Lookup(tc.target))
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("AsSuper(%s, %s) = %s, want nil", tc.t, tc.target, got)
			case tc.want != nil && got == nil:
				t.Errorf("AsSuper(%s, %s) = nil, want %s", tc.t, tc.target, tc.want)
			case tc.want != nil && !types.IsSameType(got, tc.want):
				t.Errorf("AsSuper(%s, %s) = %s, want %s", tc.t, tc.target, got, tc.want)
			}
		})
	}

	t.Run("type var recurses into bound", func(t *testing.T) {
		v := ts.NewTypeVar("T", classOf(t, table, ts, "java.util.List", str))
		got := ts.AsSuper(v, table.Lookup("java.util.Collection"))
		want := classOf(t, table, ts, "java.util.Collection", str)
		if got == nil || !types.IsSameType(got, want) {
			t.Errorf("AsSuper(T extends List<String>, Collection) = %v, want %s", got, want)
		}
	})

	t.Run("intersection takes first matching component", func(t *testing.T) {
		charSeq := classOf(t, table, ts, "java.lang.CharSequence")
		bound := ts.Intersect(ts.Object, charSeq, ts.Serializable)
		got := ts.AsSuper(bound, table.Lookup("java.lang.CharSequence"))
		if got == nil || !types.IsSameType(got, charSeq) {
			t.Errorf("AsSuper(%s, CharSequence) = %v, want %s", bound, got, charSeq)
		}
	})
}

func TestAsOuterSuper(t *testing.T) {
	table, ts := universe(t)
	str := classOf(t, table, ts, "java.lang.String")

	outer := table.Declare("com.acme.Outer", types.ModPublic, false, false)
	{
		e := ts.NewTypeVar("E", nil)
		outer.SetTypeParams(e)
		outer.SetSuperclass(ts.Object)
		outer.SetSuperinterfaces(ts.Parameterize(table.Lookup("java.lang.Iterable"), e))
	}
	inner := table.Declare("com.acme.Outer$Inner", types.ModPublic, false, false)
	inner.SetEnclosing(outer)
	inner.SetSuperclass(ts.Object)

	outerOfString := ts.Parameterize(outer, str)
	innerT := ts.InnerType(outerOfString, inner)

	t.Run("no inner match falls back to enclosing chain", func(t *testing.T) {
		got := ts.AsOuterSuper(innerT, table.Lookup("java.lang.Iterable"))
		want := classOf(t, table, ts, "java.lang.Iterable", str)
		if got == nil || !types.IsSameType(got, want) {
			t.Errorf("AsOuterSuper(%s, Iterable) = %v, want %s", innerT, got, want)
		}
	})

	t.Run("inner match wins", func(t *testing.T) {
		got := ts.AsOuterSuper(innerT, inner)
		if got == nil || got.Symbol != types.ClassSymbol(inner) {
			t.Errorf("AsOuterSuper(%s, Inner) = %v, want the inner type", innerT, got)
		}
	})

	t.Run("plain AsSuper does not walk enclosing types", func(t *testing.T) {
		if got := ts.AsSuper(innerT, table.Lookup("java.lang.Iterable")); got != nil {
			t.Errorf("AsSuper(%s, Iterable) = %s, want nil", innerT, got)
		}
	})
}
