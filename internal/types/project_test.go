package types_test

import (
	"testing"

	"github.com/breakbot-playground/pmd/internal/types"
)

// captureOf captures a single wildcard argument and returns the variable.
func captureOf(t *testing.T, ts *types.TypeSystem, src *types.ClassType) (*types.ClassType, *types.TypeVar) {
	t.Helper()
	cap, ok := ts.Capture(src).(*types.ClassType)
	if !ok {
		t.Fatalf("capture of %s did not produce a class type", src)
	}
	for _, a := range cap.Args {
		if v, isVar := a.(*types.TypeVar); isVar && v.IsCaptured() {
			return cap, v
		}
	}
	t.Fatalf("no capture variable in %s", cap)
	return nil, nil
}

func TestProjectLeaves(t *testing.T) {
	table, ts := universe(t)
	str := classOf(t, table, ts, "java.lang.String")
	number := classOf(t, table, ts, "java.lang.Number")

	t.Run("declared variables pass through", func(t *testing.T) {
		v := ts.NewTypeVar("T", number)
		if got := ts.ProjectUpwards(v); got != types.Type(v) {
			t.Errorf("up(T) = %s, want T", got)
		}
		if got := ts.ProjectDownwards(v); got != types.Type(v) {
			t.Errorf("down(T) = %s, want T", got)
		}
	})

	t.Run("primitives and sentinels pass through", func(t *testing.T) {
		for _, term := range []types.Type{ts.Primitive(types.Int), ts.Unresolved, ts.NoType} {
			if got := ts.ProjectUpwards(term); got != term {
				t.Errorf("up(%s) = %s", term, got)
			}
			if got := ts.ProjectDownwards(term); got != term {
				t.Errorf("down(%s) = %s", term, got)
			}
		}
	})

	t.Run("null type is one-directional", func(t *testing.T) {
		if got := ts.ProjectUpwards(ts.Null); got != types.Type(ts.Null) {
			t.Errorf("up(null) = %s, want null", got)
		}
		if got := ts.ProjectDownwards(ts.Null); got != nil {
			t.Errorf("down(null) = %s, want no projection", got)
		}
	})

	t.Run("capture variable replaced by its bounds", func(t *testing.T) {
		_, v := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(true, number)))
		if got := ts.ProjectUpwards(v); !types.IsSameType(got, number) {
			t.Errorf("up(capture of ? extends Number) = %s, want Number", got)
		}
		if got := ts.ProjectDownwards(v); got != nil {
			t.Errorf("down of a capture with null lower bound = %s, want none", got)
		}

		_, w := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(false, str)))
		if got := ts.ProjectDownwards(w); !types.IsSameType(got, str) {
			t.Errorf("down(capture of ? super String) = %s, want String", got)
		}
	})

	t.Run("unrestricted terms are identity", func(t *testing.T) {
		list := classOf(t, table, ts, "java.util.List", str)
		if got := ts.ProjectUpwards(list); got != types.Type(list) {
			t.Errorf("up(%s) must be the same term", list)
		}
		if got := ts.ProjectDownwards(list); got != types.Type(list) {
			t.Errorf("down(%s) must be the same term", list)
		}
	})
}

func TestProjectClassArguments(t *testing.T) {
	table, ts := universe(t)
	number := classOf(t, table, ts, "java.lang.Number")

	// List<cap of ? extends Number> projects up to List<? extends Number>.
	capped, v := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(true, number)))
	up := ts.ProjectUpwards(capped)
	want := classOf(t, table, ts, "java.util.List", ts.Wildcard(true, number))
	if !types.IsSameType(up, want) {
		t.Errorf("up(%s) = %s, want %s", capped, up, want)
	}
	if types.Mentions(up, v) {
		t.Errorf("projection still mentions the capture variable: %s", up)
	}

	// Downwards a changed proper-type argument has no projection.
	if got := ts.ProjectDownwards(capped); got != nil {
		t.Errorf("down(%s) = %s, want no projection", capped, got)
	}

	// List<cap of ? super Number> projects up to List<? super Number>: the
	// argument's down projection is the capture's lower bound.
	capped2, _ := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(false, number)))
	up2 := ts.ProjectUpwards(capped2)
	want2 := classOf(t, table, ts, "java.util.List", ts.Wildcard(false, number))
	if !types.IsSameType(up2, want2) {
		t.Errorf("up(%s) = %s, want %s", capped2, up2, want2)
	}
}

func TestProjectArrayAndIntersection(t *testing.T) {
	table, ts := universe(t)
	number := classOf(t, table, ts, "java.lang.Number")

	_, v := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(true, number)))

	arr := ts.ArrayOf(v)
	up := ts.ProjectUpwards(arr)
	if !types.IsSameType(up, ts.ArrayOf(number)) {
		t.Errorf("up(%s) = %s, want Number[]", arr, up)
	}
	if got := ts.ProjectDownwards(arr); got != nil {
		t.Errorf("down(%s) = %s, want no projection", arr, got)
	}

	inter := &types.IntersectionType{Superclass: ts.Object, Interfaces: []types.Type{classOf(t, table, ts, "java.lang.CharSequence")}}
	if got := ts.ProjectUpwards(inter); got != types.Type(inter) {
		t.Errorf("up of a restricted-free intersection must be identity, got %s", got)
	}
}

func TestProjectSoundness(t *testing.T) {
	table, ts := universe(t)
	str := classOf(t, table, ts, "java.lang.String")
	number := classOf(t, table, ts, "java.lang.Number")

	capped1, _ := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(true, number)))
	capped2, v2 := captureOf(t, ts, classOf(t, table, ts, "java.util.List", ts.Wildcard(false, str)))

	terms := []types.Type{
		str,
		capped1,
		capped2,
		ts.ArrayOf(str),
		v2,
	}
	for _, term := range terms {
		up := ts.ProjectUpwards(term)
		if up == nil {
			t.Fatalf("up(%s) must always be defined", term)
		}
		if !ts.IsSubtype(term, up, false) {
			t.Errorf("t <: up(t) violated: %s vs %s", term, up)
		}
		if down := ts.ProjectDownwards(term); down != nil {
			if !ts.IsSubtype(down, term, false) {
				t.Errorf("down(t) <: t violated: %s vs %s", down, term)
			}
		}
	}
}
