package types_test

import (
	"testing"

	"github.com/breakbot-playground/pmd/internal/symbols"
	"github.com/breakbot-playground/pmd/internal/types"
)

func TestAccessible(t *testing.T) {
	table, ts := universe(t)

	owner := table.Declare("com.acme.Owner", types.ModPublic, false, false)
	owner.SetSuperclass(ts.Object)
	samePkg := table.Declare("com.acme.Neighbor", types.ModPublic, false, false)
	samePkg.SetSuperclass(ts.Object)
	otherPkg := table.Declare("com.other.Stranger", types.ModPublic, false, false)
	otherPkg.SetSuperclass(ts.Object)
	subclass := table.Declare("com.other.Child", types.ModPublic, false, false)
	subclass.SetSuperclass(ts.Declaration(owner))
	iface := table.Declare("com.acme.Pkgface", types.ModPublic|types.ModAbstract, true, false)
	nested := table.Declare("com.acme.Owner$Helper", types.ModPublic, false, false)
	nested.SetEnclosing(owner)
	nested.SetSuperclass(ts.Object)

	tests := []struct {
		name string
		mods types.Modifier
		ctx  types.ClassSymbol
		want bool
	}{
		{"public from anywhere", types.ModPublic, otherPkg, true},
		{"private from same nest", types.ModPrivate, nested, true},
		{"private from same package", types.ModPrivate, samePkg, false},
		{"protected from same package", types.ModProtected, samePkg, true},
		{"protected from subclass", types.ModProtected, subclass, true},
		{"protected from stranger", types.ModProtected, otherPkg, false},
		{"package-private from same package", 0, samePkg, true},
		{"package-private from other package", 0, otherPkg, false},
		{"package-private from interface", 0, iface, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := types.Accessible(tc.mods, owner, tc.ctx); got != tc.want {
				t.Errorf("Accessible(%v, Owner, %s) = %v, want %v", tc.mods, tc.ctx.BinaryName(), got, tc.want)
			}
		})
	}

	t.Run("array members are always visible", func(t *testing.T) {
		if !types.Accessible(0, nil, otherPkg) {
			t.Error("synthetic array members have no owner and are visible")
		}
	})
}

// takeFirst keeps the first candidate, a stand-in for the external overload
// reducer.
type takeFirst struct{}

func (takeFirst) MostSpecific(cands []*types.MethodSig) []*types.MethodSig {
	return cands[:1]
}

func TestMethodsOf(t *testing.T) {
	table, ts := universe(t)
	str := classOf(t, table, ts, "java.lang.String")
	arrayList := classOf(t, table, ts, "java.util.ArrayList", str)
	ctx := table.Lookup("java.lang.String")

	t.Run("declared and inherited", func(t *testing.T) {
		got := ts.MethodsOf(arrayList, "get", false, ctx, nil)
		if len(got) != 2 {
			t.Fatalf("get candidates = %v, want the ArrayList and List views", got)
		}
		for _, m := range got {
			if !types.IsSameType(m.Return, str) {
				t.Errorf("get() viewed from %s returns %s, want String", m.Declaring, m.Return)
			}
		}
	})

	t.Run("name filter", func(t *testing.T) {
		if got := ts.MethodsOf(arrayList, "noSuchMethod", false, ctx, nil); len(got) != 0 {
			t.Errorf("unexpected candidates %v", got)
		}
	})

	t.Run("static filter", func(t *testing.T) {
		if got := ts.MethodsOf(arrayList, "get", true, ctx, nil); len(got) != 0 {
			t.Errorf("get is not static, got %v", got)
		}
	})

	t.Run("accessibility filter", func(t *testing.T) {
		protOwner := table.Declare("com.acme.ProtOwner", types.ModPublic, false, false)
		protOwner.SetSuperclass(ts.Object)
		protOwner.AddMethod(symbols.NewMethod("renew", types.ModProtected, str))
		ownerDecl := ts.Declaration(protOwner)

		stranger := table.Declare("com.other.Stranger2", types.ModPublic, false, false)
		stranger.SetSuperclass(ts.Object)
		if got := ts.MethodsOf(ownerDecl, "renew", false, stranger, nil); len(got) != 0 {
			t.Errorf("protected renew should be invisible to a stranger, got %v", got)
		}

		heir := table.Declare("com.other.Heir", types.ModPublic, false, false)
		heir.SetSuperclass(ownerDecl)
		if got := ts.MethodsOf(ownerDecl, "renew", false, heir, nil); len(got) != 1 {
			t.Errorf("protected renew visible to a subclass, got %v", got)
		}
	})

	t.Run("reducer hook", func(t *testing.T) {
		got := ts.MethodsOf(arrayList, "get", false, ctx, takeFirst{})
		if len(got) != 1 {
			t.Errorf("reducer must keep one candidate, got %d", len(got))
		}
	})
}
