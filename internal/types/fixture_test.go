package types_test

import (
	"testing"

	"github.com/breakbot-playground/pmd/internal/symbols"
	"github.com/breakbot-playground/pmd/internal/types"
)

// universe builds the prelude-backed world the tests run in.
func universe(t *testing.T) (*symbols.Table, *types.TypeSystem) {
	t.Helper()
	return symbols.NewUniverse()
}

func classOf(t *testing.T, table *symbols.Table, ts *types.TypeSystem, name string, args ...types.Type) *types.ClassType {
	t.Helper()
	sym := table.Lookup(name)
	if sym == nil {
		t.Fatalf("class %s not in table", name)
	}
	return ts.Parameterize(sym, args...)
}

func rawOf(t *testing.T, table *symbols.Table, ts *types.TypeSystem, name string) *types.ClassType {
	t.Helper()
	sym := table.Lookup(name)
	if sym == nil {
		t.Fatalf("class %s not in table", name)
	}
	return ts.RawType(sym)
}

// names renders a type list for diagnostics.
func names(list []types.Type) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.String()
	}
	return out
}

func containsType(list []types.Type, want types.Type) bool {
	for _, t := range list {
		if types.IsSameType(t, want) {
			return true
		}
	}
	return false
}
