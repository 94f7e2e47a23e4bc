package types

// maxMentionsDepth bounds the bound-graph walk. Pathological cyclic bounds
// (through capture variables) would otherwise recurse without end; past the
// budget the answer degrades to false rather than failing the caller.
const maxMentionsDepth = 512

// Mentions reports whether t structurally references v, where v is a type
// variable or inference variable. Bounds of capture variables are searched;
// bounds of declared type parameters are not (a declared variable is matched
// by identity alone).
func Mentions(t Type, v Type) bool {
	return MentionsAny(t, []Type{v})
}

// MentionsAny reports whether t references any variable in vars.
func MentionsAny(t Type, vars []Type) bool {
	if len(vars) == 0 {
		return false
	}
	set := make(map[Type]struct{}, len(vars))
	for _, v := range vars {
		set[v] = struct{}{}
	}
	w := &mentionsWalker{vars: set, seen: make(map[*TypeVar]struct{})}
	return w.walk(t, 0)
}

type mentionsWalker struct {
	vars map[Type]struct{}
	seen map[*TypeVar]struct{}
}

func (w *mentionsWalker) walk(t Type, depth int) bool {
	if t == nil || depth > maxMentionsDepth {
		return false
	}
	if _, hit := w.vars[t]; hit {
		return true
	}
	switch tt := t.(type) {
	case *ClassType:
		for _, a := range tt.Args {
			if w.walk(a, depth+1) {
				return true
			}
		}
		if tt.Enclosing != nil {
			return w.walk(tt.Enclosing, depth+1)
		}
	case *ArrayType:
		return w.walk(tt.Component, depth+1)
	case *WildcardType:
		return w.walk(tt.Bound, depth+1)
	case *IntersectionType:
		if w.walk(tt.Superclass, depth+1) {
			return true
		}
		for _, i := range tt.Interfaces {
			if w.walk(i, depth+1) {
				return true
			}
		}
	case *TypeVar:
		if !tt.IsCaptured() {
			return false
		}
		if _, done := w.seen[tt]; done {
			return false
		}
		w.seen[tt] = struct{}{}
		if w.walk(tt.UpperBound(), depth+1) {
			return true
		}
		return w.walk(tt.LowerBound(), depth+1)
	}
	return false
}
