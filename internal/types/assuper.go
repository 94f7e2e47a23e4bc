package types

// AsSuper returns the unique supertype of t whose erasure is target, with
// t's parameterisation flowed through, or nil when target is not a
// supertype. The superclass chain is searched first; interfaces only when
// the target is one, single class inheritance making the class answer
// unambiguous.
func (ts *TypeSystem) AsSuper(t Type, target ClassSymbol) *ClassType {
	switch tt := t.(type) {
	case *ClassType:
		return ts.asSuperOfClass(tt, target)

	case *TypeVar:
		return ts.AsSuper(tt.UpperBound(), target)

	case *IntersectionType:
		for _, comp := range tt.Components() {
			if r := ts.AsSuper(comp, target); r != nil {
				return r
			}
		}
		return nil

	case *ArrayType:
		decl := ts.Declaration(target)
		if ts.IsSubtype(tt, decl, false) {
			return decl
		}
		return nil

	default:
		return nil
	}
}

func (ts *TypeSystem) asSuperOfClass(t *ClassType, target ClassSymbol) *ClassType {
	targetName := target.BinaryName()

	// Superclass chain first.
	for cur := t; cur != nil; {
		if cur.Symbol.BinaryName() == targetName {
			return cur
		}
		next, _ := cur.SuperClassType().(*ClassType)
		cur = next
	}

	if target.IsInterface() {
		seen := make(map[string]struct{})
		for cur := t; cur != nil; {
			if r := ts.searchInterfaces(cur.SuperInterfaceTypes(), targetName, seen); r != nil {
				return r
			}
			next, _ := cur.SuperClassType().(*ClassType)
			cur = next
		}
	}

	// Object closes every reference hierarchy.
	if targetName == ObjectName {
		return ts.Object
	}
	return nil
}

func (ts *TypeSystem) searchInterfaces(ifaces []Type, targetName string, seen map[string]struct{}) *ClassType {
	for _, i := range ifaces {
		c, ok := i.(*ClassType)
		if !ok {
			continue
		}
		if _, dup := seen[c.Symbol.BinaryName()]; dup {
			continue
		}
		seen[c.Symbol.BinaryName()] = struct{}{}
		if c.Symbol.BinaryName() == targetName {
			return c
		}
		if r := ts.searchInterfaces(c.SuperInterfaceTypes(), targetName, seen); r != nil {
			return r
		}
	}
	return nil
}

// AsOuterSuper behaves like AsSuper but, when the type itself has no match,
// continues through the chain of enclosing types. Inner-class member
// resolution needs the enclosing walk.
func (ts *TypeSystem) AsOuterSuper(t Type, target ClassSymbol) *ClassType {
	for cur := t; cur != nil; {
		if r := ts.AsSuper(cur, target); r != nil {
			return r
		}
		c, ok := cur.(*ClassType)
		if !ok || c.Enclosing == nil {
			return nil
		}
		cur = c.Enclosing
	}
	return nil
}
