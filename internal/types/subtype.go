package types

// IsSubtype decides T <: S. With unchecked set, raw-to-parameterised
// unchecked conversion is admitted on the subtype side.
//
// Side effects: when S is an inference variable the check succeeds and T
// becomes a LOWER bound of S. When T is an inference variable the check
// fails against a primitive or the null type and otherwise succeeds with S
// recorded as an UPPER bound of T. S = Object is decided by the fast path
// first and records no bound.
//
// An unresolved T satisfies every check so a single missing symbol does not
// cascade; an unresolved S gets no such treatment.
func (ts *TypeSystem) IsSubtype(t, s Type, unchecked bool) bool {
	if t == nil || s == nil {
		return false
	}
	if t == s {
		return true
	}
	if isObjectType(s) && !IsPrimitive(t) {
		return true
	}
	if iv, ok := s.(*InferenceVar); ok {
		iv.AddBound(BoundLower, t)
		return true
	}
	if IsUnresolved(t) {
		return true
	}
	if tv, ok := s.(*TypeVar); ok && tv.IsCaptured() {
		// A capture variable admits exactly the subtypes of its lower
		// bound. Type variables on the left take the range path below
		// instead; inference variables take their own case.
		switch t.(type) {
		case *TypeVar, *InferenceVar:
		default:
			return ts.IsSubtype(t, tv.LowerBound(), unchecked)
		}
	}

	switch tt := ts.Capture(t).(type) {
	case *TypeVar:
		if isTypeRange(s) {
			return ts.IsSubtype(tt, wildLowerRec(s), unchecked)
		}
		return ts.IsSubtype(tt.UpperBound(), s, unchecked)

	case *NullType:
		return !IsPrimitive(s)

	case *SentinelType:
		return true

	case *InferenceVar:
		if s.Kind() == KindNull || IsPrimitive(s) {
			return false
		}
		tt.AddBound(BoundUpper, s)
		return true

	case *WildcardType:
		// A wildcard is not a type; it only occurs here when t was not a
		// capturable position, and then it is a subtype of nothing.
		return false

	case *ClassType:
		return ts.classSubtype(tt, s, unchecked)

	case *IntersectionType:
		for _, comp := range tt.Components() {
			if ts.IsSubtype(comp, s, unchecked) {
				return true
			}
		}
		return false

	case *ArrayType:
		return ts.arraySubtype(tt, s, unchecked)

	case *PrimitiveType:
		ss, ok := s.(*PrimitiveType)
		return ok && isPrimitiveSubtype(tt, ss)

	default:
		panic(NewUnknownTermError("IsSubtype", t))
	}
}

func (ts *TypeSystem) classSubtype(t *ClassType, s Type, unchecked bool) bool {
	switch ss := s.(type) {
	case *IntersectionType:
		for _, comp := range ss.Components() {
			if !ts.IsSubtype(t, comp, unchecked) {
				return false
			}
		}
		return true

	case *ClassType:
		superDecl := ts.AsSuper(t, ss.Symbol)
		if superDecl == nil {
			return false
		}
		if unchecked && superDecl.IsRaw() {
			// Unchecked conversion C -> C<...>.
			return true
		}
		if ss.IsRaw() {
			// Raw on the supertype side absorbs every parameterisation of
			// the same erasure.
			return true
		}
		if !ss.IsParameterized() {
			return true
		}
		if superDecl.IsRaw() {
			return false
		}
		if len(superDecl.Args) != len(ss.Args) {
			return false
		}
		for i := range ss.Args {
			if !ts.TypeArgContains(ss.Args[i], superDecl.Args[i]) {
				return false
			}
		}
		return true

	default:
		// Wildcards are handled only through type-argument containment.
		return false
	}
}

func (ts *TypeSystem) arraySubtype(t *ArrayType, s Type, unchecked bool) bool {
	if c, ok := s.(*ClassType); ok {
		switch c.Symbol.BinaryName() {
		case ObjectName, CloneableName, SerializableName:
			return true
		}
		return false
	}
	ss, ok := s.(*ArrayType)
	if !ok {
		return false
	}
	tPrim := IsPrimitive(t.Component)
	sPrim := IsPrimitive(ss.Component)
	if tPrim || sPrim {
		return tPrim && sPrim && IsSameType(t.Component, ss.Component)
	}
	return ts.IsSubtype(t.Component, ss.Component, unchecked)
}

// TypeArgContains reports whether the type argument s contains the type
// argument t (JLS 4.5.1, written t <= s). Used pairwise to decide
// C<T...> <: C<S...>.
func (ts *TypeSystem) TypeArgContains(s, t Type) bool {
	if IsSameType(s, t) {
		return true
	}
	if _, ok := s.(*WildcardType); !ok {
		return false
	}
	return ts.IsSubtype(wildLowerRec(s), wildLowerRec(t), false) &&
		ts.IsSubtype(wildUpperRec(t), wildUpperRec(s), false)
}

// isTypeRange reports whether s stands for a range of types: a wildcard or a
// capture variable.
func isTypeRange(s Type) bool {
	switch ss := s.(type) {
	case *WildcardType:
		return true
	case *TypeVar:
		return ss.IsCaptured()
	}
	return false
}

// wildLowerRec unwraps ranges to their recursive lower bound; a proper type
// is its own bound.
func wildLowerRec(t Type) Type {
	for {
		switch tt := t.(type) {
		case *WildcardType:
			t = tt.LowerBound()
		case *TypeVar:
			if !tt.IsCaptured() {
				return t
			}
			t = tt.LowerBound()
		default:
			return t
		}
	}
}

// wildUpperRec unwraps ranges to their recursive upper bound.
func wildUpperRec(t Type) Type {
	for {
		switch tt := t.(type) {
		case *WildcardType:
			t = tt.UpperBound()
		case *TypeVar:
			if !tt.IsCaptured() {
				return t
			}
			t = tt.UpperBound()
		default:
			return t
		}
	}
}

// Capture applies wildcard capture, JLS 5.1.10: every wildcard argument of a
// parameterised type becomes a fresh capture variable whose bounds combine
// the wildcard's bound with the declared bound of the corresponding formal.
// Types without wildcard arguments are returned unchanged.
func (ts *TypeSystem) Capture(t Type) Type {
	c, ok := t.(*ClassType)
	if !ok || !hasWildcardArgs(c) {
		return t
	}
	params := c.Symbol.TypeParams()
	if len(params) != len(c.Args) {
		return t
	}

	newArgs := make([]Type, len(c.Args))
	captured := make([]*TypeVar, len(c.Args))
	for i, a := range c.Args {
		if w, isWild := a.(*WildcardType); isWild {
			v := &TypeVar{Name: params[i].Name, Captured: w, ts: ts}
			newArgs[i] = v
			captured[i] = v
		} else {
			newArgs[i] = a
		}
	}

	// The declared bounds may mention any formal, including later ones, so
	// the substitution covers all positions before bounds are filled in.
	sigma := make(Subst, len(params))
	for i, p := range params {
		sigma[p] = newArgs[i]
	}

	for i, v := range captured {
		if v == nil {
			continue
		}
		w := v.Captured
		declared := ApplySubst(params[i].UpperBound(), sigma)
		if !w.Upper {
			v.Upper = declared
			v.Lower = w.Bound
		} else if w.IsUnbounded() {
			v.Upper = declared
			v.Lower = ts.Null
		} else {
			v.Upper = ts.Glb(w.Bound, declared)
			v.Lower = ts.Null
		}
	}
	return c.WithArgs(newArgs)
}

// isObjectType matches any class-type view of java.lang.Object, interned or
// not.
func isObjectType(s Type) bool {
	c, ok := s.(*ClassType)
	return ok && c.Symbol.BinaryName() == ObjectName
}

func hasWildcardArgs(c *ClassType) bool {
	for _, a := range c.Args {
		if _, ok := a.(*WildcardType); ok {
			return true
		}
	}
	return false
}
