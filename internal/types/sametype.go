package types

// IsSameType is reflexive structural equality in pure mode: inference
// variables compare by identity and nothing is recorded on them.
func IsSameType(t, s Type) bool { return isSameType(t, s, false) }

// IsSameTypeInInference compares in inference mode. A comparison against an
// inference variable succeeds and accretes a bound on it as a side effect:
// an EQ bound for ordinary terms, an UPPER or LOWER bound for wildcards
// depending on polarity. The inference-variable side drives the dispatch
// regardless of argument order.
func IsSameTypeInInference(t, s Type) bool { return isSameType(t, s, true) }

// AreSameTypes compares element-wise in pure mode.
func AreSameTypes(a, b []Type) bool { return areSameTypes(a, b, false) }

func areSameTypes(a, b []Type, inInference bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !isSameType(a[i], b[i], inInference) {
			return false
		}
	}
	return true
}

func isSameType(t, s Type, inInference bool) bool {
	if t == nil || s == nil {
		return t == s
	}
	if t == s {
		return true
	}

	if inInference {
		if iv, ok := t.(*InferenceVar); ok {
			return ivarEq(iv, s)
		}
		if iv, ok := s.(*InferenceVar); ok {
			return ivarEq(iv, t)
		}
	}

	switch tt := t.(type) {
	case *ClassType:
		ss, ok := s.(*ClassType)
		if !ok {
			return false
		}
		return tt.Symbol.BinaryName() == ss.Symbol.BinaryName() &&
			tt.ErasedSupertypes == ss.ErasedSupertypes &&
			sameEnclosing(tt.Enclosing, ss.Enclosing, inInference) &&
			areSameTypes(tt.Args, ss.Args, inInference)

	case *ArrayType:
		ss, ok := s.(*ArrayType)
		return ok && isSameType(tt.Component, ss.Component, inInference)

	case *WildcardType:
		ss, ok := s.(*WildcardType)
		return ok && tt.Upper == ss.Upper && isSameType(tt.Bound, ss.Bound, inInference)

	case *IntersectionType:
		ss, ok := s.(*IntersectionType)
		if !ok {
			return false
		}
		return isSameType(tt.Superclass, ss.Superclass, inInference) &&
			sameInterfaceSets(tt.Interfaces, ss.Interfaces, inInference)

	default:
		// Primitives, sentinels, the null type, type variables and (in pure
		// mode) inference variables are equal by identity only, which the
		// fast path above already decided.
		return false
	}
}

func sameEnclosing(a, b *ClassType, inInference bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return isSameType(a, b, inInference)
}

// sameInterfaceSets matches interface components as a bijection keyed by
// erasure: order is semantically irrelevant in an intersection.
func sameInterfaceSets(a, b []Type, inInference bool) bool {
	if len(a) != len(b) {
		return false
	}
	matched := make([]bool, len(b))
outer:
	for _, ai := range a {
		ae := Erasure(ai)
		for j, bj := range b {
			if matched[j] || !isSameType(ae, Erasure(bj), false) {
				continue
			}
			if isSameType(ai, bj, inInference) {
				matched[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// ivarEq implements the inference-mode comparison with iv on the driving
// side. Recording the bound is the authorised side effect of the check.
func ivarEq(iv *InferenceVar, other Type) bool {
	switch o := other.(type) {
	case *PrimitiveType:
		return false
	case *WildcardType:
		if o.Upper {
			iv.AddBound(BoundUpper, o.Bound)
		} else {
			iv.AddBound(BoundLower, o.Bound)
		}
		return true
	default:
		iv.AddBound(BoundEq, other)
		return true
	}
}
