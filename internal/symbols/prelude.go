package symbols

import (
	"github.com/breakbot-playground/pmd/internal/types"
)

// The prelude is the slice of java.lang, java.io and java.util the algebra
// needs by name: the well-known supertypes, the boxed primitives, and
// enough of the collections hierarchy to exercise generic subtyping.
//
// Declaration happens in two phases because the hierarchy is cyclic: bare
// symbols first, then bounds, supertypes and members once a TypeSystem can
// build types over them.

const (
	pub    = types.ModPublic
	pubAbs = types.ModPublic | types.ModAbstract
	prot   = types.ModProtected
)

func (t *Table) declarePrelude() {
	classes := []string{
		"java.lang.Object",
		"java.lang.String",
		"java.lang.Number",
		"java.lang.Boolean",
		"java.lang.Character",
		"java.lang.Byte",
		"java.lang.Short",
		"java.lang.Integer",
		"java.lang.Long",
		"java.lang.Float",
		"java.lang.Double",
		"java.lang.Enum",
		"java.lang.Throwable",
		"java.lang.Exception",
		"java.lang.RuntimeException",
		"java.util.AbstractCollection",
		"java.util.AbstractList",
		"java.util.ArrayList",
		"java.util.HashMap",
	}
	ifaces := []string{
		"java.lang.Cloneable",
		"java.io.Serializable",
		"java.lang.CharSequence",
		"java.lang.Comparable",
		"java.lang.Iterable",
		"java.lang.Runnable",
		"java.util.Iterator",
		"java.util.Collection",
		"java.util.List",
		"java.util.Map",
		"java.util.function.Function",
		"java.util.function.Supplier",
	}
	for _, name := range classes {
		t.Declare(name, pub, false, false)
	}
	for _, name := range ifaces {
		t.Declare(name, pubAbs, true, false)
	}
}

func (t *Table) wirePrelude(ts *types.TypeSystem) {
	objT := ts.Object
	cloneT := ts.Cloneable
	serialT := ts.Serializable
	str := t.classes["java.lang.String"]
	strT := ts.Declaration(str)
	intT := types.Type(ts.Primitive(types.Int))
	boolT := types.Type(ts.Primitive(types.Boolean))

	object := t.classes[types.ObjectName]
	object.AddMethod(NewMethod("equals", pub, boolT, objT))
	object.AddMethod(NewMethod("hashCode", pub, intT))
	object.AddMethod(NewMethod("toString", pub, strT))
	object.AddMethod(NewMethod("clone", prot, objT))

	charSeq := t.classes["java.lang.CharSequence"]
	charSeq.AddMethod(NewMethod("length", pubAbs, intT))
	charSeq.AddMethod(NewMethod("charAt", pubAbs, ts.Primitive(types.Char), intT))

	comparable := t.classes["java.lang.Comparable"]
	{
		tv := ts.NewTypeVar("T", nil)
		comparable.SetTypeParams(tv)
		comparable.AddMethod(NewMethod("compareTo", pubAbs, intT, tv))
	}
	comparableOf := func(arg types.Type) types.Type {
		return ts.Parameterize(comparable, arg)
	}

	str.SetSuperclass(objT)
	str.SetSuperinterfaces(ts.Declaration(charSeq), comparableOf(strT), serialT)
	str.AddMethod(NewMethod("length", pub, intT))
	str.AddMethod(NewMethod("charAt", pub, ts.Primitive(types.Char), intT))
	str.AddMethod(NewMethod("isEmpty", pub, boolT))

	number := t.classes["java.lang.Number"]
	number.SetSuperclass(objT)
	number.SetSuperinterfaces(serialT)
	number.AddMethod(NewMethod("intValue", pubAbs, intT))
	number.AddMethod(NewMethod("doubleValue", pubAbs, ts.Primitive(types.Double)))

	wireBox := func(name string, numeric bool) {
		sym := t.classes[name]
		symT := ts.Declaration(sym)
		if numeric {
			sym.SetSuperclass(ts.Declaration(number))
			sym.SetSuperinterfaces(comparableOf(symT))
		} else {
			sym.SetSuperclass(objT)
			sym.SetSuperinterfaces(comparableOf(symT), serialT)
		}
	}
	wireBox("java.lang.Boolean", false)
	wireBox("java.lang.Character", false)
	wireBox("java.lang.Byte", true)
	wireBox("java.lang.Short", true)
	wireBox("java.lang.Integer", true)
	wireBox("java.lang.Long", true)
	wireBox("java.lang.Float", true)
	wireBox("java.lang.Double", true)

	enum := t.classes["java.lang.Enum"]
	{
		e := ts.NewTypeVar("E", nil)
		enum.SetTypeParams(e)
		e.Upper = ts.Parameterize(enum, e)
		enum.SetSuperclass(objT)
		enum.SetSuperinterfaces(comparableOf(e), serialT)
		enum.AddMethod(NewMethod("name", pub, strT))
		enum.AddMethod(NewMethod("ordinal", pub, intT))
	}

	throwable := t.classes["java.lang.Throwable"]
	throwable.SetSuperclass(objT)
	throwable.SetSuperinterfaces(serialT)
	throwable.AddMethod(NewMethod("getMessage", pub, strT))
	exception := t.classes["java.lang.Exception"]
	exception.SetSuperclass(ts.Declaration(throwable))
	runtimeEx := t.classes["java.lang.RuntimeException"]
	runtimeEx.SetSuperclass(ts.Declaration(exception))

	runnable := t.classes["java.lang.Runnable"]
	runnable.AddMethod(NewMethod("run", pubAbs, ts.NoType))

	iterator := t.classes["java.util.Iterator"]
	{
		e := ts.NewTypeVar("E", nil)
		iterator.SetTypeParams(e)
		iterator.AddMethod(NewMethod("hasNext", pubAbs, boolT))
		iterator.AddMethod(NewMethod("next", pubAbs, e))
	}

	iterable := t.classes["java.lang.Iterable"]
	{
		tv := ts.NewTypeVar("T", nil)
		iterable.SetTypeParams(tv)
		iterable.AddMethod(NewMethod("iterator", pubAbs, ts.Parameterize(iterator, tv)))
	}

	collection := t.classes["java.util.Collection"]
	{
		e := ts.NewTypeVar("E", nil)
		collection.SetTypeParams(e)
		collection.SetSuperinterfaces(ts.Parameterize(iterable, e))
		collection.AddMethod(NewMethod("size", pubAbs, intT))
		collection.AddMethod(NewMethod("add", pubAbs, boolT, e))
		collection.AddMethod(NewMethod("contains", pubAbs, boolT, objT))
	}

	list := t.classes["java.util.List"]
	{
		e := ts.NewTypeVar("E", nil)
		list.SetTypeParams(e)
		list.SetSuperinterfaces(ts.Parameterize(collection, e))
		list.AddMethod(NewMethod("get", pubAbs, e, intT))
		list.AddMethod(NewMethod("set", pubAbs, e, intT, e))
	}

	absColl := t.classes["java.util.AbstractCollection"]
	{
		e := ts.NewTypeVar("E", nil)
		absColl.SetTypeParams(e)
		absColl.mods |= types.ModAbstract
		absColl.SetSuperclass(objT)
		absColl.SetSuperinterfaces(ts.Parameterize(collection, e))
		absColl.AddMethod(NewMethod("add", pub, boolT, e))
		absColl.AddMethod(NewMethod("contains", pub, boolT, objT))
	}

	absList := t.classes["java.util.AbstractList"]
	{
		e := ts.NewTypeVar("E", nil)
		absList.SetTypeParams(e)
		absList.mods |= types.ModAbstract
		absList.SetSuperclass(ts.Parameterize(absColl, e))
		absList.SetSuperinterfaces(ts.Parameterize(list, e))
	}

	arrayList := t.classes["java.util.ArrayList"]
	{
		e := ts.NewTypeVar("E", nil)
		arrayList.SetTypeParams(e)
		arrayList.SetSuperclass(ts.Parameterize(absList, e))
		arrayList.SetSuperinterfaces(ts.Parameterize(list, e), cloneT, serialT)
		arrayList.AddMethod(NewMethod("size", pub, intT))
		arrayList.AddMethod(NewMethod("get", pub, e, intT))
		arrayList.AddMethod(NewMethod("set", pub, e, intT, e))
	}

	mapSym := t.classes["java.util.Map"]
	{
		k := ts.NewTypeVar("K", nil)
		v := ts.NewTypeVar("V", nil)
		mapSym.SetTypeParams(k, v)
		mapSym.AddMethod(NewMethod("get", pubAbs, v, objT))
		mapSym.AddMethod(NewMethod("put", pubAbs, v, k, v))
	}

	hashMap := t.classes["java.util.HashMap"]
	{
		k := ts.NewTypeVar("K", nil)
		v := ts.NewTypeVar("V", nil)
		hashMap.SetTypeParams(k, v)
		hashMap.SetSuperclass(objT)
		hashMap.SetSuperinterfaces(ts.Parameterize(mapSym, k, v), cloneT, serialT)
	}

	function := t.classes["java.util.function.Function"]
	{
		tv := ts.NewTypeVar("T", nil)
		r := ts.NewTypeVar("R", nil)
		function.SetTypeParams(tv, r)
		function.AddMethod(NewMethod("apply", pubAbs, r, tv))
	}

	supplier := t.classes["java.util.function.Supplier"]
	{
		tv := ts.NewTypeVar("T", nil)
		supplier.SetTypeParams(tv)
		supplier.AddMethod(NewMethod("get", pubAbs, tv))
	}
}
