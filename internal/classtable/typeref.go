package classtable

import (
	"strings"

	"github.com/breakbot-playground/pmd/internal/symbols"
	"github.com/breakbot-playground/pmd/internal/types"
)

var primitivesByName = map[string]types.PrimitiveKind{
	"boolean": types.Boolean,
	"char":    types.Char,
	"byte":    types.Byte,
	"short":   types.Short,
	"int":     types.Int,
	"long":    types.Long,
	"float":   types.Float,
	"double":  types.Double,
}

// ParseTypeRef parses a Java-syntax type reference: primitives, class
// references with type arguments, wildcards, arrays and "&" intersections.
// Unqualified names resolve against the type parameters in scope, then as
// java.lang, java.util and java.io classes, then verbatim through the table
// (yielding an unresolved symbol for unknown names).
func ParseTypeRef(ref string, scope map[string]*types.TypeVar,
	table *symbols.Table, ts *types.TypeSystem) (types.Type, error) {

	p := &refParser{src: ref, scope: scope, table: table, ts: ts}
	t, err := p.parseIntersection()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, NewBadTypeRefError(ref, p.pos, "trailing input")
	}
	return t, nil
}

type refParser struct {
	src   string
	pos   int
	scope map[string]*types.TypeVar
	table *symbols.Table
	ts    *types.TypeSystem
}

func (p *refParser) fail(msg string) error {
	return NewBadTypeRefError(p.src, p.pos, msg)
}

func (p *refParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *refParser) eat(ch byte) bool {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

func (p *refParser) parseIntersection() (types.Type, error) {
	first, err := p.parseOne()
	if err != nil {
		return nil, err
	}
	var comps []types.Type
	for p.eat('&') {
		next, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		comps = append(comps, next)
	}
	if comps == nil {
		return first, nil
	}
	return p.ts.Intersect(append([]types.Type{first}, comps...)...), nil
}

func (p *refParser) parseOne() (types.Type, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.fail("unexpected end of input")
	}

	if p.src[p.pos] == '?' {
		p.pos++
		return p.parseWildcardTail()
	}

	name := p.parseName()
	if name == "" {
		return nil, p.fail("expected a type name")
	}

	var t types.Type
	if kind, prim := primitivesByName[name]; prim {
		t = p.ts.Primitive(kind)
	} else if tv, inScope := p.scope[name]; inScope {
		t = tv
	} else {
		sym := p.resolveClassName(name)
		args, err := p.parseTypeArgs()
		if err != nil {
			return nil, err
		}
		t = p.ts.Parameterize(sym, args...)
	}
	return p.parseArrayTail(t)
}

// parseWildcardTail parses what follows a consumed '?'.
func (p *refParser) parseWildcardTail() (types.Type, error) {
	p.skipSpace()
	switch {
	case strings.HasPrefix(p.src[p.pos:], "extends "):
		p.pos += len("extends ")
		bound, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		return p.ts.Wildcard(true, bound), nil
	case strings.HasPrefix(p.src[p.pos:], "super "):
		p.pos += len("super ")
		bound, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		return p.ts.Wildcard(false, bound), nil
	default:
		return p.ts.UnboundedWild, nil
	}
}

func (p *refParser) parseTypeArgs() ([]types.Type, error) {
	if !p.eat('<') {
		return nil, nil
	}
	var args []types.Type
	for {
		arg, err := p.parseIntersection()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.eat(',') {
			continue
		}
		if p.eat('>') {
			return args, nil
		}
		return nil, p.fail("expected ',' or '>'")
	}
}

func (p *refParser) parseArrayTail(t types.Type) (types.Type, error) {
	for {
		p.skipSpace()
		if !strings.HasPrefix(p.src[p.pos:], "[]") {
			return t, nil
		}
		p.pos += 2
		t = p.ts.ArrayOf(t)
	}
}

func (p *refParser) parseName() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '.' || c == '$' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *refParser) resolveClassName(name string) types.ClassSymbol {
	if !strings.Contains(name, ".") {
		for _, prefix := range []string{"java.lang.", "java.util.", "java.io."} {
			if sym := p.table.Lookup(prefix + name); sym != nil {
				return sym
			}
		}
	}
	return p.table.Resolve(name)
}
