// Command jtype is a development inspector for the type algebra: it loads a
// classtable document and answers algebra queries against it.
//
// Usage:
//
//	jtype -t table.yaml subtype <T> <S> [unchecked]
//	jtype -t table.yaml same <T> <S>
//	jtype -t table.yaml contains <S> <T>
//	jtype -t table.yaml super <T>
//	jtype -t table.yaml assuper <T> <binary-name>
//	jtype -t table.yaml erase <T>
//	jtype -t table.yaml project up|down <T>
//	jtype -t table.yaml sam <T>
//	jtype -t table.yaml capture <T>
//
// Without -t only the built-in java.lang/java.util prelude is available.
// Type arguments use Java source syntax, e.g. 'java.util.List<? extends
// java.lang.Number>'.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/breakbot-playground/pmd/internal/classtable"
	"github.com/breakbot-playground/pmd/internal/symbols"
	"github.com/breakbot-playground/pmd/internal/types"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

type inspector struct {
	table *symbols.Table
	ts    *types.TypeSystem
	color bool
}

func main() {
	args := os.Args[1:]

	var tablePath string
	if len(args) >= 2 && (args[0] == "-t" || args[0] == "--table") {
		tablePath = args[1]
		args = args[2:]
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ins := &inspector{color: isatty.IsTerminal(os.Stdout.Fd())}
	if tablePath != "" {
		cfg, err := classtable.LoadFile(tablePath)
		if err != nil {
			fatal(err)
		}
		table, ts, err := cfg.Build()
		if err != nil {
			fatal(err)
		}
		ins.table, ins.ts = table, ts
	} else {
		ins.table, ins.ts = symbols.NewUniverse()
	}

	if err := ins.run(args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jtype [-t table.yaml] <subtype|same|contains|super|assuper|erase|project|sam|capture> args...")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "jtype:", err)
	os.Exit(1)
}

func (ins *inspector) parse(ref string) (types.Type, error) {
	return classtable.ParseTypeRef(ref, nil, ins.table, ins.ts)
}

func (ins *inspector) verdict(ok bool) string {
	if ins.color {
		if ok {
			return ansiGreen + "true" + ansiReset
		}
		return ansiRed + "false" + ansiReset
	}
	return fmt.Sprintf("%v", ok)
}

func (ins *inspector) run(cmd string, args []string) error {
	switch cmd {
	case "subtype":
		if len(args) < 2 {
			return fmt.Errorf("subtype wants <T> <S> [unchecked]")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		s, err := ins.parse(args[1])
		if err != nil {
			return err
		}
		unchecked := len(args) > 2 && args[2] == "unchecked"
		fmt.Println(ins.verdict(ins.ts.IsSubtype(t, s, unchecked)))

	case "same":
		if len(args) != 2 {
			return fmt.Errorf("same wants <T> <S>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		s, err := ins.parse(args[1])
		if err != nil {
			return err
		}
		fmt.Println(ins.verdict(types.IsSameType(t, s)))

	case "contains":
		if len(args) != 2 {
			return fmt.Errorf("contains wants <S> <T>")
		}
		s, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		t, err := ins.parse(args[1])
		if err != nil {
			return err
		}
		fmt.Println(ins.verdict(ins.ts.TypeArgContains(s, t)))

	case "super":
		if len(args) != 1 {
			return fmt.Errorf("super wants <T>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		for _, s := range ins.ts.SuperTypeSet(t) {
			fmt.Println(s)
		}

	case "assuper":
		if len(args) != 2 {
			return fmt.Errorf("assuper wants <T> <binary-name>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		sym := ins.table.Resolve(args[1])
		if r := ins.ts.AsSuper(t, sym); r != nil {
			fmt.Println(r)
		} else {
			fmt.Println("<none>")
		}

	case "erase":
		if len(args) != 1 {
			return fmt.Errorf("erase wants <T>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(types.Erasure(t))

	case "project":
		if len(args) != 2 || (args[0] != "up" && args[0] != "down") {
			return fmt.Errorf("project wants up|down <T>")
		}
		t, err := ins.parse(args[1])
		if err != nil {
			return err
		}
		var r types.Type
		if args[0] == "up" {
			r = ins.ts.ProjectUpwards(t)
		} else {
			r = ins.ts.ProjectDownwards(t)
		}
		if r == nil {
			fmt.Println("<no down projection>")
		} else {
			fmt.Println(r)
		}

	case "sam":
		if len(args) != 1 {
			return fmt.Errorf("sam wants <T>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		if fn := ins.ts.FindFunctionalInterfaceMethod(t); fn != nil {
			fmt.Println(fn)
		} else {
			fmt.Println("<not a functional interface>")
		}

	case "capture":
		if len(args) != 1 {
			return fmt.Errorf("capture wants <T>")
		}
		t, err := ins.parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ins.ts.Capture(t))

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
