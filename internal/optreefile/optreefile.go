// Package optreefile parses the operator-tree file format (spec §6
// "Operator-tree file") with participle: one node definition per line,
// `name = op arg1 arg2 …`, building a *burs.OpTree. Grounded on
// original_source/backend/inst-selec/tree-match-burs-table/app/optree.py's
// parse_op/parse_file, and on ritamzico/pgraph's internal/dsl/grammar.go
// for the lexer.MustSimple + participle.MustBuild[T] shape.
package optreefile

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"burslex/internal/burs"
	"burslex/internal/errs"
)

var treeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `[ \t\r]+`},
	{Name: "Newline", Pattern: `\n`},
	{Name: "Ident", Pattern: `[A-Za-z_@][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Eq", Pattern: `=`},
})

// file is every non-blank line of an operator-tree file, in order.
type file struct {
	Defs []*nodeDef `parser:"(Newline* @@)* Newline*"`
}

// nodeDef is one `name = op arg1 arg2 …` line; each arg is either an
// identifier (a previously-defined or implicitly-leaf node name) or a
// bare integer literal (an implicit Int leaf).
type nodeDef struct {
	Name string `parser:"@Ident \"=\""`
	Op   string `parser:"@Ident"`
	Args []*arg `parser:"@@*"`
}

type arg struct {
	Name string `parser:"  @Ident"`
	Int  string `parser:"| @Int"`
}

func (a *arg) text() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Int
}

var treeParser = participle.MustBuild[file](
	participle.Lexer(treeLexer),
	participle.Elide("whitespace"),
)

// Parse reads src, defining one OpTree node per line, and returns the
// finished tree (Finish already called, so the root is resolved and
// every other node is known to have exactly one predecessor).
func Parse(src string) (*burs.OpTree, error) {
	f, err := treeParser.ParseString("", src)
	if err != nil {
		return nil, &errs.SyntaxError{Message: errs.WrapMessage(err, "operator-tree file")}
	}

	t := burs.NewOpTree()
	for _, def := range f.Defs {
		args := make([]string, len(def.Args))
		for i, a := range def.Args {
			args[i] = a.text()
		}
		t.Add(def.Name, def.Op, args)
	}

	if err := t.Finish(); err != nil {
		return nil, err
	}
	return t, nil
}
