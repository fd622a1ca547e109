// Package bursgrammar parses the BURS grammar file format (spec §4.6,
// §6 "Grammar file (BURS)") with participle, then desugars nested
// operator forms into the flat *burs.Rules model, mirroring
// rules.py's parse_rhs/gen_name. Grounded on
// original_source/backend/inst-selec/tree-match-burs-table/app/rules.py.
package bursgrammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"burslex/internal/burs"
	"burslex/internal/errs"
)

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[;(),]`},
})

// file is the raw participle parse tree for a grammar file: one line per
// rule, `LHS ; RHS ; cost`.
type file struct {
	Lines []*ruleLine `parser:"@@*"`
}

type ruleLine struct {
	LHS  string `parser:"@Ident \";\""`
	RHS  *rhs   `parser:"@@ \";\""`
	Cost int    `parser:"@Int"`
}

// rhs is either a bare non-terminal reference (Args nil) or an operator
// form op(arg1, ..., argk) whose arguments recursively nest (spec §4.6).
type rhs struct {
	Name string `parser:"@Ident"`
	Args []*rhs `parser:"( \"(\" (@@ (\",\" @@)*)? \")\" )?"`
}

var grammarParser = participle.MustBuild[file](
	participle.Lexer(grammarLexer),
	participle.Elide("whitespace", "Comment"),
)

// Parse reads a grammar file's text and returns the fully desugared rule
// set ready for burs.BuildTable/NewNaiveMatcher/BuildRepTable.
func Parse(src string) (*burs.Rules, error) {
	f, err := grammarParser.ParseString("", src)
	if err != nil {
		return nil, &errs.SyntaxError{Message: errs.WrapMessage(err, "grammar file")}
	}

	rs := &burs.Rules{}
	for _, line := range f.Lines {
		if err := addLine(rs, line); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// addLine installs one grammar-file line as a burs.Rule, desugaring any
// nested operator forms in its RHS into auxiliary operator rules whose LHS
// is auto-generated from the original line's LHS (rules.py's gen_name
// always prefixes with the outermost rule's LHS, not the nearest
// enclosing auxiliary name, even several levels deep).
func addLine(rs *burs.Rules, line *ruleLine) error {
	if isChainForm(line.RHS) {
		if len(line.RHS.Args) > 0 {
			return &errs.StructureError{Subject: line.LHS, Message: "chain rule target " + line.RHS.Name + " cannot take arguments"}
		}
		rs.Add(&burs.Rule{LHS: line.LHS, RHS: line.RHS.Name, Cost: line.Cost})
		return nil
	}

	args, err := resolveArgs(rs, line.LHS, line.RHS.Args)
	if err != nil {
		return err
	}
	rs.Add(&burs.Rule{LHS: line.LHS, Op: line.RHS.Name, Args: args, Cost: line.Cost})
	return nil
}

// isChainForm reports whether node names a chain rule's target: an RHS
// starting with a lowercase letter is a non-terminal reference, otherwise
// it is an operator form (spec §4.6), regardless of whether it carries
// an explicit, possibly empty, argument list.
func isChainForm(node *rhs) bool {
	return len(node.Name) > 0 && node.Name[0] >= 'a' && node.Name[0] <= 'z'
}

// resolveArgs resolves each operator-form argument to a non-terminal
// name: a bare reference is used directly; a nested operator form is
// desugared into a fresh auxiliary rule (cost 0) named via
// Rules.GenName(outerLHS), whose name is then used in its parent's
// argument list. Grounded on rules.py:parse_rhs.
func resolveArgs(rs *burs.Rules, outerLHS string, args []*rhs) ([]string, error) {
	names := make([]string, len(args))
	for i, a := range args {
		if isChainForm(a) {
			names[i] = a.Name
			continue
		}
		auxName := rs.GenName(outerLHS)
		nestedArgs, err := resolveArgs(rs, outerLHS, a.Args)
		if err != nil {
			return nil, err
		}
		rs.Add(&burs.Rule{LHS: auxName, Op: a.Name, Args: nestedArgs, Cost: 0})
		names[i] = auxName
	}
	return names, nil
}
