// Package lexrules parses the lexer rule file format (spec §6: one
// "<regex> => <tag>" rule per line, tag priority given by file order) and
// compiles it down to a minimized DFA.
//
// Grounded on
// original_source/frontend/lexer/lexer-simple-py/app/rules.py
// (Rules.__init__'s line-split-on-"=>" loop).
package lexrules

import (
	"strings"

	"burslex/internal/alphabet"
	"burslex/internal/dfa"
	"burslex/internal/errs"
	"burslex/internal/nfa"
	"burslex/internal/regexast"
)

// Rule is one parsed, not-yet-compiled rule-file line.
type Rule struct {
	RegexSrc string
	Tag      string
	Line     int
}

// Parse splits src into rules. Blank lines are ignored; every non-blank
// line must contain exactly one "=>" separator.
func Parse(src string) ([]Rule, error) {
	var rules []Rule
	for i, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		parts := strings.SplitN(trimmed, "=>", 2)
		if len(parts) != 2 {
			return nil, &errs.SyntaxError{
				Pos:     errs.Pos{Line: i + 1, Col: 1},
				Message: "expected '<regex> => <tag>'",
			}
		}
		tag := strings.TrimSpace(parts[1])
		if tag == "" {
			return nil, &errs.SyntaxError{
				Pos:     errs.Pos{Line: i + 1, Col: len(parts[0]) + 3},
				Message: "empty tag",
			}
		}
		rules = append(rules, Rule{
			RegexSrc: strings.TrimSpace(parts[0]),
			Tag:      tag,
			Line:     i + 1,
		})
	}
	if len(rules) == 0 {
		return nil, &errs.StructureError{Subject: "lexer rules", Message: "no rules defined"}
	}
	return rules, nil
}

// Compile parses every rule's regex against a and runs the full
// Regex -> NFA -> DFA -> minimized-DFA pipeline (spec's component
// dependency order), tagging each compiled rule with its file-order
// priority so DFA construction's lowest-priority-wins tie break matches
// the rule file's declared order.
func Compile(a *alphabet.Alphabet, rules []Rule) (*dfa.DFA, error) {
	nfaRules := make([]nfa.Rule, len(rules))
	for i, r := range rules {
		re, err := regexast.Parse(a, r.RegexSrc)
		if err != nil {
			return nil, err
		}
		nfaRules[i] = nfa.Rule{Regex: re, Tag: r.Tag, Priority: i}
	}
	n := nfa.Build(a, nfaRules)
	d := dfa.Build(a, n)
	if err := d.Check(); err != nil {
		return nil, err
	}
	m := dfa.Minimize(d)
	if err := m.Check(); err != nil {
		return nil, err
	}
	return m, nil
}
