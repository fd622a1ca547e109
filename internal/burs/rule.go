// Package burs implements the Bottom-Up Rewrite System tree-pattern
// matcher (spec §3/§4.6-§4.10): the cost-annotated rewrite grammar, the
// operator tree it matches against, and the three matcher variants (naive
// per-tree, full state table, representer-compressed table).
//
// Grounded throughout on
// original_source/backend/inst-selec/tree-match-burs-table/app/{rules,
// optree,match_naive,match_table_full,match_table_rep}.py.
package burs

import "fmt"

// MaxCost is the sentinel "unreachable" cost, mirroring match_*.py's
// MAX_COST. Any real rule cover is far cheaper than this, so arithmetic
// that would overflow it in practice (arbitrarily deep trees of
// arbitrarily expensive rules) never matters for spec-sized grammars.
const MaxCost = 100000000

// Rule is one grammar production: LHS -> RHS (cost). A chain rule has RHS
// set (its only requirement is the single referenced non-terminal); an
// operator rule has Op and Args set instead (spec §3 "BURS grammar").
// Grounded on rules.py:Rule.
type Rule struct {
	Index int
	LHS   string
	RHS   string // chain rule target non-terminal; empty for operator rules
	Op    string // operator name; empty for chain rules
	Args  []string
	Cost  int
}

// IsChain reports whether r is a chain (non-terminal) rule.
func (r *Rule) IsChain() bool { return r.Op == "" }

// IsOp reports whether r is an operator rule.
func (r *Rule) IsOp() bool { return r.Op != "" }

func (r *Rule) String() string {
	if r.IsChain() {
		return fmt.Sprintf("#%d: %s -> %s (%d)", r.Index, r.LHS, r.RHS, r.Cost)
	}
	return fmt.Sprintf("#%d: %s -> %s(%v) (%d)", r.Index, r.LHS, r.Op, r.Args, r.Cost)
}

// Rules is an ordered grammar plus the auxiliary-name generator needed to
// desugar nested operator forms (spec §4.6). Grounded on rules.py:Rules.
type Rules struct {
	List    []*Rule
	nextGen int
}

// Add appends r, assigning it the next sequential index.
func (rs *Rules) Add(r *Rule) *Rule {
	r.Index = len(rs.List)
	rs.List = append(rs.List, r)
	return r
}

// GenName returns a fresh auxiliary non-terminal name derived from prefix,
// e.g. "Add_0", "Add_1", ... Grounded on rules.py:Rules.gen_name.
func (rs *Rules) GenName(prefix string) string {
	name := fmt.Sprintf("%s_%d", prefix, rs.nextGen)
	rs.nextGen++
	return name
}

// Ops lists every distinct (operator name, arity) pair referenced by an
// operator rule, in first-seen order. Grounded on
// match_table_full.py:TableBuilder.list_ops.
func (rs *Rules) Ops() []OpArity {
	seen := map[string]bool{}
	var ops []OpArity
	for _, r := range rs.List {
		if r.IsOp() && !seen[r.Op] {
			seen[r.Op] = true
			ops = append(ops, OpArity{Name: r.Op, Arity: len(r.Args)})
		}
	}
	return ops
}

// OpArity names one operator and its fixed arity.
type OpArity struct {
	Name  string
	Arity int
}

// Leaves lists every 0-arity operator name, in Ops order. Grounded on
// match_table_full.py:TableBuilder.list_leaves.
func (rs *Rules) Leaves() []string {
	var leaves []string
	for _, op := range rs.Ops() {
		if op.Arity == 0 {
			leaves = append(leaves, op.Name)
		}
	}
	return leaves
}
