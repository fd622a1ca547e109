// Package nfa implements Thompson construction: compiling one or more
// tagged regex.Node trees into a single nondeterministic finite automaton
// with a shared start state (spec §4.2).
//
// Grounded on nex/graph/nfa.go's BuildNfa/build switch-over-AST-node shape
// (there switching on regexp/syntax.Regexp.Op; here retargeted to
// internal/regexast), and on
// original_source/frontend/lexer/lexer-simple-py/app/rx2nfa.py's
// Converter.visit_* methods for the exact per-node-kind subgraph shapes.
package nfa

import (
	"burslex/internal/alphabet"
	"burslex/internal/graph"
	"burslex/internal/regexast"
)

// Rule is one tagged regex to compile into the shared NFA. Tag is the
// lexer rule's token name; Priority is its position in the source rule
// file (lower wins ties, spec §4.3's get_final_tag rule).
type Rule struct {
	Regex    regexast.Node
	Tag      string
	Priority int
}

// NFA is a Thompson-constructed automaton: Start is the shared entry node,
// Nodes holds every reachable node in compacted id order, and Final maps a
// node's Accept tag (its index into Nodes) back to the winning rule.
type NFA struct {
	Start *graph.Node
	Nodes []*graph.Node
	// Final maps a node id (graph.Node.Id) to the Rule that accepts there.
	// A node absent from this map is non-accepting.
	Final map[int]Rule
}

// Build compiles rules into one NFA. Every rule's regex subgraph is wired
// with an epsilon edge from the shared start state, the way rx2nfa.py's
// Converter.build connects every rule's tail to one common start vertex.
func Build(a *alphabet.Alphabet, rules []Rule) *NFA {
	b := &builder{alpha: a, gb: &graph.Builder{}, byNode: map[*graph.Node]Rule{}}
	start := b.gb.NewNode()
	for _, r := range rules {
		entry, exit := b.visit(r.Regex)
		graph.AddEps(start, entry)
		b.byNode[exit] = r
	}
	nodes := graph.Compact(start)
	final := map[int]Rule{}
	for _, n := range nodes {
		if r, ok := b.byNode[n]; ok {
			n.Accept = n.Id
			final[n.Id] = r
		}
	}
	return &NFA{Start: start, Nodes: nodes, Final: final}
}

type builder struct {
	alpha  *alphabet.Alphabet
	gb     *graph.Builder
	byNode map[*graph.Node]Rule
}

// visit returns the (entry, exit) node pair for node: entry is where
// matching this subexpression begins, exit is where it ends; callers wire
// entry/exit together via epsilon, symbol, or range edges depending on the
// combinator. Mirrors rx2nfa.py's visit_* return convention, but returns
// direct node pointers instead of ConsNFA's dangling tail indices since Go
// values are already addressable.
func (b *builder) visit(n regexast.Node) (entry, exit *graph.Node) {
	switch n := n.(type) {
	case *regexast.Concat:
		t1, h1 := b.visit(n.Left)
		t2, h2 := b.visit(n.Right)
		graph.AddEps(h1, t2)
		return t1, h2
	case *regexast.Or:
		t1, h1 := b.visit(n.Left)
		t2, h2 := b.visit(n.Right)
		entry = b.gb.NewNode()
		graph.AddEps(entry, t1)
		graph.AddEps(entry, t2)
		exit = b.gb.NewNode()
		graph.AddEps(h1, exit)
		graph.AddEps(h2, exit)
		return entry, exit
	case *regexast.Range:
		entry = b.gb.NewNode()
		exit = b.gb.NewNode()
		if len(n.Chars) == 1 {
			graph.AddSym(entry, exit, n.Chars[0])
			return entry, exit
		}
		lo, hi, ok := contiguousSpan(b.alpha, n.Chars)
		if ok {
			graph.AddRange(entry, exit, lo, hi)
			return entry, exit
		}
		for _, c := range n.Chars {
			graph.AddSym(entry, exit, c)
		}
		return entry, exit
	case *regexast.Star:
		ct, ch := b.visit(n.Child)
		entry = b.gb.NewNode()
		exit = b.gb.NewNode()
		graph.AddEps(entry, ct)
		graph.AddEps(ch, ct)
		graph.AddEps(ch, exit)
		graph.AddEps(entry, exit)
		return entry, exit
	case *regexast.Eps:
		entry = b.gb.NewNode()
		exit = b.gb.NewNode()
		graph.AddEps(entry, exit)
		return entry, exit
	default:
		panic("nfa: unhandled regexast.Node type")
	}
}

// contiguousSpan reports whether chars is exactly the alphabet's
// consecutive-index run lo..hi, letting the NFA use one range edge instead
// of one edge per character (e.g. for `.` or `[a-z]`).
func contiguousSpan(a *alphabet.Alphabet, chars []rune) (lo, hi rune, ok bool) {
	if len(chars) < 2 {
		return 0, 0, false
	}
	idx := make([]int, len(chars))
	for i, c := range chars {
		ci, found := a.IndexOf(c)
		if !found {
			return 0, 0, false
		}
		idx[i] = ci
	}
	min, max := idx[0], idx[0]
	for _, i := range idx {
		if i < min {
			min = i
		}
		if i > max {
			max = i
		}
	}
	if max-min+1 != len(chars) {
		return 0, 0, false
	}
	seen := make([]bool, len(chars))
	for _, i := range idx {
		pos := i - min
		if seen[pos] {
			return 0, 0, false
		}
		seen[pos] = true
	}
	syms := a.Symbols()
	return syms[min], syms[max], true
}
