// Package graph implements the small directed-graph structure shared by
// internal/nfa and internal/dfa: nodes with typed out-edges (epsilon,
// symbol, or range) plus a DOT exporter for the diagnostic visualization
// contract (spec §6 "Visualization contract").
//
// Grounded on nex/graph/graph.go, generalized from that package's Unicode
// rune edges to the module's finite alphabet.Alphabet symbols.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"burslex/internal/alphabet"
)

// Edge kinds.
const (
	KEps   = iota // epsilon / nil transition, no symbol consumed
	KSym          // single-symbol transition
	KRange        // transition on any symbol within a Lo..Hi alphabet-index span
)

// Edge is a single out-transition of a Node.
type Edge struct {
	Kind int
	Dst  *Node
	Sym  rune // valid when Kind == KSym
	Lo   rune // valid when Kind == KRange (inclusive, alphabet order)
	Hi   rune // valid when Kind == KRange (inclusive, alphabet order)
}

// Matches reports whether c triggers this edge, given the alphabet used to
// resolve range order.
func (e *Edge) Matches(a *alphabet.Alphabet, c rune) bool {
	switch e.Kind {
	case KSym:
		return e.Sym == c
	case KRange:
		ci, ok := a.IndexOf(c)
		if !ok {
			return false
		}
		lo, _ := a.IndexOf(e.Lo)
		hi, _ := a.IndexOf(e.Hi)
		return lo <= ci && ci <= hi
	default:
		return false
	}
}

// Node is a single automaton state: a list of out-edges, a stable id
// scoped to the graph it belongs to, an accept tag (-1 means non-accepting,
// matching nex's Node.Accept convention), and an optional set of
// source-graph node ids it was built from (internal/dfa's subset
// construction does not fill it).
type Node struct {
	E      []*Edge
	Id     int
	Accept int
	Set    []int
}

// Builder assigns sequential ids to newly created nodes within one graph.
type Builder struct {
	nextID int
}

// NewNode allocates a fresh, non-accepting node.
func (b *Builder) NewNode() *Node {
	n := &Node{Id: b.nextID, Accept: -1}
	b.nextID++
	return n
}

func newEdge(u, v *Node, kind int) *Edge {
	e := &Edge{Kind: kind, Dst: v}
	u.E = append(u.E, e)
	return e
}

// AddEps adds an epsilon edge u -> v.
func AddEps(u, v *Node) *Edge {
	return newEdge(u, v, KEps)
}

// AddSym adds a single-symbol edge u -> v.
func AddSym(u, v *Node, sym rune) *Edge {
	e := newEdge(u, v, KSym)
	e.Sym = sym
	return e
}

// AddRange adds a range edge u -> v, over alphabet symbols lo..hi inclusive.
func AddRange(u, v *Node, lo, hi rune) *Edge {
	e := newEdge(u, v, KRange)
	e.Lo, e.Hi = lo, hi
	return e
}

// Compact performs a BFS from start, renumbers every reachable node 0..n-1
// in visit order, and returns them. Grounded on nex/graph/graph.go's
// compactGraph — used after construction passes that leave gaps or stale
// ids (e.g. internal/nfa's Build after Thompson construction).
func Compact(start *Node) []*Node {
	visited := map[*Node]bool{start: true}
	nodes := []*Node{start}
	for pos := 0; pos < len(nodes); pos++ {
		n := nodes[pos]
		for _, e := range n.E {
			if !visited[e.Dst] {
				visited[e.Dst] = true
				nodes = append(nodes, e.Dst)
			}
		}
	}
	for i, n := range nodes {
		n.Id = i
	}
	return nodes
}

// WriteDot renders the graph reachable from start as a DOT digraph under
// the given id, the way nex/graph/graph.go:WriteDotGraph does, using a to
// label range/symbol edges with alphabet.RangeRepr-style text instead of
// raw Unicode code points.
func WriteDot(a *alphabet.Alphabet, start *Node, id string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n  rankdir=LR;\n", id)
	done := make(map[*Node]bool)
	var show func(u *Node)
	show = func(u *Node) {
		if done[u] {
			return
		}
		done[u] = true
		shape := "circle"
		if u.Accept >= 0 {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %d[shape=%s];\n", u.Id, shape)
		edges := append([]*Edge(nil), u.E...)
		sort.SliceStable(edges, func(i, j int) bool { return edges[i].Dst.Id < edges[j].Dst.Id })
		for _, e := range edges {
			label := edgeLabel(a, e)
			fmt.Fprintf(&b, "  %d -> %d[label=%q];\n", u.Id, e.Dst.Id, label)
		}
		for _, e := range u.E {
			show(e.Dst)
		}
	}
	show(start)
	b.WriteString("}\n")
	return []byte(b.String())
}

func edgeLabel(a *alphabet.Alphabet, e *Edge) string {
	switch e.Kind {
	case KEps:
		return "eps"
	case KSym:
		return a.RangeRepr([]rune{e.Sym})
	case KRange:
		rng, err := a.Range(e.Lo, e.Hi)
		if err != nil {
			return fmt.Sprintf("%c-%c", e.Lo, e.Hi)
		}
		return a.RangeRepr(rng)
	default:
		return ""
	}
}
