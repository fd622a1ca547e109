package dfa

// Minimize implements the pair-inequivalence algorithm (spec §4.4),
// grounded on
// original_source/frontend/lexer/lexer-simple-py/app/dfamin.py:
// DFAMinimizer.find_pairs/find_equiv/simplify/replace_with. The inequivalence
// graph and its connected-component grouping are expressed with a
// union-find over plain indices instead of dfamin.py's ad hoc Graph/
// Connected helper classes, since DFA minimization's equivalence classes
// are exactly the union-find partition once the inequivalence fixpoint is
// reached.
//
// Two accepting states start out inequivalent when they carry different
// rule tags, so merging never changes which tag a token receives; within a
// class the representative is the lowest original index.
import (
	"burslex/internal/graph"
)

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// Minimize returns a new, minimized DFA equivalent to d.
func Minimize(d *DFA) *DFA {
	n := len(d.Nodes)
	idOf := make(map[*graph.Node]int, n)
	for i, nd := range d.Nodes {
		idOf[nd] = i
	}
	startIdx, errIdx := idOf[d.Start], idOf[d.Err]

	trans := make([]map[rune]int, n)
	for i, nd := range d.Nodes {
		m := make(map[rune]int, len(nd.E))
		for _, e := range nd.E {
			m[e.Sym] = idOf[e.Dst]
		}
		trans[i] = m
	}
	isFinal := func(i int) bool { return d.Nodes[i].Accept >= 0 }
	tagOf := func(i int) string { return d.Tag[d.Nodes[i].Id] }

	ineq := make([][]bool, n)
	for i := range ineq {
		ineq[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if isFinal(i) != isFinal(j) || tagOf(i) != tagOf(j) {
				ineq[i][j] = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if ineq[i][j] {
					continue
				}
				for _, c := range d.Alpha.Symbols() {
					pi, pj := trans[i][c], trans[j][c]
					if ineq[pi][pj] {
						ineq[i][j], ineq[j][i] = true, true
						changed = true
						break
					}
				}
			}
		}
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !ineq[i][j] {
				uf.union(i, j)
			}
		}
	}

	classMin := make(map[int]int)
	for i := 0; i < n; i++ {
		r := uf.find(i)
		if min, ok := classMin[r]; !ok || i < min {
			classMin[r] = i
		}
	}
	repOf := make([]int, n)
	for i := 0; i < n; i++ {
		repOf[i] = classMin[uf.find(i)]
	}

	var repOrder []int
	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		r := repOf[i]
		if !seen[r] {
			seen[r] = true
			repOrder = append(repOrder, r)
		}
	}

	gb := &graph.Builder{}
	newNode := make(map[int]*graph.Node, len(repOrder))
	tag := make(map[int]string)
	for _, r := range repOrder {
		nn := gb.NewNode()
		newNode[r] = nn
		if isFinal(r) {
			nn.Accept = nn.Id
			if t, ok := d.Tag[d.Nodes[r].Id]; ok {
				tag[nn.Id] = t
			}
		}
	}
	for _, r := range repOrder {
		src := newNode[r]
		for _, c := range d.Alpha.Symbols() {
			dstRep := repOf[trans[r][c]]
			graph.AddSym(src, newNode[dstRep], c)
		}
	}

	nodes := make([]*graph.Node, len(repOrder))
	for i, r := range repOrder {
		nodes[i] = newNode[r]
	}

	return &DFA{
		Alpha: d.Alpha,
		Start: newNode[repOf[startIdx]],
		Err:   newNode[repOf[errIdx]],
		Nodes: nodes,
		Tag:   tag,
	}
}
