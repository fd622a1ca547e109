// Package dfa implements subset construction (NFA -> DFA) and
// pair-inequivalence minimization (spec §4.3, §4.4).
//
// Subset construction grounded on nex/dfa.go (dfaBuilder.get/nilClose/
// newDFANode) and
// original_source/frontend/lexer/lexer-simple-py/app/nfa2dfa.py
// (Converter.closure/dfa_edge/get_final_tag — lowest-rule-index-wins tie
// break).
package dfa

import (
	"burslex/internal/alphabet"
	"burslex/internal/errs"
	"burslex/internal/graph"
	"burslex/internal/nfa"
)

// DFA is a deterministic automaton over alphabet a: Nodes[0] is always the
// error state (empty NFA-state set, self-looping on every symbol),
// Nodes[1] is always the start state. A node's Accept field holds its own
// Id if the node is accepting, or -1 if it is non-accepting; Tag names the
// winning rule.
type DFA struct {
	Alpha *alphabet.Alphabet
	Start *graph.Node
	Err   *graph.Node
	Nodes []*graph.Node
	// Tag maps an accepting node's id to its winning rule's tag. A node
	// absent here is non-accepting even if some alias set member is final
	// in another DFA (it is not — ids are unique per DFA instance).
	Tag map[int]string
}

type stateSet map[int]bool

func closure(n *nfa.NFA, s stateSet) stateSet {
	out := stateSet{}
	for id := range s {
		out[id] = true
	}
	changed := true
	for changed {
		changed = false
		for id := range out {
			node := n.Nodes[id]
			for _, e := range node.E {
				if e.Kind != graph.KEps {
					continue
				}
				if !out[e.Dst.Id] {
					out[e.Dst.Id] = true
					changed = true
				}
			}
		}
	}
	return out
}

func move(n *nfa.NFA, s stateSet, c rune, a *alphabet.Alphabet) stateSet {
	succ := stateSet{}
	for id := range s {
		node := n.Nodes[id]
		for _, e := range node.E {
			if e.Kind == graph.KEps {
				continue
			}
			if e.Matches(a, c) {
				succ[e.Dst.Id] = true
			}
		}
	}
	return closure(n, succ)
}

func sameSet(a, b stateSet) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// winningTag returns the tag of the lowest-Priority rule with a final NFA
// state in s, or ("", false) if s contains no final state. Mirrors
// nfa2tdfa.py's get_final_tag.
func winningTag(n *nfa.NFA, s stateSet) (string, bool) {
	best := -1
	var tag string
	for id := range s {
		r, ok := n.Final[id]
		if !ok {
			continue
		}
		if best == -1 || r.Priority < best {
			best = r.Priority
			tag = r.Tag
		}
	}
	return tag, best != -1
}

// Build runs subset construction over n.
func Build(a *alphabet.Alphabet, n *nfa.NFA) *DFA {
	gb := &graph.Builder{}
	errNode := gb.NewNode()
	startSet := closure(n, stateSet{n.Start.Id: true})
	startNode := gb.NewNode()

	type entry struct {
		node *graph.Node
		set  stateSet
	}
	states := []entry{{errNode, stateSet{}}, {startNode, startSet}}

	find := func(s stateSet) (*graph.Node, bool) {
		for _, e := range states {
			if sameSet(e.set, s) {
				return e.node, true
			}
		}
		return nil, false
	}

	tag := map[int]string{}
	if t, ok := winningTag(n, startSet); ok {
		startNode.Accept = startNode.Id
		tag[startNode.Id] = t
	}

	for j := 0; j < len(states); j++ {
		src := states[j]
		for _, c := range a.Symbols() {
			dstSet := move(n, src.set, c, a)
			dstNode, ok := find(dstSet)
			if !ok {
				dstNode = gb.NewNode()
				if t, ok := winningTag(n, dstSet); ok {
					dstNode.Accept = dstNode.Id
					tag[dstNode.Id] = t
				}
				states = append(states, entry{dstNode, dstSet})
			}
			if dstNode == errNode {
				graph.AddSym(src.node, errNode, c)
				continue
			}
			graph.AddSym(src.node, dstNode, c)
		}
	}

	// states already holds every distinct subset exactly once, in creation
	// order, with ids assigned sequentially by gb — the same invariant
	// nfa2dfa.py's self.states list keeps. No separate reachability pass
	// is needed; the error state is entry 0 by construction regardless of
	// whether any live transition actually targets it.
	nodes := make([]*graph.Node, len(states))
	for i, e := range states {
		nodes[i] = e.node
	}
	return &DFA{Alpha: a, Start: startNode, Err: errNode, Nodes: nodes, Tag: tag}
}

// Check asserts the data-model invariants spec §4.3 and the original
// dfa.py:check require: every live state has a transition defined for
// every alphabet symbol, the error state only transitions to itself, and
// at least one state is accepting. Supplements dfa.py's assert-based check
// as a real exported method (SPEC_FULL "Supplemented features").
func (d *DFA) Check() error {
	bySymbol := make(map[*graph.Node]map[rune]*graph.Node, len(d.Nodes))
	for _, n := range d.Nodes {
		m := make(map[rune]*graph.Node, len(n.E))
		for _, e := range n.E {
			if e.Kind != graph.KSym {
				return &errs.StructureError{Subject: "dfa", Message: "non-symbol edge in deterministic automaton"}
			}
			if _, dup := m[e.Sym]; dup {
				return &errs.StructureError{Subject: "dfa", Message: "duplicate transition for the same symbol"}
			}
			m[e.Sym] = e.Dst
		}
		bySymbol[n] = m
	}

	anyFinal := false
	for _, n := range d.Nodes {
		if n.Accept >= 0 {
			anyFinal = true
		}
		for _, c := range d.Alpha.Symbols() {
			if _, ok := bySymbol[n][c]; !ok {
				return &errs.StructureError{Subject: "dfa", Message: "state missing a transition for an alphabet symbol"}
			}
		}
	}
	if !anyFinal {
		return &errs.StructureError{Subject: "dfa", Message: "no accepting state"}
	}
	for c, dst := range bySymbol[d.Err] {
		if dst != d.Err {
			return &errs.StructureError{Subject: "dfa", Message: "error state must only transition to itself, symbol " + string(c)}
		}
	}
	return nil
}
