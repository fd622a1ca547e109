package burs

import "burslex/internal/errs"

// StateLookup resolves the State covering an OpNode, abstracting over the
// three matcher variants so Apply works unchanged against any of them
// (spec's cross-variant "apply produces an identical before/after
// sequence" property).
type StateLookup func(n *OpNode) *State

// Event distinguishes the two hooks Apply fires around each matched rule.
type Event int

const (
	// Before fires as soon as a rule is chosen for a node, outermost
	// (goal-level) rule first, before any operand is visited.
	Before Event = iota
	// After fires once a rule's operands (or, for a chain rule, its
	// unwound target) have been fully visited, in the reverse order
	// Before fired.
	After
)

// Emit receives one event per matched rule application, identified by the
// tree node it applies at and the goal non-terminal it was chosen for.
type Emit func(event Event, n *OpNode, r *Rule, goal string)

// Apply walks the cover of t starting at its root node ("@") with the
// caller-supplied goal non-terminal, emitting Before then, after
// visiting operands (or unwinding a chain rule), After — exactly the
// order described by the "Look up best(rule_name)... emit before(node,
// rule) ... emit after(node, rule) in reverse order" walk. Grounded on
// apply_rec in both match_naive.py and match_table_full.py.
func Apply(t *OpTree, lookup StateLookup, goal string, emit Emit) error {
	return applyRec(t.Root, lookup, goal, emit)
}

func applyRec(n *OpNode, lookup StateLookup, goal string, emit Emit) error {
	st := lookup(n)
	r, cost := st.GetMatch(goal)
	if cost >= MaxCost {
		return &errs.MatchError{NodeID: n.Index, Goal: goal}
	}

	emit(Before, n, r, goal)

	if r.IsChain() {
		if err := applyRec(n, lookup, r.RHS, emit); err != nil {
			return err
		}
		emit(After, n, r, goal)
		return nil
	}

	for i, argName := range r.Args {
		if err := applyRec(n.Succs[i], lookup, argName, emit); err != nil {
			return err
		}
	}
	emit(After, n, r, goal)
	return nil
}
