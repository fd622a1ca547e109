package burs

import "strconv"

// Table is the full BURS state table (spec §4.8, variant B): every
// distinct normalized State reachable during bottom-up construction, plus
// a transition function from argument state indices to a result state
// index for every operator. Grounded on match_table_full.py:TableBuilder,
// generalized from its arity-1/arity-2 dense-array special cases
// (build_ttrans_1/build_ttrans_2) to a map keyed by the combo's index
// tuple so the table still grows correctly as new states are discovered
// mid-construction, without re-allocating a new N-dimensional array on
// every pass.
type Table struct {
	Rules     *Rules
	States    []*State       // index == State.Idx
	LeafState map[string]int // leaf operator name -> state index
	Trans     map[string]map[string]int
	arity     map[string]int
}

// BuildTable constructs the full table for rs by saturating leaf states
// first, then repeatedly extending the table with every operator applied
// to every already-known combination of argument states, until no new
// state is discovered. Grounded on TableBuilder.build.
func BuildTable(rs *Rules) *Table {
	tb := &Table{
		Rules:     rs,
		LeafState: map[string]int{},
		Trans:     map[string]map[string]int{},
		arity:     map[string]int{},
	}
	for _, op := range rs.Ops() {
		tb.arity[op.Name] = op.Arity
	}

	byOp := map[string][]*Rule{}
	byChain := map[string][]*Rule{}
	for _, r := range rs.List {
		if r.IsOp() {
			byOp[r.Op] = append(byOp[r.Op], r)
		} else {
			byChain[r.RHS] = append(byChain[r.RHS], r)
		}
	}

	tb.computeLeafStates(byOp, byChain)
	tb.saturate(byOp, byChain)
	return tb
}

// computeLeafStates builds the State for every 0-arity operator (spec's
// "Reg"/"Int" implicit leaves, plus any 0-arity user operator), applying
// chain-rule closure, normalizing, and uniquing each against States.
// Grounded on TableBuilder.compute_leaf_states.
func (tb *Table) computeLeafStates(byOp, byChain map[string][]*Rule) {
	for _, name := range tb.Rules.Leaves() {
		st := NewState(-1)
		for _, r := range byOp[name] {
			st.AddRule(r, r.Cost)
		}
		closeChains(st, byChain)
		st.Normalize()
		tb.LeafState[name] = tb.addUniqueState(st)
	}
}

// saturate extends Trans with every operator applied to every combination
// of argument state indices currently in States, adding newly discovered
// result states, until a full pass adds nothing new. Grounded on
// TableBuilder.update / update_op_from_states (both argument orderings
// for arity 2 fall out here as distinct combos, e.g. (i,j) and (j,i)).
func (tb *Table) saturate(byOp, byChain map[string][]*Rule) {
	for {
		sizeBefore := len(tb.States)
		for _, op := range tb.Rules.Ops() {
			if op.Arity == 0 {
				continue
			}
			tb.updateOp(op, byOp[op.Name], byChain)
		}
		if len(tb.States) == sizeBefore {
			return
		}
	}
}

// updateOp fills in every missing cell of op's transition table over the
// current cross product of known argument states.
func (tb *Table) updateOp(op OpArity, rules []*Rule, byChain map[string][]*Rule) {
	n := len(tb.States)
	dims := make([]int, op.Arity)
	for i := range dims {
		dims[i] = n
	}
	cells := tb.Trans[op.Name]
	if cells == nil {
		cells = map[string]int{}
		tb.Trans[op.Name] = cells
	}

	for _, combo := range cartesian(dims) {
		key := comboKey(combo)
		if _, ok := cells[key]; ok {
			continue
		}
		st := NewState(-1)
		for _, r := range rules {
			cost := r.Cost
			ok := true
			for i, argName := range r.Args {
				_, c := tb.States[combo[i]].GetMatch(argName)
				if c >= MaxCost {
					ok = false
					break
				}
				cost += c
			}
			if ok {
				st.AddRule(r, cost)
			}
		}
		closeChains(st, byChain)
		st.Normalize()
		cells[key] = tb.addUniqueState(st)
	}
}

// Transition looks up the result state index for op applied to argStates,
// the table's central query during TableMatcher.MatchTree (spec §4.8's
// O(1) per-node lookup once the table is built).
func (tb *Table) Transition(op string, argStates []int) (int, bool) {
	cells := tb.Trans[op]
	if cells == nil {
		return 0, false
	}
	idx, ok := cells[comboKey(argStates)]
	return idx, ok
}

// addUniqueState returns the index of an existing structurally-equal
// state, or appends st as a new one. Grounded on
// TableBuilder.add_unique_state.
func (tb *Table) addUniqueState(st *State) int {
	for i, existing := range tb.States {
		if existing.IsSameAs(st) {
			return i
		}
	}
	st.Idx = len(tb.States)
	tb.States = append(tb.States, st)
	return st.Idx
}

// closeChains repeatedly applies chain rules until no entry improves,
// shared by leaf-state and operator-state construction.
func closeChains(st *State, byChain map[string][]*Rule) {
	for {
		changed := false
		for rhs, rules := range byChain {
			_, rhsCost := st.GetMatch(rhs)
			if rhsCost >= MaxCost {
				continue
			}
			for _, r := range rules {
				if st.AddRule(r, rhsCost+r.Cost) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// cartesian enumerates every index tuple under dims, row-major (last
// dimension varies fastest).
func cartesian(dims []int) [][]int {
	if len(dims) == 0 {
		return [][]int{{}}
	}
	var out [][]int
	var rec func(prefix []int, i int)
	rec = func(prefix []int, i int) {
		if i == len(dims) {
			tuple := make([]int, len(prefix))
			copy(tuple, prefix)
			out = append(out, tuple)
			return
		}
		for v := 0; v < dims[i]; v++ {
			rec(append(prefix, v), i+1)
		}
	}
	rec(nil, 0)
	return out
}

func comboKey(combo []int) string {
	b := make([]byte, 0, len(combo)*4)
	for i, c := range combo {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(c), 10)
	}
	return string(b)
}
