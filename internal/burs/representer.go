package burs

import "strconv"

// Representer compresses full States into per-argument-slot
// "representers": two full states that agree on every non-terminal
// reachable as the i-th argument of op are interchangeable when building
// op's transition table at slot i, even if they differ on names op never
// asks about. This is variant C's space saving over variant B's dense
// full-state table (spec §4.9). Grounded on
// match_table_rep.py:Representer.
//
// The Open Question of whether a non-terminal produced only via chain
// rules still counts as "reachable at slot i" is resolved yes: projection
// keys on every rule Arg name regardless of whether the rule deriving it
// in a given state was itself a chain rule, matching
// match_table_rep.py's plain dict-subset comparison, which carries no
// chain/operator distinction.
type Representer struct {
	rules    *Rules
	relevant map[slotKey][]string // (op,i) -> distinct arg names at that slot across all rules
	repOf    map[slotKey]map[string]int
	nextRep  map[slotKey]int
}

type slotKey struct {
	op string
	i  int
}

// NewRepresenter precomputes, for every (operator, argument index) pair,
// the set of non-terminal names a rule at that operator ever requires at
// that position.
func NewRepresenter(rs *Rules) *Representer {
	rep := &Representer{
		rules:    rs,
		relevant: map[slotKey][]string{},
		repOf:    map[slotKey]map[string]int{},
		nextRep:  map[slotKey]int{},
	}
	seen := map[slotKey]map[string]bool{}
	for _, r := range rs.List {
		if !r.IsOp() {
			continue
		}
		for i, name := range r.Args {
			k := slotKey{op: r.Op, i: i}
			if seen[k] == nil {
				seen[k] = map[string]bool{}
			}
			if !seen[k][name] {
				seen[k][name] = true
				rep.relevant[k] = append(rep.relevant[k], name)
			}
		}
	}
	return rep
}

// Project returns the representer id for st at (op, i), assigning a new
// id the first time a distinct projection is seen. Grounded on
// Representer.project.
func (rep *Representer) Project(st *State, op string, i int) int {
	k := slotKey{op: op, i: i}
	key := rep.projectionKey(st, k)
	if rep.repOf[k] == nil {
		rep.repOf[k] = map[string]int{}
	}
	if id, ok := rep.repOf[k][key]; ok {
		return id
	}
	id := rep.nextRep[k]
	rep.nextRep[k] = id + 1
	rep.repOf[k][key] = id
	return id
}

func (rep *Representer) projectionKey(st *State, k slotKey) string {
	names := rep.relevant[k]
	b := make([]byte, 0, 16*len(names))
	for _, name := range names {
		r, cost := st.GetMatch(name)
		b = append(b, name...)
		b = append(b, '=')
		if r == nil {
			b = append(b, "x,"...)
			continue
		}
		b = strconv.AppendInt(b, int64(cost), 10)
		b = append(b, ',')
	}
	return string(b)
}

// RepTable is the representer-compressed transition table: for each
// operator, a map from the tuple of per-slot representer ids to the
// result full-state index (still resolved against the same States slice
// variant B builds, since the final cover cost and rule choice must match
// exactly). Grounded on match_table_rep.py:OpTable / compute_transitions.
type RepTable struct {
	Table *Table
	Rep   *Representer
	Trans map[string]map[string]int // op -> rep-combo key -> state index
}

// BuildRepTable builds the full table exactly as variant B does (the
// result states and their costs cannot differ between variants, per the
// spec's cross-variant identity property), then additionally indexes each
// operator's transitions by representer-id combos instead of raw state
// index combos.
func BuildRepTable(rs *Rules) *RepTable {
	tbl := BuildTable(rs)
	rep := NewRepresenter(rs)
	rt := &RepTable{Table: tbl, Rep: rep, Trans: map[string]map[string]int{}}

	for _, op := range rs.Ops() {
		if op.Arity == 0 {
			continue
		}
		cells := map[string]int{}
		for comboKey, stateIdx := range tbl.Trans[op.Name] {
			combo := parseCombo(comboKey)
			repCombo := make([]int, len(combo))
			for i, stIdx := range combo {
				repCombo[i] = rep.Project(tbl.States[stIdx], op.Name, i)
			}
			cells[comboKey2(repCombo)] = stateIdx
		}
		rt.Trans[op.Name] = cells
	}
	return rt
}

func parseCombo(key string) []int {
	if key == "" {
		return nil
	}
	var out []int
	start := 0
	for i := 0; i <= len(key); i++ {
		if i == len(key) || key[i] == ',' {
			v, _ := strconv.Atoi(key[start:i])
			out = append(out, v)
			start = i + 1
		}
	}
	return out
}

func comboKey2(combo []int) string { return comboKey(combo) }

// Transition looks up the result state index for op applied to the
// argument full-state indices argStates, by first projecting each to its
// representer id then consulting the compressed table.
func (rt *RepTable) Transition(op string, argStates []int) (int, bool) {
	repCombo := make([]int, len(argStates))
	for i, stIdx := range argStates {
		repCombo[i] = rt.Rep.Project(rt.Table.States[stIdx], op, i)
	}
	cells := rt.Trans[op]
	if cells == nil {
		return 0, false
	}
	idx, ok := cells[comboKey(repCombo)]
	return idx, ok
}
