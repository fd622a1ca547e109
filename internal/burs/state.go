package burs

import "sort"

// ruleCost pairs a winning rule with the minimum cost of matching its LHS.
type ruleCost struct {
	rule *Rule
	cost int
}

// State is a full BURS state (spec §3): for every non-terminal reachable
// at a tree node (or table-construction state), the single cheapest rule
// that derives it and that rule's cost. Grounded on
// match_table_full.py:State.
type State struct {
	Idx int
	rc  map[string]ruleCost
}

// NewState returns an empty state.
func NewState(idx int) *State {
	return &State{Idx: idx, rc: map[string]ruleCost{}}
}

// AddRule records that r derives r.LHS at cost, replacing any existing
// entry only if cost strictly improves on it. Returns whether the state
// changed. Grounded on State.add_rule's strict "<=" rejection (i.e. ties
// keep the first-seen rule).
func (s *State) AddRule(r *Rule, cost int) bool {
	cur, ok := s.rc[r.LHS]
	if ok && cur.cost <= cost {
		return false
	}
	s.rc[r.LHS] = ruleCost{rule: r, cost: cost}
	return true
}

// GetMatch returns the winning rule for name and its cost, or (nil,
// MaxCost) if name is unreachable in this state.
func (s *State) GetMatch(name string) (*Rule, int) {
	rc, ok := s.rc[name]
	if !ok {
		return nil, MaxCost
	}
	return rc.rule, rc.cost
}

// Normalize subtracts the minimum cost present in the state from every
// entry, the mechanism that bounds the number of distinct reachable
// states to a finite set (spec §3 invariant, §9 Design Notes). Grounded on
// State.normalize.
func (s *State) Normalize() {
	delta := MaxCost
	for _, rc := range s.rc {
		if rc.cost < delta {
			delta = rc.cost
		}
	}
	if delta == 0 || delta == MaxCost {
		return
	}
	for name, rc := range s.rc {
		s.rc[name] = ruleCost{rule: rc.rule, cost: rc.cost - delta}
	}
}

// IsSameAs reports structural equality: same non-terminals, same winning
// rule and cost for each. Grounded on State.is_same_than.
func (s *State) IsSameAs(other *State) bool {
	if len(s.rc) != len(other.rc) {
		return false
	}
	for name, rc := range s.rc {
		orc, ok := other.rc[name]
		if !ok || orc.rule != rc.rule || orc.cost != rc.cost {
			return false
		}
	}
	return true
}

// Names returns every non-terminal this state reaches, for deterministic
// dumps.
func (s *State) Names() []string {
	names := make([]string, 0, len(s.rc))
	for name := range s.rc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
