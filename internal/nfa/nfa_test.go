package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burslex/internal/alphabet"
	"burslex/internal/graph"
	"burslex/internal/regexast"
)

func TestBuildSharesStartAcrossRules(t *testing.T) {
	a := alphabet.New()
	r1, err := regexast.Parse(a, "a")
	require.NoError(t, err)
	r2, err := regexast.Parse(a, "b")
	require.NoError(t, err)

	n := Build(a, []Rule{
		{Regex: r1, Tag: "A", Priority: 0},
		{Regex: r2, Tag: "B", Priority: 1},
	})

	assert.Equal(t, 2, len(n.Start.E), "start must fan out to both rule subgraphs via epsilon")
	for _, e := range n.Start.E {
		assert.Equal(t, 0, e.Kind, "fan-out edges from start must be epsilon")
	}
	assert.Len(t, n.Final, 2)
}

func TestBuildStarLoopsBack(t *testing.T) {
	a := alphabet.New()
	r, err := regexast.Parse(a, "a*")
	require.NoError(t, err)
	n := Build(a, []Rule{{Regex: r, Tag: "AS", Priority: 0}})
	// Reachability must include a state from which consuming 'a' returns to
	// a state that can also reach the same final node, and the start must
	// reach a final node via epsilon only (zero-or-more).
	assert.NotEmpty(t, n.Final)

	epsClosure := func(from *graph.Node) map[*graph.Node]bool {
		seen := map[*graph.Node]bool{from: true}
		work := []*graph.Node{from}
		for len(work) > 0 {
			u := work[len(work)-1]
			work = work[:len(work)-1]
			for _, e := range u.E {
				if e.Kind == graph.KEps && !seen[e.Dst] {
					seen[e.Dst] = true
					work = append(work, e.Dst)
				}
			}
		}
		return seen
	}
	reachesFinal := func(set map[*graph.Node]bool) bool {
		for nd := range set {
			if _, ok := n.Final[nd.Id]; ok {
				return true
			}
		}
		return false
	}

	startSet := epsClosure(n.Start)
	assert.True(t, reachesFinal(startSet), "start must reach a final node via epsilon only")
	looped := false
	for src := range startSet {
		for _, e := range src.E {
			if e.Kind == graph.KSym && e.Sym == 'a' {
				after := epsClosure(e.Dst)
				if after[src] && reachesFinal(after) {
					looped = true
				}
			}
		}
	}
	assert.True(t, looped, "consuming 'a' must lead back to the state that consumed it")
}

func TestContiguousSpanUsesRangeEdge(t *testing.T) {
	a := alphabet.New()
	r, err := regexast.Parse(a, "[a-z]")
	require.NoError(t, err)
	n := Build(a, []Rule{{Regex: r, Tag: "LOWER", Priority: 0}})
	var sawRange bool
	for _, node := range n.Nodes {
		for _, e := range node.E {
			if e.Kind == 2 { // KRange
				sawRange = true
			}
		}
	}
	assert.True(t, sawRange, "a full a-z span should compile to a single range edge")
}
