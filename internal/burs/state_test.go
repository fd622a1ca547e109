package burs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAddRuleKeepsCheapest(t *testing.T) {
	s := NewState(0)
	cheap := &Rule{LHS: "reg"}
	expensive := &Rule{LHS: "reg"}

	assert.True(t, s.AddRule(cheap, 1))
	assert.False(t, s.AddRule(expensive, 5))
	r, cost := s.GetMatch("reg")
	assert.Same(t, cheap, r)
	assert.Equal(t, 1, cost)
}

func TestStateAddRuleAcceptsStrictImprovement(t *testing.T) {
	s := NewState(0)
	first := &Rule{LHS: "reg"}
	better := &Rule{LHS: "reg"}

	s.AddRule(first, 5)
	assert.True(t, s.AddRule(better, 2))
	r, cost := s.GetMatch("reg")
	assert.Same(t, better, r)
	assert.Equal(t, 2, cost)
}

func TestStateGetMatchUnreachableReturnsMaxCost(t *testing.T) {
	s := NewState(0)
	r, cost := s.GetMatch("nope")
	assert.Nil(t, r)
	assert.Equal(t, MaxCost, cost)
}

func TestStateNormalizeSubtractsMinimum(t *testing.T) {
	s := NewState(0)
	s.AddRule(&Rule{LHS: "a"}, 3)
	s.AddRule(&Rule{LHS: "b"}, 7)
	s.Normalize()

	_, ca := s.GetMatch("a")
	_, cb := s.GetMatch("b")
	assert.Equal(t, 0, ca)
	assert.Equal(t, 4, cb)
}

func TestStateIsSameAs(t *testing.T) {
	r := &Rule{LHS: "a"}
	s1 := NewState(0)
	s1.AddRule(r, 1)
	s2 := NewState(1)
	s2.AddRule(r, 1)
	s3 := NewState(2)
	s3.AddRule(r, 2)

	assert.True(t, s1.IsSameAs(s2))
	assert.False(t, s1.IsSameAs(s3))
}
