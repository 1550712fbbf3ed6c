package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gtrie/condition"
)

func TestConditionSingle(t *testing.T) {
	cs := condition.Conditions{condition.New(0, 1)}

	cases := []struct {
		d1, d2, u, v int
		want         bool
	}{
		{0, 1, 10, 20, true},
		{0, 1, 20, 10, false},
		{1, 2, 20, 10, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cs.RespectsAll(c.d1, c.d2, c.u, c.v))
	}
}

func TestConditionChain(t *testing.T) {
	cs := condition.Conditions{condition.New(0, 1), condition.New(1, 2)}

	cases := []struct {
		d1, d2, u, v int
		want         bool
	}{
		{0, 1, 10, 20, true},
		{0, 1, 20, 10, false},
		{1, 2, 30, 40, true},
		{1, 2, 40, 30, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cs.RespectsAll(c.d1, c.d2, c.u, c.v))
	}
}

func TestConditionDisjointPairs(t *testing.T) {
	cs := condition.Conditions{condition.New(0, 1), condition.New(2, 3)}

	cases := []struct {
		d1, d2, u, v int
		want         bool
	}{
		{0, 1, 10, 20, true},
		{0, 1, 20, 10, false},
		{1, 2, 30, 40, true},
		{1, 2, 40, 30, true},
		{2, 3, 50, 60, true},
		{2, 3, 60, 50, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cs.RespectsAll(c.d1, c.d2, c.u, c.v))
	}
}

func TestNewPanicsOnBadOrder(t *testing.T) {
	assert.Panics(t, func() { condition.New(3, 1) })
	assert.Panics(t, func() { condition.New(2, 2) })
}

func TestRestrictBelow(t *testing.T) {
	cs := condition.Conditions{condition.New(0, 1), condition.New(1, 3), condition.New(2, 4)}
	got := cs.RestrictBelow(3)
	assert.Equal(t, condition.Conditions{condition.New(0, 1)}, got)
}

func TestIntersect(t *testing.T) {
	a := condition.Conditions{condition.New(0, 1), condition.New(1, 2)}
	b := condition.Conditions{condition.New(1, 2), condition.New(2, 3)}
	assert.Equal(t, condition.Conditions{condition.New(1, 2)}, a.Intersect(b))
}

func TestRespectsAny(t *testing.T) {
	cs := condition.Conditions{condition.New(0, 1), condition.New(2, 3)}
	assert.True(t, cs.RespectsAny(0, 1, 1, 2))
	assert.True(t, cs.RespectsAny(5, 6, 1, 2)) // no matching pair, vacuously respected
}
