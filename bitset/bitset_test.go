package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gtrie/bitset"
)

func TestSetClearTest(t *testing.T) {
	s := bitset.New(130)
	assert.False(t, s.Test(0))
	s.Set(0)
	s.Set(64)
	s.Set(129)
	assert.True(t, s.Test(0))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(129))
	assert.Equal(t, 3, s.Count())

	s.Clear(64)
	assert.False(t, s.Test(64))
	assert.Equal(t, 2, s.Count())
}

func TestFillN(t *testing.T) {
	s := bitset.New(10)
	s.FillN(10)
	assert.Equal(t, 10, s.Count())
	for i := 0; i < 10; i++ {
		assert.True(t, s.Test(i))
	}
}

func TestOnesOrder(t *testing.T) {
	s := bitset.New(70)
	s.Set(3)
	s.Set(69)
	s.Set(10)
	assert.Equal(t, []int{3, 10, 69}, s.Ones())
}

func TestCloneIndependence(t *testing.T) {
	s := bitset.New(64)
	s.Set(5)
	c := s.Clone()
	c.Set(6)
	assert.False(t, s.Test(6))
	assert.True(t, c.Test(6))
}

func TestUnion(t *testing.T) {
	a := bitset.New(64)
	a.Set(1)
	b := bitset.New(64)
	b.Set(2)
	a.Union(b)
	assert.True(t, a.Test(1))
	assert.True(t, a.Test(2))
}

func TestEqual(t *testing.T) {
	a := bitset.New(64)
	b := bitset.New(64)
	assert.True(t, a.Equal(b))
	a.Set(10)
	assert.False(t, a.Equal(b))
	b.Set(10)
	assert.True(t, a.Equal(b))
}

func TestClearAll(t *testing.T) {
	s := bitset.New(128)
	s.FillN(128)
	s.ClearAll()
	assert.Equal(t, 0, s.Count())
}
