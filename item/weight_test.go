package item_test

import (
	"math"
	"testing"

	"github.com/plus3/hoard/item"
	"github.com/stretchr/testify/assert"
)

func TestContinuousClampsNegative(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"positive", 2.5, 2.5},
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mass, ok := item.Continuous(tt.in).Mass()
			assert.True(t, ok)
			assert.Equal(t, tt.want, mass)
		})
	}
}

func TestWeightVariants(t *testing.T) {
	c := item.Continuous(1.5)
	d := item.Discrete(3)

	assert.Equal(t, item.KindContinuous, c.Kind())
	assert.Equal(t, item.KindDiscrete, d.Kind())

	_, ok := c.Count()
	assert.False(t, ok)
	_, ok = d.Mass()
	assert.False(t, ok)

	n, ok := d.Count()
	assert.True(t, ok)
	assert.Equal(t, uint(3), n)

	assert.Equal(t, item.Continuous(0), item.Weight{})
}

func TestWeightCompare(t *testing.T) {
	cmp, ok := item.Continuous(1).Compare(item.Continuous(2))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = item.Discrete(5).Compare(item.Discrete(5))
	assert.True(t, ok)
	assert.Equal(t, 0, cmp)

	cmp, ok = item.Discrete(7).Compare(item.Discrete(5))
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	_, ok = item.Continuous(1).Compare(item.Discrete(1))
	assert.False(t, ok, "weights of different kinds are unordered")
}

func TestWeightString(t *testing.T) {
	assert.Equal(t, "2.50", item.Continuous(2.5).String())
	assert.Equal(t, "4", item.Discrete(4).String())
	assert.Equal(t, "discrete", item.KindDiscrete.String())
}
