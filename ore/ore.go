// Package ore is the raw ore item family. Each mineral is a distinct Go type,
// Ore[Iron] and Ore[Copper], so an inventory groups them separately while they
// share one implementation.
package ore

import (
	"math"

	"github.com/plus3/hoard/item"
)

// Kind is a zero-size tag selecting the mineral an Ore holds.
type Kind interface {
	comparable
	Descriptor() *item.Descriptor
}

type Iron struct{}

func (Iron) Descriptor() *item.Descriptor { return item.IronOre }

type Copper struct{}

func (Copper) Descriptor() *item.Descriptor { return item.CopperOre }

// Ore is a stack of raw ore of kind K. Purity stays within [0, 1] and mass is
// never negative.
type Ore[K Kind] struct {
	purity float32
	mass   float32
	id     item.ID
}

var (
	_ item.Specific[Ore[Iron], float32]   = (*Ore[Iron])(nil)
	_ item.Specific[Ore[Copper], float32] = (*Ore[Copper])(nil)
)

// New returns an ore stack. Purity is clamped to [0, 1]; negative or NaN mass becomes 0.
func New[K Kind](amount, purity float32, id item.ID) Ore[K] {
	return Ore[K]{
		purity: clampUnit(purity),
		mass:   nonNegative(amount),
		id:     id,
	}
}

func (o Ore[K]) ID() item.ID         { return o.id }
func (o Ore[K]) Purity() float32     { return o.purity }
func (o Ore[K]) Mass() float32       { return o.mass }
func (o Ore[K]) Amount() item.Weight { return item.Continuous(o.mass) }
func (o Ore[K]) TypeName() string    { return kind[K]().Name() }
func (o Ore[K]) TypeDescription() string {
	return kind[K]().Description()
}

// Stack converts the ore into a catalog stack of the same kind, id and mass.
// Purity is not carried over.
func (o Ore[K]) Stack() item.Stack {
	s, _ := item.NewStack(kind[K](), o.id, item.Continuous(o.mass))
	return s
}

// Purify raises purity by percentChange and removes the same fraction of mass.
// The change is clamped to [-purity, 1-purity]; the applied change is returned.
func (o *Ore[K]) Purify(percentChange float32) float32 {
	if math.IsNaN(float64(percentChange)) {
		return 0
	}

	applied := min(max(percentChange, -o.purity), 1-o.purity)
	switch applied {
	case 1 - o.purity:
		o.purity = 1
	case -o.purity:
		o.purity = 0
	default:
		o.purity += applied
	}
	o.mass *= 1 - applied

	return applied
}

// Split removes amount from o and returns it as a new stack with the same
// purity and id. It fails, leaving o unchanged, when amount exceeds the mass
// held or is negative.
func (o *Ore[K]) Split(amount float32) (Ore[K], bool) {
	if math.IsNaN(float64(amount)) || amount < 0 || amount > o.mass {
		return Ore[K]{}, false
	}

	o.mass -= amount
	return Ore[K]{
		purity: o.purity,
		mass:   amount,
		id:     o.id,
	}, true
}

func kind[K Kind]() *item.Descriptor {
	var k K
	return k.Descriptor()
}

func clampUnit(v float32) float32 {
	return min(nonNegative(v), 1)
}

func nonNegative(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return v
}
