package item

import "fmt"

// WeightKind tells which variant a Weight holds.
type WeightKind uint8

const (
	KindContinuous WeightKind = iota
	KindDiscrete
)

func (k WeightKind) String() string {
	switch k {
	case KindContinuous:
		return "continuous"
	case KindDiscrete:
		return "discrete"
	default:
		return fmt.Sprintf("WeightKind(%d)", uint8(k))
	}
}

// Weight is the quantity of an item: either a fractional mass or a whole count.
// The zero value is Continuous(0).
type Weight struct {
	kind  WeightKind
	mass  float32
	count uint
}

// Continuous returns a fractional weight. Negative and NaN masses become 0.
func Continuous(mass float32) Weight {
	if !(mass > 0) {
		mass = 0
	}
	return Weight{kind: KindContinuous, mass: mass}
}

// Discrete returns a countable weight.
func Discrete(count uint) Weight {
	return Weight{kind: KindDiscrete, count: count}
}

func (w Weight) Kind() WeightKind {
	return w.kind
}

// Mass returns the fractional quantity, ok is false for discrete weights.
func (w Weight) Mass() (float32, bool) {
	return w.mass, w.kind == KindContinuous
}

// Count returns the unit count, ok is false for continuous weights.
func (w Weight) Count() (uint, bool) {
	return w.count, w.kind == KindDiscrete
}

// Compare orders two weights of the same kind. ok is false when the kinds
// differ, in which case the result must not be used.
func (w Weight) Compare(other Weight) (cmp int, ok bool) {
	if w.kind != other.kind {
		return 0, false
	}
	switch w.kind {
	case KindContinuous:
		switch {
		case w.mass < other.mass:
			return -1, true
		case w.mass > other.mass:
			return 1, true
		}
		return 0, true
	default:
		switch {
		case w.count < other.count:
			return -1, true
		case w.count > other.count:
			return 1, true
		}
		return 0, true
	}
}

// String renders the weight for listings: two decimals for mass, the plain count otherwise.
func (w Weight) String() string {
	if w.kind == KindDiscrete {
		return fmt.Sprintf("%d", w.count)
	}
	return fmt.Sprintf("%.2f", w.mass)
}
