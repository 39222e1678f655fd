// Package item defines the capability every storable game item satisfies, the
// quantity type items report, and the static catalog of shared item kinds.
package item

// ID identifies an item within its owning collection. IDs are only unique
// among items of the same concrete type.
type ID uint64

// Item is the type-erased view of anything an inventory can hold.
// Mutation is type specific and lives on the concrete type.
type Item interface {
	ID() ID
	TypeName() string
	TypeDescription() string
	Amount() Weight
}

// Measure is the argument type of a split: a mass or a unit count.
type Measure interface {
	~float32 | ~uint
}

// Specific is an Item that can be divided. Split removes amount from the
// receiver and returns it as a new S. On failure the receiver is unchanged.
//
// Implementations use a pointer receiver, so *Ore satisfies Specific[Ore, float32].
type Specific[S any, M Measure] interface {
	Item
	Split(amount M) (S, bool)
}
