package item

// TypeWeight describes how instances of a Descriptor are measured.
type TypeWeight struct {
	discrete bool
	unitSize float32
}

// ContinuousType is the weight of kinds measured by mass.
func ContinuousType() TypeWeight {
	return TypeWeight{}
}

// DiscreteType is the weight of kinds counted in units of unitSize mass each.
func DiscreteType(unitSize float32) TypeWeight {
	if !(unitSize > 0) {
		unitSize = 0
	}
	return TypeWeight{discrete: true, unitSize: unitSize}
}

func (t TypeWeight) Discrete() bool {
	return t.discrete
}

// UnitSize is the mass of one unit. Zero for continuous kinds.
func (t TypeWeight) UnitSize() float32 {
	return t.unitSize
}

func (t TypeWeight) Kind() WeightKind {
	if t.discrete {
		return KindDiscrete
	}
	return KindContinuous
}

// Descriptor is the shared, immutable metadata of an item kind. Instances
// hold a pointer to one; descriptors are never modified after construction.
type Descriptor struct {
	name        string
	description string
	weight      TypeWeight
}

// NewDescriptor builds a descriptor. Use it while assembling a Catalog.
func NewDescriptor(name, description string, weight TypeWeight) *Descriptor {
	return &Descriptor{
		name:        name,
		description: description,
		weight:      weight,
	}
}

func (d *Descriptor) Name() string        { return d.name }
func (d *Descriptor) Description() string { return d.description }
func (d *Descriptor) Weight() TypeWeight  { return d.weight }

// Built-in kinds. Created once at package init and shared by every instance.
var (
	IronOre   = NewDescriptor("Iron Ore", "A rock containing iron.", ContinuousType())
	CopperOre = NewDescriptor("Copper Ore", "A rock containing copper.", ContinuousType())
)
