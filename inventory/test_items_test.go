package inventory_test

import (
	"github.com/plus3/hoard/item"
)

// Arrow is a countable test item.
type Arrow struct {
	Id    item.ID
	Count uint
}

func (a Arrow) ID() item.ID             { return a.Id }
func (a Arrow) TypeName() string        { return "Arrow" }
func (a Arrow) TypeDescription() string { return "A bundle of arrows." }
func (a Arrow) Amount() item.Weight     { return item.Discrete(a.Count) }

// Potion is a second test item that is not comparable, so it can't use Remove.
type Potion struct {
	Id      item.ID
	Litres  float32
	Effects []string
}

func (p Potion) ID() item.ID             { return p.Id }
func (p Potion) TypeName() string        { return "Potion" }
func (p Potion) TypeDescription() string { return "Drink with care." }
func (p Potion) Amount() item.Weight     { return item.Continuous(p.Litres) }

// Bolt is never added with its static type, so no bucket can be built for it
// from a type-erased value.
type Bolt struct {
	Id item.ID
}

func (b Bolt) ID() item.ID             { return b.Id }
func (b Bolt) TypeName() string        { return "Bolt" }
func (b Bolt) TypeDescription() string { return "A crossbow bolt." }
func (b Bolt) Amount() item.Weight     { return item.Discrete(1) }

// Quiver is only made known through Register.
type Quiver struct {
	Id item.ID
}

func (q Quiver) ID() item.ID             { return q.Id }
func (q Quiver) TypeName() string        { return "Quiver" }
func (q Quiver) TypeDescription() string { return "Holds arrows." }
func (q Quiver) Amount() item.Weight     { return item.Discrete(1) }
