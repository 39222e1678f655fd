package inventory

import (
	"iter"
	"reflect"

	"github.com/plus3/hoard/item"
)

// iBucket is a type-erased list of items sharing one concrete type.
type iBucket interface {
	Type() reflect.Type
	Len() int
	Append(it item.Item) bool
	Items() iter.Seq[item.Item]
	TakeByID(id item.ID) (item.Item, bool)
}
