// Package inventory stores game items of any number of concrete types. Items
// are grouped into one bucket per concrete type, so type-scoped queries and
// removals only touch the items of that type, while All and Each give a
// type-erased view of everything held.
//
// No type has to be registered up front: the first Add of a type creates its
// bucket. Absence is never an error; lookups and removals report it with a
// false result and leave the inventory untouched.
//
// An Inventory is not safe for concurrent use. Wrap it in a Shared when
// several goroutines need it.
package inventory

import (
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/hoard/item"
)

// Inventory is a heterogeneous collection of items grouped by concrete type.
// The zero value is not usable; call New.
type Inventory struct {
	buckets []iBucket
	index   *intmap.Map[int, int]
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		index: intmap.New[int, int](16),
	}
}

// lookup returns the bucket holding T, or nil if no T was ever added.
// Interface types never have a bucket.
func lookup[T item.Item](inv *Inventory) *genericBucket[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return nil
	}
	pos, ok := inv.index.Get(typeKey(t))
	if !ok {
		return nil
	}
	// Buckets are indexed by their element type, so the assertion holds.
	bucket, _ := inv.buckets[pos].(*genericBucket[T])
	return bucket
}

// Add appends it to the bucket for its concrete type, creating the bucket on
// first use.
//
// When T is an interface, such as an item.Item handed out by Take or Each, the
// item goes to the bucket of its dynamic type. Add then reports false, leaving
// the inventory unchanged, if it is nil or its concrete type was never added
// with its static type nor passed to Register.
func Add[T item.Item](inv *Inventory, it T) bool {
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return inv.addErased(it)
	}

	bucket := lookup[T](inv)
	if bucket == nil {
		Register[T]()
		bucket = newBucket[T]()
		inv.insert(bucket)
	}
	bucket.append(it)
	return true
}

func (inv *Inventory) addErased(it item.Item) bool {
	if it == nil {
		return false
	}

	key := typeKey(reflect.TypeOf(it))
	pos, ok := inv.index.Get(key)
	if !ok {
		factory := getFactory(key)
		if factory == nil {
			return false
		}
		bucket := factory()
		if !bucket.Append(it) {
			return false
		}
		inv.insert(bucket)
		return true
	}
	return inv.buckets[pos].Append(it)
}

func (inv *Inventory) insert(bucket iBucket) {
	inv.index.Put(typeKey(bucket.Type()), len(inv.buckets))
	inv.buckets = append(inv.buckets, bucket)
}

// Query returns a copy of every T in insertion order, or nil if there are none.
func Query[T item.Item](inv *Inventory) []T {
	bucket := lookup[T](inv)
	if bucket == nil || len(bucket.items) == 0 {
		return nil
	}
	return slices.Clone(bucket.items)
}

// QueryMut returns the stored T values themselves. Writes to elements are
// visible to the inventory; the slice must not be kept across calls that add
// or remove T.
func QueryMut[T item.Item](inv *Inventory) []T {
	bucket := lookup[T](inv)
	if bucket == nil || len(bucket.items) == 0 {
		return nil
	}
	return slices.Clip(bucket.items)
}

// Values iterates over every T in insertion order without copying the bucket.
func Values[T item.Item](inv *Inventory) iter.Seq[T] {
	return func(yield func(T) bool) {
		bucket := lookup[T](inv)
		if bucket == nil {
			return
		}
		for _, it := range bucket.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Count returns how many T are held.
func Count[T item.Item](inv *Inventory) int {
	bucket := lookup[T](inv)
	if bucket == nil {
		return 0
	}
	return len(bucket.items)
}

// Remove takes out the first T equal to target. Values holding NaN never
// compare equal and so can't be removed this way; use RemoveByID.
//
// Buckets only exist for concrete types, so an interface T never matches and
// no comparison of dynamic values takes place.
func Remove[T interface {
	comparable
	item.Item
}](inv *Inventory, target T) (T, bool) {
	bucket := lookup[T](inv)
	if bucket == nil {
		var zero T
		return zero, false
	}
	return bucket.removeFunc(func(it T) bool { return it == target })
}

// RemoveByID takes out the first T whose ID is id. T must be a concrete type;
// use Take to remove by id alone.
func RemoveByID[T item.Item](inv *Inventory, id item.ID) (T, bool) {
	bucket := lookup[T](inv)
	if bucket == nil {
		var zero T
		return zero, false
	}
	return bucket.removeFunc(func(it T) bool { return it.ID() == id })
}

// Take removes the first item with the given id regardless of its type,
// searching buckets in the order their types were first added. IDs are only
// unique per type, so prefer RemoveByID when the type is known.
func (inv *Inventory) Take(id item.ID) (item.Item, bool) {
	for _, bucket := range inv.buckets {
		if it, ok := bucket.TakeByID(id); ok {
			return it, true
		}
	}
	return nil, false
}

// Each iterates over every item, bucket by bucket in first-seen type order,
// and in insertion order within a bucket.
func (inv *Inventory) Each() iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		for _, bucket := range inv.buckets {
			for it := range bucket.Items() {
				if !yield(it) {
					return
				}
			}
		}
	}
}

// All returns every item in the order of Each.
func (inv *Inventory) All() []item.Item {
	all := make([]item.Item, 0, inv.Len())
	for it := range inv.Each() {
		all = append(all, it)
	}
	return all
}

// Len returns the total number of items held.
func (inv *Inventory) Len() int {
	total := 0
	for _, bucket := range inv.buckets {
		total += bucket.Len()
	}
	return total
}

// Types returns the concrete item types seen so far, in first-seen order.
// A type stays listed after its last item is removed.
func (inv *Inventory) Types() []reflect.Type {
	types := make([]reflect.Type, len(inv.buckets))
	for i, bucket := range inv.buckets {
		types[i] = bucket.Type()
	}
	return types
}
