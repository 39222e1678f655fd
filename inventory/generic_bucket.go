package inventory

import (
	"iter"
	"reflect"
	"slices"

	"github.com/plus3/hoard/item"
)

// genericBucket is the iBucket for items of type T, kept in insertion order.
type genericBucket[T item.Item] struct {
	items []T
}

func newBucket[T item.Item]() *genericBucket[T] {
	return &genericBucket[T]{}
}

func (b *genericBucket[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (b *genericBucket[T]) Len() int {
	return len(b.items)
}

// Append adds a type-erased item, reporting false if it is not a T.
func (b *genericBucket[T]) Append(it item.Item) bool {
	concrete, ok := it.(T)
	if !ok {
		return false
	}
	b.items = append(b.items, concrete)
	return true
}

func (b *genericBucket[T]) Items() iter.Seq[item.Item] {
	return func(yield func(item.Item) bool) {
		for _, it := range b.items {
			if !yield(it) {
				return
			}
		}
	}
}

func (b *genericBucket[T]) TakeByID(id item.ID) (item.Item, bool) {
	it, ok := b.removeFunc(func(it T) bool { return it.ID() == id })
	if !ok {
		return nil, false
	}
	return it, true
}

func (b *genericBucket[T]) append(it T) {
	b.items = append(b.items, it)
}

// removeFunc deletes the first item matching fn, keeping the order of the rest.
func (b *genericBucket[T]) removeFunc(fn func(T) bool) (T, bool) {
	idx := slices.IndexFunc(b.items, fn)
	if idx == -1 {
		var zero T
		return zero, false
	}

	removed := b.items[idx]
	b.items = slices.Delete(b.items, idx, idx+1)
	return removed, true
}
