package inventory

import (
	"reflect"
	"sync"

	"github.com/plus3/hoard/item"
)

// bucketFactories maps a concrete item type to a constructor for its bucket,
// so a bucket can be created from a type-erased item. Every typed Add records
// its type here; Register does so ahead of time.
var bucketFactories = struct {
	mu sync.RWMutex
	m  map[int]func() iBucket
}{m: make(map[int]func() iBucket)}

// Register makes T known to every inventory, so an item of concrete type T can
// be added through its type-erased form before any Add[T] has run.
// Interface types are ignored.
func Register[T item.Item]() {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return
	}
	key := typeKey(t)

	bucketFactories.mu.RLock()
	_, ok := bucketFactories.m[key]
	bucketFactories.mu.RUnlock()
	if ok {
		return
	}

	bucketFactories.mu.Lock()
	defer bucketFactories.mu.Unlock()
	bucketFactories.m[key] = func() iBucket {
		return newBucket[T]()
	}
}

// getFactory returns the bucket constructor for a type key, or nil if the
// type was never registered.
func getFactory(key int) func() iBucket {
	bucketFactories.mu.RLock()
	defer bucketFactories.mu.RUnlock()
	return bucketFactories.m[key]
}
