package inventory_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/plus3/hoard/inventory"
	"github.com/plus3/hoard/item"
	"github.com/plus3/hoard/ore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOreInventory() *inventory.Inventory {
	inv := inventory.New()
	inventory.Add(inv, ore.New[ore.Iron](1, 1, 0))
	inventory.Add(inv, ore.New[ore.Copper](2, 1, 1))
	inventory.Add(inv, ore.New[ore.Copper](3, 1, 2))
	return inv
}

func TestScenario(t *testing.T) {
	inv := newOreInventory()

	assert.Len(t, inventory.Query[ore.Ore[ore.Iron]](inv), 1)
	assert.Len(t, inventory.Query[ore.Ore[ore.Copper]](inv), 2)

	removed, ok := inventory.RemoveByID[ore.Ore[ore.Copper]](inv, 1)
	require.True(t, ok)
	assert.Equal(t, item.Continuous(2), removed.Amount())

	assert.Len(t, inv.All(), 2)
}

func TestAddGroupsByType(t *testing.T) {
	inv := inventory.New()
	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.All())

	adds := []func(){
		func() { inventory.Add(inv, Arrow{Id: 1, Count: 10}) },
		func() { inventory.Add(inv, ore.New[ore.Iron](1, 0.5, 1)) },
		func() { inventory.Add(inv, Arrow{Id: 2, Count: 20}) },
		func() { inventory.Add(inv, ore.New[ore.Copper](2, 0.5, 1)) },
		func() { inventory.Add(inv, Arrow{Id: 3, Count: 30}) },
		func() { inventory.Add(inv, ore.New[ore.Iron](3, 0.5, 2)) },
	}
	for _, add := range adds {
		add()
	}

	assert.Equal(t, len(adds), inv.Len())
	assert.Len(t, inv.All(), len(adds))
	assert.Equal(t, 3, inventory.Count[Arrow](inv))
	assert.Equal(t, 2, inventory.Count[ore.Ore[ore.Iron]](inv))
	assert.Equal(t, 1, inventory.Count[ore.Ore[ore.Copper]](inv))

	assert.Equal(t, []Arrow{{1, 10}, {2, 20}, {3, 30}}, inventory.Query[Arrow](inv))

	irons := inventory.Query[ore.Ore[ore.Iron]](inv)
	require.Len(t, irons, 2)
	assert.Equal(t, item.ID(1), irons[0].ID())
	assert.Equal(t, item.ID(2), irons[1].ID())

	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[Arrow](),
		reflect.TypeFor[ore.Ore[ore.Iron]](),
		reflect.TypeFor[ore.Ore[ore.Copper]](),
	}, inv.Types())
}

func TestAllOrder(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, Arrow{Id: 1, Count: 1})
	inventory.Add(inv, ore.New[ore.Iron](1, 1, 2))
	inventory.Add(inv, Arrow{Id: 3, Count: 1})

	var ids []item.ID
	for _, it := range inv.All() {
		ids = append(ids, it.ID())
	}
	assert.Equal(t, []item.ID{1, 3, 2}, ids, "bucket order, then insertion order")

	var names []string
	for it := range inv.Each() {
		names = append(names, it.TypeName())
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Arrow", "Arrow"}, names)
}

func TestQueryMissingType(t *testing.T) {
	inv := newOreInventory()

	assert.Nil(t, inventory.Query[Arrow](inv))
	assert.Nil(t, inventory.QueryMut[Arrow](inv))
	assert.Equal(t, 0, inventory.Count[Arrow](inv))
	for range inventory.Values[Arrow](inv) {
		t.Fatal("no arrows expected")
	}
	assert.Equal(t, 3, inv.Len())
}

func TestQueryReturnsCopy(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, Arrow{Id: 1, Count: 5})

	arrows := inventory.Query[Arrow](inv)
	arrows[0].Count = 99

	assert.Equal(t, uint(5), inventory.Query[Arrow](inv)[0].Count)
}

func TestQueryMutWritesThrough(t *testing.T) {
	inv := newOreInventory()

	coppers := inventory.QueryMut[ore.Ore[ore.Copper]](inv)
	require.Len(t, coppers, 2)
	for i := range coppers {
		coppers[i].Purify(-0.5)
	}

	for o := range inventory.Values[ore.Ore[ore.Copper]](inv) {
		assert.Equal(t, float32(0.5), o.Purity())
	}

	// Appending to the returned slice must not leak into the inventory.
	_ = append(coppers, ore.New[ore.Copper](9, 1, 9))
	assert.Equal(t, 2, inventory.Count[ore.Ore[ore.Copper]](inv))
}

func TestRemove(t *testing.T) {
	inv := newOreInventory()
	target := ore.New[ore.Copper](2, 1, 1)

	removed, ok := inventory.Remove(inv, target)
	require.True(t, ok)
	assert.Equal(t, target, removed)
	assert.Equal(t, 1, inventory.Count[ore.Ore[ore.Copper]](inv))

	_, ok = inventory.Remove(inv, target)
	assert.False(t, ok, "already removed")
}

func TestRemoveRoundTrip(t *testing.T) {
	inv := newOreInventory()
	before := inventory.Query[ore.Ore[ore.Iron]](inv)

	x := ore.New[ore.Iron](7, 0.25, 42)
	inventory.Add(inv, x)
	removed, ok := inventory.Remove(inv, x)

	require.True(t, ok)
	assert.Equal(t, x, removed)
	assert.Equal(t, before, inventory.Query[ore.Ore[ore.Iron]](inv))
}

func TestRemoveFirstMatchOnly(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, Arrow{Id: 1, Count: 5})
	inventory.Add(inv, Arrow{Id: 2, Count: 5})
	inventory.Add(inv, Arrow{Id: 1, Count: 6})

	removed, ok := inventory.RemoveByID[Arrow](inv, 1)
	require.True(t, ok)
	assert.Equal(t, Arrow{Id: 1, Count: 5}, removed)
	assert.Equal(t, []Arrow{{2, 5}, {1, 6}}, inventory.Query[Arrow](inv))

	removed, ok = inventory.Remove(inv, Arrow{Id: 2, Count: 5})
	require.True(t, ok)
	assert.Equal(t, Arrow{Id: 2, Count: 5}, removed)
	assert.Equal(t, []Arrow{{1, 6}}, inventory.Query[Arrow](inv))
}

func TestRemoveByIDScopedToType(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, ore.New[ore.Iron](1, 1, 5))
	inventory.Add(inv, ore.New[ore.Copper](2, 1, 5))

	removed, ok := inventory.RemoveByID[ore.Ore[ore.Copper]](inv, 5)
	require.True(t, ok)
	assert.Equal(t, "Copper Ore", removed.TypeName())
	assert.Equal(t, 1, inventory.Count[ore.Ore[ore.Iron]](inv))
}

func TestNotFoundLeavesStateUnchanged(t *testing.T) {
	inv := newOreInventory()
	before := inv.Snapshot()

	_, ok := inventory.RemoveByID[ore.Ore[ore.Iron]](inv, 99)
	assert.False(t, ok)
	_, ok = inventory.RemoveByID[Arrow](inv, 0)
	assert.False(t, ok)
	_, ok = inventory.Remove(inv, ore.New[ore.Iron](5, 1, 0))
	assert.False(t, ok)
	_, ok = inventory.Remove(inv, Arrow{})
	assert.False(t, ok)
	_, ok = inv.Take(99)
	assert.False(t, ok)

	assert.Equal(t, before, inv.Snapshot())
	assert.Len(t, inv.Types(), 2, "misses must not create buckets")
}

func TestRemoveByIDNonComparable(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, Potion{Id: 1, Litres: float32(math.NaN()), Effects: []string{"haste"}})

	removed, ok := inventory.RemoveByID[Potion](inv, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"haste"}, removed.Effects)
	assert.Equal(t, item.Continuous(0), removed.Amount(), "NaN mass reads as zero")
	assert.Equal(t, 0, inv.Len())
}

func TestTake(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, ore.New[ore.Iron](1, 1, 5))
	inventory.Add(inv, Arrow{Id: 5, Count: 3})
	inventory.Add(inv, Arrow{Id: 6, Count: 4})

	taken, ok := inv.Take(5)
	require.True(t, ok)
	assert.Equal(t, "Iron Ore", taken.TypeName(), "first bucket wins")

	taken, ok = inv.Take(5)
	require.True(t, ok)
	arrow, isArrow := taken.(Arrow)
	require.True(t, isArrow)
	assert.Equal(t, uint(3), arrow.Count)

	_, ok = inv.Take(5)
	assert.False(t, ok)
	assert.Equal(t, 1, inv.Len())
}

func TestEmptiedBucketKeepsOrder(t *testing.T) {
	inv := inventory.New()
	inventory.Add(inv, Arrow{Id: 1})
	inventory.Add(inv, ore.New[ore.Iron](1, 1, 1))

	_, ok := inventory.RemoveByID[Arrow](inv, 1)
	require.True(t, ok)
	assert.Nil(t, inventory.Query[Arrow](inv))

	inventory.Add(inv, Arrow{Id: 2})
	assert.Equal(t, reflect.TypeFor[Arrow](), inv.Types()[0])
	assert.Equal(t, item.ID(2), inv.All()[0].ID())
}

func TestCatalogStacksShareOneBucket(t *testing.T) {
	inv := inventory.New()
	iron, _ := item.NewStack(item.IronOre, 1, item.Continuous(1))
	copper, _ := item.NewStack(item.CopperOre, 2, item.Continuous(2))
	inventory.Add(inv, iron)
	inventory.Add(inv, copper)
	inventory.Add(inv, ore.New[ore.Iron](3, 1, 3).Stack())

	assert.Len(t, inv.Types(), 1)
	stacks := inventory.Query[item.Stack](inv)
	require.Len(t, stacks, 3)
	assert.Same(t, item.IronOre, stacks[2].Descriptor())

	removed, ok := inventory.Remove(inv, copper)
	require.True(t, ok)
	assert.Equal(t, copper, removed)
}
