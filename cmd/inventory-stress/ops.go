package main

import (
	"math/rand/v2"
	"reflect"
	"time"

	"github.com/plus3/hoard/inventory"
	"github.com/plus3/hoard/item"
	"github.com/plus3/hoard/ore"
)

type opKind int

const (
	opAdd opKind = iota
	opQuery
	opRemove
	opTake
	opSplit
	opPurify
	opSnapshot
	opCount
)

var opNames = [opCount]string{"add", "query", "remove", "take", "split", "purify", "snapshot"}

// OpStats counts one operation kind over a run.
type OpStats struct {
	Name   string
	Calls  int64
	Hits   int64
	Misses int64
	Time   Stats
}

// Workload drives random operations against one inventory.
type Workload struct {
	inv     *inventory.Inventory
	catalog *item.Catalog
	rng     *rand.Rand
	nextID  item.ID
	weights []int
	total   int
	ops     [opCount]OpStats
}

func NewWorkload(inv *inventory.Inventory, catalog *item.Catalog, mix MixConfig, seed uint64) *Workload {
	w := &Workload{
		inv:     inv,
		catalog: catalog,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		weights: mix.weights(),
	}
	for _, weight := range w.weights {
		w.total += max(weight, 0)
	}
	for i := range w.ops {
		w.ops[i].Name = opNames[i]
	}
	return w
}

// Populate adds n random items.
func (w *Workload) Populate(n int) {
	for range n {
		w.add()
	}
}

// Step runs one randomly chosen operation and records it.
func (w *Workload) Step() {
	if w.total == 0 {
		return
	}

	op := w.pick()
	start := time.Now()
	var hit bool
	switch op {
	case opAdd:
		hit = w.add()
	case opQuery:
		hit = w.query()
	case opRemove:
		hit = w.remove()
	case opTake:
		hit = w.take()
	case opSplit:
		hit = w.split()
	case opPurify:
		hit = w.purify()
	case opSnapshot:
		hit = w.snapshot()
	}
	elapsed := time.Since(start)

	stats := &w.ops[op]
	stats.Calls++
	if hit {
		stats.Hits++
	} else {
		stats.Misses++
	}
	stats.Time.Samples = append(stats.Time.Samples, elapsed)
}

// Ops finalizes and returns the per-operation statistics, skipping unused ones.
func (w *Workload) Ops() []OpStats {
	out := make([]OpStats, 0, len(w.ops))
	for i := range w.ops {
		if w.ops[i].Calls == 0 {
			continue
		}
		w.ops[i].Time.Finalize()
		out = append(out, w.ops[i])
	}
	return out
}

func (w *Workload) pick() opKind {
	n := w.rng.IntN(w.total)
	for i, weight := range w.weights {
		if n < max(weight, 0) {
			return opKind(i)
		}
		n -= max(weight, 0)
	}
	return opAdd
}

func (w *Workload) randomID() item.ID {
	if w.nextID == 0 {
		return 0
	}
	return item.ID(w.rng.Uint64N(uint64(w.nextID)))
}

func (w *Workload) add() bool {
	id := w.nextID
	w.nextID++
	mass := w.rng.Float32() * 10
	purity := w.rng.Float32()

	switch w.rng.IntN(3) {
	case 0:
		inventory.Add(w.inv, ore.New[ore.Iron](mass, purity, id))
	case 1:
		inventory.Add(w.inv, ore.New[ore.Copper](mass, purity, id))
	default:
		descriptors := w.catalog.Descriptors()
		kind := descriptors[w.rng.IntN(len(descriptors))]
		amount := item.Continuous(mass)
		if kind.Weight().Discrete() {
			amount = item.Discrete(uint(w.rng.IntN(20) + 1))
		}
		stack, ok := item.NewStack(kind, id, amount)
		if !ok {
			return false
		}
		inventory.Add(w.inv, stack)
	}
	return true
}

func (w *Workload) query() bool {
	var total float32
	switch w.rng.IntN(3) {
	case 0:
		for o := range inventory.Values[ore.Ore[ore.Iron]](w.inv) {
			total += o.Mass()
		}
	case 1:
		for _, o := range inventory.Query[ore.Ore[ore.Copper]](w.inv) {
			total += o.Mass()
		}
	default:
		for s := range inventory.Values[item.Stack](w.inv) {
			total += s.Mass()
		}
	}
	return total > 0
}

func (w *Workload) remove() bool {
	id := w.randomID()
	switch w.rng.IntN(3) {
	case 0:
		_, ok := inventory.RemoveByID[ore.Ore[ore.Iron]](w.inv, id)
		return ok
	case 1:
		_, ok := inventory.RemoveByID[ore.Ore[ore.Copper]](w.inv, id)
		return ok
	default:
		_, ok := inventory.RemoveByID[item.Stack](w.inv, id)
		return ok
	}
}

func (w *Workload) take() bool {
	_, ok := w.inv.Take(w.randomID())
	return ok
}

// split halves a random iron stack and puts both parts back.
func (w *Workload) split() bool {
	o, ok := inventory.RemoveByID[ore.Ore[ore.Iron]](w.inv, w.randomID())
	if !ok {
		return false
	}
	part, ok := o.Split(o.Mass() / 2)
	inventory.Add(w.inv, o)
	if ok {
		inventory.Add(w.inv, part)
	}
	return ok
}

func (w *Workload) purify() bool {
	coppers := inventory.QueryMut[ore.Ore[ore.Copper]](w.inv)
	if len(coppers) == 0 {
		return false
	}
	i := w.rng.IntN(len(coppers))
	return coppers[i].Purify(w.rng.Float32()*0.2) != 0
}

func (w *Workload) snapshot() bool {
	_, err := w.inv.Snapshot().Encode()
	return err == nil
}

// TypeCounts lists how many items of each concrete type remain.
func TypeCounts(inv *inventory.Inventory) map[string]int {
	counts := make(map[string]int)
	for it := range inv.Each() {
		counts[reflect.TypeOf(it).String()]++
	}
	return counts
}
