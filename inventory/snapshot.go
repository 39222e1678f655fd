package inventory

import (
	"fmt"

	"github.com/plus3/hoard/item"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is the serializable listing of one item.
type Entry struct {
	Type        string          `msgpack:"type"`
	Description string          `msgpack:"description,omitempty"`
	ID          item.ID         `msgpack:"id"`
	Kind        item.WeightKind `msgpack:"kind"`
	Mass        float32         `msgpack:"mass,omitempty"`
	Count       uint            `msgpack:"count,omitempty"`
}

func newEntry(it item.Item) Entry {
	amount := it.Amount()
	mass, _ := amount.Mass()
	count, _ := amount.Count()
	return Entry{
		Type:        it.TypeName(),
		Description: it.TypeDescription(),
		ID:          it.ID(),
		Kind:        amount.Kind(),
		Mass:        mass,
		Count:       count,
	}
}

// Amount rebuilds the entry's quantity.
func (e Entry) Amount() item.Weight {
	if e.Kind == item.KindDiscrete {
		return item.Discrete(e.Count)
	}
	return item.Continuous(e.Mass)
}

// Snapshot is a detached listing of an inventory, in the order of Each.
// It carries what listings and saves need, not the concrete items.
type Snapshot []Entry

// Snapshot lists every item held.
func (inv *Inventory) Snapshot() Snapshot {
	snap := make(Snapshot, 0, inv.Len())
	for it := range inv.Each() {
		snap = append(snap, newEntry(it))
	}
	return snap
}

// Encode serializes the snapshot with msgpack.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal([]Entry(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses data produced by Snapshot.Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var entries []Entry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return Snapshot(entries), nil
}

// TotalKey groups snapshot entries for Totals.
type TotalKey struct {
	Type string
	Kind item.WeightKind
}

// Totals sums the quantities per type name. Continuous and discrete amounts
// can't be added together, so a name measured both ways gets one total per kind.
func (s Snapshot) Totals() map[TotalKey]item.Weight {
	totals := make(map[TotalKey]item.Weight)
	for _, e := range s {
		key := TotalKey{Type: e.Type, Kind: e.Kind}
		prev, seen := totals[key]
		if !seen {
			totals[key] = e.Amount()
			continue
		}
		if e.Kind == item.KindDiscrete {
			n, _ := prev.Count()
			totals[key] = item.Discrete(n + e.Count)
		} else {
			m, _ := prev.Mass()
			totals[key] = item.Continuous(m + e.Mass)
		}
	}
	return totals
}
