package inventory

import "github.com/plus3/hoard/item"

// Commands buffers pickups and drops issued while an inventory is being read,
// for example from a UI listing, and applies them together at end of frame.
type Commands struct {
	drops  []dropCommand
	adds   []func(*Inventory)
	defers []func()
}

type dropCommand struct {
	id     item.ID
	onDrop func(item.Item)
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Pickup queues adding it to the inventory, following the rules of Add.
func Pickup[T item.Item](c *Commands, it T) {
	c.adds = append(c.adds, func(inv *Inventory) { Add(inv, it) })
}

// Drop queues removing the first item with id, of any type. onDrop runs with
// the removed item only if one was found; a missing id is a no-op.
func (c *Commands) Drop(id item.ID, onDrop func(item.Item)) {
	c.drops = append(c.drops, dropCommand{id: id, onDrop: onDrop})
}

// Defer queues a function to run after the drops and pickups.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.drops) + len(c.adds) + len(c.defers)
}

// Flush applies drops, then pickups, then deferred functions, and resets the buffer.
func (c *Commands) Flush(inv *Inventory) {
	for _, cmd := range c.drops {
		removed, ok := inv.Take(cmd.id)
		if ok && cmd.onDrop != nil {
			cmd.onDrop(removed)
		}
	}

	for _, add := range c.adds {
		add(inv)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.drops = c.drops[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
