package types

// Item is a stored good.
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Slot is one position inside a Container. A slot is either empty or holds
// exactly one Item; emptiness is tracked explicitly so any Item value,
// including one with ID 0, can be stored.
type Slot struct {
	item     Item
	occupied bool
}

// EmptySlot returns an unoccupied slot.
func EmptySlot() Slot {
	return Slot{}
}

// OccupiedSlot returns a slot holding item.
func OccupiedSlot(item Item) Slot {
	return Slot{item: item, occupied: true}
}

// Occupied reports whether the slot holds an item.
func (s Slot) Occupied() bool {
	return s.occupied
}

// Item returns the stored item and true, or the zero Item and false when the
// slot is empty.
func (s Slot) Item() (Item, bool) {
	if !s.occupied {
		return Item{}, false
	}
	return s.item, true
}
