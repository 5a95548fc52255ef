package types

import "fmt"

// Snapshot is a plain-data copy of a Refrigerator. It is what the store
// persists and what the CLI prints with --json.
type Snapshot struct {
	Floors []FloorSnapshot `json:"floors"`
}

// FloorSnapshot is the stored form of a Floor.
type FloorSnapshot struct {
	Number      int                 `json:"number"`
	Description string              `json:"description"`
	Containers  []ContainerSnapshot `json:"containers"`
}

// ContainerSnapshot is the stored form of a Container. Only occupied slots
// are listed.
type ContainerSnapshot struct {
	Number int            `json:"number"`
	Items  []ItemSnapshot `json:"items"`
}

// ItemSnapshot is an item together with the slot it occupies.
type ItemSnapshot struct {
	Position int  `json:"position"`
	Item     Item `json:"item"`
}

// Snapshot copies the current state of r.
func (r *Refrigerator) Snapshot() Snapshot {
	s := Snapshot{Floors: make([]FloorSnapshot, 0, len(r.floors))}
	for _, f := range r.floors {
		fs := FloorSnapshot{
			Number:      f.number,
			Description: f.description,
			Containers:  make([]ContainerSnapshot, 0, len(f.containers)),
		}
		for _, c := range f.containers {
			cs := ContainerSnapshot{Number: c.number, Items: []ItemSnapshot{}}
			for pos, slot := range c.slots {
				if item, ok := slot.Item(); ok {
					cs.Items = append(cs.Items, ItemSnapshot{Position: pos, Item: item})
				}
			}
			fs.Containers = append(fs.Containers, cs)
		}
		s.Floors = append(s.Floors, fs)
	}
	return s
}

// Restore rebuilds a Refrigerator from s through the regular operations, so
// every invariant of the hierarchy is checked again. Floors must appear in
// number order starting at 0. The container cap in limits applies to
// containers created after the restore; floors already holding more are kept
// as they are.
func Restore(s Snapshot, limits Limits) (*Refrigerator, error) {
	r := NewRefrigerator()
	for i, fs := range s.Floors {
		if fs.Number != i {
			return nil, fmt.Errorf("restore: %w: got %d at index %d", ErrInvalidFloorNumber, fs.Number, i)
		}
		if _, err := r.CreateFloor(fs.Description); err != nil {
			return nil, fmt.Errorf("restore: %w", err)
		}
		for _, cs := range fs.Containers {
			if err := r.CreateContainer(fs.Number, cs.Number); err != nil {
				return nil, fmt.Errorf("restore: %w", err)
			}
			for _, is := range cs.Items {
				if err := r.AddItem(fs.Number, cs.Number, is.Position, is.Item); err != nil {
					return nil, fmt.Errorf("restore: %w", err)
				}
			}
		}
	}

	r.limits = limits
	for _, f := range r.floors {
		f.maxContainers = limits.MaxContainersPerFloor
	}
	return r, nil
}
