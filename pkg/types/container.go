package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// MaxPositions is the number of item slots in every container.
const MaxPositions = 4

// Container holds a fixed number of item slots. It is owned by a Floor and
// mutated only through the Refrigerator.
type Container struct {
	number int
	slots  [MaxPositions]Slot
}

// NewContainer returns a container labelled number with every slot empty.
func NewContainer(number int) *Container {
	return &Container{number: number}
}

// Number returns the caller-supplied container label.
func (c *Container) Number() int {
	return c.number
}

// AddItem stores item at position.
// Returns ErrInvalidPosition if position is outside [0, MaxPositions) and
// ErrPositionOccupied if the slot already holds an item. An occupied slot is
// never overwritten.
func (c *Container) AddItem(position int, item Item) error {
	if err := checkPosition(position); err != nil {
		return err
	}
	if c.slots[position].Occupied() {
		return fmt.Errorf("%w: container %d position %d", ErrPositionOccupied, c.number, position)
	}
	c.slots[position] = OccupiedSlot(item)
	return nil
}

// RemoveItem empties the slot at position. Removing from an empty slot
// succeeds.
func (c *Container) RemoveItem(position int) error {
	if err := checkPosition(position); err != nil {
		return err
	}
	c.slots[position] = EmptySlot()
	return nil
}

// Clear empties every slot.
func (c *Container) Clear() {
	for i := range c.slots {
		c.slots[i] = EmptySlot()
	}
}

// Slot returns the slot at position.
func (c *Container) Slot(position int) (Slot, error) {
	if err := checkPosition(position); err != nil {
		return Slot{}, err
	}
	return c.slots[position], nil
}

// Occupied returns the number of slots holding an item.
func (c *Container) Occupied() int {
	n := 0
	for _, s := range c.slots {
		if s.Occupied() {
			n++
		}
	}
	return n
}

// Render returns a header line naming the container followed by one line per
// occupied slot, in position order. Empty slots are omitted. A nil printer
// renders English.
func (c *Container) Render(p *message.Printer) string {
	p = printerOrDefault(p)

	var sb strings.Builder
	sb.WriteString(p.Sprintf(MsgContainerHeader, c.number))
	sb.WriteByte('\n')
	for i, s := range c.slots {
		item, ok := s.Item()
		if !ok {
			continue
		}
		sb.WriteString(positionIndent)
		sb.WriteString(p.Sprintf(MsgPositionLine, i, item.Description))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func checkPosition(position int) error {
	if position < 0 || position >= MaxPositions {
		return fmt.Errorf("%w: %d (valid: 0-%d)", ErrInvalidPosition, position, MaxPositions-1)
	}
	return nil
}
