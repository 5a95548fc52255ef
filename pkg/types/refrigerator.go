package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// MaxFloors is the number of floors a refrigerator can hold.
const MaxFloors = 3

// Limits holds the configurable capacity of a refrigerator.
type Limits struct {
	// MaxContainersPerFloor caps the containers on each floor. Zero means
	// no cap.
	MaxContainersPerFloor int `json:"max_containers_per_floor" yaml:"max_containers"`
}

// Refrigerator is the root of the storage hierarchy and the only entry point
// for mutations. It is not safe for concurrent use; callers serialize access
// to a single instance.
type Refrigerator struct {
	floors []*Floor
	limits Limits
}

// NewRefrigerator returns an empty refrigerator with no container cap.
func NewRefrigerator() *Refrigerator {
	return &Refrigerator{}
}

// NewRefrigeratorWithLimits returns an empty refrigerator using limits.
func NewRefrigeratorWithLimits(limits Limits) *Refrigerator {
	return &Refrigerator{limits: limits}
}

// Limits returns the capacity settings of the refrigerator.
func (r *Refrigerator) Limits() Limits {
	return r.limits
}

// CreateFloor appends a floor numbered with the current floor count.
// Returns ErrTooManyFloors once MaxFloors floors exist.
func (r *Refrigerator) CreateFloor(description string) (*Floor, error) {
	if len(r.floors) >= MaxFloors {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyFloors, MaxFloors)
	}
	f := NewFloor(len(r.floors), description)
	f.maxContainers = r.limits.MaxContainersPerFloor
	r.floors = append(r.floors, f)
	return f, nil
}

// Floor returns the floor numbered number.
// Returns ErrInvalidFloorNumber if number is outside [0, floor count).
func (r *Refrigerator) Floor(number int) (*Floor, error) {
	if number < 0 || number >= len(r.floors) {
		return nil, fmt.Errorf("%w: %d (floors: %d)", ErrInvalidFloorNumber, number, len(r.floors))
	}
	return r.floors[number], nil
}

// Floors returns the floors in creation order.
func (r *Refrigerator) Floors() []*Floor {
	out := make([]*Floor, len(r.floors))
	copy(out, r.floors)
	return out
}

// CreateContainer adds a container labelled containerNumber to a floor.
func (r *Refrigerator) CreateContainer(floorNumber, containerNumber int) error {
	f, err := r.Floor(floorNumber)
	if err != nil {
		return err
	}
	_, err = f.CreateContainer(containerNumber)
	return err
}

// AddItem stores item in the given container slot.
func (r *Refrigerator) AddItem(floorNumber, containerNumber, position int, item Item) error {
	c, err := r.container(floorNumber, containerNumber)
	if err != nil {
		return err
	}
	return c.AddItem(position, item)
}

// RemoveItem empties the given container slot.
func (r *Refrigerator) RemoveItem(floorNumber, containerNumber, position int) error {
	c, err := r.container(floorNumber, containerNumber)
	if err != nil {
		return err
	}
	return c.RemoveItem(position)
}

// ClearContainer empties every slot of the given container.
func (r *Refrigerator) ClearContainer(floorNumber, containerNumber int) error {
	c, err := r.container(floorNumber, containerNumber)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// Render returns the English report of every floor in creation order, each
// followed by a blank line.
func (r *Refrigerator) Render() string {
	return r.RenderLocalized(nil)
}

// RenderLocalized is Render using the translations of p.
func (r *Refrigerator) RenderLocalized(p *message.Printer) string {
	var sb strings.Builder
	for _, f := range r.floors {
		sb.WriteString(f.Render(p))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Refrigerator) container(floorNumber, containerNumber int) (*Container, error) {
	f, err := r.Floor(floorNumber)
	if err != nil {
		return nil, err
	}
	return f.Container(containerNumber)
}
