package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"
)

// Floor holds an ordered list of containers. Container numbers are labels
// chosen by the caller and are unique within a floor.
type Floor struct {
	number        int
	description   string
	containers    []*Container
	maxContainers int // 0 means no cap
}

// NewFloor returns an empty floor with no container cap.
func NewFloor(number int, description string) *Floor {
	return &Floor{number: number, description: description}
}

// Number returns the floor index assigned at creation.
func (f *Floor) Number() int {
	return f.number
}

// Description returns the floor description.
func (f *Floor) Description() string {
	return f.description
}

// CreateContainer appends a new empty container labelled number.
// Returns ErrDuplicateContainerNumber if the floor already has a container
// with that number, and ErrFloorFull if the floor's container cap is reached.
func (f *Floor) CreateContainer(number int) (*Container, error) {
	if _, err := f.Container(number); err == nil {
		return nil, fmt.Errorf("%w: floor %d container %d", ErrDuplicateContainerNumber, f.number, number)
	}
	if f.maxContainers > 0 && len(f.containers) >= f.maxContainers {
		return nil, fmt.Errorf("%w: floor %d holds %d", ErrFloorFull, f.number, f.maxContainers)
	}
	c := NewContainer(number)
	f.containers = append(f.containers, c)
	return c, nil
}

// Container returns the container labelled number.
// Returns ErrContainerNotFound if the floor has none.
func (f *Floor) Container(number int) (*Container, error) {
	for _, c := range f.containers {
		if c.number == number {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: floor %d container %d", ErrContainerNotFound, f.number, number)
}

// Containers returns the floor's containers in creation order.
func (f *Floor) Containers() []*Container {
	out := make([]*Container, len(f.containers))
	copy(out, f.containers)
	return out
}

// Render concatenates the rendering of each container in creation order.
func (f *Floor) Render(p *message.Printer) string {
	var sb strings.Builder
	for _, c := range f.containers {
		sb.WriteString(c.Render(p))
	}
	return sb.String()
}
