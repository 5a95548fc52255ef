package types

import "errors"

// Location errors returned while resolving a floor, container or slot.
var (
	ErrInvalidFloorNumber = errors.New("invalid floor number")
	ErrContainerNotFound  = errors.New("container not found")
	ErrInvalidPosition    = errors.New("invalid position")
)

// Capacity and occupancy errors.
var (
	ErrTooManyFloors            = errors.New("maximum number of floors reached")
	ErrFloorFull                = errors.New("maximum number of containers reached on floor")
	ErrDuplicateContainerNumber = errors.New("container number already exists on floor")
	ErrPositionOccupied         = errors.New("position already occupied")
)

// IsUserError reports whether err was caused by a request the hierarchy
// rejected, as opposed to a storage or system failure.
func IsUserError(err error) bool {
	for _, target := range []error{
		ErrInvalidFloorNumber,
		ErrContainerNotFound,
		ErrInvalidPosition,
		ErrTooManyFloors,
		ErrFloorFull,
		ErrDuplicateContainerNumber,
		ErrPositionOccupied,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
