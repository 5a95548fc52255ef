package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore(t *testing.T) {
	r := NewRefrigerator()
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	_, err = r.CreateFloor("Meat")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(0, 5))
	require.NoError(t, r.CreateContainer(0, 1))
	require.NoError(t, r.CreateContainer(1, 8))
	require.NoError(t, r.AddItem(0, 5, 0, Item{ID: 1, Description: "Milk"}))
	require.NoError(t, r.AddItem(0, 5, 3, Item{ID: 0, Description: "Unlabelled jar"}))
	require.NoError(t, r.AddItem(1, 8, 2, Item{ID: 3, Description: "Ham"}))

	snap := r.Snapshot()
	restored, err := Restore(snap, Limits{})
	require.NoError(t, err)

	assert.Equal(t, r.Render(), restored.Render())
	assert.Equal(t, snap, restored.Snapshot())
}

func TestSnapshotShape(t *testing.T) {
	r := NewRefrigerator()
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(0, 5))
	require.NoError(t, r.AddItem(0, 5, 2, Item{ID: 1, Description: "Milk"}))

	want := Snapshot{Floors: []FloorSnapshot{{
		Number:      0,
		Description: "Dairy",
		Containers: []ContainerSnapshot{{
			Number: 5,
			Items:  []ItemSnapshot{{Position: 2, Item: Item{ID: 1, Description: "Milk"}}},
		}},
	}}}
	assert.Equal(t, want, r.Snapshot())
}

func TestRestoreRejectsInvalidSnapshots(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr error
	}{
		{
			name:    "floor numbers out of order",
			snap:    Snapshot{Floors: []FloorSnapshot{{Number: 1}}},
			wantErr: ErrInvalidFloorNumber,
		},
		{
			name:    "too many floors",
			snap:    Snapshot{Floors: []FloorSnapshot{{Number: 0}, {Number: 1}, {Number: 2}, {Number: 3}}},
			wantErr: ErrTooManyFloors,
		},
		{
			name: "duplicate container",
			snap: Snapshot{Floors: []FloorSnapshot{{
				Number:     0,
				Containers: []ContainerSnapshot{{Number: 1}, {Number: 1}},
			}}},
			wantErr: ErrDuplicateContainerNumber,
		},
		{
			name: "item outside container",
			snap: Snapshot{Floors: []FloorSnapshot{{
				Number:     0,
				Containers: []ContainerSnapshot{{Number: 1, Items: []ItemSnapshot{{Position: 4}}}},
			}}},
			wantErr: ErrInvalidPosition,
		},
		{
			name: "two items in one slot",
			snap: Snapshot{Floors: []FloorSnapshot{{
				Number: 0,
				Containers: []ContainerSnapshot{{Number: 1, Items: []ItemSnapshot{
					{Position: 0, Item: Item{ID: 1}},
					{Position: 0, Item: Item{ID: 2}},
				}}},
			}}},
			wantErr: ErrPositionOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.snap, Limits{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRestoreAppliesLimitsAfterRebuild(t *testing.T) {
	snap := Snapshot{Floors: []FloorSnapshot{{
		Number:     0,
		Containers: []ContainerSnapshot{{Number: 1}, {Number: 2}, {Number: 3}},
	}}}

	r, err := Restore(snap, Limits{MaxContainersPerFloor: 2})
	require.NoError(t, err)

	assert.Equal(t, Limits{MaxContainersPerFloor: 2}, r.Limits())
	f, err := r.Floor(0)
	require.NoError(t, err)
	assert.Len(t, f.Containers(), 3, "existing containers are kept")
	assert.ErrorIs(t, r.CreateContainer(0, 4), ErrFloorFull)
}
