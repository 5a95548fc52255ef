package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStocked returns a refrigerator with a Dairy floor holding container 5.
func newStocked(t *testing.T) *Refrigerator {
	t.Helper()
	r := NewRefrigerator()
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(0, 5))
	return r
}

func TestRefrigeratorCreateFloor(t *testing.T) {
	r := NewRefrigerator()
	for i, desc := range []string{"Dairy", "Meat", "Vegetables"} {
		f, err := r.CreateFloor(desc)
		require.NoError(t, err)
		assert.Equal(t, i, f.Number(), "floors are numbered by creation order")
		assert.Equal(t, desc, f.Description())
	}

	_, err := r.CreateFloor("Drinks")

	assert.ErrorIs(t, err, ErrTooManyFloors)
	assert.Len(t, r.Floors(), MaxFloors, "floor list must be unchanged")
}

func TestRefrigeratorCreateContainer(t *testing.T) {
	tests := []struct {
		name    string
		floor   int
		wantErr error
	}{
		{name: "existing floor", floor: 0},
		{name: "negative floor", floor: -1, wantErr: ErrInvalidFloorNumber},
		{name: "floor not created yet", floor: 1, wantErr: ErrInvalidFloorNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRefrigerator()
			_, err := r.CreateFloor("Dairy")
			require.NoError(t, err)

			err = r.CreateContainer(tt.floor, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			f, err := r.Floor(tt.floor)
			require.NoError(t, err)
			_, err = f.Container(5)
			assert.NoError(t, err)
		})
	}
}

func TestRefrigeratorCreateContainerHonoursLimits(t *testing.T) {
	r := NewRefrigeratorWithLimits(Limits{MaxContainersPerFloor: 1})
	_, err := r.CreateFloor("Dairy")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(0, 1))

	assert.ErrorIs(t, r.CreateContainer(0, 2), ErrFloorFull)
	assert.ErrorIs(t, r.CreateContainer(0, 1), ErrDuplicateContainerNumber)
}

func TestRefrigeratorAddItem(t *testing.T) {
	milk := Item{ID: 1, Description: "Milk"}

	tests := []struct {
		name      string
		floor     int
		container int
		position  int
		wantErr   error
	}{
		{name: "valid location", floor: 0, container: 5, position: 0},
		{name: "bad floor", floor: 3, container: 5, position: 0, wantErr: ErrInvalidFloorNumber},
		{name: "unknown container", floor: 0, container: 99, position: 0, wantErr: ErrContainerNotFound},
		{name: "bad position", floor: 0, container: 5, position: 4, wantErr: ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newStocked(t)
			before := r.Render()

			err := r.AddItem(tt.floor, tt.container, tt.position, milk)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, r.Render(), "failed add must not mutate")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRefrigeratorAddItemTwice(t *testing.T) {
	r := newStocked(t)
	require.NoError(t, r.AddItem(0, 5, 1, Item{ID: 1, Description: "Milk"}))

	err := r.AddItem(0, 5, 1, Item{ID: 2, Description: "Juice"})

	assert.ErrorIs(t, err, ErrPositionOccupied)
	assert.Contains(t, r.Render(), "Position 1: Milk")
	assert.NotContains(t, r.Render(), "Juice")
}

func TestRefrigeratorRemoveItem(t *testing.T) {
	r := newStocked(t)
	require.NoError(t, r.AddItem(0, 5, 3, Item{ID: 1, Description: "Milk"}))

	require.NoError(t, r.RemoveItem(0, 5, 3))

	assert.NotContains(t, r.Render(), "Milk")
	assert.ErrorIs(t, r.RemoveItem(0, 5, -1), ErrInvalidPosition)
	assert.ErrorIs(t, r.RemoveItem(0, 6, 0), ErrContainerNotFound)
	assert.ErrorIs(t, r.RemoveItem(2, 5, 0), ErrInvalidFloorNumber)
}

func TestRefrigeratorClearContainer(t *testing.T) {
	for n := 0; n <= MaxPositions; n++ {
		r := newStocked(t)
		for p := 0; p < n; p++ {
			require.NoError(t, r.AddItem(0, 5, p, Item{ID: p + 1, Description: "x"}))
		}

		require.NoError(t, r.ClearContainer(0, 5))

		f, err := r.Floor(0)
		require.NoError(t, err)
		c, err := f.Container(5)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Occupied(), "clear with %d items", n)
	}

	r := newStocked(t)
	assert.ErrorIs(t, r.ClearContainer(0, 1), ErrContainerNotFound)
	assert.ErrorIs(t, r.ClearContainer(1, 5), ErrInvalidFloorNumber)
}

func TestRefrigeratorRender(t *testing.T) {
	r := newStocked(t)
	require.NoError(t, r.AddItem(0, 5, 0, Item{ID: 1, Description: "Milk"}))
	_, err := r.CreateFloor("Meat")
	require.NoError(t, err)
	require.NoError(t, r.CreateContainer(1, 2))

	got := r.Render()

	assert.Contains(t, got, "Container 5")
	assert.Contains(t, got, "Position 0: Milk")
	assert.Equal(t, "Container 5\n  Position 0: Milk\n\nContainer 2\n\n", got)
}

func TestRefrigeratorRenderEmpty(t *testing.T) {
	assert.Empty(t, NewRefrigerator().Render())
}

func TestIsUserError(t *testing.T) {
	r := newStocked(t)
	assert.True(t, IsUserError(r.AddItem(0, 99, 0, Item{ID: 1})))
	assert.True(t, IsUserError(r.CreateContainer(0, 5)))
	assert.False(t, IsUserError(ErrStoreDetached))
	assert.False(t, IsUserError(nil))
}
