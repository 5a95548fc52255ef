package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorCreateContainer(t *testing.T) {
	t.Run("containers keep creation order", func(t *testing.T) {
		f := NewFloor(0, "Dairy")
		for _, n := range []int{7, 2, 5} {
			_, err := f.CreateContainer(n)
			require.NoError(t, err)
		}
		var got []int
		for _, c := range f.Containers() {
			got = append(got, c.Number())
		}
		assert.Equal(t, []int{7, 2, 5}, got)
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		f := NewFloor(0, "Dairy")
		_, err := f.CreateContainer(5)
		require.NoError(t, err)

		_, err = f.CreateContainer(5)

		assert.ErrorIs(t, err, ErrDuplicateContainerNumber)
		assert.Len(t, f.Containers(), 1)
	})

	t.Run("cap rejects extra containers", func(t *testing.T) {
		f := NewFloor(1, "Vegetables")
		f.maxContainers = 2
		_, err := f.CreateContainer(1)
		require.NoError(t, err)
		_, err = f.CreateContainer(2)
		require.NoError(t, err)

		_, err = f.CreateContainer(3)

		assert.ErrorIs(t, err, ErrFloorFull)
		assert.Len(t, f.Containers(), 2)
	})
}

func TestFloorContainer(t *testing.T) {
	f := NewFloor(0, "Dairy")
	created, err := f.CreateContainer(5)
	require.NoError(t, err)

	got, err := f.Container(5)
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = f.Container(99)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestFloorRender(t *testing.T) {
	f := NewFloor(0, "Dairy")
	a, err := f.CreateContainer(2)
	require.NoError(t, err)
	_, err = f.CreateContainer(1)
	require.NoError(t, err)
	require.NoError(t, a.AddItem(1, Item{ID: 4, Description: "Yogurt"}))

	assert.Equal(t, "Container 2\n  Position 1: Yogurt\nContainer 1\n", f.Render(nil))
	assert.Equal(t, "Dairy", f.Description())
	assert.Equal(t, 0, f.Number())
}
