package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ComponentStorage_InsertAndGet(t *testing.T) {
	// Arrange
	s := newComponentStorage[int](4, nil)

	// Act
	_, hadPrev, err := s.insert(2, 100)

	// Assert
	assert.NoError(t, err)
	assert.False(t, hadPrev)
	assert.Equal(t, 100, *s.get(2))
	assert.Nil(t, s.get(0))
}

func Test_ComponentStorage_InsertOutOfBoundsErrors(t *testing.T) {
	// Arrange
	s := newComponentStorage[int](2, nil)

	// Act
	_, _, err := s.insert(5, 1)

	// Assert
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func Test_ComponentStorage_GrowByExtendsCapacity(t *testing.T) {
	// Arrange
	s := newComponentStorage[int](1, nil)

	// Act
	s.growBy(3)

	// Assert
	assert.Equal(t, 4, s.capacity())
}

func Test_ComponentStorage_RemoveClearsValidity(t *testing.T) {
	// Arrange
	s := newComponentStorage[int](2, nil)
	_, _, _ = s.insert(0, 7)

	// Act
	v, ok := s.remove(0)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.False(t, s.valid(0))
	assert.Nil(t, s.get(0))
}

func Test_ComponentStorage_ForgetRunsDropGlueExactlyOnce(t *testing.T) {
	// Arrange
	drops := 0
	s := newComponentStorage[int](2, func(v *int) { drops++ })
	_, _, _ = s.insert(0, 1)

	// Act
	s.forget(0)
	s.forget(0)

	// Assert
	assert.Equal(t, 1, drops)
}

func Test_ComponentStorage_CloseRunsDropGlueOverLiveSlotsOnly(t *testing.T) {
	// Arrange
	var seen []int
	s := newComponentStorage[int](4, func(v *int) { seen = append(seen, *v) })
	_, _, _ = s.insert(3, 30)
	_, _, _ = s.insert(1, 10)

	// Act
	s.close()

	// Assert
	assert.Equal(t, []int{10, 30}, seen)
}

func Test_ComponentStorage_IterateVisitsAscending(t *testing.T) {
	// Arrange
	s := newComponentStorage[int](4, nil)
	_, _, _ = s.insert(3, 30)
	_, _, _ = s.insert(1, 10)

	// Act
	var visited []int
	s.iterate(func(at int, v *int) { visited = append(visited, at) })

	// Assert
	assert.Equal(t, []int{1, 3}, visited)
}
