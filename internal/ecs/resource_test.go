package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clockResource struct{ tick int }

func Test_ResourceTable_InsertAndGet(t *testing.T) {
	// Arrange
	rt := NewResourceTable()

	// Act
	InsertResource(rt, clockResource{tick: 1})

	// Assert
	got, err := GetResource[clockResource](rt)
	assert.NoError(t, err)
	assert.Equal(t, 1, got.tick)
}

func Test_ResourceTable_GetMutatesThroughPointer(t *testing.T) {
	// Arrange
	rt := NewResourceTable()
	InsertResource(rt, clockResource{tick: 1})

	// Act
	got, _ := GetResource[clockResource](rt)
	got.tick = 5

	// Assert
	again, _ := GetResource[clockResource](rt)
	assert.Equal(t, 5, again.tick)
}

func Test_ResourceTable_GetMissingErrors(t *testing.T) {
	// Arrange
	rt := NewResourceTable()

	// Act
	_, err := GetResource[clockResource](rt)

	// Assert
	assert.ErrorIs(t, err, ErrResourceNotPresent)
}

func Test_ResourceTable_RemoveDeletesEntry(t *testing.T) {
	// Arrange
	rt := NewResourceTable()
	InsertResource(rt, clockResource{tick: 9})

	// Act
	v, ok := RemoveResource[clockResource](rt)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, 9, v.tick)
	assert.False(t, HasResource[clockResource](rt))
}
