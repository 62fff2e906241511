package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Query1_IteratesEveryEntityCarryingType(t *testing.T) {
	// Arrange
	w := NewWorld()
	RegisterComponentIn[healthComp](w)
	e0 := w.CreateEntity()
	e1 := w.CreateEntity()
	_ = InsertComponent(w, e0, healthComp{hp: 1})
	_ = InsertComponent(w, e1, healthComp{hp: 2})

	// Act
	items, err := NewQuery1[healthComp](w).Iter()

	// Assert
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, e0, items[0].Entity)
	assert.Equal(t, 1, items[0].A.hp)
}

func Test_Query2_OnlyYieldsEntitiesWithBothTypes(t *testing.T) {
	// Arrange
	w := NewWorld()
	RegisterComponentIn[healthComp](w)
	RegisterComponentIn[velocityComp](w)
	both := w.CreateEntity()
	healthOnly := w.CreateEntity()

	_ = InsertComponent(w, both, healthComp{hp: 1})
	_ = InsertComponent(w, both, velocityComp{dx: 1})
	_ = InsertComponent(w, healthOnly, healthComp{hp: 2})

	// Act
	items, err := NewQuery2[healthComp, velocityComp](w).Iter()

	// Assert
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, both, items[0].Entity)
}

func Test_Query1_UnregisteredTypeErrors(t *testing.T) {
	// Arrange
	w := NewWorld()

	// Act
	_, err := NewQuery1[healthComp](w).Iter()

	// Assert
	assert.ErrorIs(t, err, ErrNotPresentStorage)
}
