package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CommandBuffer_ApplyRunsCommandsInOrder(t *testing.T) {
	// Arrange
	w := NewWorld()
	RegisterComponentIn[healthComp](w)
	e := w.CreateEntity()
	buf := NewCommandBuffer()
	buf.Push(insertCommand[healthComp]{entity: e, value: healthComp{hp: 10}})
	buf.Push(insertCommand[healthComp]{entity: e, value: healthComp{hp: 20}})

	// Act
	buf.Apply(w)

	// Assert
	got, err := Component[healthComp](w, e)
	assert.NoError(t, err)
	assert.Equal(t, 20, got.hp)
	assert.True(t, buf.IsEmpty())
}

func Test_CommandBuffer_AppendMovesCommandsAndEmptiesSource(t *testing.T) {
	// Arrange
	a := NewCommandBuffer()
	b := NewCommandBuffer()
	b.Push(killCommand{entity: NewEntity(1, 0)})

	// Act
	a.Append(b)

	// Assert
	assert.False(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())
}

func Test_CommandBuffer_DiscardDropsQueuedCommandsWithoutApplying(t *testing.T) {
	// Arrange
	w := NewWorld()
	RegisterComponentIn[healthComp](w)
	e := w.CreateEntity()
	buf := NewCommandBuffer()
	buf.Push(insertCommand[healthComp]{entity: e, value: healthComp{hp: 1}})

	// Act
	buf.Discard()

	// Assert
	assert.True(t, buf.IsEmpty())
	_, err := Component[healthComp](w, e)
	assert.ErrorIs(t, err, ErrNotPresentForEntity)
}

func Test_World_FlushAppliesDeferredCommandsQueuedByASystem(t *testing.T) {
	// Arrange
	w := NewWorld()
	RegisterComponentIn[healthComp](w)
	w.AddSchedule(Update)
	var spawned Entity

	w.AddSystems(Update, System{
		Name: "spawn_with_health",
		Run: func(ctx *Context) error {
			spawned = ctx.World.CreateEntity()
			InsertDeferred(Cmd(ctx), spawned, healthComp{hp: 42})
			return nil
		},
	})

	// Act
	err := w.RunSchedule(Update)
	assert.NoError(t, err)
	_, errBefore := Component[healthComp](w, spawned)

	w.Flush()
	got, errAfter := Component[healthComp](w, spawned)

	// Assert
	assert.ErrorIs(t, errBefore, ErrNotPresentForEntity)
	assert.NoError(t, errAfter)
	assert.Equal(t, 42, got.hp)
}
