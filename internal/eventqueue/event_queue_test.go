package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type damageEvent struct {
	amount int
}

func Test_EventQueue_NewReaderAssignsIncreasingIDs(t *testing.T) {
	// Arrange
	q := New()

	// Act
	r0 := q.NewReader()
	r1 := q.NewReader()

	// Assert
	assert.Equal(t, 1, r0.id)
	assert.Equal(t, 2, r1.id)
}

func Test_EventQueue_PushIsInvisibleUntilChangeFrames(t *testing.T) {
	// Arrange
	q := New()
	reader := q.NewReader()
	Register[damageEvent](q, reader)

	// Act
	Push(q, damageEvent{amount: 10})
	_, ok := Poll[damageEvent](q, reader)

	// Assert
	assert.False(t, ok)
}

func Test_EventQueue_ChangeFramesMakesPushedEventsPollable(t *testing.T) {
	// Arrange
	q := New()
	reader := q.NewReader()
	Register[damageEvent](q, reader)
	Push(q, damageEvent{amount: 10})

	// Act
	q.ChangeFrames()
	event, ok := Poll[damageEvent](q, reader)

	// Assert
	assert.True(t, ok)
	assert.Equal(t, 10, event.amount)
}

func Test_EventQueue_EachReaderHasIndependentCursor(t *testing.T) {
	// Arrange
	q := New()
	early := q.NewReader()
	late := q.NewReader()
	Register[damageEvent](q, early)
	Push(q, damageEvent{amount: 1})
	q.ChangeFrames()

	// Act
	_, _ = Poll[damageEvent](q, early)
	Register[damageEvent](q, late)
	pulled := Pull[damageEvent](q, late)

	// Assert
	assert.Len(t, pulled, 1)
}

func Test_EventQueue_PullDrainsAllUnreadEvents(t *testing.T) {
	// Arrange
	q := New()
	reader := q.NewReader()
	Register[damageEvent](q, reader)
	Push(q, damageEvent{amount: 1})
	Push(q, damageEvent{amount: 2})
	q.ChangeFrames()

	// Act
	pulled := Pull[damageEvent](q, reader)
	pulledAgain := Pull[damageEvent](q, reader)

	// Assert
	assert.Len(t, pulled, 2)
	assert.Empty(t, pulledAgain)
}

func Test_EventQueue_ChangeFramesResetsReaderCursors(t *testing.T) {
	// Arrange
	q := New()
	reader := q.NewReader()
	Register[damageEvent](q, reader)
	Push(q, damageEvent{amount: 1})
	q.ChangeFrames()
	_, _ = Poll[damageEvent](q, reader)

	// Act: new frame with no new events
	q.ChangeFrames()
	_, ok := Poll[damageEvent](q, reader)

	// Act: next frame carries one event, read from the start again
	Push(q, damageEvent{amount: 2})
	q.ChangeFrames()
	event, okNext := Poll[damageEvent](q, reader)

	// Assert
	assert.False(t, ok)
	assert.True(t, okNext)
	assert.Equal(t, 2, event.amount)
}
