package eventqueue

import "reflect"

// EventQueue is the World-resource a game registers once and every
// system reaches for through Push/Pull. One typedQueue lives per event
// type, keyed by reflect.Type the same way ecs.ComponentRegistry keys
// storages — the original keys on TypeId for the same reason.
type EventQueue struct {
	queues       map[reflect.Type]erasedQueue
	nextReaderID int
}

// New returns an empty EventQueue.
func New() *EventQueue {
	return &EventQueue{
		queues:       make(map[reflect.Type]erasedQueue),
		nextReaderID: 1,
	}
}

// NewReader mints a fresh Reader. The Reader must still be registered
// for every event type it intends to follow via Register.
func (q *EventQueue) NewReader() Reader {
	r := Reader{id: q.nextReaderID}
	q.nextReaderID++
	return r
}

func queueFor[E any](q *EventQueue) *typedQueue[E] {
	t := reflect.TypeFor[E]()
	existing, ok := q.queues[t]
	if ok {
		return existing.(*typedQueue[E])
	}
	tq := newTypedQueue[E]()
	q.queues[t] = tq
	return tq
}

// Register subscribes reader to event type E. Safe to call more than
// once for the same (reader, E) pair.
func Register[E any](q *EventQueue, reader Reader) {
	queueFor[E](q).addReader(reader)
}

// Push queues an E event for delivery once the next ChangeFrames call
// swaps buffers.
func Push[E any](q *EventQueue, event E) {
	queueFor[E](q).push(event)
}

// Poll returns the next unread E event for reader, or false if caught
// up.
func Poll[E any](q *EventQueue, reader Reader) (E, bool) {
	return queueFor[E](q).poll(reader)
}

// Pull drains every unread E event for reader in one call.
func Pull[E any](q *EventQueue, reader Reader) []E {
	return queueFor[E](q).pull(reader)
}

// ChangeFrames swaps every registered queue's front and back buffers
// and resets every reader's cursor. Call once per frame boundary,
// analogous to flushing a World's deferred commands (spec.md §5).
func (q *EventQueue) ChangeFrames() {
	for _, tq := range q.queues {
		tq.swapBuffers()
	}
}
