// Package eventqueue is a typed pub/sub event system: producers push
// typed events during a schedule run, and registered readers drain
// them with independent read cursors once the frame boundary swaps the
// front and back buffers. Grounded on the original's bizarre_event
// crate (event_queue.rs, event_reader.rs, typed_event_queue.rs).
package eventqueue

// Reader is a handle returned by EventQueue.NewReader, identifying one
// consumer's read cursor into every event type it has registered for.
// Its zero value is never valid: id 0 would collide with the "next
// reader" counter's start, so ids are minted starting at 1.
type Reader struct {
	id int
}
