package eventqueue

import "github.com/ahryshan/bizarre-engine/internal/ecs"

// FromWorld fetches the EventQueue resource a World was set up with,
// panicking if none was installed — mirroring the original's Events<T>
// system param, which panics rather than letting a system silently see
// zero events when the world was simply never wired for them.
func FromWorld(w *ecs.World) *EventQueue {
	q, err := ecs.GetWorldResource[*EventQueue](w)
	if err != nil {
		panic("eventqueue: no EventQueue resource installed on this World")
	}
	return *q
}

// PullFromContext drains every unread E event for reader from the
// Context's World-resident EventQueue. The idiomatic stand-in for the
// original's Events<T> SystemParam: a system calls this directly with
// its own Reader (created once, typically stored in an ecs.Local),
// instead of the framework injecting it via reflection.
func PullFromContext[E any](ctx *ecs.Context, reader Reader) []E {
	return Pull[E](FromWorld(ctx.World), reader)
}
