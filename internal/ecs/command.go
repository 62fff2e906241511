package ecs

// Command is a unit of deferred World mutation. Systems that only
// borrow the World read-only queue Commands instead of mutating it
// directly; the World applies them at its next Flush, which
// RunSchedule and InitSchedule perform before running (spec.md §4.5).
type Command interface {
	Apply(w *World)
}

// CommandBuffer is an ordered queue of deferred Commands. The original
// packs commands into a raw byte buffer behind an unsafe read_unaligned
// so one Vec<u8> can hold heterogeneous command types; Go has no safe
// equivalent; a []Command slice gets the same "heterogeneous queue,
// applied once, in order" behavior through ordinary interface dispatch.
type CommandBuffer struct {
	commands []Command
}

// NewCommandBuffer returns an empty CommandBuffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Push enqueues cmd.
func (b *CommandBuffer) Push(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Append moves every command from other onto the end of b, leaving
// other empty.
func (b *CommandBuffer) Append(other *CommandBuffer) {
	b.commands = append(b.commands, other.commands...)
	other.commands = nil
}

// IsEmpty reports whether b has no queued commands.
func (b *CommandBuffer) IsEmpty() bool {
	return len(b.commands) == 0
}

// Apply runs every queued command against w, in the order they were
// pushed, then clears the queue.
func (b *CommandBuffer) Apply(w *World) {
	for _, cmd := range b.commands {
		cmd.Apply(w)
	}
	b.commands = nil
}

// Discard clears the queue without applying its commands. Mirrors the
// original's Drop impl, which runs apply_or_drop_queued(None): commands
// queued by a CommandBuffer that is abandoned before a flush are
// silently dropped rather than ever reaching the World.
func (b *CommandBuffer) Discard() {
	b.commands = nil
}

// spawnEntityCommand creates a bare entity, deferred.
type spawnEntityCommand struct{}

func (spawnEntityCommand) Apply(w *World) {
	w.CreateEntity()
}

// killCommand defers World.Kill.
type killCommand struct {
	entity Entity
}

func (c killCommand) Apply(w *World) {
	w.Kill(c.entity)
}

// insertCommand defers a typed component insert for an entity.
type insertCommand[T any] struct {
	entity Entity
	value  T
}

func (c insertCommand[T]) Apply(w *World) {
	_ = Insert(w.components, c.entity, c.value)
}

// removeCommand defers a typed component removal for an entity.
type removeCommand[T any] struct {
	entity Entity
}

func (c removeCommand[T]) Apply(w *World) {
	Remove[T](w.components, c.entity)
}

// insertResourceCommand defers ResourceTable insertion.
type insertResourceCommand[R any] struct {
	value R
}

func (c insertResourceCommand[R]) Apply(w *World) {
	InsertResource(w.resources, c.value)
}
