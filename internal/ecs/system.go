package ecs

import (
	"fmt"
	"reflect"
)

// System is a named, runnable unit of schedule logic. The original
// expresses a system's parameter list (Res<T>, ResMut<T>, Local<T>,
// Query<D>, Commands) as a SystemParam tuple the framework injects via
// a trait macro generated up to 16-wide; Go has neither variadic
// generics nor that kind of reflection-free injection, so a System
// here is a plain function over an explicit Context — the caller
// reaches for ecs.Res, ecs.ResMut, ecs.NewQuery1..4 and ctx.Commands
// directly, the same dependencies just named instead of inferred.
type System struct {
	Name string
	Run  func(ctx *Context) error

	// Before/After name systems this one must run strictly before or
	// after, within the same schedule. Mirrors the original's
	// SystemConfig ordering constraints (spec.md §4.6).
	Before []string
	After  []string

	// Reads/Writes declare which resource types this system touches.
	// Unused by the default serial RunSystems; RunParallel consults
	// them to keep conflicting systems out of the same concurrent
	// group. Populate with ResourceType[R]().
	Reads  []reflect.Type
	Writes []reflect.Type

	// ComponentReads/ComponentWrites declare which component types this
	// system touches through Query1..4. A query call is opaque to the
	// graph — it has no way to see inside the Run closure — so, same as
	// Reads/Writes, the author declares it here with ComponentType[C]()
	// for RunParallel's conflict detection to see.
	ComponentReads  []reflect.Type
	ComponentWrites []reflect.Type
}

// Context is what a System's Run function receives: the World it may
// read or mutate directly, and a CommandBuffer for mutations that must
// be deferred until the schedule finishes running (spec.md §4.5).
type Context struct {
	World    *World
	Commands *CommandBuffer
}

// Res reads a resource, panicking if it was never inserted — matching
// the original's Res::get_item, which panics rather than forcing every
// system to thread through a missing-resource error path.
func Res[R any](ctx *Context) *R {
	v, err := GetResource[R](ctx.World.resources)
	if err != nil {
		panic(fmt.Sprintf("resource %T not present", *new(R)))
	}
	return v
}

// ResMut is Res with intent to mutate; the underlying table makes no
// read/write distinction itself; access-conflict checking (when
// enabled) is done from the System's declared access set, not here.
func ResMut[R any](ctx *Context) *R {
	return Res[R](ctx)
}

// TryRes is Res without the panic, for systems that tolerate an absent
// resource (e.g. optional subsystems not wired into this World).
func TryRes[R any](ctx *Context) (*R, error) {
	return GetResource[R](ctx.World.resources)
}

// Commands is a thin, typed façade over a Context's CommandBuffer.
type Commands struct {
	buf *CommandBuffer
}

// Cmd returns ctx's Commands façade.
func Cmd(ctx *Context) Commands {
	return Commands{buf: ctx.Commands}
}

// Spawn defers creating a bare entity.
func (c Commands) Spawn() {
	c.buf.Push(spawnEntityCommand{})
}

// Kill defers killing e.
func (c Commands) Kill(e Entity) {
	c.buf.Push(killCommand{entity: e})
}

// InsertDeferred defers inserting v as e's T component.
func InsertDeferred[T any](c Commands, e Entity, v T) {
	c.buf.Push(insertCommand[T]{entity: e, value: v})
}

// RemoveDeferred defers removing e's T component.
func RemoveDeferred[T any](c Commands, e Entity) {
	c.buf.Push(removeCommand[T]{entity: e})
}

// InsertResourceDeferred defers inserting a resource.
func InsertResourceDeferred[R any](c Commands, v R) {
	c.buf.Push(insertResourceCommand[R]{value: v})
}

// Local holds state private to one system, surviving across runs of
// its schedule. The original injects Local<T> as a SystemParam backed
// by per-system state the framework owns; here the System's Run
// closure owns a *Local[T] directly, since a Go closure already gives
// a system exactly this "state that outlives one call, invisible to
// everyone else" shape without a DI layer to emulate it.
type Local[T any] struct {
	value T
}

// NewLocal returns a Local seeded with T's zero value, for a system's
// closure to capture.
func NewLocal[T any]() *Local[T] {
	return &Local[T]{}
}

// Get returns a pointer to the local value.
func (l *Local[T]) Get() *T {
	return &l.value
}
