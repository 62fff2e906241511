package ecs

import "fmt"

// World is the integration point for every other piece of this
// package: entity allocation, component storage, resources, named
// schedules, and the deferred command queue systems write into. Ports
// the original's World (spec.md §4, §5); unlike the original it holds
// no unsafe aliasing cell, since Go's single-goroutine-per-schedule-run
// discipline (enforced by RunSchedule taking w by value as *World, not
// handed out twice) already rules out the aliasing the original's
// UnsafeWorldCell exists to paper over.
type World struct {
	allocator  *Allocator
	components *ComponentRegistry
	resources  *ResourceTable
	schedules  map[Schedule]*SystemGraph
	deferred   *CommandBuffer
	logger     Logger
}

// NewWorld returns an empty World with no schedules and no logger
// wired (a noopLogger stands in until SetLogger installs a real one).
func NewWorld() *World {
	return &World{
		allocator:  NewAllocator(),
		components: NewComponentRegistry(),
		resources:  NewResourceTable(),
		schedules:  make(map[Schedule]*SystemGraph),
		deferred:   NewCommandBuffer(),
		logger:     noopLogger{},
	}
}

// SetLogger installs l as the World's logger and propagates it to
// every schedule already registered, plus every one added afterward.
func (w *World) SetLogger(l Logger) {
	w.logger = l
	for _, sg := range w.schedules {
		sg.SetLogger(l)
	}
}

// CreateEntity mints a bare entity with no components.
func (w *World) CreateEntity() Entity {
	e, reused := w.allocator.NewEntity()
	if !reused {
		w.components.Expand()
	}
	return e
}

// Kill recycles e's index and runs drop-glue for every component it
// carries.
func (w *World) Kill(e Entity) {
	if w.allocator.isDead(e) {
		w.logger.Errorf("%s: entity %s is already dead", ErrDoubleKill, e)
	}
	w.allocator.Kill(e)
	w.components.RemoveEntity(e)
}

// RegisterComponentIn registers T's storage, a no-op if already
// registered.
func RegisterComponentIn[T any](w *World) {
	RegisterComponent[T](w.components)
}

// InsertComponent writes v as e's T component immediately (not
// deferred — use Commands from a system body for deferred writes).
func InsertComponent[T any](w *World, e Entity, v T) error {
	return Insert(w.components, e, v)
}

// Component reads e's T component.
func Component[T any](w *World, e Entity) (*T, error) {
	return Get[T](w.components, e)
}

// RemoveComponent deletes e's T component, returning it if present.
func RemoveComponent[T any](w *World, e Entity) (T, bool) {
	return Remove[T](w.components, e)
}

// SetResource stores v as the World's sole R resource.
func SetResource[R any](w *World, v R) {
	InsertResource(w.resources, v)
}

// GetWorldResource reads the World's R resource.
func GetWorldResource[R any](w *World) (*R, error) {
	return GetResource[R](w.resources)
}

// AddSchedule registers an empty SystemGraph under name, panicking
// with ErrDoubleScheduleInsert if one already exists.
func (w *World) AddSchedule(name Schedule) {
	if _, ok := w.schedules[name]; ok {
		w.logger.Errorf("%s: schedule %q already exists in this World", ErrDoubleScheduleInsert, name)
		panic(fmt.Sprintf("%s: schedule %q already exists in this World", ErrDoubleScheduleInsert, name))
	}
	sg := NewSystemGraph()
	sg.SetLogger(w.logger)
	w.schedules[name] = sg
}

// AddSystems appends systems to an existing schedule's graph.
func (w *World) AddSystems(name Schedule, systems ...System) {
	w.withSchedule(name, func(sg *SystemGraph) {
		sg.AddSystems(systems...)
	})
}

// InitSchedule flushes any pending deferred commands, then runs the
// named schedule's init pass.
func (w *World) InitSchedule(name Schedule) {
	w.Flush()
	w.withSchedule(name, func(sg *SystemGraph) {
		sg.InitSystems(w)
	})
}

// RunSchedule flushes pending deferred commands, runs the named
// schedule once, and queues whatever new commands that run produced
// for the next flush.
func (w *World) RunSchedule(name Schedule) error {
	w.Flush()

	var runErr error
	w.withSchedule(name, func(sg *SystemGraph) {
		w.logger.Debugf("running schedule %q", name)
		cmd, err := sg.RunSystems(w)
		runErr = err
		if !cmd.IsEmpty() {
			w.deferred.Append(cmd)
		}
	})
	return runErr
}

func (w *World) withSchedule(name Schedule, fn func(sg *SystemGraph)) {
	sg, ok := w.schedules[name]
	if !ok {
		panic(fmt.Sprintf("schedule %q does not exist in this World", name))
	}
	fn(sg)
}

// Flush applies every deferred command queued since the last flush.
func (w *World) Flush() {
	if w.deferred.IsEmpty() {
		return
	}
	w.deferred.Apply(w)
}

// EntityCount returns the number of currently-live entities.
func (w *World) EntityCount() uint64 {
	return w.allocator.Count()
}

// Close runs drop-glue for every live component across every
// registered storage. Call when tearing a World down for good.
func (w *World) Close() {
	w.components.Close()
}
