package ecs

import (
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"
)

// SystemGraph holds one schedule's systems in dependency-satisfying
// run order. The prototype's own insertion algorithm (system_graph.rs)
// ships with its conflict check as an unimplemented todo!() and, on
// inspection, positions a no-Before/After system just before the
// current last entry rather than appending it — both signs this path
// was never finished upstream. This port instead computes, per
// insertion, the earliest index any After name allows and the latest
// index any Before name allows, and inserts at the latest index
// provided it is not earlier than the earliest one (spec.md §4.6).
type SystemGraph struct {
	systems []System
	logger  Logger
}

// NewSystemGraph returns an empty SystemGraph with no logger wired.
func NewSystemGraph() *SystemGraph {
	return &SystemGraph{logger: noopLogger{}}
}

// SetLogger installs the Logger used to report infeasible-ordering
// panics. A World wires its own logger into every graph it owns.
func (g *SystemGraph) SetLogger(l Logger) {
	g.logger = l
}

// AddSystem inserts s into the graph, panicking with
// ErrInfeasibleOrdering if its Before/After constraints cannot be
// satisfied by any position. Only names already in the graph are
// considered: a Before/After name for a system added later is ignored,
// and systems already placed are never moved by a later insertion.
func (g *SystemGraph) AddSystem(s System) {
	if len(s.Before) == 0 && len(s.After) == 0 {
		g.systems = append(g.systems, s)
		return
	}

	earliest := 0
	for i, sys := range g.systems {
		if containsName(s.After, sys.Name) && i+1 > earliest {
			earliest = i + 1
		}
	}

	latest := len(g.systems)
	for i, sys := range g.systems {
		if containsName(s.Before, sys.Name) && i < latest {
			latest = i
		}
	}

	if earliest > latest {
		g.logger.Errorf("%s: system %q wants After=%v Before=%v, no position in %d systems satisfies both",
			ErrInfeasibleOrdering, s.Name, s.After, s.Before, len(g.systems))
		panic(fmt.Sprintf("%s: cannot insert system %q, its Before/After constraints cannot be satisfied (after=%v before=%v)",
			ErrInfeasibleOrdering, s.Name, s.After, s.Before))
	}

	g.systems = append(g.systems, System{})
	copy(g.systems[latest+1:], g.systems[latest:])
	g.systems[latest] = s
}

// AddSystems inserts every system in order.
func (g *SystemGraph) AddSystems(systems ...System) {
	for _, s := range systems {
		g.AddSystem(s)
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// InitSystems is the schedule's init pass. System has no init hook, so
// the pass does nothing to the systems or to w.
func (g *SystemGraph) InitSystems(w *World) {
	// No system in this engine currently needs a distinct init pass
	// beyond what its Run closure already does on first call (Local's
	// zero value stands in for Rust's Default::default() seeding) —
	// kept as a named pass because schedules are initialized before
	// their first run (spec.md §5) and a future system may need it.
	_ = w
}

// RunSystems runs every system in order against w, collecting their
// deferred commands into one CommandBuffer.
func (g *SystemGraph) RunSystems(w *World) (*CommandBuffer, error) {
	out := NewCommandBuffer()
	for _, s := range g.systems {
		cmd := NewCommandBuffer()
		ctx := &Context{World: w, Commands: cmd}
		if err := s.Run(ctx); err != nil {
			return out, fmt.Errorf("system %q: %w", s.Name, err)
		}
		out.Append(cmd)
	}
	return out, nil
}

// RunParallel runs systems concurrently within conflict-free groups:
// two systems share a group only if neither writes a resource or
// component type the other reads or writes, and neither names the
// other in its Before/After set. This is the opt-in path spec.md §5
// allows ("systems MAY run in parallel"); the default RunSystems stays
// serial and never checks access at all.
func (g *SystemGraph) RunParallel(w *World) (*CommandBuffer, error) {
	out := NewCommandBuffer()
	groups := groupByConflict(g.systems)

	for _, group := range groups {
		eg := errgroup.Group{}
		buffers := make([]*CommandBuffer, len(group))

		for i, s := range group {
			i, s := i, s
			buffers[i] = NewCommandBuffer()
			eg.Go(func() error {
				ctx := &Context{World: w, Commands: buffers[i]}
				return s.Run(ctx)
			})
		}

		if err := eg.Wait(); err != nil {
			return out, err
		}

		for _, buf := range buffers {
			out.Append(buf)
		}
	}

	return out, nil
}

// groupByConflict partitions systems into ordered groups such that no
// two systems sharing a group conflict, and a system's group index is
// strictly greater than that of every system earlier in graph order
// that it names in its After set or that names it in a Before set — so
// two systems connected by an explicit ordering dependency never land
// in the same concurrent group. Greedy: walk systems in graph order
// (the order AddSystem built, which honors each constraint whose named
// system was already in the graph at insertion), placing each into the
// earliest eligible existing group, or a new one.
func groupByConflict(systems []System) [][]System {
	var groups [][]System
	groupOf := make(map[string]int, len(systems))

	for _, s := range systems {
		minGroup := 0
		for _, name := range s.After {
			if gi, ok := groupOf[name]; ok && gi+1 > minGroup {
				minGroup = gi + 1
			}
		}
		for _, other := range systems {
			gi, ok := groupOf[other.Name]
			if ok && containsName(other.Before, s.Name) && gi+1 > minGroup {
				minGroup = gi + 1
			}
		}

		placed := false
		for gi := minGroup; gi < len(groups); gi++ {
			if !conflictsWithGroup(s, groups[gi]) {
				groups[gi] = append(groups[gi], s)
				groupOf[s.Name] = gi
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []System{s})
			groupOf[s.Name] = len(groups) - 1
		}
	}

	return groups
}

func conflictsWithGroup(s System, group []System) bool {
	for _, other := range group {
		if systemsConflict(s, other) {
			return true
		}
	}
	return false
}

// systemsConflict reports whether a and b cannot safely share a
// concurrent group: either one names the other in its Before/After
// set, or one writes a resource or component type the other reads or
// writes.
func systemsConflict(a, b System) bool {
	if namesRelated(a, b) {
		return true
	}
	if accessConflicts(a.Writes, a.Reads, b.Writes, b.Reads) {
		return true
	}
	return accessConflicts(a.ComponentWrites, a.ComponentReads, b.ComponentWrites, b.ComponentReads)
}

func namesRelated(a, b System) bool {
	return containsName(a.Before, b.Name) || containsName(a.After, b.Name) ||
		containsName(b.Before, a.Name) || containsName(b.After, a.Name)
}

func accessConflicts(aWrites, aReads, bWrites, bReads []reflect.Type) bool {
	for _, w := range aWrites {
		for _, r := range bReads {
			if w == r {
				return true
			}
		}
		for _, w2 := range bWrites {
			if w == w2 {
				return true
			}
		}
	}
	for _, w := range bWrites {
		for _, r := range aReads {
			if w == r {
				return true
			}
		}
	}
	return false
}

// ResourceType is a convenience for populating System.Reads/Writes
// from a Go type parameter, e.g. Reads: []reflect.Type{ResourceType[Clock]()}.
func ResourceType[R any]() reflect.Type {
	return reflect.TypeFor[R]()
}

// ComponentType is a convenience for populating
// System.ComponentReads/ComponentWrites from a Go type parameter, e.g.
// ComponentReads: []reflect.Type{ComponentType[Transform]()}.
func ComponentType[C any]() reflect.Type {
	return reflect.TypeFor[C]()
}
