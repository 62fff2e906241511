package ecs

// Query element types. The original expresses a QueryData tuple as a
// variadic macro over QueryElement types up to 14-wide; Go generics
// have no variadic type parameters, so the same shape is spelled out
// here as Query1..Query4, which covers every query the rendering and
// gameplay systems in this engine actually need. Widen with a Query5
// if a system ever needs more.

// Item1 is the yielded element for a single-component Query1.
type Item1[A any] struct {
	Entity Entity
	A      *A
}

// Query1 iterates every entity carrying an A component, in ascending
// entity-index order.
type Query1[A any] struct {
	world *World
}

func NewQuery1[A any](w *World) Query1[A] {
	return Query1[A]{world: w}
}

func (q Query1[A]) Iter() ([]Item1[A], error) {
	maskA, err := MaskFor[A](q.world.components)
	if err != nil {
		return nil, err
	}

	entities := q.world.components.FilterEntities(maskA)
	out := make([]Item1[A], 0, len(entities))
	for _, e := range entities {
		a, err := Get[A](q.world.components, e)
		if err != nil {
			continue
		}
		out = append(out, Item1[A]{Entity: e, A: a})
	}
	return out, nil
}

// Item2 is the yielded element for a two-component Query2.
type Item2[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

// Query2 iterates every entity carrying both an A and a B component.
type Query2[A, B any] struct {
	world *World
}

func NewQuery2[A, B any](w *World) Query2[A, B] {
	return Query2[A, B]{world: w}
}

func (q Query2[A, B]) Iter() ([]Item2[A, B], error) {
	maskA, err := MaskFor[A](q.world.components)
	if err != nil {
		return nil, err
	}
	maskB, err := MaskFor[B](q.world.components)
	if err != nil {
		return nil, err
	}

	entities := q.world.components.FilterEntities(maskA.Or(maskB))
	out := make([]Item2[A, B], 0, len(entities))
	for _, e := range entities {
		a, errA := Get[A](q.world.components, e)
		b, errB := Get[B](q.world.components, e)
		if errA != nil || errB != nil {
			continue
		}
		out = append(out, Item2[A, B]{Entity: e, A: a, B: b})
	}
	return out, nil
}

// Item3 is the yielded element for a three-component Query3.
type Item3[A, B, C any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
}

// Query3 iterates every entity carrying an A, a B, and a C component.
type Query3[A, B, C any] struct {
	world *World
}

func NewQuery3[A, B, C any](w *World) Query3[A, B, C] {
	return Query3[A, B, C]{world: w}
}

func (q Query3[A, B, C]) Iter() ([]Item3[A, B, C], error) {
	maskA, err := MaskFor[A](q.world.components)
	if err != nil {
		return nil, err
	}
	maskB, err := MaskFor[B](q.world.components)
	if err != nil {
		return nil, err
	}
	maskC, err := MaskFor[C](q.world.components)
	if err != nil {
		return nil, err
	}

	entities := q.world.components.FilterEntities(maskA.Or(maskB).Or(maskC))
	out := make([]Item3[A, B, C], 0, len(entities))
	for _, e := range entities {
		a, errA := Get[A](q.world.components, e)
		b, errB := Get[B](q.world.components, e)
		c, errC := Get[C](q.world.components, e)
		if errA != nil || errB != nil || errC != nil {
			continue
		}
		out = append(out, Item3[A, B, C]{Entity: e, A: a, B: b, C: c})
	}
	return out, nil
}

// Item4 is the yielded element for a four-component Query4.
type Item4[A, B, C, D any] struct {
	Entity Entity
	A      *A
	B      *B
	C      *C
	D      *D
}

// Query4 iterates every entity carrying an A, B, C, and D component.
type Query4[A, B, C, D any] struct {
	world *World
}

func NewQuery4[A, B, C, D any](w *World) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{world: w}
}

func (q Query4[A, B, C, D]) Iter() ([]Item4[A, B, C, D], error) {
	maskA, err := MaskFor[A](q.world.components)
	if err != nil {
		return nil, err
	}
	maskB, err := MaskFor[B](q.world.components)
	if err != nil {
		return nil, err
	}
	maskC, err := MaskFor[C](q.world.components)
	if err != nil {
		return nil, err
	}
	maskD, err := MaskFor[D](q.world.components)
	if err != nil {
		return nil, err
	}

	entities := q.world.components.FilterEntities(maskA.Or(maskB).Or(maskC).Or(maskD))
	out := make([]Item4[A, B, C, D], 0, len(entities))
	for _, e := range entities {
		a, errA := Get[A](q.world.components, e)
		b, errB := Get[B](q.world.components, e)
		c, errC := Get[C](q.world.components, e)
		d, errD := Get[D](q.world.components, e)
		if errA != nil || errB != nil || errC != nil || errD != nil {
			continue
		}
		out = append(out, Item4[A, B, C, D]{Entity: e, A: a, B: b, C: c, D: d})
	}
	return out, nil
}
