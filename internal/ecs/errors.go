package ecs

import "errors"

// Recoverable errors (spec.md §7): data-shape errors from client
// misuse of the registry or storage are returned to the caller, never
// panicked.
var (
	// ErrOutOfBounds is returned when an operation addresses a slot
	// beyond a storage's current capacity.
	ErrOutOfBounds = errors.New("ecs: index out of bounds")

	// ErrNotPresentStorage is returned when a component type has no
	// registered storage.
	ErrNotPresentStorage = errors.New("ecs: no storage registered for component type")

	// ErrAlreadyPresent names the "component already present for
	// entity" kind. Insert does not return it: inserting over a live
	// component replaces the stored value.
	ErrAlreadyPresent = errors.New("ecs: component already present for entity")

	// ErrNotPresentForEntity is returned when an entity has no value in
	// a storage that does exist.
	ErrNotPresentForEntity = errors.New("ecs: component not present for entity")

	// ErrResourceNotPresent is returned when the resource table has no
	// boxed value for the requested type.
	ErrResourceNotPresent = errors.New("ecs: resource not present")
)

// Fatal configuration/logic errors (spec.md §7): these indicate a bug
// in how the caller assembled the world, not bad input data, so they
// panic rather than returning an error value. They are kept as
// sentinel strings so panic recoveries in tests can match on them.
const (
	ErrDoubleKill           = "ecs: double kill"
	ErrInfeasibleOrdering   = "ecs: infeasible system ordering"
	ErrDoubleScheduleInsert = "ecs: schedule already exists"
)
