package ecs

// Schedule names one of a World's named run-groups (spec.md §5). The
// original keys schedules with a closed enum (Frame/Tick/Init); this
// engine's three stages are Init, Preupdate, and Update, so a plain
// string type stands in for the enum and any caller-defined name is
// still valid — useful for tests that want a scratch schedule with no
// collisions with the three the engine wires by default.
type Schedule string

const (
	Init      Schedule = "init"
	Preupdate Schedule = "preupdate"
	Update    Schedule = "update"
)
