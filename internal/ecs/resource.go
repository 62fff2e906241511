package ecs

import "reflect"

// ResourceTable holds at most one boxed value per type: the World's
// singleton slot for cross-cutting state systems read or write without
// an owning entity (spec.md §4.4). Values are kept behind a pointer so
// ResMut can hand out a stable address; the original keeps this as a
// raw pointer with a type-erased drop_fn, Go's interface{} already
// boxes the type tag so no unsafe punning is needed here.
type ResourceTable struct {
	values map[reflect.Type]any
}

// NewResourceTable returns an empty ResourceTable.
func NewResourceTable() *ResourceTable {
	return &ResourceTable{values: make(map[reflect.Type]any)}
}

// InsertResource stores v as the sole R resource, replacing any prior
// value of the same type.
func InsertResource[R any](t *ResourceTable, v R) {
	t.values[reflect.TypeFor[R]()] = &v
}

// RemoveResource deletes and returns the R resource, if present.
func RemoveResource[R any](t *ResourceTable) (R, bool) {
	typ := reflect.TypeFor[R]()
	v, ok := t.values[typ]
	if !ok {
		var zero R
		return zero, false
	}
	delete(t.values, typ)
	return *v.(*R), true
}

// GetResource returns a pointer to the R resource, or
// ErrResourceNotPresent. Res[R] and ResMut[R] both go through this;
// the distinction between read-only and mutable access is enforced by
// the system parameter wrapper, not by the table.
func GetResource[R any](t *ResourceTable) (*R, error) {
	v, ok := t.values[reflect.TypeFor[R]()]
	if !ok {
		return nil, ErrResourceNotPresent
	}
	return v.(*R), nil
}

// HasResource reports whether an R resource is present.
func HasResource[R any](t *ResourceTable) bool {
	_, ok := t.values[reflect.TypeFor[R]()]
	return ok
}
