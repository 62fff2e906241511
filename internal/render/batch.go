package render

import "sort"

// RenderBatch is a contiguous run of instances in a frame sharing a
// mesh and material-instance set (GLOSSARY, "Batch"). Ports
// RenderBatch (render_batch.rs).
type RenderBatch struct {
	mesh      MeshHandle
	materials RenderObjectMaterials
	offset    int
	count     int
	holes     []int // queue of unused positions within [0, count)
}

// InstanceRange is a maximal run of [Start, End) live (non-hole)
// local indices within a batch.
type InstanceRange struct {
	Start int
	End   int
}

func (r InstanceRange) Len() int { return r.End - r.Start }

// InstanceRanges sorts the batch's holes and walks them to produce
// the ordered list of maximal sub-ranges of [0, count) that contain
// no hole (spec.md §4.10, "instance_ranges algorithm"). An empty
// batch yields no ranges.
func (b *RenderBatch) InstanceRanges() []InstanceRange {
	if b.count == 0 {
		return nil
	}
	if len(b.holes) == 0 {
		return []InstanceRange{{Start: 0, End: b.count}}
	}

	sorted := append([]int(nil), b.holes...)
	sort.Ints(sorted)

	var ranges []InstanceRange
	start := 0
	for _, hole := range sorted {
		if hole > start {
			ranges = append(ranges, InstanceRange{Start: start, End: hole})
		}
		start = hole + 1
	}
	if start < b.count {
		ranges = append(ranges, InstanceRange{Start: start, End: b.count})
	}
	return ranges
}

// popHole removes and returns the first free hole, if any.
func (b *RenderBatch) popHole() (int, bool) {
	if len(b.holes) == 0 {
		return 0, false
	}
	h := b.holes[0]
	b.holes = b.holes[1:]
	return h, true
}

// pushHole returns local to the free list.
func (b *RenderBatch) pushHole(local int) {
	b.holes = append(b.holes, local)
}

func (b *RenderBatch) matches(key batchKey) bool {
	return b.mesh == key.mesh && b.materials == key.materials
}
