package render

// GPUBuffer is a host-memory stand-in for the original's GpuBuffer
// (ash::vk + vma backed). spec.md's Non-goals exclude a specific
// graphics API dialect, so the scene never maps real device memory:
// it keeps a plain growable slice and exposes the same Write/
// FlushRange shape a real mapped-memory backend would, so swapping in
// one later only touches this file.
type GPUBuffer[T any] struct {
	data []T
}

// NewGPUBuffer allocates a buffer with initialLen zero-valued
// elements, matching the original's INITIAL_*_LEN preallocation
// constants (scene/mod.rs).
func NewGPUBuffer[T any](initialLen int) *GPUBuffer[T] {
	return &GPUBuffer[T]{data: make([]T, initialLen)}
}

func (b *GPUBuffer[T]) Len() int {
	return len(b.data)
}

// GrowTo ensures the buffer holds at least n elements, appending
// zero values as needed. A no-op if already large enough.
func (b *GPUBuffer[T]) GrowTo(n int) {
	if n <= len(b.data) {
		return
	}
	b.data = append(b.data, make([]T, n-len(b.data))...)
}

// Write copies values into the buffer starting at offset, growing the
// buffer first if the write would run past its current length.
func (b *GPUBuffer[T]) Write(offset int, values []T) {
	b.GrowTo(offset + len(values))
	copy(b.data[offset:], values)
}

// FlushRange is the point at which a real backend would flush mapped
// memory for [offset, offset+count) to the device. Host memory needs
// no flush; this exists so sync paths read the same as the original's
// map/write/flush sequence (scene_frame.rs).
func (b *GPUBuffer[T]) FlushRange(offset, count int) {}

// MapSlice returns the live backing slice for direct reads, mirroring
// a real backend's persistently-mapped pointer.
func (b *GPUBuffer[T]) MapSlice() []T {
	return b.data
}

func (b *GPUBuffer[T]) Set(i int, v T) {
	b.GrowTo(i + 1)
	b.data[i] = v
}

func (b *GPUBuffer[T]) Get(i int) T {
	return b.data[i]
}

// DrawIndexedIndirectCommand mirrors VkDrawIndexedIndirectCommand's
// field layout, the shape rebuild_indirects emits one of per
// contiguous instance run (spec.md §4.10, point 4).
type DrawIndexedIndirectCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}
