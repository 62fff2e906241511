package render

// Scene is a ring of Frames of length maxFramesInFlight, an ID
// allocator with a recycle queue, and the fan-out API a producer
// drives between frames (spec.md §3, "Scene"; §4.11). Ports Scene
// (scene/mod.rs).
type Scene struct {
	frames       []*Frame
	currentFrame int
	nextID       RenderObjectID
	idRecycling  []RenderObjectID
}

// NewScene allocates a Scene with maxFramesInFlight independent
// Frames, each converging on the same logical object set on its own
// schedule.
func NewScene(maxFramesInFlight int) *Scene {
	frames := make([]*Frame, maxFramesInFlight)
	for i := range frames {
		frames[i] = NewFrame()
	}
	return &Scene{frames: frames}
}

// SetLogger installs l on every frame in the Scene's ring.
func (s *Scene) SetLogger(l Logger) {
	for _, f := range s.frames {
		f.SetLogger(l)
	}
}

// AddObject mints or recycles an ID and fans the Add out to every
// frame state, matching spec.md §4.11: "each fans the change out to
// every frame state (every frame in flight must independently
// converge)".
func (s *Scene) AddObject(object RenderObject) RenderObjectID {
	var id RenderObjectID
	if n := len(s.idRecycling); n > 0 {
		id = s.idRecycling[n-1]
		s.idRecycling = s.idRecycling[:n-1]
	} else {
		id = s.nextID
		s.nextID++
	}
	for _, f := range s.frames {
		f.AddObject(id, object)
	}
	return id
}

func (s *Scene) UpdateObject(id RenderObjectID, instance InstanceData) {
	for _, f := range s.frames {
		f.UpdateObject(id, instance)
	}
}

func (s *Scene) RemoveObject(id RenderObjectID) {
	for _, f := range s.frames {
		f.RemoveObject(id)
	}
	s.idRecycling = append(s.idRecycling, id)
}

func (s *Scene) UpdateSceneUniform(u SceneUniform) {
	for _, f := range s.frames {
		f.UpdateSceneUniform(u)
	}
}

// NextFrame advances the current-frame cursor modulo the ring length
// and returns the new index (spec.md §8, "After next_frame() is
// called N times, the current-frame cursor equals N mod
// ring_length").
func (s *Scene) NextFrame() int {
	s.currentFrame = (s.currentFrame + 1) % len(s.frames)
	return s.currentFrame
}

// CurrentFrame returns the Frame at the current ring position.
func (s *Scene) CurrentFrame() *Frame {
	return s.frames[s.currentFrame]
}

// SyncCurrentFrame drains and realizes the current frame's pending
// changes. The scheduler (spec.md §5, "Scene concurrency") guarantees
// this never overlaps a consumer reading that same frame's buffers.
func (s *Scene) SyncCurrentFrame(store MeshStore) error {
	return s.frames[s.currentFrame].SyncFrameData(store)
}

// IndirectIterItem is one batch's contiguous span of indirect draw
// commands (spec.md §6, "Scene draw iterator"). Offset counts
// commands rather than bytes: this port's indirect buffer is a typed
// host slice (GPUBuffer[DrawIndexedIndirectCommand]), not a raw byte
// buffer a real graphics API would stride into, so there is no
// separate byte offset to report.
type IndirectIterItem struct {
	Materials RenderObjectMaterials
	Offset    uint32
	Count     uint32
}

// IndirectDrawIterator returns the current frame's indirect command
// buffer alongside one IndirectIterItem per batch in batch order,
// each spanning the contiguous commands rebuildIndirects emitted for
// it.
func (s *Scene) IndirectDrawIterator() (*GPUBuffer[DrawIndexedIndirectCommand], []IndirectIterItem) {
	frame := s.frames[s.currentFrame]
	items := make([]IndirectIterItem, 0, len(frame.batches))

	var offset uint32
	for i, batch := range frame.batches {
		count := uint32(0)
		if i < len(frame.indirectHelpers) {
			count = uint32(frame.indirectHelpers[i])
		}
		items = append(items, IndirectIterItem{Materials: batch.materials, Offset: offset, Count: count})
		offset += count
	}
	return frame.indirectBuffer, items
}
