package render

// RenderObjectID identifies one renderable object across the scene's
// frame-in-flight ring. Ports RenderObjectId (scene/mod.rs); minted
// and recycled by Scene, never by a Frame directly.
type RenderObjectID uint64

// SceneObjectPass is the render pass a material instance is bound
// for. Ports the original's SceneObjectPass enum (object_pass.rs).
// Restored per SPEC_FULL's SUPPLEMENTED FEATURES: spec.md names
// RenderObjectMaterials without spelling out what it is indexed by.
type SceneObjectPass int

const (
	PassDeferred SceneObjectPass = iota
	PassForward
	PassLighting
	passCount
)

// RenderObjectFlags marks which passes a RenderObject participates
// in. Ports RenderObjectFlags (render_object.rs); a bit never implies
// its corresponding RenderObjectMaterials slot is populated, only that
// the object wants to be iterated in that pass.
type RenderObjectFlags uint8

const (
	DeferredPass RenderObjectFlags = 1 << iota
	ForwardPass
	LightingPass
)

func (f RenderObjectFlags) Has(bit RenderObjectFlags) bool {
	return f&bit != 0
}

// RenderObjectMaterials holds one material-instance handle per pass,
// indexed by SceneObjectPass. A nil entry means the object does not
// draw in that pass regardless of its RenderObjectFlags.
type RenderObjectMaterials [passCount]MaterialInstanceHandle

// MaterialInstanceHandle identifies a bound material instance. Opaque
// to the scene, same treatment as MeshHandle: it only ever
// participates in batch-key equality.
type MaterialInstanceHandle uint32

// batchKey is the (mesh, material-set) pair a batch is keyed by
// during Add (spec.md §4.10: "choose the batch whose (mesh,
// material-set) matches the object").
type batchKey struct {
	mesh      MeshHandle
	materials RenderObjectMaterials
}

// RenderObject is the data a producer hands to Scene.AddObject:
// which passes it participates in, its bound materials, the mesh it
// draws, and its initial instance data.
type RenderObject struct {
	Flags     RenderObjectFlags
	Materials RenderObjectMaterials
	Mesh      MeshHandle
	Instance  InstanceData
}

func (o RenderObject) key() batchKey {
	return batchKey{mesh: o.Mesh, materials: o.Materials}
}

// InstanceData is the per-instance payload written into a frame's
// instance buffer. A 4x4 transform matrix, matching the original's
// InstanceData { transform: Mat4 } (scene/mod.rs).
type InstanceData struct {
	Transform [16]float32
}

// SceneUniform is the per-scene camera uniform, written straight
// through to a frame's uniform buffer, with no dirty flag, when that
// frame's SyncFrameData processes the update (spec.md §4.10, "Scene
// uniform update").
type SceneUniform struct {
	View       [16]float32
	Projection [16]float32
}
