// Package render implements the Scene: the deferred, lazily-synced
// renderable state a World's systems feed through RenderObject
// changes, grounded on crates/bizarre_render/src/scene (original_source)
// and restructured around host-memory GPUBuffer stand-ins since this
// module carries no real graphics API dialect (spec.md Non-goals).
package render

// Vertex is one renderable vertex. Ports vertex.rs, dropping its
// _pad0 alignment filler — a concern of the original's repr(C) layout
// for a real GPU upload, not of a host-memory Go stand-in.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// MeshHandle identifies a mesh within a MeshStore. Opaque to the
// scene: it is only ever compared for equality or used as a map key.
type MeshHandle uint32

// Mesh is a read-only handle-keyed dictionary entry: raw vertex and
// index data a MeshStore hands back during sync (spec.md §6, "Mesh
// store").
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// MeshStore is consumed by Frame.SyncFrameData to resolve a
// MeshHandle into its vertex/index data when NEED_MESH_REBUILD fires.
type MeshStore interface {
	Mesh(handle MeshHandle) (Mesh, bool)
}

// MeshMapping records where one mesh's vertices and indices landed in
// a frame's vertex/index buffers, so rebuild_indirects can look up
// first_index/vertex_offset without re-walking the mesh store.
type MeshMapping struct {
	VertexOffset uint32
	IndexOffset  uint32
	IndexCount   uint32
}
