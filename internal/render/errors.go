package render

import "errors"

// ErrMeshNotFound is returned by SyncFrameData when NEED_MESH_REBUILD
// resolves a batch's mesh handle against the MeshStore and finds
// nothing. spec.md §7 folds every scene sync failure into a single
// scene-error kind; this and ErrBufferGrowth are its two causes,
// reported separately here since a caller benefits from knowing which
// one happened even though recovery is identical (the pending change
// that triggered it is only considered applied if its flag cleared).
// No code path in this package returns ErrBufferGrowth: GPUBuffer
// grows host memory and has no failure case.
var (
	ErrMeshNotFound = errors.New("render: mesh not found in mesh store")
	ErrBufferGrowth = errors.New("render: buffer growth failed")
)
