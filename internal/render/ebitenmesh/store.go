// Package ebitenmesh adapts ebiten.Image-backed sprites into the
// render.MeshStore interface the Scene's sync path consumes,
// presenting each registered image as a flat textured quad. This is
// the only place ebiten touches internal/render's domain: the render
// package itself never imports a graphics API (spec.md Non-goals).
package ebitenmesh

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ahryshan/bizarre-engine/internal/render"
)

// Store is a handle-keyed set of images, each presented as a mesh.
type Store struct {
	images map[render.MeshHandle]*ebiten.Image
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{images: make(map[render.MeshHandle]*ebiten.Image)}
}

// Register associates handle with img, which Mesh will present as a
// quad sized to img's bounds.
func (s *Store) Register(handle render.MeshHandle, img *ebiten.Image) {
	s.images[handle] = img
}

// Image returns the raw ebiten.Image registered under handle, for the
// presentation layer's own draw calls.
func (s *Store) Image(handle render.MeshHandle) (*ebiten.Image, bool) {
	img, ok := s.images[handle]
	return img, ok
}

// Mesh implements render.MeshStore, presenting the image registered
// under handle as a two-triangle quad in its own pixel-sized local
// space.
func (s *Store) Mesh(handle render.MeshHandle) (render.Mesh, bool) {
	img, ok := s.images[handle]
	if !ok {
		return render.Mesh{}, false
	}
	bounds := img.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())

	return render.Mesh{
		Vertices: []render.Vertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{w, 0, 0}},
			{Position: [3]float32{w, h, 0}},
			{Position: [3]float32{0, h, 0}},
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}, true
}
