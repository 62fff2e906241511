package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Scene_AddObject_FansOutToEveryFrame(t *testing.T) {
	// Arrange
	s := NewScene(2)
	store := triangleMeshStore(MeshHandle(1))
	obj := RenderObject{Mesh: MeshHandle(1), Materials: RenderObjectMaterials{7}}

	// Act
	id := s.AddObject(obj)
	for _, f := range s.frames {
		require.NoError(t, f.SyncFrameData(store))
	}

	// Assert
	assert.Equal(t, RenderObjectID(0), id)
	for _, f := range s.frames {
		require.Len(t, f.batches, 1)
		assert.Equal(t, 1, f.batches[0].count)
	}
}

func Test_Scene_NextFrame_AdvancesModuloRingLength(t *testing.T) {
	// Arrange
	s := NewScene(2)

	// Act & Assert
	assert.Equal(t, 1, s.NextFrame())
	assert.Equal(t, 0, s.NextFrame())
	assert.Equal(t, 1, s.NextFrame())
}

func Test_Scene_RemoveObject_RecyclesIDOnNextAdd(t *testing.T) {
	// Arrange
	s := NewScene(1)
	store := triangleMeshStore(MeshHandle(1))
	obj := RenderObject{Mesh: MeshHandle(1)}
	first := s.AddObject(obj)
	require.NoError(t, s.CurrentFrame().SyncFrameData(store))

	// Act
	s.RemoveObject(first)
	require.NoError(t, s.CurrentFrame().SyncFrameData(store))
	second := s.AddObject(obj)

	// Assert
	assert.Equal(t, first, second)
}

func Test_Scene_IndirectDrawIterator_OneItemPerBatchInOrder(t *testing.T) {
	// Arrange: two distinct (mesh, materials) pairs -> two batches
	s := NewScene(1)
	store := fakeMeshStore{meshes: map[MeshHandle]Mesh{
		MeshHandle(1): {Vertices: []Vertex{{}, {}, {}}, Indices: []uint32{0, 1, 2}},
		MeshHandle(2): {Vertices: []Vertex{{}, {}, {}}, Indices: []uint32{0, 1, 2}},
	}}
	s.AddObject(RenderObject{Mesh: MeshHandle(1), Materials: RenderObjectMaterials{1}})
	s.AddObject(RenderObject{Mesh: MeshHandle(2), Materials: RenderObjectMaterials{2}})
	require.NoError(t, s.CurrentFrame().SyncFrameData(store))

	// Act
	_, items := s.IndirectDrawIterator()

	// Assert
	require.Len(t, items, 2)
	assert.Equal(t, uint32(0), items[0].Offset)
	assert.Equal(t, uint32(1), items[0].Count)
	assert.Equal(t, uint32(1), items[1].Offset)
	assert.Equal(t, uint32(1), items[1].Count)
}

func Test_Scene_SyncCurrentFrame_OnlyTouchesCurrentRingSlot(t *testing.T) {
	// Arrange
	s := NewScene(2)
	store := triangleMeshStore(MeshHandle(1))
	s.AddObject(RenderObject{Mesh: MeshHandle(1)})

	// Act: only sync frame 0, then advance
	require.NoError(t, s.SyncCurrentFrame(store))
	s.NextFrame()

	// Assert: frame 1 still has the pending change queued
	assert.Len(t, s.frames[1].pendingChanges, 1)
	assert.Empty(t, s.frames[0].pendingChanges)
}
