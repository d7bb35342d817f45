package pipeline

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// geometry is a small interleaved float buffer for the billboard, screen
// quad and skybox. Meshes with the full vertex layout use mesh.GPUMesh.
type geometry struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// uploadGeometry creates a VAO with one float attribute per entry in
// components, at locations 0, 1, ... in order.
func uploadGeometry(vertices []float32, indices []uint32, components ...int32) *geometry {
	var floats int32
	for _, c := range components {
		floats += c
	}
	stride := floats * 4

	g := &geometry{}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	var offset uintptr
	for loc, c := range components {
		gl.VertexAttribPointerWithOffset(uint32(loc), c, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(loc))
		offset += uintptr(c) * 4
	}

	if len(indices) > 0 {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		g.count = int32(len(indices))
	} else {
		g.count = int32(len(vertices)) / floats
	}

	gl.BindVertexArray(0)
	return g
}

func (g *geometry) draw() {
	gl.BindVertexArray(g.vao)
	if g.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	}
	gl.BindVertexArray(0)
}

func (g *geometry) destroy() {
	if g == nil {
		return
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
}
