package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh owns the vertex array, vertex buffer and index buffer of one
// uploaded mesh. A GPUMesh built from an empty mesh is valid and draws nothing.
type GPUMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload copies the mesh into new GL buffers and records the attribute layout.
func Upload(m *Mesh) *GPUMesh {
	g := &GPUMesh{}
	if m.Empty() {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	stride := int32(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	attrib := func(loc uint32, size int32, offset uintptr) {
		gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(loc)
	}
	attrib(AttribPosition, 3, unsafe.Offsetof(Vertex{}.Position))
	attrib(AttribTexCoord, 2, unsafe.Offsetof(Vertex{}.TexCoord))
	attrib(AttribNormal, 3, unsafe.Offsetof(Vertex{}.Normal))
	attrib(AttribTangent, 3, unsafe.Offsetof(Vertex{}.Tangent))
	attrib(AttribBitangent, 3, unsafe.Offsetof(Vertex{}.Bitangent))

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	g.indexCount = int32(len(m.Indices))
	return g
}

// IndexCount returns the number of indices drawn per call.
func (g *GPUMesh) IndexCount() int32 {
	return g.indexCount
}

// Draw issues one indexed triangle draw.
func (g *GPUMesh) Draw() {
	if g == nil || g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GL buffers.
func (g *GPUMesh) Destroy() {
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
	g.indexCount = 0
}
