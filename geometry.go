package glboot

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// PositionAttrib is the attribute slot the vertex shader reads positions from.
const PositionAttrib uint32 = 0

// QuadVertices is the static quad uploaded at startup.
var QuadVertices = []mgl32.Vec2{
	{-0.5, -0.5},
	{0.5, -0.5},
	{0.5, 0.5},
	{-0.5, 0.5},
}

// Geometry owns a vertex array and the vertex buffer it describes.
type Geometry struct {
	vao      VertexArray
	vbo      Buffer
	vertices int
}

// NewQuad uploads vertices into a fresh buffer as static data and records
// their layout (two floats per vertex at PositionAttrib) in a fresh vertex
// array. The vertex array binding is cleared before returning.
//
// The geometry is only uploaded; nothing draws it.
func NewQuad(d Device, vertices []mgl32.Vec2) (*Geometry, error) {
	vao, ok := NewVertexArray(d)
	if !ok {
		return nil, fmt.Errorf("vertex array: %w", ErrHandleUnavailable)
	}
	vao.Bind()

	vbo, ok := NewBuffer(d, ArrayBuffer)
	if !ok {
		UnbindVertexArray(d)
		vao.Delete()
		return nil, fmt.Errorf("vertex buffer: %w", ErrHandleUnavailable)
	}
	vbo.Bind()
	vbo.Upload(flatten(vertices), StaticDraw)

	stride := int32(unsafe.Sizeof(mgl32.Vec2{}))
	d.VertexAttribPointer(PositionAttrib, 2, Float, false, stride, 0)
	d.EnableVertexAttribArray(PositionAttrib)

	UnbindVertexArray(d)

	Logger().Debug("geometry uploaded", "vao", vao.ID(), "vbo", vbo.ID(), "vertices", len(vertices))
	return &Geometry{vao: vao, vbo: vbo, vertices: len(vertices)}, nil
}

// VertexArray returns the vertex array describing the geometry.
func (g *Geometry) VertexArray() VertexArray { return g.vao }

// Buffer returns the vertex buffer holding the geometry.
func (g *Geometry) Buffer() Buffer { return g.vbo }

// Len returns the number of uploaded vertices.
func (g *Geometry) Len() int { return g.vertices }

// Delete releases the buffer and the vertex array.
func (g *Geometry) Delete() {
	g.vbo.Delete()
	g.vao.Delete()
}

// flatten lays vertices out as consecutive x, y pairs.
func flatten(vertices []mgl32.Vec2) []float32 {
	data := make([]float32, 0, len(vertices)*2)
	for _, v := range vertices {
		data = append(data, v.X(), v.Y())
	}
	return data
}
