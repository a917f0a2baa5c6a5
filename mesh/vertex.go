package mesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sketch"
)

// Stride is the byte size of one solid vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	coverage (f32)       = 4 bytes  (location 1)
//	color    (vec4<f32>) = 16 bytes (location 2)
const Stride = 28

// TexturedStride is the byte size of one textured vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	uv       (vec2<f32>) = 8 bytes  (location 1)
//	tint     (vec4<f32>) = 16 bytes (location 2)
const TexturedStride = 32

// Layout describes the solid vertex buffer.
func Layout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: Stride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},    // coverage
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 2}, // color
			},
		},
	}
}

// TexturedLayout describes the textured vertex buffer.
func TexturedLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: TexturedStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, // tint
			},
		},
	}
}

// Topology is the primitive topology of both buffers.
func Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// Vertex is a decoded solid vertex.
type Vertex struct {
	X, Y     float32
	Coverage float32
	Color    [4]float32
}

// TexturedVertex is a decoded textured vertex.
type TexturedVertex struct {
	X, Y float32
	U, V float32
	Tint [4]float32
}

// premultiplied converts c to premultiplied RGBA in [0, 1].
func premultiplied(c sketch.Color) [4]float32 {
	a := float32(c.A()) / 255
	return [4]float32{
		float32(c.R()) / 255 * a,
		float32(c.G()) / 255 * a,
		float32(c.B()) / 255 * a,
		a,
	}
}

func putFloats(buf []byte, vals ...float32) []byte {
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func appendVertex(buf []byte, x, y, coverage float32, color [4]float32) []byte {
	return putFloats(buf, x, y, coverage, color[0], color[1], color[2], color[3])
}

func appendTexturedVertex(buf []byte, x, y, u, v float32, tint [4]float32) []byte {
	return putFloats(buf, x, y, u, v, tint[0], tint[1], tint[2], tint[3])
}

func float(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}

// decodeVertex reads the solid vertex at byte offset off.
func decodeVertex(buf []byte, off int) Vertex {
	b := buf[off : off+Stride]
	return Vertex{
		X: float(b, 0), Y: float(b, 1),
		Coverage: float(b, 2),
		Color:    [4]float32{float(b, 3), float(b, 4), float(b, 5), float(b, 6)},
	}
}

// decodeTexturedVertex reads the textured vertex at byte offset off.
func decodeTexturedVertex(buf []byte, off int) TexturedVertex {
	b := buf[off : off+TexturedStride]
	return TexturedVertex{
		X: float(b, 0), Y: float(b, 1),
		U: float(b, 2), V: float(b, 3),
		Tint: [4]float32{float(b, 4), float(b, 5), float(b, 6), float(b, 7)},
	}
}
