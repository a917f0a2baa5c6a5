package sketch

// DefaultVertexCapacity is the initial number of vertex slots in a Graphics.
const DefaultVertexCapacity = 512

// Vertex is one submitted shape vertex. Fill is the fill color current when
// the vertex was added; later fill changes do not affect it.
type Vertex struct {
	X, Y float64
	U, V float64
	Fill Color
}

// Point returns the vertex position.
func (v Vertex) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// VertexBuffer is an ordered, growable sequence of vertices for the shape
// in progress. Reset keeps the allocation so consecutive shapes reuse it.
type VertexBuffer struct {
	data  []Vertex
	count int
}

// NewVertexBuffer creates a buffer with room for capacity vertices.
func NewVertexBuffer(capacity int) *VertexBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &VertexBuffer{data: make([]Vertex, capacity)}
}

// Append adds v, doubling the backing array when full.
func (b *VertexBuffer) Append(v Vertex) {
	if b.count == len(b.data) {
		grown := make([]Vertex, 2*len(b.data))
		copy(grown, b.data[:b.count])
		b.data = grown
		Logger().Debug("sketch: vertex buffer grown", "cap", len(grown))
	}
	b.data[b.count] = v
	b.count++
}

// Len returns the number of vertices in the buffer.
func (b *VertexBuffer) Len() int { return b.count }

// Cap returns the number of vertices the buffer holds before growing.
func (b *VertexBuffer) Cap() int { return len(b.data) }

// At returns the i-th vertex. It panics if i is out of range.
func (b *VertexBuffer) At(i int) Vertex {
	if i < 0 || i >= b.count {
		panic("sketch: vertex index out of range")
	}
	return b.data[i]
}

// Last returns the vertex k positions from the end; Last(1) is the most
// recently appended one.
func (b *VertexBuffer) Last(k int) Vertex {
	return b.At(b.count - k)
}

// Vertices returns the live vertices. The slice aliases the buffer and is
// only valid until the next Append or Reset.
func (b *VertexBuffer) Vertices() []Vertex {
	return b.data[:b.count]
}

// Reset empties the buffer without releasing its storage.
func (b *VertexBuffer) Reset() {
	b.count = 0
}
