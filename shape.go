package sketch

// ShapeKind is the topology of a beginShape/endShape block.
type ShapeKind int

const (
	noShape ShapeKind = iota
	// Polygon accumulates a general path rasterized at EndShape.
	Polygon
	// Points draws each vertex as a point.
	Points
	// Lines draws a line for every pair of vertices.
	Lines
	// LineStrip connects consecutive vertices.
	LineStrip
	// LineLoop is LineStrip plus a segment from the last vertex to the first.
	LineLoop
	// Triangles draws a triangle for every three vertices.
	Triangles
	// TriangleStrip draws a triangle for each vertex after the second,
	// sharing an edge with the previous one.
	TriangleStrip
	// TriangleFan draws triangles sharing the first vertex.
	TriangleFan
	// Quad draws a quad for every four vertices.
	Quad
	// Quads is the same as Quad.
	Quads
	// QuadStrip draws a quad for every pair of vertices after the first two.
	QuadStrip
)

var shapeKindNames = [...]string{
	noShape:       "None",
	Polygon:       "Polygon",
	Points:        "Points",
	Lines:         "Lines",
	LineStrip:     "LineStrip",
	LineLoop:      "LineLoop",
	Triangles:     "Triangles",
	TriangleStrip: "TriangleStrip",
	TriangleFan:   "TriangleFan",
	Quad:          "Quad",
	Quads:         "Quads",
	QuadStrip:     "QuadStrip",
}

// String returns the kind name.
func (k ShapeKind) String() string {
	if k >= 0 && int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "Unknown"
}

// EndMode tells EndShape whether to close a polygon.
type EndMode int

const (
	// Open leaves the last subpath open.
	Open EndMode = iota
	// Close joins the last point of the current subpath to its first.
	Close
)

// RectMode selects how Rect interprets its arguments.
type RectMode int

const (
	// RectCorner takes x, y, width, height.
	RectCorner RectMode = iota
	// RectCorners takes two opposite corners.
	RectCorners
	// RectRadius takes center and half sizes.
	RectRadius
	// RectCenter takes center and full sizes.
	RectCenter
)

// EllipseMode selects how Ellipse and Arc interpret their arguments.
type EllipseMode int

const (
	// EllipseCorner takes the bounding box corner and size.
	EllipseCorner EllipseMode = iota
	// EllipseCorners takes two opposite bounding box corners.
	EllipseCorners
	// EllipseRadius takes center and radii.
	EllipseRadius
	// EllipseCenter takes center and diameters.
	EllipseCenter
)

// EllipseDiameter is an alias of EllipseCenter.
const EllipseDiameter = EllipseCenter

// ImageMode selects how Image interprets its position arguments.
type ImageMode int

const (
	// ImageCorner takes x, y, width, height.
	ImageCorner ImageMode = iota
	// ImageCorners takes two opposite corners.
	ImageCorners
	// ImageCenter takes center and size.
	ImageCenter
)

// ArcMode selects how Arc closes its outline.
type ArcMode int

const (
	// ArcDefault fills as a pie and strokes only the curve.
	ArcDefault ArcMode = iota
	// ArcOpen fills and strokes only the curve.
	ArcOpen
	// ArcChord closes the arc with a straight line between its ends.
	ArcChord
	// ArcPie closes the arc through the center.
	ArcPie
)
