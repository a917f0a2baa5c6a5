package sketch

import (
	"errors"
	"fmt"
)

// Precondition sentinels. Graphics methods panic with a *PreconditionError
// wrapping one of these; lower-level types return them directly.
var (
	// ErrMatrixStackOverflow is returned when pushMatrix exceeds the stack capacity.
	ErrMatrixStackOverflow = errors.New("sketch: matrix stack overflow")

	// ErrMatrixStackUnderflow is returned when popMatrix has no matching push.
	ErrMatrixStackUnderflow = errors.New("sketch: matrix stack underflow")

	// ErrStyleStackUnderflow is returned when popStyle has no matching push.
	ErrStyleStackUnderflow = errors.New("sketch: style stack underflow")

	// ErrNoShape is returned for vertex calls outside beginShape/endShape.
	ErrNoShape = errors.New("sketch: no shape in progress")

	// ErrShapeOpen is returned when beginShape is called before endShape.
	ErrShapeOpen = errors.New("sketch: shape already in progress")

	// ErrBezierOutsidePolygon is returned when bezierVertex or quadraticVertex
	// is used outside a polygon shape.
	ErrBezierOutsidePolygon = errors.New("sketch: beginShape() or beginShape(POLYGON) must be used before bezierVertex() or quadraticVertex()")

	// ErrNoCurrentPoint is returned when a bezier or quadratic vertex has
	// no preceding vertex to continue from.
	ErrNoCurrentPoint = errors.New("sketch: vertex() must be used at least once before bezierVertex() or quadraticVertex()")

	// ErrCurveOutsidePolygon is returned when curveVertex is used with a
	// shape kind other than Polygon.
	ErrCurveOutsidePolygon = errors.New("sketch: curveVertex() can only be used with the polygon shape kind")

	// ErrContourOutsidePolygon is returned when contours are used with a
	// shape kind other than Polygon.
	ErrContourOutsidePolygon = errors.New("sketch: contours can only be used with the polygon shape kind")

	// ErrNestedContour is returned by beginContour inside an open contour.
	ErrNestedContour = errors.New("sketch: already called beginContour()")

	// ErrNoContour is returned by endContour without beginContour.
	ErrNoContour = errors.New("sketch: need to call beginContour() first")

	// ErrInvalidImageMode is returned for image modes other than corner, corners and center.
	ErrInvalidImageMode = errors.New("sketch: imageMode() only works with CORNER, CORNERS, or CENTER")

	// ErrNoFont is returned when text is drawn or measured without a font.
	ErrNoFont = errors.New("sketch: no font set, use TextFont() first")
)

// PreconditionError reports a drawing call made in a state where it cannot
// proceed without corrupting the shape, style or transform state.
type PreconditionError struct {
	// Op is the drawing call that failed, e.g. "popMatrix".
	Op string

	// Err is the underlying sentinel error.
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// fail panics with a PreconditionError for op.
func fail(op string, err error) {
	panic(&PreconditionError{Op: op, Err: err})
}
