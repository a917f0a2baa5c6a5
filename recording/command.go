package recording

import (
	"image"

	"github.com/gogpu/sketch"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one DrawingSurface call.
type CommandType uint8

const (
	// State commands
	CmdSetTransform    CommandType = iota // Replace the device transform
	CmdConcatTransform                    // Post-multiply the device transform
	CmdClipRect                           // Intersect the clip with a rectangle
	CmdResetClip                          // Remove clipping
	CmdResize                             // Resize the surface

	// Drawing commands
	CmdDrawLine   // Stroke a segment
	CmdDrawPath   // Fill or stroke a path
	CmdDrawRect   // Fill or stroke a rectangle
	CmdDrawOval   // Fill or stroke an ellipse
	CmdDrawArc    // Fill or stroke an arc
	CmdDrawBitmap // Draw an image region
	CmdDrawText   // Draw a line of text
	CmdSetPixel   // Write one device pixel
	CmdClear      // Fill the whole surface
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetTransform:    "SetTransform",
	CmdConcatTransform: "ConcatTransform",
	CmdClipRect:        "ClipRect",
	CmdResetClip:       "ResetClip",
	CmdResize:          "Resize",
	CmdDrawLine:        "DrawLine",
	CmdDrawPath:        "DrawPath",
	CmdDrawRect:        "DrawRect",
	CmdDrawOval:        "DrawOval",
	CmdDrawArc:         "DrawArc",
	CmdDrawBitmap:      "DrawBitmap",
	CmdDrawText:        "DrawText",
	CmdSetPixel:        "SetPixel",
	CmdClear:           "Clear",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Reference Types
// --------------------------------------------------------------------------

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// FontRef is a reference to a font in the resource pool.
type FontRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid font.
func (r FontRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetTransformCommand replaces the device transform.
type SetTransformCommand struct {
	Matrix sketch.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// ConcatTransformCommand post-multiplies the device transform.
type ConcatTransformCommand struct {
	Matrix sketch.Matrix
}

// Type implements Command.
func (ConcatTransformCommand) Type() CommandType { return CmdConcatTransform }

// ClipRectCommand intersects the clip with a logical rectangle.
type ClipRectCommand struct {
	Rect sketch.Rect
}

// Type implements Command.
func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// ResetClipCommand removes clipping.
type ResetClipCommand struct{}

// Type implements Command.
func (ResetClipCommand) Type() CommandType { return CmdResetClip }

// ResizeCommand changes the surface size.
type ResizeCommand struct {
	Width, Height int
}

// Type implements Command.
func (ResizeCommand) Type() CommandType { return CmdResize }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawLineCommand strokes a segment.
type DrawLineCommand struct {
	X1, Y1, X2, Y2 float64
	Paint          sketch.Paint
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawPathCommand fills or strokes a pooled path.
type DrawPathCommand struct {
	Path  PathRef
	Paint sketch.Paint
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// DrawRectCommand fills or strokes a rectangle.
type DrawRectCommand struct {
	Rect  sketch.Rect
	Paint sketch.Paint
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawOvalCommand fills or strokes the ellipse inscribed in Bounds.
type DrawOvalCommand struct {
	Bounds sketch.Rect
	Paint  sketch.Paint
}

// Type implements Command.
func (DrawOvalCommand) Type() CommandType { return CmdDrawOval }

// DrawArcCommand fills or strokes part of the ellipse inscribed in Bounds.
type DrawArcCommand struct {
	Bounds    sketch.Rect
	StartDeg  float64
	SweepDeg  float64
	UseCenter bool
	Paint     sketch.Paint
}

// Type implements Command.
func (DrawArcCommand) Type() CommandType { return CmdDrawArc }

// DrawBitmapCommand draws the Src region of a pooled image into Dst.
type DrawBitmapCommand struct {
	Image ImageRef
	Src   image.Rectangle
	Dst   sketch.Rect
	// Paint is nil for untinted draws.
	Paint *sketch.Paint
}

// Type implements Command.
func (DrawBitmapCommand) Type() CommandType { return CmdDrawBitmap }

// DrawTextCommand draws one line of text at a baseline origin.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Font  FontRef
	Paint sketch.Paint
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// SetPixelCommand writes one device pixel.
type SetPixelCommand struct {
	X, Y  int
	Color sketch.Color
}

// Type implements Command.
func (SetPixelCommand) Type() CommandType { return CmdSetPixel }

// ClearCommand fills the whole surface.
type ClearCommand struct {
	Color sketch.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }
