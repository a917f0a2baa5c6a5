package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sketch"
)

// Recorder is a DrawingSurface that captures draw calls as commands.
// Use FinishRecording to obtain a Recording that can be replayed onto
// other surfaces.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	g := sketch.NewGraphics(rec, 800, 600)
//	g.BeginDraw()
//	g.Line(0, 0, 100, 100)
//	_ = g.EndDraw()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	transform sketch.Matrix
	clipped   bool
	caps      sketch.Capabilities
	flushes   int
}

var (
	_ sketch.DrawingSurface = (*Recorder)(nil)
	_ sketch.Flusher        = (*Recorder)(nil)
	_ sketch.Resizer        = (*Recorder)(nil)
)

// NewRecorder creates a new Recorder for the given dimensions. It reports
// anti-aliasing and text support.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		transform: sketch.Identity(),
		caps: sketch.Capabilities{
			SupportsAntialias: true,
			SupportsText:      true,
			Format:            gputypes.TextureFormatRGBA8Unorm,
		},
	}
}

// SetCapabilities replaces the capabilities the recorder reports. It must
// be called before the recorder is handed to a Graphics.
func (r *Recorder) SetCapabilities(c sketch.Capabilities) {
	r.caps = c
}

// FinishRecording returns a Recording of the commands captured so far and
// starts a new, empty one. The transform and clip state carry over.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 256)
	r.resources = NewResourcePool()
	return rec
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the commands recorded so far. The slice is only valid
// until the next draw call.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool of the recording in progress.
func (r *Recorder) Resources() *ResourcePool {
	return r.resources
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Count returns the number of recorded commands of type t.
func (r *Recorder) Count(t CommandType) int {
	return count(r.commands, t)
}

// Last returns the most recent command, or nil when none was recorded.
func (r *Recorder) Last() Command {
	if len(r.commands) == 0 {
		return nil
	}
	return r.commands[len(r.commands)-1]
}

// Reset drops the recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// Transform returns the current device transform.
func (r *Recorder) Transform() sketch.Matrix {
	return r.transform
}

// Clipped reports whether a clip is active.
func (r *Recorder) Clipped() bool {
	return r.clipped
}

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int {
	return r.flushes
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// --------------------------------------------------------------------------
// DrawingSurface
// --------------------------------------------------------------------------

// DrawLine records a DrawLineCommand.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, p sketch.Paint) {
	r.record(DrawLineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: p})
}

// DrawPath records a DrawPathCommand with a copy of path.
func (r *Recorder) DrawPath(path *sketch.Path, p sketch.Paint) {
	r.record(DrawPathCommand{Path: r.resources.AddPath(path), Paint: p})
}

// DrawRect records a DrawRectCommand.
func (r *Recorder) DrawRect(x1, y1, x2, y2 float64, p sketch.Paint) {
	r.record(DrawRectCommand{Rect: sketch.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, Paint: p})
}

// DrawOval records a DrawOvalCommand.
func (r *Recorder) DrawOval(x1, y1, x2, y2 float64, p sketch.Paint) {
	r.record(DrawOvalCommand{Bounds: sketch.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}, Paint: p})
}

// DrawArc records a DrawArcCommand.
func (r *Recorder) DrawArc(x1, y1, x2, y2, startDeg, sweepDeg float64, useCenter bool, p sketch.Paint) {
	r.record(DrawArcCommand{
		Bounds:    sketch.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2},
		StartDeg:  startDeg,
		SweepDeg:  sweepDeg,
		UseCenter: useCenter,
		Paint:     p,
	})
}

// DrawBitmap records a DrawBitmapCommand with a copy of img.
func (r *Recorder) DrawBitmap(img image.Image, src image.Rectangle, dst sketch.Rect, p *sketch.Paint) {
	var paint *sketch.Paint
	if p != nil {
		cp := *p
		if p.Filter != nil {
			f := *p.Filter
			cp.Filter = &f
		}
		paint = &cp
	}
	b := img.Bounds()
	r.record(DrawBitmapCommand{
		Image: r.resources.AddImage(img),
		Src:   src.Sub(b.Min),
		Dst:   dst,
		Paint: paint,
	})
}

// DrawText records a DrawTextCommand.
func (r *Recorder) DrawText(s string, x, y float64, f sketch.Font, p sketch.Paint) {
	r.record(DrawTextCommand{Text: s, X: x, Y: y, Font: r.resources.AddFont(f), Paint: p})
}

// SetPixel records a SetPixelCommand.
func (r *Recorder) SetPixel(x, y int, c sketch.Color) {
	r.record(SetPixelCommand{X: x, Y: y, Color: c})
}

// Clear records a ClearCommand.
func (r *Recorder) Clear(c sketch.Color) {
	r.record(ClearCommand{Color: c})
}

// SetTransform records a SetTransformCommand.
func (r *Recorder) SetTransform(m sketch.Matrix) {
	r.transform = m
	r.record(SetTransformCommand{Matrix: m})
}

// ConcatTransform records a ConcatTransformCommand.
func (r *Recorder) ConcatTransform(m sketch.Matrix) {
	r.transform = r.transform.Multiply(m)
	r.record(ConcatTransformCommand{Matrix: m})
}

// ClipRect records a ClipRectCommand.
func (r *Recorder) ClipRect(x1, y1, x2, y2 float64) {
	r.clipped = true
	r.record(ClipRectCommand{Rect: sketch.Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}})
}

// ResetClip records a ResetClipCommand.
func (r *Recorder) ResetClip() {
	r.clipped = false
	r.record(ResetClipCommand{})
}

// Capabilities returns the configured capabilities.
func (r *Recorder) Capabilities() sketch.Capabilities {
	return r.caps
}

// Flush counts the end of a frame.
func (r *Recorder) Flush() error {
	r.flushes++
	return nil
}

// Resize records a ResizeCommand.
func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("recording: resize to %dx%d: %w", width, height, ErrInvalidSize)
	}
	r.width, r.height = width, height
	r.record(ResizeCommand{Width: width, Height: height})
	return nil
}
