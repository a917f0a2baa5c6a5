package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch"
)

var (
	// ErrInvalidSize is returned when resizing to non-positive dimensions.
	ErrInvalidSize = errors.New("recording: width and height must be positive")

	// ErrInvalidRef is returned by Playback when a command references a
	// resource missing from the pool.
	ErrInvalidRef = errors.New("recording: invalid resource reference")
)

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any DrawingSurface.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	return count(r.commands, t)
}

// Types returns the type of every command in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

func count(commands []Command, t CommandType) int {
	n := 0
	for _, c := range commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto dst. Resize commands are applied
// when dst implements sketch.Resizer. Playback stops at the first command
// whose resources are missing.
func (r *Recording) Playback(dst sketch.DrawingSurface) error {
	for i, cmd := range r.commands {
		if err := r.replay(dst, cmd); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	sketch.Logger().Debug("recording: playback done", "commands", len(r.commands))
	return nil
}

func (r *Recording) replay(dst sketch.DrawingSurface, cmd Command) error {
	switch c := cmd.(type) {
	case SetTransformCommand:
		dst.SetTransform(c.Matrix)
	case ConcatTransformCommand:
		dst.ConcatTransform(c.Matrix)
	case ClipRectCommand:
		dst.ClipRect(c.Rect.X1, c.Rect.Y1, c.Rect.X2, c.Rect.Y2)
	case ResetClipCommand:
		dst.ResetClip()
	case ResizeCommand:
		if rs, ok := dst.(sketch.Resizer); ok {
			return rs.Resize(c.Width, c.Height)
		}
	case DrawLineCommand:
		dst.DrawLine(c.X1, c.Y1, c.X2, c.Y2, c.Paint)
	case DrawPathCommand:
		path := r.resources.GetPath(c.Path)
		if path == nil {
			return ErrInvalidRef
		}
		dst.DrawPath(path, c.Paint)
	case DrawRectCommand:
		dst.DrawRect(c.Rect.X1, c.Rect.Y1, c.Rect.X2, c.Rect.Y2, c.Paint)
	case DrawOvalCommand:
		dst.DrawOval(c.Bounds.X1, c.Bounds.Y1, c.Bounds.X2, c.Bounds.Y2, c.Paint)
	case DrawArcCommand:
		b := c.Bounds
		dst.DrawArc(b.X1, b.Y1, b.X2, b.Y2, c.StartDeg, c.SweepDeg, c.UseCenter, c.Paint)
	case DrawBitmapCommand:
		img := r.resources.GetImage(c.Image)
		if img == nil {
			return ErrInvalidRef
		}
		dst.DrawBitmap(img, c.Src, c.Dst, c.Paint)
	case DrawTextCommand:
		f := r.resources.GetFont(c.Font)
		if f == nil {
			return ErrInvalidRef
		}
		dst.DrawText(c.Text, c.X, c.Y, f, c.Paint)
	case SetPixelCommand:
		dst.SetPixel(c.X, c.Y, c.Color)
	case ClearCommand:
		dst.Clear(c.Color)
	}
	return nil
}
