package recording

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

func init() {
	surface.Register("recording", 1, func(opts surface.Options) (sketch.DrawingSurface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	})
}
