package mesh

import (
	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface"
)

func init() {
	surface.Register("mesh", 5, func(opts surface.Options) (sketch.DrawingSurface, error) {
		s := NewSurface(opts.Width, opts.Height)
		s.SetTolerance(opts.Tolerance)
		return s, nil
	})
}
