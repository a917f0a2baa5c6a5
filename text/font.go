package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/cache"
)

// Font is a FontSource at one size. It implements sketch.Font and
// provides a font.Face for rasterization.
type Font struct {
	source  *FontSource
	size    float64
	face    font.Face
	ascent  float64
	descent float64

	// mu guards face, which is not safe for concurrent use.
	mu     sync.Mutex
	widths *cache.Cache[string, float64]
}

var _ sketch.Font = (*Font)(nil)

// maxCachedWidths bounds the width cache of a Font.
const maxCachedWidths = 1024

func newFont(s *FontSource, size float64) (*Font, error) {
	face, err := opentype.NewFace(s.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at %gpx: %w", size, err)
	}
	m := face.Metrics()
	return &Font{
		source:  s,
		size:    size,
		face:    face,
		ascent:  fixedToFloat(m.Ascent),
		descent: fixedToFloat(m.Descent),
		widths:  cache.New[string, float64](maxCachedWidths),
	}, nil
}

// Source returns the font the face was made from.
func (f *Font) Source() *FontSource { return f.source }

// Size returns the font size in pixels.
func (f *Font) Size() float64 { return f.size }

// WithSize returns the face of the same source at size.
func (f *Font) WithSize(size float64) sketch.Font {
	return f.source.Font(size)
}

// Ascent returns the distance from the baseline to the top of the face.
func (f *Font) Ascent() float64 { return f.ascent }

// Descent returns the distance from the baseline to the bottom of the face.
func (f *Font) Descent() float64 { return f.descent }

// Face returns the face for glyph rasterization. It must not be used
// from several goroutines at once.
func (f *Font) Face() font.Face { return f.face }

// Width returns the advance width of s. For text with several lines the
// widest line is measured.
func (f *Font) Width(s string) float64 {
	if s == "" {
		return 0
	}
	return f.widths.GetOrCreate(s, func() float64 {
		var w float64
		for _, line := range strings.Split(s, "\n") {
			w = max(w, f.lineWidth(line))
		}
		return w
	})
}

func (f *Font) lineWidth(line string) float64 {
	if line == "" {
		return 0
	}
	if f.source.shaping != nil {
		return shapedWidth(f.source.shaping, []rune(line), f.size)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat(font.MeasureString(f.face, line))
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
