package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/sketch"
)

// DefaultSize is the size of DefaultFont in pixels.
const DefaultSize = 12

// FontSource represents a loaded font file. It hands out one Font per
// size, so faces of equal size compare equal.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	sfnt *opentype.Font

	// shaping is nil when go-text cannot load the font; widths then come
	// from glyph advances without shaping.
	shaping *gotext.Font

	name string

	mu    sync.Mutex
	faces map[float64]*Font
}

// NewFontSource parses TTF or OTF data. The data is copied.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	f, err := opentype.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	s := &FontSource{
		data:  buf,
		sfnt:  f,
		faces: make(map[float64]*Font),
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}

	face, err := gotext.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		sketch.Logger().Warn("text: shaping unavailable, using glyph advances", "font", s.name, "error", err)
	} else {
		s.shaping = face.Font
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("text: read %s: %w", path, err)
	}
	s, err := NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("text: load %s: %w", path, err)
	}
	return s, nil
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// Shaped reports whether widths are measured with HarfBuzz shaping.
func (s *FontSource) Shaped() bool {
	return s.shaping != nil
}

// Font returns the face at size pixels. Repeated calls with the same
// size return the same *Font. Non-positive sizes use DefaultSize.
func (s *FontSource) Font(size float64) *Font {
	if size <= 0 {
		size = DefaultSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := newFont(s, size)
	if err != nil {
		// opentype.NewFace only fails on invalid options.
		panic(err)
	}
	s.faces[size] = f
	return f
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("text: embedded Go Regular: %v", err))
	}
	return s
})

// Default returns the embedded Go Regular font.
func Default() *FontSource {
	return defaultSource()
}

// DefaultFont returns Go Regular at DefaultSize.
func DefaultFont() *Font {
	return Default().Font(DefaultSize)
}
