// Package text provides OpenType fonts for sketch.
//
// A FontSource holds a parsed font file and hands out sized faces. Faces
// implement sketch.Font: they measure text with HarfBuzz shaping, split
// into bidirectional runs first, and expose an x/image font.Face so
// pixel surfaces can draw glyphs.
//
//	src, err := text.NewFontSourceFromFile("DejaVuSans.ttf")
//	if err != nil {
//		return err
//	}
//	g.TextFont(src.Font(24))
//	g.Text("Hello", 10, 40)
//
// Default returns the embedded Go Regular font.
package text
