package text

import (
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// run is a range of runes with one direction, end exclusive.
type run struct {
	start, end int
	rtl        bool
}

// HarfbuzzShaper keeps internal buffers and is not safe for concurrent
// use, so shapers are pooled.
var shapers = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// shapedWidth shapes every directional run of runes and sums the advances.
func shapedWidth(f *gotext.Font, runes []rune, size float64) float64 {
	face := gotext.NewFace(f)
	hb := shapers.Get().(*shaping.HarfbuzzShaper)
	defer shapers.Put(hb)

	var total float64
	for _, r := range bidiRuns(runes) {
		dir := di.DirectionLTR
		if r.rtl {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		adv := fixedToFloat(out.Advance)
		if adv < 0 {
			adv = -adv
		}
		total += adv
	}
	return total
}

// bidiRuns splits runes into runs of one direction in logical order.
// Text the bidi algorithm rejects is one left-to-right run.
func bidiRuns(runes []rune) []run {
	whole := []run{{start: 0, end: len(runes)}}
	if len(runes) == 0 {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}
	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		runs = append(runs, run{start: start, end: end + 1, rtl: r.Direction() == bidi.RightToLeft})
	}
	return runs
}

// detectScript returns the script of the first letter, or Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
