package strx

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

func graphemeString(s string) grapheme.String {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(s)
}

// Width returns the number of fixed-width cells s occupies on a display,
// measured with Latin context.
func Width(s string) int {
	return WidthIn(s, nil)
}

// WidthIn returns the display width of s for a UAX#11 context. A nil context
// denotes uax11.LatinContext.
func WidthIn(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(graphemeString(s), context)
}

// Wrap breaks s into lines no wider than width cells, measured with Latin
// context. Words wider than width get a line of their own. Trailing spaces
// are removed from every line.
func Wrap(s string, width int) []string {
	return WrapIn(s, width, nil)
}

// WrapIn is Wrap for a UAX#11 context.
//
//	SpaceLeft := LineWidth
//	for each Word in Text
//	    if Width(Word) > SpaceLeft
//	        insert line break before Word
//	        SpaceLeft := LineWidth - Width(Word)
//	    else
//	        SpaceLeft := SpaceLeft - Width(Word)
//
// Words are the segments between UAX#14 line-break opportunities, including
// their trailing spaces.
func WrapIn(s string, width int, context *uax11.Context) []string {
	if width <= 0 {
		panic(errNonPositiveWidth(width))
	}
	var lines []string
	for para := range Lines(s) {
		lines = append(lines, firstFit(para, width, context)...)
	}
	return lines
}

func firstFit(para string, linewidth int, context *uax11.Context) []string {
	if para == "" {
		return []string{""}
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(strings.NewReader(para))
	var lines []string
	var line strings.Builder
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := WidthIn(strings.TrimRight(frag, " "), context)
		if fraglen > spaceleft && line.Len() > 0 {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			tracer().Debugf("strx: break before %q", frag)
			line.Reset()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= WidthIn(frag, context)
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines
}
