package helptext

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Width returns the display width of s in fixed-width positions.
// If ctx is nil, uax11.LatinContext is used.
func Width(s string, ctx *uax11.Context) int {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

/*
Wrap breaks text into lines no wider than linewidth, using first fit:

	SpaceLeft := LineWidth
	for each Word in Text
	    if Width(Word) > SpaceLeft
	        insert line break before Word in Text
	        SpaceLeft := LineWidth - (Width(Word) + SpaceWidth)
	    else
	        SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

Words are the segments of UAX#14 line wrapping, including trailing spaces.
Trailing spaces do not count for the fit of a word and are stripped from the
lines. A word wider than linewidth is put on a line of its own.
*/
func Wrap(text string, linewidth int, ctx *uax11.Context) []string {
	var lines []string
	var line strings.Builder
	flush := func() {
		if l := strings.TrimRight(line.String(), " "); l != "" {
			lines = append(lines, l)
		}
		line.Reset()
	}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	spaceleft := linewidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		wordlen := Width(strings.TrimRight(frag, " "), ctx)
		if wordlen > spaceleft && line.Len() > 0 {
			tracer().Debugf("break before %q", frag)
			flush()
			spaceleft = linewidth
		}
		line.WriteString(frag)
		spaceleft -= Width(frag, ctx)
	}
	flush()
	return lines
}
