/*
Package helptext holds the help documents of the command line tool and renders
them to a console.

Help documents are written in a small subset of HTML (headings, paragraphs,
list items and preformatted blocks). They are split into paragraphs, which are
kept in a block list, and each paragraph is broken into lines using a first-fit
strategy. Break opportunities are found by UAX#14 line-wrap segmentation and
line widths are measured in fixed-width positions according to UAX#11, thus
text in scripts other than Latin is wrapped correctly, too.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package helptext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'blocks'
func tracer() tracing.Trace {
	return tracing.Select("blocks")
}
