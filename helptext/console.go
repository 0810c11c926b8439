package helptext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing help
// documents.
type Config struct {
	LineWidth int
	Context   *uax11.Context
	// Colors maps paragraph kinds to colors. Kinds without a color are printed
	// plain.
	Colors map[Kind]*color.Color
}

// DefaultPalette returns the colors used if a Config has none.
func DefaultPalette() map[Kind]*color.Color {
	return map[Kind]*color.Color{
		Heading: color.New(color.FgBlue, color.Bold),
		Code:    color.New(color.FgGreen),
	}
}

const itemBullet = "  • "

// Print writes a help document to w. Headings are separated from the
// preceding text by an empty line, text paragraphs and items are wrapped to
// the line width of cfg.
//
// If cfg is nil, a config is created from the terminal's properties. cfg is
// not modified.
func Print(w io.Writer, doc Document, cfg *Config) error {
	if w == nil || doc.Paragraphs == nil {
		return errors.New("helptext: illegal argument: nil")
	}
	if cfg == nil {
		cfg = ConfigFromTerminal()
		cfg.Context = uax11.ContextFromEnvironment()
	}
	local := *cfg
	if local.Colors == nil {
		local.Colors = DefaultPalette()
	}
	cfg = &local
	p := printer{w: w, cfg: cfg}
	for i, para := range doc.Paragraphs.All() {
		switch para.Kind {
		case Heading:
			if i > 0 {
				p.newline()
			}
			p.line("", para.Text, para.Kind)
		case Code:
			for _, l := range strings.Split(para.Text, "\n") {
				p.line("    ", l, para.Kind)
			}
		case Item:
			indent := strings.Repeat(" ", Width(itemBullet, cfg.Context))
			for j, l := range Wrap(para.Text, cfg.LineWidth-len(indent), cfg.Context) {
				if j == 0 {
					p.line(itemBullet, l, para.Kind)
				} else {
					p.line(indent, l, para.Kind)
				}
			}
		default:
			for _, l := range Wrap(para.Text, cfg.LineWidth, cfg.Context) {
				p.line("", l, para.Kind)
			}
		}
		if p.err != nil {
			tracer().Errorf("printing %s: %v", doc.Name, p.err)
			return p.err
		}
	}
	return nil
}

// printer remembers the first write error and skips all output after it.
type printer struct {
	w   io.Writer
	cfg *Config
	err error
}

func (p *printer) line(indent, text string, kind Kind) {
	if p.err != nil {
		return
	}
	if _, p.err = io.WriteString(p.w, indent); p.err != nil {
		return
	}
	if c, ok := p.cfg.Colors[kind]; ok && c != nil {
		_, p.err = c.Fprint(p.w, text)
	} else {
		_, p.err = io.WriteString(p.w, text)
	}
	p.newline()
}

func (p *printer) newline() {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w)
	}
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = lineWidthFor(w)
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(w int) int {
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
