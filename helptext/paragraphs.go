package helptext

import (
	_ "embed"
	"io"
	"strings"

	"github.com/npillmayer/blocks"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed ayuda.html
var ayuda string

//go:embed ayuda_corta.html
var ayudaCorta string

// Kind is the kind of a paragraph of a help document.
type Kind int8

// Kinds of paragraphs
const (
	Text    Kind = iota // running text, wrapped
	Heading             // section heading
	Item                // list item, wrapped and indented
	Code                // preformatted, never wrapped
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Item:
		return "item"
	case Code:
		return "code"
	}
	return "text"
}

// Paragraph is a unit of text of a help document.
type Paragraph struct {
	Kind Kind
	Text string
}

// Document is a help document, split into paragraphs.
type Document struct {
	Name       string
	Paragraphs *blocks.List[Paragraph]
}

// Long returns the complete help document.
func Long() (Document, error) {
	return load("ayuda", ayuda)
}

// Short returns the short help document, which holds just the usage line.
func Short() (Document, error) {
	return load("ayuda corta", ayudaCorta)
}

func load(name, src string) (Document, error) {
	paras, err := Paragraphs(strings.NewReader(src))
	if err != nil {
		return Document{}, err
	}
	return Document{Name: name, Paragraphs: paras}, nil
}

var paragraphKinds = map[atom.Atom]Kind{
	atom.H1:  Heading,
	atom.H2:  Heading,
	atom.H3:  Heading,
	atom.P:   Text,
	atom.Li:  Item,
	atom.Pre: Code,
}

// Paragraphs reads an HTML fragment and collects the text of its headings,
// paragraphs, list items and preformatted sections. Other markup is ignored,
// but text within it is collected as part of the enclosing paragraph.
// Whitespace is collapsed for all paragraphs except preformatted ones.
func Paragraphs(input io.Reader) (*blocks.List[Paragraph], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	paras, err := blocks.New(blocks.Config[Paragraph]{
		Extender: blocks.ConstantExtender(8),
	})
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err = collectParagraphs(n, paras); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("help document has %d paragraphs", paras.Len())
	return paras, nil
}

func collectParagraphs(n *html.Node, paras *blocks.List[Paragraph]) error {
	if n.Type == html.ElementNode {
		if kind, ok := paragraphKinds[n.DataAtom]; ok {
			var sb strings.Builder
			collectText(n, &sb)
			text := sb.String()
			if kind == Code {
				text = strings.Trim(text, "\n")
			} else {
				text = strings.Join(strings.Fields(text), " ")
			}
			if text == "" {
				return nil
			}
			return paras.Append(Paragraph{Kind: kind, Text: text})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectParagraphs(c, paras); err != nil {
			return err
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
