package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/blocks/numtheory"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type reportFunc func(w io.Writer, divisor, base int64, rules []numtheory.Rule) error

var reports = map[string]reportFunc{
	"texto": textReport,
	"text":  textReport,
	"html":  htmlReport,
}

func textReport(w io.Writer, divisor, base int64, rules []numtheory.Rule) error {
	if _, err := fmt.Fprintf(w, "Reglas de divisibilidad para %d en base %d:\n", divisor, base); err != nil {
		return err
	}
	for _, r := range rules {
		periodic := ""
		if r.IsPeriodic() {
			periodic = ", periódica"
		}
		if _, err := fmt.Fprintf(w, "  %s  peso %d%s\n", r, r.Weight(), periodic); err != nil {
			return err
		}
	}
	return nil
}

// htmlReport renders the rules as an HTML table.
func htmlReport(w io.Writer, divisor, base int64, rules []numtheory.Rule) error {
	table := element(atom.Table, "class", "reglas")
	caption := element(atom.Caption)
	caption.AppendChild(text(fmt.Sprintf("Reglas de divisibilidad para %d en base %d", divisor, base)))
	table.AppendChild(caption)
	head := element(atom.Tr)
	for _, h := range []string{"regla", "coeficientes", "peso", "periódica"} {
		head.AppendChild(cell(atom.Th, h))
	}
	table.AppendChild(head)
	for i, r := range rules {
		row := element(atom.Tr)
		row.AppendChild(cell(atom.Td, strconv.Itoa(i+1)))
		coeffs := element(atom.Td)
		for j, c := range r.Coefficients.All() {
			if j > 0 {
				coeffs.AppendChild(text(" "))
			}
			coeffs.AppendChild(cell(atom.Code, strconv.FormatInt(c, 10)))
		}
		row.AppendChild(coeffs)
		row.AppendChild(cell(atom.Td, strconv.FormatInt(r.Weight(), 10)))
		periodic := "no"
		if r.IsPeriodic() {
			periodic = "sí"
		}
		row.AppendChild(cell(atom.Td, periodic))
		table.AppendChild(row)
	}
	if err := html.Render(w, table); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func cell(a atom.Atom, s string) *html.Node {
	n := element(a)
	n.AppendChild(text(s))
	return n
}
