// Package markup writes rendered tables as HTML.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/render"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PurlMark is the text of a purl data cell.
const PurlMark = "•"

// documentRules lay panels out and are always emitted.
var documentRules = []string{
	"body { font-family: sans-serif }",
	".panel { display: inline-block; vertical-align: top; margin: 0 1em 1em 0 }",
	"table.tblrdr { border-collapse: collapse }",
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Table converts t into a <table> node.
func Table(t *render.Table) *html.Node {
	table := element(atom.Table,
		attr("class", strings.Join(t.Classes, " ")),
		attr("data-grid", t.Grid.String()),
	)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		if row.Footer {
			tr.Attr = append(tr.Attr, attr("class", "footer"))
		}
		for i := range row.Cells {
			tr.AppendChild(cell(t, &row.Cells[i]))
		}
		table.AppendChild(tr)
	}
	return table
}

func cell(t *render.Table, c *render.Cell) *html.Node {
	switch c.Kind {
	case render.KindData:
		td := element(atom.Td)
		if len(c.Classes) > 0 {
			td.Attr = append(td.Attr, attr("class", strings.Join(c.Classes, " ")))
		}
		if s := t.Style(c); s != "" {
			td.Attr = append(td.Attr, attr("style", s))
		}
		td.Attr = append(td.Attr,
			attr("data-grid", c.Address.Grid.String()),
			attr("data-row", strconv.Itoa(c.Address.Row)),
			attr("data-col", strconv.Itoa(c.Address.Col)),
		)
		if c.Purl {
			td.AppendChild(text(PurlMark))
		}
		return td
	case render.KindLabel:
		th := element(atom.Th)
		if c.Span() > 1 {
			th.Attr = append(th.Attr, attr("colspan", strconv.Itoa(c.Span())))
		}
		if len(c.Classes) > 0 {
			th.Attr = append(th.Attr, attr("class", strings.Join(c.Classes, " ")))
		}
		small := element(atom.Small)
		small.AppendChild(text(c.Text))
		th.AppendChild(small)
		return th
	default:
		return element(atom.Th)
	}
}

// Render writes a single table.
func Render(w io.Writer, t *render.Table) error {
	return html.Render(w, Table(t))
}

// Document writes a standalone HTML page holding panels and the rules of
// sheet.
func Document(w io.Writer, title string, sheet *css.Sheet, panels ...render.Panel) error {
	return Write(w, Page(title, sheet, panels...))
}

// Write renders a page built by Page.
func Write(w io.Writer, page *html.Node) error {
	if err := html.Render(w, page); err != nil {
		return fmt.Errorf("markup: render document: %w", err)
	}
	return nil
}

// Page builds the document written by Document.
func Page(title string, sheet *css.Sheet, panels ...render.Panel) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	titleNode := element(atom.Title)
	titleNode.AppendChild(text(title))
	head.AppendChild(titleNode)

	styleNode := element(atom.Style)
	styleNode.AppendChild(text(strings.Join(documentRules, "\n") + "\n" + sheet.String()))
	head.AppendChild(styleNode)
	root.AppendChild(head)

	body := element(atom.Body)
	heading := element(atom.H1)
	heading.AppendChild(text(title))
	body.AppendChild(heading)
	for _, p := range panels {
		div := element(atom.Div, attr("class", "panel"))
		if p.Title != "" {
			h := element(atom.H2)
			h.AppendChild(text(p.Title))
			div.AppendChild(h)
		}
		div.AppendChild(Table(p.Table))
		body.AppendChild(div)
	}
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc
}

// AddScript appends an inline script to the body of page.
func AddScript(page *html.Node, code string) {
	body := page.LastChild.LastChild
	script := element(atom.Script)
	script.AppendChild(text(code))
	body.AppendChild(script)
}
