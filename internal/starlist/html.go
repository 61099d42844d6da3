package starlist

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/agentstation/wdsquery/pkg/errors"
)

// ReadHTML reads the first <table> in an HTML document. Its first row holds
// the column names. Cell text keeps line breaks from <br> elements.
func ReadHTML(r io.Reader, name string) (*Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapParse("html", name, err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, errors.NewParseError("html", name, "no <table> element", nil)
	}

	var records [][]string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "tr":
				if row := cells(n); len(row) > 0 {
					records = append(records, row)
				}
				return
			case "table":
				if n != table {
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(table)

	if len(records) == 0 {
		return nil, errors.NewParseError("html", name, "table has no rows", nil)
	}
	return newTable(name, records), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func cells(tr *html.Node) []string {
	var row []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			var sb strings.Builder
			text(&sb, c)
			row = append(row, strings.TrimSpace(sb.String()))
		}
	}
	return row
}

func text(sb *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		sb.WriteString(n.Data)
	case n.Type == html.ElementNode && n.Data == "br":
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text(sb, c)
	}
}
