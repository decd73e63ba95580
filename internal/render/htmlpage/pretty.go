package htmlpage

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const indentUnit = "  "

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// prettyPrint writes n with one element per line. Elements holding text
// are written on a single line so no whitespace is added to their content.
func prettyPrint(w io.Writer, n *html.Node) error {
	var b strings.Builder
	if err := writeNode(&b, n, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *html.Node, depth int) error {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := writeNode(b, c, depth); err != nil {
				return err
			}
		}
		return nil
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
	case html.ElementNode:
		if !inline(n) {
			return writeBlock(b, n, depth)
		}
	}

	b.WriteString(strings.Repeat(indentUnit, depth))
	if err := html.Render(b, n); err != nil {
		return err
	}
	b.WriteByte('\n')
	return nil
}

func writeBlock(b *strings.Builder, n *html.Node, depth int) error {
	indent := strings.Repeat(indentUnit, depth)
	tag, err := startTag(n)
	if err != nil {
		return err
	}
	b.WriteString(indent)
	b.WriteString(tag)
	b.WriteByte('\n')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := writeNode(b, c, depth+1); err != nil {
			return err
		}
	}
	b.WriteString(indent)
	b.WriteString("</" + n.Data + ">\n")
	return nil
}

// inline reports whether an element is written on one line: void elements,
// empty elements and elements with text among their children.
func inline(n *html.Node) bool {
	if voidElements[n.Data] || n.FirstChild == nil {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			return true
		}
	}
	return false
}

func startTag(n *html.Node) (string, error) {
	shallow := &html.Node{
		Type:      html.ElementNode,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
		Attr:      n.Attr,
	}
	var b strings.Builder
	if err := html.Render(&b, shallow); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "</"+n.Data+">"), nil
}
