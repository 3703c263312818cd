package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/foundation/multimap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes m as an HTML table. Each key gets a row, with the key in a
// header cell followed by one data cell per value.
func HTML[K comparable, V any](w io.Writer, m *multimap.Map[K, V]) error {
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "class", Val: "multimap"}}
	for k, bucket := range m.Buckets() {
		row := element(atom.Tr)
		row.AppendChild(withText(element(atom.Th), fmt.Sprint(k)))
		for _, v := range bucket {
			row.AppendChild(withText(element(atom.Td), fmt.Sprint(v)))
		}
		table.AppendChild(row)
	}
	return html.Render(w, table)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// InnerText returns the textual content of an HTML element and all its
// descendents, with the text of every cell on a line of its own.
func InnerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Th || n.DataAtom == atom.Td) {
		b.WriteByte('\n')
	}
}

// TextFromHTML extracts the textual content of an HTML fragment, as
// written by HTML.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}
