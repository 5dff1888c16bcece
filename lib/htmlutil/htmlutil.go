package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// SeparatedText joins the text of each child element of the selection's
// first node with sep, so "<h1><a>X</a> <span>Y</span></h1>" with "#"
// yields "X#Y". Whitespace-only text nodes between elements are dropped.
func SeparatedText(sel *goquery.Selection, sep string) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	var parts []string
	child := sel.Nodes[0].FirstChild
	for child != nil {
		text := strings.TrimSpace(GetText(child))
		if text != "" {
			parts = append(parts, text)
		}
		child = child.NextSibling
	}
	return strings.Join(parts, sep)
}

// TextList returns the stripped text of every node in the selection,
// in document order.
func TextList(sel *goquery.Selection) []string {
	out := make([]string, 0, len(sel.Nodes))
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

// StripLabel removes a leading label from a list item's text, e.g.
// "Age60" with label "Age" gives "60".
func StripLabel(text, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), label))
}

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

var innerWhitespace = strings.NewReplacer("\n", " ", "\t", " ")

// CleanText is GetText plus the normalization every extracted field
// needs: printable runes only, trimmed, inner whitespace collapsed.
func CleanText(sel *goquery.Selection) string {
	text := removeNonPrintable(sel.Text())
	text = innerWhitespace.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
