package slackbot

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	// Slack ends the url at the first | of a link, so it is percent-encoded.
	hrefEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "|", "%7C")
)

// ToMrkdwn converts the Telegram HTML subset (b, i, u, s, code, pre, a,
// blockquote) into Slack mrkdwn. Unknown tags keep their text only.
func ToMrkdwn(src string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return "", fmt.Errorf("failed to parse report html: %w", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}

	return b.String(), nil
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(mrkdwnEscaper.Replace(n.Data))
		return
	case html.ElementNode:
	default:
		writeChildren(b, n)
		return
	}

	switch n.DataAtom {
	case atom.B, atom.Strong:
		wrap(b, n, "*")
	case atom.I, atom.Em:
		wrap(b, n, "_")
	case atom.S, atom.Strike, atom.Del:
		wrap(b, n, "~")
	case atom.Code:
		if n.Parent != nil && n.Parent.DataAtom == atom.Pre {
			writeChildren(b, n)
			return
		}
		wrap(b, n, "`")
	case atom.Pre:
		b.WriteString("```\n")
		writeChildren(b, n)
		b.WriteString("\n```")
	case atom.A:
		href := hrefEscaper.Replace(strings.TrimSpace(attr(n, "href")))
		if href == "" {
			writeChildren(b, n)
			return
		}
		var label strings.Builder
		writeChildren(&label, n)
		if label.Len() == 0 {
			fmt.Fprintf(b, "<%s>", href)
			return
		}
		fmt.Fprintf(b, "<%s|%s>", href, label.String())
	case atom.Blockquote:
		var inner strings.Builder
		writeChildren(&inner, n)
		for i, line := range strings.Split(inner.String(), "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("> " + line)
		}
	case atom.Br:
		b.WriteString("\n")
	default:
		writeChildren(b, n)
	}
}

func wrap(b *strings.Builder, n *html.Node, marker string) {
	var inner strings.Builder
	writeChildren(&inner, n)
	if inner.Len() == 0 {
		return
	}
	b.WriteString(marker + inner.String() + marker)
}

func writeChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
