package main

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// escapeXML escapes special XML characters in a string
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// formatDateRSS formats time for RSS feeds (RFC1123Z). Archive timestamps
// carry no zone, so the offset is always +0000.
func formatDateRSS(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}

// truncate returns at most n runes of s
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// textHTML escapes archive text and keeps its line breaks
func textHTML(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

// hrefAttr renders an href attribute holding the link as written. Only HTML
// escaping is applied; unsafe schemes are replaced with "#".
func hrefAttr(link string) template.HTMLAttr {
	if !isSafeURL(link) {
		link = "#"
	}
	return template.HTMLAttr(`href="` + template.HTMLEscapeString(link) + `"`)
}

// renderMarkdown converts markdown content to HTML
func renderMarkdown(content []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	opts := html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: renderLink,
	}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

// isSafeURL checks if a URL scheme is safe (not javascript:, data:, etc.)
func isSafeURL(dest string) bool {
	lower := strings.ToLower(dest)
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") {
		return true
	}
	if strings.Contains(lower, ":") && !strings.HasPrefix(lower, "/") {
		return false
	}
	return true
}

// renderLink adds target="_blank" and rel="noopener" to external links
func renderLink(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	link, ok := node.(*ast.Link)
	if !ok {
		return ast.GoToNext, false
	}

	if !entering {
		io.WriteString(w, "</a>")
		return ast.GoToNext, true
	}

	dest := string(link.Destination)
	if !isSafeURL(dest) {
		fmt.Fprint(w, `<a href="#">`)
		return ast.GoToNext, true
	}

	escapedDest := template.HTMLEscapeString(dest)
	if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
		fmt.Fprintf(w, `<a href="%s" target="_blank" rel="noopener">`, escapedDest)
	} else {
		fmt.Fprintf(w, `<a href="%s">`, escapedDest)
	}

	return ast.GoToNext, true
}
