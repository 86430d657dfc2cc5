// Package markup cleans up text returned by the text-generation service.
// Models asked for raw HTML or raw JSON frequently wrap their answer in a
// markdown code fence anyway; StripFences undoes that.
package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// StripFences removes a single surrounding fenced-code wrapper (``` with any
// info string such as html or json) from s and trims whitespace. The fence
// content is returned verbatim. Input without a fence is returned trimmed.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	src := []byte(trimmed)
	doc := md.Parser().Parse(text.NewReader(src))

	// Only unwrap when the whole document is one fenced code block, so that
	// fences embedded inside real content are left alone.
	if doc.ChildCount() == 1 {
		if fence, ok := doc.FirstChild().(*ast.FencedCodeBlock); ok && fence.Lines().Len() > 0 {
			var b strings.Builder
			lines := fence.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(src))
			}
			return strings.TrimSpace(b.String())
		}
	}

	return stripMarkers(trimmed)
}

// stripMarkers drops the fence markers without parsing. Handles irregular
// cases such as a one-line ```json {...}``` response or a missing closing
// fence.
func stripMarkers(s string) string {
	s = strings.TrimPrefix(s, "```")

	// Drop the info string (a run of letters) following the opening fence.
	j := 0
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	s = s[j:]

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
