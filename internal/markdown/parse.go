// Package markdown converts a restricted markdown dialect into HTML.
//
// The dialect supports headings ("# " prefixes, level per hash count),
// unordered lists ("* " prefixes), paragraphs, and underscore emphasis
// (_em_, __strong__, ___both___). Parsing is single-pass recursive
// descent over the whole document: mode parsers (document, list) try
// alternatives in fixed precedence and loop, expression parsers
// (heading, list item, line) consume one syntactic unit each, and all
// of them share a single Cursor per invocation. Output is the plain
// concatenation of the emitted HTML fragments; no escaping is done.
package markdown

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser converts dialect markdown into HTML.
type Parser struct {
	diag io.Writer
}

// NewParser creates a parser that reports diagnostics on stderr.
func NewParser() *Parser {
	return &Parser{diag: os.Stderr}
}

// SetDiagnostics redirects advisory notices, such as the unparsed
// remainder warning, to w. Diagnostics never affect the returned HTML.
func (p *Parser) SetDiagnostics(w io.Writer) {
	p.diag = w
}

// Parse converts markdown to HTML with a default parser. It is total:
// every input, including the empty string, yields a result and never
// an error.
func Parse(markdown string) string {
	return NewParser().Parse(markdown)
}

// Parse converts markdown to HTML. Each call owns its cursor, so one
// Parser may serve concurrent calls.
func (p *Parser) Parse(markdown string) string {
	return p.parseDocument(NewCursor(markdown))
}

// skipBlankLine advances past a single newline at the cursor and
// reports whether it did. On anything else, end of input included, it
// reports false without moving.
func skipBlankLine(cur *Cursor) bool {
	if !cur.Remaining() || cur.Rest()[0] != '\n' {
		return false
	}
	cur.Seek(cur.Pos() + 1)
	return true
}

// parseDocument is the entry mode: skip blank lines, then try heading,
// list, paragraph in that order, appending the first success, until
// input runs out. The paragraph fallback matches any line, so the
// no-alternative branch is unreachable in practice; if it were hit the
// remainder would be dropped with a notice rather than surfaced as an
// error.
func (p *Parser) parseDocument(cur *Cursor) string {
	var result strings.Builder

	for cur.Remaining() {
		for skipBlankLine(cur) {
		}
		if !cur.Remaining() {
			break
		}

		if out, ok := tryHeading(cur); ok {
			result.WriteString(out)
			continue
		}
		if out, ok := parseUnorderedList(cur); ok {
			result.WriteString(out)
			continue
		}
		if out, ok := tryParagraph(cur); ok {
			result.WriteString(out)
			continue
		}

		fmt.Fprintf(p.diag, "underdown: unable to parse the rest: %q\n", cur.Rest())
		break
	}

	return result.String()
}

// parseUnorderedList collects a maximal run of list items, blank lines
// between items allowed, into one <ul> block. The first item is the
// gate: if it fails the whole mode fails with the cursor unchanged,
// which lets the document mode probe for a list without committing.
// Once the gate matches, the mode cannot fail.
func parseUnorderedList(cur *Cursor) (string, bool) {
	out, ok := tryListItem(cur)
	if !ok {
		return "", false
	}

	var result strings.Builder
	result.WriteString("<ul>")
	result.WriteString(out)

	for cur.Remaining() {
		for skipBlankLine(cur) {
		}

		out, ok = tryListItem(cur)
		if !ok {
			break
		}
		result.WriteString(out)
	}

	result.WriteString("</ul>")
	return result.String(), true
}

// tryParagraph wraps one line in <p> tags. It is the catch-all
// alternative: with input remaining it cannot fail.
func tryParagraph(cur *Cursor) (string, bool) {
	out, ok := parseLine(cur)
	if !ok {
		return "", false
	}
	return "<p>" + out + "</p>", true
}
