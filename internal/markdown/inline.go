package markdown

import (
	"regexp"
	"strings"
)

var (
	fullLineRe = regexp.MustCompile(`^.*(\n|$)`)
	strongEmRe = regexp.MustCompile(`___(.+)___`)
	strongRe   = regexp.MustCompile(`__(.+)__`)
	emRe       = regexp.MustCompile(`_(.+)_`)
)

// parseLine consumes one physical line, up to and including the next
// newline or to end of input, and renders it with inline emphasis
// applied. Substitution order matters: triple underscores resolve
// before double, before single, and each rule is greedy, so spans never
// overlap and are never re-parsed by a later rule. The dialect has no
// escaping, so literal underscores are always emphasis delimiters and
// HTML-significant characters pass through verbatim.
//
// The line pattern matches the empty string, so this cannot fail while
// input remains; callers check Remaining first.
func parseLine(cur *Cursor) (string, bool) {
	loc := fullLineRe.FindStringIndex(cur.Rest())
	if loc == nil {
		return "", false
	}

	out := strings.TrimSpace(cur.Rest()[:loc[1]])

	out = strongEmRe.ReplaceAllString(out, "<strong><em>$1</em></strong>")
	out = strongRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = emRe.ReplaceAllString(out, "<em>$1</em>")

	cur.Seek(cur.Pos() + loc[1])

	return out, true
}
