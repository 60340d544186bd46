package markdown

import (
	"fmt"
	"regexp"
)

var (
	headingRe  = regexp.MustCompile(`^#+ `)
	listItemRe = regexp.MustCompile(`^\* `)
)

// tryHeading recognizes a line starting with one or more '#' characters
// followed by a single space and renders it as a heading of that level.
// Levels are not clamped: twenty hashes yield <h20>. A hash run that
// consumes the entire remaining input has no body to head, so it is
// left for the paragraph fallback.
func tryHeading(cur *Cursor) (string, bool) {
	loc := headingRe.FindStringIndex(cur.Rest())
	if loc == nil || loc[1] == len(cur.Rest()) {
		return "", false
	}

	return cur.Attempt(func() (string, bool) {
		level := loc[1] - 1
		cur.Seek(cur.Pos() + loc[1])

		out, ok := parseLine(cur)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, out, level), true
	})
}

// tryListItem recognizes a line starting with "* " and renders its
// remainder as a list item.
func tryListItem(cur *Cursor) (string, bool) {
	loc := listItemRe.FindStringIndex(cur.Rest())
	if loc == nil {
		return "", false
	}

	return cur.Attempt(func() (string, bool) {
		cur.Seek(cur.Pos() + loc[1])

		out, ok := parseLine(cur)
		if !ok {
			return "", false
		}
		return "<li>" + out + "</li>", true
	})
}
