package markdown

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "pure whitespace",
			input:    "\n\n\n",
			expected: "",
		},
		{
			name:     "heading",
			input:    "# Title\n",
			expected: "<h1>Title</h1>",
		},
		{
			name:     "subheading",
			input:    "### Sub\n",
			expected: "<h3>Sub</h3>",
		},
		{
			name:     "bare hash is a paragraph",
			input:    "#\n",
			expected: "<p>#</p>",
		},
		{
			name:     "hash prefix at end of input is a paragraph",
			input:    "# ",
			expected: "<p>#</p>",
		},
		{
			name:     "paragraph fallback",
			input:    "plain text\n",
			expected: "<p>plain text</p>",
		},
		{
			name:     "paragraph without trailing newline",
			input:    "plain text",
			expected: "<p>plain text</p>",
		},
		{
			name:     "two item list",
			input:    "* a\n* b\n",
			expected: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "single item list",
			input:    "* only\n",
			expected: "<ul><li>only</li></ul>",
		},
		{
			name:     "blank lines between items join one list",
			input:    "* a\n\n\n* b\n",
			expected: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "leading blank lines produce no output",
			input:    "\n\n# H\n",
			expected: "<h1>H</h1>",
		},
		{
			name:     "block sequencing",
			input:    "# H\n* a\ntext\n",
			expected: "<h1>H</h1><ul><li>a</li></ul><p>text</p>",
		},
		{
			name:     "list ends at non item line",
			input:    "* a\n\nafter\n",
			expected: "<ul><li>a</li></ul><p>after</p>",
		},
		{
			name:     "emphasis precedence",
			input:    "___x___\n__y__\n_z_\n",
			expected: "<p><strong><em>x</em></strong></p><p><strong>y</strong></p><p><em>z</em></p>",
		},
		{
			name:     "consecutive paragraphs stay separate",
			input:    "one\ntwo\n",
			expected: "<p>one</p><p>two</p>",
		},
		{
			name:     "heading level beyond six",
			input:    "####### Deep\n",
			expected: "<h7>Deep</h7>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse(%q):\nexpected %q\ngot      %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSkipBlankLine(t *testing.T) {
	cur := NewCursor("\n\nx")

	if !skipBlankLine(cur) || cur.Pos() != 1 {
		t.Fatalf("expected first newline skipped, position is %d", cur.Pos())
	}
	if !skipBlankLine(cur) || cur.Pos() != 2 {
		t.Fatalf("expected second newline skipped, position is %d", cur.Pos())
	}

	// Idempotent on non-blank input.
	for i := 0; i < 3; i++ {
		if skipBlankLine(cur) {
			t.Fatal("skipBlankLine reported a skip on non-blank input")
		}
		if cur.Pos() != 2 {
			t.Fatalf("skipBlankLine moved the cursor on non-blank input to %d", cur.Pos())
		}
	}

	cur.Seek(3)
	if skipBlankLine(cur) {
		t.Error("skipBlankLine reported a skip at end of input")
	}
}

func TestParserProgress(t *testing.T) {
	// Every successful block parse must strictly advance the cursor.
	cur := NewCursor("# H\n* a\n* b\ntext\n")

	before := cur.Pos()
	if _, ok := tryHeading(cur); !ok {
		t.Fatal("expected heading to parse")
	}
	if cur.Pos() <= before {
		t.Errorf("heading did not advance the cursor: %d -> %d", before, cur.Pos())
	}

	before = cur.Pos()
	if _, ok := parseUnorderedList(cur); !ok {
		t.Fatal("expected list to parse")
	}
	if cur.Pos() <= before {
		t.Errorf("list did not advance the cursor: %d -> %d", before, cur.Pos())
	}

	before = cur.Pos()
	if _, ok := tryParagraph(cur); !ok {
		t.Fatal("expected paragraph to parse")
	}
	if cur.Pos() <= before {
		t.Errorf("paragraph did not advance the cursor: %d -> %d", before, cur.Pos())
	}

	if cur.Remaining() {
		t.Errorf("expected input exhausted, %q remains", cur.Rest())
	}
}

func TestFailedParsesLeaveCursorUntouched(t *testing.T) {
	cur := NewCursor("neither heading nor list\n")
	cur.Seek(8) // somewhere mid-document

	if _, ok := tryHeading(cur); ok {
		t.Fatal("heading unexpectedly matched")
	}
	if cur.Pos() != 8 {
		t.Errorf("failed heading moved the cursor to %d", cur.Pos())
	}

	if _, ok := parseUnorderedList(cur); ok {
		t.Fatal("list unexpectedly matched")
	}
	if cur.Pos() != 8 {
		t.Errorf("failed list moved the cursor to %d", cur.Pos())
	}
}

func TestDiagnosticsSilentOnParseableInput(t *testing.T) {
	var diag strings.Builder

	p := NewParser()
	p.SetDiagnostics(&diag)

	out := p.Parse("# H\n\n* a\n\nplain _text_\n")
	if out == "" {
		t.Fatal("expected non-empty output")
	}
	if diag.Len() != 0 {
		t.Errorf("expected no diagnostics, got %q", diag.String())
	}
}

func TestParserReuse(t *testing.T) {
	// No state leaks across invocations of the same Parser.
	p := NewParser()
	p.SetDiagnostics(&strings.Builder{})

	first := p.Parse("# H\n")
	second := p.Parse("# H\n")
	if first != second {
		t.Errorf("same input parsed differently: %q vs %q", first, second)
	}
}
