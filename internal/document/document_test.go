package document

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"First paragraph line one",
		"continues here.",
		"",
		"```go",
		"code was written here",
		"```",
		"",
		"- bullet one",
		"- bullet two",
		"",
		"    indented code",
		"",
		"---",
		"1. numbered item",
		"",
		"~~~~",
		"``` not a close",
		"~~~~",
		"Last line.",
	}, "\n")

	blocks, err := Extract(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	want := []Block{
		{LineStart: 3, LineEnd: 4, Text: "First paragraph line one continues here."},
		{LineStart: 10, LineEnd: 10, Text: "bullet one"},
		{LineStart: 11, LineEnd: 11, Text: "bullet two"},
		{LineStart: 16, LineEnd: 16, Text: "numbered item"},
		{LineStart: 21, LineEnd: 21, Text: "Last line."},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Extract =\n%+v\nwant\n%+v", blocks, want)
	}
}

func TestProse(t *testing.T) {
	got, err := Prose(strings.NewReader("## Heading\n\nOne.\n\nTwo.\n"))
	if err != nil {
		t.Fatalf("Prose error: %v", err)
	}
	if got != "One.\n\nTwo." {
		t.Errorf("Prose = %q", got)
	}
}

func TestIsMarkdown(t *testing.T) {
	cases := map[string]bool{
		"README.md":      true,
		"notes.MARKDOWN": true,
		"a/b/c.mkd":      true,
		"essay.txt":      false,
		"Makefile":       false,
	}
	for path, want := range cases {
		if got := IsMarkdown(path); got != want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestIsHeading(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"# Title", true},
		{"###### Six", true},
		{"####### Seven", false},
		{"#NoSpace", false},
		{"    # indented", false},
		{"plain", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsHeading(c.line); got != c.want {
			t.Errorf("IsHeading(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestIsDecorator(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"---", true},
		{"  ===== ", true},
		{"***", true},
		{"———", true},
		{"--", false},
		{"-=-", false},
		{"", false},
		{"text", false},
	}
	for _, c := range cases {
		if got := IsDecorator(c.line); got != c.want {
			t.Errorf("IsDecorator(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestStripListPrefix(t *testing.T) {
	cases := []struct {
		line string
		want string
		list bool
	}{
		{"- item", "item", true},
		{"* item", "item", true},
		{"+ item", "item", true},
		{"• item", "item", true},
		{"  12. twelve", "twelve", true},
		{"3) three", "three", true},
		{"-no space", "-no space", false},
		{"1.no space", "1.no space", false},
		{"plain text", "plain text", false},
	}
	for _, c := range cases {
		if got := StripListPrefix(c.line); got != c.want {
			t.Errorf("StripListPrefix(%q) = %q, want %q", c.line, got, c.want)
		}
		if got := IsListItem(c.line); got != c.list {
			t.Errorf("IsListItem(%q) = %v, want %v", c.line, got, c.list)
		}
	}
}
