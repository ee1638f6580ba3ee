// Package document extracts analyzable prose from Markdown. Headings, fenced
// code blocks and thematic breaks are dropped; list markers are stripped and
// each paragraph or list item becomes one block.
package document

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Block is a run of prose lines from the source document.
type Block struct {
	LineStart int
	LineEnd   int
	Text      string
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return true
	}
	return false
}

// Prose joins the blocks of a Markdown document into plain text, one blank
// line between blocks.
func Prose(r io.Reader) (string, error) {
	blocks, err := Extract(r)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, "\n\n"), nil
}

// Extract reads Markdown from r and returns its prose blocks in order.
func Extract(r io.Reader) ([]Block, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("document: scan: %w", err)
	}
	return segment(lines), nil
}

func segment(lines []string) []Block {
	var (
		blocks    []Block
		cur       *Block
		buf       []string
		openFence string
		inList    bool
	)

	flush := func() {
		if cur == nil {
			return
		}
		if text := strings.TrimSpace(strings.Join(buf, " ")); text != "" {
			cur.Text = text
			blocks = append(blocks, *cur)
		}
		cur, buf = nil, nil
	}
	add := func(lineNum int, text string) {
		if cur == nil {
			cur = &Block{LineStart: lineNum}
		}
		cur.LineEnd = lineNum
		buf = append(buf, strings.TrimSpace(text))
	}

	for i, line := range lines {
		lineNum := i + 1

		if openFence != "" {
			if isClosingFence(line, openFence) {
				openFence = ""
			}
			continue
		}
		if fp := fencePrefix(line); fp != "" {
			flush()
			inList = false
			openFence = fp
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
			inList = false
		case IsHeading(line), IsDecorator(line):
			flush()
			inList = false
		case IsListItem(line):
			flush()
			inList = true
			add(lineNum, StripListPrefix(line))
		case isCodeIndent(line) && !inList && cur == nil:
			// indented code block
		default:
			add(lineNum, line)
		}
	}
	flush()
	return blocks
}

// isCodeIndent reports four spaces or a tab of indentation.
func isCodeIndent(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// fencePrefix returns the opening fence marker ("```", "~~~~", ...) if line
// opens a fenced code block, otherwise "". Up to three leading spaces are
// allowed.
func fencePrefix(line string) string {
	leading := len(line) - len(strings.TrimLeft(line, " "))
	if leading >= 4 {
		return ""
	}
	stripped := line[leading:]
	for _, marker := range []byte{'`', '~'} {
		count := 0
		for count < len(stripped) && stripped[count] == marker {
			count++
		}
		if count >= 3 {
			return stripped[:count]
		}
	}
	return ""
}

// isClosingFence reports whether line closes a block opened by openFence:
// same marker, at least as long, nothing but spaces after it.
func isClosingFence(line, openFence string) bool {
	fp := fencePrefix(line)
	if fp == "" || fp[0] != openFence[0] || len(fp) < len(openFence) {
		return false
	}
	rest := strings.TrimLeft(line, " ")[len(fp):]
	return strings.TrimSpace(rest) == ""
}

// IsHeading returns true for ATX headings (# through ######) followed by a
// space.
func IsHeading(line string) bool {
	if isCodeIndent(line) {
		return false
	}
	t := strings.TrimSpace(line)
	hashes := strings.IndexFunc(t, func(r rune) bool { return r != '#' })
	return hashes > 0 && hashes <= 6 && t[hashes] == ' '
}

// IsDecorator returns true for lines made of one separator character
// (- = * _ —) repeated at least three times.
func IsDecorator(line string) bool {
	trimmed := strings.TrimSpace(line)
	var first rune
	count := 0
	for _, ch := range trimmed {
		if count == 0 {
			first = ch
		}
		if ch != first {
			return false
		}
		count++
	}
	switch first {
	case '-', '=', '*', '_', '—':
		return count >= 3
	}
	return false
}

// IsListItem returns true for bullet ("- ", "* ", "+ ", "• ") and numbered
// ("1. ", "2) ") list items.
func IsListItem(line string) bool {
	trimmed := strings.TrimSpace(line)
	return StripListPrefix(line) != trimmed
}

// StripListPrefix removes a list marker from the start of line and returns
// the trimmed remainder. Lines without a marker are returned trimmed.
func StripListPrefix(line string) string {
	trimmed := strings.TrimSpace(line)
	j := 0
	for j < len(trimmed) && trimmed[j] >= '0' && trimmed[j] <= '9' {
		j++
	}
	if j > 0 && j+1 < len(trimmed) && (trimmed[j] == '.' || trimmed[j] == ')') && trimmed[j+1] == ' ' {
		return strings.TrimSpace(trimmed[j+2:])
	}
	for _, pfx := range []string{"- ", "* ", "+ ", "• "} {
		if strings.HasPrefix(trimmed, pfx) {
			return strings.TrimSpace(trimmed[len(pfx):])
		}
	}
	return trimmed
}
