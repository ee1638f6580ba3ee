// Package tokenize splits prose into words and sentences and estimates
// syllable counts. Every function is pure; nothing is cached between calls.
package tokenize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sentenceSepRe = regexp.MustCompile(`[.!?]+`)

	// sentenceEndRe marks a boundary after terminal punctuation that is
	// followed by whitespace. The punctuation stays with the preceding sentence.
	sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

	nonLetterRe = regexp.MustCompile(`[^a-z]`)
	silentEndRe = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingYRe  = regexp.MustCompile(`^y`)
	vowelRunRe  = regexp.MustCompile(`[aeiouy]{1,2}`)
	lowerWordRe = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)
)

// Words returns the whitespace-delimited words of text. It returns nil when
// text is empty after trimming.
func Words(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Fields(text)
}

// Sentences splits text on runs of '.', '!' and '?' and returns the trimmed,
// non-empty fragments. Terminal punctuation is dropped.
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, frag := range sentenceSepRe.Split(text, -1) {
		if s := strings.TrimSpace(frag); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Span is a sentence together with its byte offset into the source text.
type Span struct {
	Text  string
	Start int
}

// SentenceSpans splits text after sentence-ending punctuation that is
// followed by whitespace. Unlike Sentences, each span keeps its terminal
// punctuation. Empty spans are dropped.
func SentenceSpans(text string) []Span {
	var spans []Span
	add := func(start, end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		lead := len(raw) - len(strings.TrimLeft(raw, " \t\r\n\f\v"))
		spans = append(spans, Span{Text: trimmed, Start: start + lead})
	}
	start := 0
	for _, m := range sentenceEndRe.FindAllStringIndex(text, -1) {
		add(start, m[0]+1)
		start = m[1]
	}
	if start < len(text) {
		add(start, len(text))
	}
	return spans
}

// SplitSentences is SentenceSpans without offsets.
func SplitSentences(text string) []string {
	spans := SentenceSpans(text)
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

// LowerWords returns the lowercase alphabetic words of text, keeping
// internal apostrophes ("don't").
func LowerWords(text string) []string {
	return lowerWordRe.FindAllString(strings.ToLower(text), -1)
}

// Syllables estimates the syllable count of word. The result is always at
// least 1. This is a vowel-group heuristic and is wrong for many irregular
// words.
func Syllables(word string) int {
	w := nonLetterRe.ReplaceAllString(strings.ToLower(word), "")
	if len(w) <= 3 {
		return 1
	}
	w = silentEndRe.ReplaceAllString(w, "")
	w = leadingYRe.ReplaceAllString(w, "")
	n := len(vowelRunRe.FindAllString(w, -1))
	if n == 0 {
		return 1
	}
	return n
}

// offsetBlock is the byte stride between Offsets checkpoints.
const offsetBlock = 64

type checkpoint struct {
	byteOff int
	runes   int
}

// Offsets converts byte offsets in one text to character (rune) offsets. It
// is built in a single pass and answers each lookup by counting at most one
// block of bytes.
type Offsets struct {
	text  string
	marks []checkpoint // marks[k] is the start of the rune holding byte k*offsetBlock
}

// NewOffsets indexes text for Rune lookups.
func NewOffsets(text string) *Offsets {
	o := &Offsets{
		text:  text,
		marks: make([]checkpoint, 0, len(text)/offsetBlock+1),
	}
	runes := 0
	for i := 0; i < len(text); runes++ {
		_, size := utf8.DecodeRuneInString(text[i:])
		for len(o.marks)*offsetBlock < i+size {
			o.marks = append(o.marks, checkpoint{byteOff: i, runes: runes})
		}
		i += size
	}
	for len(o.marks)*offsetBlock <= len(text) {
		o.marks = append(o.marks, checkpoint{byteOff: len(text), runes: runes})
	}
	return o
}

// Rune returns the number of runes in text[:byteOff]. Offsets outside the
// text are clamped.
func (o *Offsets) Rune(byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff > len(o.text) {
		byteOff = len(o.text)
	}
	m := o.marks[byteOff/offsetBlock]
	return m.runes + utf8.RuneCountInString(o.text[m.byteOff:byteOff])
}
