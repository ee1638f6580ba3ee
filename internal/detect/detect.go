// Package detect applies the lexicon and pattern rules to text and produces
// a position-ordered list of writing issues.
package detect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/prosecheck/internal/lexicon"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/tokenize"
)

const (
	// LongSentenceWords is the word count above which a sentence is flagged.
	LongSentenceWords = 30

	// RepetitionMinCount is the number of occurrences that flags a word.
	RepetitionMinCount = 4

	// RepetitionMinDocWords is the document size a text must exceed before
	// repetition is checked.
	RepetitionMinDocWords = 20

	excerptRunes = 60
)

type phraseRule struct {
	phrase string
	re     *regexp.Regexp
}

type complexRule struct {
	word   string
	simple string
	re     *regexp.Regexp
}

// Detector holds the compiled rules for one lexicon. It has no mutable state
// and is safe for concurrent use.
type Detector struct {
	passive *regexp.Regexp
	weak    []phraseRule
	filler  []phraseRule
	cliche  []phraseRule
	complex []complexRule
	stop    map[string]bool
}

// New compiles the rules in lex.
func New(lex *lexicon.Lexicon) *Detector {
	d := &Detector{
		passive: passivePattern(lex.PassiveAuxiliaries, lex.IrregularParticiples),
		weak:    phraseRules(lex.WeakWords),
		filler:  phraseRules(lex.FillerPhrases),
		cliche:  phraseRules(lex.Cliches),
		stop:    lex.StopWordSet(),
	}
	for _, r := range lex.ComplexWords {
		d.complex = append(d.complex, complexRule{
			word:   r.From,
			simple: r.To,
			re:     WordPattern(r.From),
		})
	}
	return d
}

// WordPattern compiles a case-insensitive, word-bounded pattern for phrase.
func WordPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func phraseRules(phrases []string) []phraseRule {
	rules := make([]phraseRule, 0, len(phrases))
	for _, p := range phrases {
		rules = append(rules, phraseRule{phrase: p, re: WordPattern(p)})
	}
	return rules
}

func passivePattern(aux, participles []string) *regexp.Regexp {
	quote := func(words []string) string {
		q := make([]string, len(words))
		for i, w := range words {
			q[i] = regexp.QuoteMeta(w)
		}
		return strings.Join(q, "|")
	}
	return regexp.MustCompile(`(?i)\b(?:` + quote(aux) + `)\s+(?:\w+ed|` + quote(participles) + `)\b`)
}

// Detect runs every rule over text. The result is sorted by position; issues
// at the same position keep rule emission order. The returned slice is never
// nil.
func (d *Detector) Detect(text string) []schema.Issue {
	issues := []schema.Issue{}
	if strings.TrimSpace(text) == "" {
		return issues
	}
	off := tokenize.NewOffsets(text)
	issues = append(issues, d.passiveVoice(text, off)...)
	issues = append(issues, d.weakWords(text, off)...)
	issues = append(issues, d.fillers(text, off)...)
	issues = append(issues, d.cliches(text, off)...)
	issues = append(issues, d.complexWords(text, off)...)
	issues = append(issues, d.longSentences(text, off)...)
	issues = append(issues, d.repetition(text, off)...)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Position < issues[j].Position
	})
	return issues
}

// PassiveVoice flags an auxiliary verb followed by a past participle.
func (d *Detector) PassiveVoice(text string) []schema.Issue {
	return d.passiveVoice(text, tokenize.NewOffsets(text))
}

func (d *Detector) passiveVoice(text string, off *tokenize.Offsets) []schema.Issue {
	var out []schema.Issue
	for _, m := range d.passive.FindAllStringIndex(text, -1) {
		matched := text[m[0]:m[1]]
		out = append(out, schema.Issue{
			Kind:     schema.KindClarity,
			Category: schema.CategoryPassiveVoice,
			Text:     matched,
			Message:  fmt.Sprintf("Passive voice: consider rewriting %q in the active voice.", matched),
			Position: off.Rune(m[0]),
		})
	}
	return out
}

// WeakWords flags hedging words and empty intensifiers.
func (d *Detector) WeakWords(text string) []schema.Issue {
	return d.weakWords(text, tokenize.NewOffsets(text))
}

func (d *Detector) weakWords(text string, off *tokenize.Offsets) []schema.Issue {
	return matchPhrases(text, off, d.weak, schema.KindStyle, schema.CategoryWeakWord,
		"Weak word %q adds little meaning; consider removing it.")
}

// Fillers flags wordy constructions that can be cut or shortened.
func (d *Detector) Fillers(text string) []schema.Issue {
	return d.fillers(text, tokenize.NewOffsets(text))
}

func (d *Detector) fillers(text string, off *tokenize.Offsets) []schema.Issue {
	return matchPhrases(text, off, d.filler, schema.KindClarity, schema.CategoryFiller,
		"Filler phrase %q can usually be cut or shortened.")
}

// Cliches flags overused stock phrases.
func (d *Detector) Cliches(text string) []schema.Issue {
	return d.cliches(text, tokenize.NewOffsets(text))
}

func (d *Detector) cliches(text string, off *tokenize.Offsets) []schema.Issue {
	return matchPhrases(text, off, d.cliche, schema.KindStyle, schema.CategoryCliche,
		"Cliché %q: try a fresher, more specific phrase.")
}

func matchPhrases(text string, off *tokenize.Offsets, rules []phraseRule, kind schema.IssueKind, cat schema.Category, format string) []schema.Issue {
	var out []schema.Issue
	for _, r := range rules {
		for _, m := range r.re.FindAllStringIndex(text, -1) {
			matched := text[m[0]:m[1]]
			out = append(out, schema.Issue{
				Kind:     kind,
				Category: cat,
				Text:     matched,
				Message:  fmt.Sprintf(format, matched),
				Position: off.Rune(m[0]),
			})
		}
	}
	return out
}

// ComplexWords flags words with a simpler everyday alternative. The message
// and Suggestion carry the alternative.
func (d *Detector) ComplexWords(text string) []schema.Issue {
	return d.complexWords(text, tokenize.NewOffsets(text))
}

func (d *Detector) complexWords(text string, off *tokenize.Offsets) []schema.Issue {
	var out []schema.Issue
	for _, r := range d.complex {
		for _, m := range r.re.FindAllStringIndex(text, -1) {
			matched := text[m[0]:m[1]]
			out = append(out, schema.Issue{
				Kind:       schema.KindClarity,
				Category:   schema.CategoryComplexWord,
				Text:       matched,
				Message:    fmt.Sprintf("Consider a simpler word: %q instead of %q.", r.simple, matched),
				Position:   off.Rune(m[0]),
				Suggestion: r.simple,
			})
		}
	}
	return out
}

// LongSentences flags sentences of more than LongSentenceWords words.
func (d *Detector) LongSentences(text string) []schema.Issue {
	return d.longSentences(text, tokenize.NewOffsets(text))
}

func (d *Detector) longSentences(text string, off *tokenize.Offsets) []schema.Issue {
	var out []schema.Issue
	for _, s := range tokenize.SentenceSpans(text) {
		n := len(strings.Fields(s.Text))
		if n <= LongSentenceWords {
			continue
		}
		out = append(out, schema.Issue{
			Kind:     schema.KindClarity,
			Category: schema.CategoryLongSentence,
			Text:     excerpt(s.Text),
			Message:  fmt.Sprintf("Long sentence (%d words): consider splitting it.", n),
			Position: off.Rune(s.Start),
		})
	}
	return out
}

// Repetition flags content words used RepetitionMinCount times or more. Each
// word is reported once, at its first occurrence, in first-appearance order.
func (d *Detector) Repetition(text string) []schema.Issue {
	return d.repetition(text, tokenize.NewOffsets(text))
}

func (d *Detector) repetition(text string, off *tokenize.Offsets) []schema.Issue {
	if len(tokenize.Words(text)) <= RepetitionMinDocWords {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, w := range tokenize.LowerWords(text) {
		if len(w) <= 3 || d.stop[w] {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	var out []schema.Issue
	for _, w := range order {
		n := counts[w]
		if n < RepetitionMinCount {
			continue
		}
		pos := 0
		if loc := WordPattern(w).FindStringIndex(text); loc != nil {
			pos = off.Rune(loc[0])
		}
		out = append(out, schema.Issue{
			Kind:     schema.KindStyle,
			Category: schema.CategoryRepetition,
			Text:     w,
			Message:  fmt.Sprintf("%q appears %d times; consider varying your word choice.", w, n),
			Position: pos,
		})
	}
	return out
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) > excerptRunes {
		r = r[:excerptRunes]
	}
	return string(r) + "..."
}

// CountByCategory returns the number of issues in each category.
func CountByCategory(issues []schema.Issue) map[schema.Category]int {
	counts := make(map[schema.Category]int, len(schema.Categories))
	for _, c := range schema.Categories {
		counts[c] = 0
	}
	for _, is := range issues {
		counts[is.Category]++
	}
	return counts
}

// CountByKind returns the number of clarity and style issues.
func CountByKind(issues []schema.Issue) (clarity, style int) {
	for _, is := range issues {
		switch is.Kind {
		case schema.KindClarity:
			clarity++
		case schema.KindStyle:
			style++
		}
	}
	return
}
