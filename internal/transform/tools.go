package transform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/prosecheck/internal/profile"
	"github.com/dshills/prosecheck/internal/readability"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/tokenize"
)

// minStreamlinedRunes is the shortest streamlined rewrite worth offering.
const minStreamlinedRunes = 10

// Rewrite prepends a tone-specific starter, then offers a streamlined variant
// and a variant with the sentence order reversed when those differ from the
// input.
func (t *Transformer) Rewrite(text string, opts Options) ([]schema.TransformResult, error) {
	p, err := profile.Load(opts.Tone)
	if err != nil {
		return nil, err
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand64
	}
	idx := int(rnd() * float64(len(p.Starters)))
	idx = min(max(idx, 0), len(p.Starters)-1)

	results := []schema.TransformResult{{
		Text:  p.Starters[idx] + " " + lowerFirst(text),
		Label: p.Label + " tone",
	}}

	if s := t.stripFillerAndWeak(text); s != text && utf8.RuneCountInString(s) > minStreamlinedRunes {
		results = append(results, schema.TransformResult{
			Text:  s,
			Label: "Streamlined: filler and weak words removed",
		})
	}

	if sentences := tokenize.SplitSentences(text); len(sentences) > 1 {
		reversed := make([]string, len(sentences))
		for i, s := range sentences {
			reversed[len(sentences)-1-i] = s
		}
		results = append(results, schema.TransformResult{
			Text:  strings.Join(reversed, " "),
			Label: "Restructured: sentence order reversed",
		})
	}
	return results, nil
}

var expansions = []struct {
	suffix string
	label  string
}{
	{
		suffix: "This matters because it shapes how readers understand the wider situation and what is at stake.",
		label:  "Expanded with supporting context",
	},
	{
		suffix: "For example, consider how this plays out in a real situation, where concrete details make the idea easier to follow.",
		label:  "Expanded with an example",
	},
	{
		suffix: "Looking more closely, the underlying causes and long-term effects show why this deserves careful attention.",
		label:  "Expanded with deeper analysis",
	},
}

// Expand appends each fixed continuation to the unmodified text.
func (t *Transformer) Expand(text string) []schema.TransformResult {
	results := make([]schema.TransformResult, 0, len(expansions))
	for _, e := range expansions {
		results = append(results, schema.TransformResult{
			Text:  text + " " + e.suffix,
			Label: e.label,
		})
	}
	return results
}

// Shorten offers a filler-free version when it is materially shorter, a
// first-and-last-sentence summary, and the first half of the sentences.
func (t *Transformer) Shorten(text string) []schema.TransformResult {
	var results []schema.TransformResult

	orig := utf8.RuneCountInString(text)
	stripped := t.stripFillerAndWeak(text)
	if n := utf8.RuneCountInString(stripped); float64(n) < 0.95*float64(orig) {
		pct := readability.Round((1 - float64(n)/float64(orig)) * 100)
		results = append(results, schema.TransformResult{
			Text:  stripped,
			Label: fmt.Sprintf("Concise: %d%% shorter", pct),
		})
	}

	sentences := tokenize.SplitSentences(text)
	if len(sentences) > 2 {
		results = append(results, schema.TransformResult{
			Text:  sentences[0] + " " + sentences[len(sentences)-1],
			Label: "Summary: first and last sentences",
		})
	}
	if len(sentences) > 3 {
		half := (len(sentences) + 1) / 2
		results = append(results, schema.TransformResult{
			Text:  strings.Join(sentences[:half], " "),
			Label: fmt.Sprintf("First half: %d of %d sentences", half, len(sentences)),
		})
	}

	if len(results) == 0 {
		return fallback(text)
	}
	return results
}

var (
	doubleSpaceRe   = regexp.MustCompile(` {2,}`)
	lowerAfterEndRe = regexp.MustCompile(`[.!?]\s+[a-z]`)
)

// GrammarFix applies mechanical corrections and returns two results: the
// corrected text and a log of what changed. Running it on its own output
// makes no further corrections.
func (t *Transformer) GrammarFix(text string) []schema.TransformResult {
	s := text
	var log []string

	if n := len(doubleSpaceRe.FindAllStringIndex(s, -1)); n > 0 {
		s = doubleSpaceRe.ReplaceAllString(s, " ")
		log = append(log, "Replaced "+plural(n, "double space", "double spaces")+" with single spaces")
	}

	if n := len(lowerAfterEndRe.FindAllStringIndex(s, -1)); n > 0 {
		s = lowerAfterEndRe.ReplaceAllStringFunc(s, func(m string) string {
			r, size := utf8.DecodeLastRuneInString(m)
			return m[:len(m)-size] + string(unicode.ToUpper(r))
		})
		log = append(log, "Capitalized "+plural(n, "sentence start", "sentence starts"))
	}

	if last, _ := utf8.DecodeLastRuneInString(s); !strings.ContainsRune(".!?", last) {
		s += "."
		log = append(log, "Added a period at the end")
	}

	if up := upperFirst(s); up != s {
		s = up
		log = append(log, "Capitalized the first letter")
	}

	for _, r := range t.typos {
		n := 0
		s = r.re.ReplaceAllStringFunc(s, func(m string) string {
			n++
			return matchCase(m, r.to)
		})
		if n > 0 {
			log = append(log, fmt.Sprintf("Corrected spelling: %q to %q (%s)", r.from, r.to, plural(n, "time", "times")))
		}
	}

	if len(log) == 0 {
		return []schema.TransformResult{
			{Text: s, Label: NoChangesLabel},
			{Text: "No grammar issues found.", Label: "Change log"},
		}
	}
	return []schema.TransformResult{
		{Text: s, Label: "Corrected text (" + plural(len(log), "fix", "fixes") + ")"},
		{Text: strings.Join(log, "\n"), Label: "Change log"},
	}
}

// Simplify swaps complex words for their first simple alternative and drops
// filler phrases.
func (t *Transformer) Simplify(text string) []schema.TransformResult {
	s := text
	var log []string
	for _, r := range t.complex {
		s = r.re.ReplaceAllStringFunc(s, func(m string) string {
			to := matchCase(m, r.to)
			log = append(log, fmt.Sprintf("%q → %q", m, to))
			return to
		})
	}
	for _, re := range t.fillers {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			log = append(log, fmt.Sprintf("Removed %q", m))
			return ""
		})
	}
	if len(log) == 0 {
		return fallback(text)
	}
	return []schema.TransformResult{
		{Text: tidy(s), Label: "Simplified (" + plural(len(log), "change", "changes") + ")"},
		{Text: strings.Join(log, "\n"), Label: "Change log"},
	}
}

var (
	keywordRe = regexp.MustCompile(`[A-Za-z]+`)

	headlineTemplates = []struct {
		format string
		label  string
	}{
		{"How to Master %s", "How-to"},
		{"The Complete Guide to %s", "Guide"},
		{"Why %s Matters More Than You Think", "Thought leadership"},
		{"7 Essential Tips for %s", "Listicle"},
		{"%s: What You Need to Know", "Direct"},
		{"Start Improving Your %s Today", "Action-oriented"},
	}
)

const (
	maxKeywords     = 5
	topicWords      = 3
	minKeywordRunes = 5
)

// Keywords returns up to five distinct words longer than four letters that
// are not weak words, in order of appearance.
func (t *Transformer) Keywords(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range keywordRe.FindAllString(text, -1) {
		lw := strings.ToLower(w)
		if len(w) < minKeywordRunes || seen[lw] || t.lex.IsWeak(lw) {
			continue
		}
		seen[lw] = true
		out = append(out, w)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

// Headlines fills six title templates with a topic built from the first
// three keywords.
func (t *Transformer) Headlines(text string) []schema.TransformResult {
	kw := t.Keywords(text)
	if len(kw) == 0 {
		return fallback(text)
	}
	topic := cases.Title(language.English).String(strings.Join(kw[:min(topicWords, len(kw))], " "))
	results := make([]schema.TransformResult, 0, len(headlineTemplates))
	for _, h := range headlineTemplates {
		results = append(results, schema.TransformResult{
			Text:  fmt.Sprintf(h.format, topic),
			Label: h.label,
		})
	}
	return results
}
