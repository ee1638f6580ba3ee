// Package lexicon holds the read-only rule tables used by detection, tone
// classification and transformation. A Lexicon is built once and passed to
// the components that need it; nothing mutates it afterwards.
package lexicon

import (
	"slices"
	"strings"

	"github.com/dshills/prosecheck/internal/schema"
)

// Replacement maps a word to its preferred alternative.
type Replacement struct {
	From string
	To   string
}

// Lexicon is the full set of word lists and mappings.
type Lexicon struct {
	WeakWords            []string
	FillerPhrases        []string
	Cliches              []string
	ComplexWords         []Replacement
	PassiveAuxiliaries   []string
	IrregularParticiples []string
	StopWords            []string
	ToneWords            map[schema.Tone][]string
	Typos                []Replacement
}

// Extras are caller-supplied additions, typically from configuration.
type Extras struct {
	WeakWords     []string
	FillerPhrases []string
	Cliches       []string
	ComplexWords  map[string]string
}

// Default returns a fresh copy of the built-in English lexicon.
func Default() *Lexicon {
	tw := make(map[schema.Tone][]string, len(toneWords))
	for t, words := range toneWords {
		tw[t] = clone(words)
	}
	return &Lexicon{
		WeakWords:            clone(weakWords),
		FillerPhrases:        clone(fillerPhrases),
		Cliches:              clone(cliches),
		ComplexWords:         append([]Replacement(nil), complexWords...),
		PassiveAuxiliaries:   clone(passiveAuxiliaries),
		IrregularParticiples: clone(irregularParticiples),
		StopWords:            clone(stopWords),
		ToneWords:            tw,
		Typos:                append([]Replacement(nil), typos...),
	}
}

// Extend returns a new lexicon containing l plus the entries in e.
// Duplicates (case-insensitive) are skipped. Complex-word additions are
// appended in sorted key order so detection output stays deterministic.
func (l *Lexicon) Extend(e Extras) *Lexicon {
	out := *l
	out.WeakWords = mergeWords(l.WeakWords, e.WeakWords)
	out.FillerPhrases = mergeWords(l.FillerPhrases, e.FillerPhrases)
	out.Cliches = mergeWords(l.Cliches, e.Cliches)

	out.ComplexWords = append([]Replacement(nil), l.ComplexWords...)
	seen := make(map[string]bool, len(out.ComplexWords))
	for _, r := range out.ComplexWords {
		seen[strings.ToLower(r.From)] = true
	}
	for _, k := range sortedKeys(e.ComplexWords) {
		from := strings.ToLower(strings.TrimSpace(k))
		to := strings.TrimSpace(e.ComplexWords[k])
		if from == "" || to == "" || seen[from] {
			continue
		}
		seen[from] = true
		out.ComplexWords = append(out.ComplexWords, Replacement{From: from, To: to})
	}
	return &out
}

// IsWeak reports whether word (any case) is in the weak-word list.
func (l *Lexicon) IsWeak(word string) bool {
	w := strings.ToLower(word)
	for _, weak := range l.WeakWords {
		if weak == w {
			return true
		}
	}
	return false
}

// StopWordSet returns the stop words as a set.
func (l *Lexicon) StopWordSet() map[string]bool {
	set := make(map[string]bool, len(l.StopWords))
	for _, w := range l.StopWords {
		set[w] = true
	}
	return set
}

// SimpleAlternative returns the first alternative listed in a replacement
// target such as "help/ease".
func SimpleAlternative(to string) string {
	if i := strings.Index(to, "/"); i >= 0 {
		return strings.TrimSpace(to[:i])
	}
	return strings.TrimSpace(to)
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

func mergeWords(base, extra []string) []string {
	out := clone(base)
	seen := make(map[string]bool, len(out)+len(extra))
	for _, w := range out {
		seen[strings.ToLower(w)] = true
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
