// Package tone scores text against six tone categories and normalizes the
// result to a percentage distribution.
package tone

import (
	"regexp"
	"strings"

	"github.com/dshills/prosecheck/internal/lexicon"
	"github.com/dshills/prosecheck/internal/readability"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/tokenize"
)

// MinWords is the smallest document that receives a tone distribution.
const MinWords = 5

const wordHit = 2

var (
	exclaimRunRe = regexp.MustCompile(`!{2,}`)
	periodEndRe  = regexp.MustCompile(`\.(?:\s|$)`)
)

// Classifier holds the tone lexicons as lookup sets. It is safe for
// concurrent use.
type Classifier struct {
	words map[string][]schema.Tone
}

// New builds a classifier from lex.
func New(lex *lexicon.Lexicon) *Classifier {
	c := &Classifier{words: make(map[string][]schema.Tone)}
	for _, t := range schema.Tones {
		for _, w := range lex.ToneWords[t] {
			c.words[w] = append(c.words[w], t)
		}
	}
	return c
}

// Raw returns the unnormalized accumulator for each tone.
func (c *Classifier) Raw(text string) map[schema.Tone]int {
	acc := make(map[schema.Tone]int, len(schema.Tones))
	for _, t := range schema.Tones {
		acc[t] = 0
	}
	for _, w := range tokenize.LowerWords(text) {
		for _, t := range c.words[w] {
			acc[t] += wordHit
		}
	}

	if exclaimRunRe.MatchString(text) {
		acc[schema.ToneCasual] += 3
		acc[schema.ToneUrgent] += 2
	}
	if strings.Contains(text, "?") {
		acc[schema.ToneFriendly]++
		acc[schema.ToneAnalytical]++
	}
	if len(periodEndRe.FindAllStringIndex(text, -1)) > 5 {
		acc[schema.ToneFormal] += 2
	}
	if sentences := tokenize.Sentences(text); len(sentences) > 0 {
		avg := float64(len(tokenize.Words(text))) / float64(len(sentences))
		if avg > 20 {
			acc[schema.ToneFormal] += 3
		}
		if avg < 10 {
			acc[schema.ToneCasual] += 2
		}
	}
	return acc
}

// Classify returns the tone distribution of text, or nil when text has fewer
// than MinWords words. Each percentage is rounded on its own; the total may
// drift from 100.
func (c *Classifier) Classify(text string) *schema.ToneDistribution {
	if len(tokenize.Words(text)) < MinWords {
		return nil
	}
	acc := c.Raw(text)
	total := 0
	for _, v := range acc {
		total += v
	}
	total = max(total, 1)

	dist := &schema.ToneDistribution{}
	for _, t := range schema.Tones {
		dist.Set(t, readability.Round(100*float64(acc[t])/float64(total)))
	}
	return dist
}

// Dominant returns the tone with the highest percentage. Ties go to the tone
// listed first in schema.Tones. It returns "" when every tone is zero.
func Dominant(d *schema.ToneDistribution) schema.Tone {
	if d == nil {
		return ""
	}
	var best schema.Tone
	bestPct := 0
	for _, t := range schema.Tones {
		if p := d.Percent(t); p > bestPct {
			best, bestPct = t, p
		}
	}
	return best
}
