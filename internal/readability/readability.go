// Package readability computes the Flesch Reading Ease score.
package readability

import (
	"math"

	"github.com/dshills/prosecheck/internal/tokenize"
)

// Flesch Reading Ease coefficients.
const (
	base            = 206.835
	sentencePenalty = 1.015
	syllablePenalty = 84.6
)

// Score computes Flesch Reading Ease from pre-tokenized words and sentences.
// The result is rounded and clamped to [0, 100]; it is 0 when either input is
// empty.
func Score(words, sentences []string) int {
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}
	syllables := 0
	for _, w := range words {
		syllables += tokenize.Syllables(w)
	}
	avgWords := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(syllables) / float64(len(words))
	raw := base - sentencePenalty*avgWords - syllablePenalty*avgSyllables
	return Round(Clamp(raw, 0, 100))
}

// ScoreText tokenizes text and returns its Flesch Reading Ease.
func ScoreText(text string) int {
	return Score(tokenize.Words(text), tokenize.Sentences(text))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds half up, matching the score tables this package reproduces.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
