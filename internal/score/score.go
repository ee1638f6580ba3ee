// Package score provides deterministic composite scoring. The weights and
// thresholds here are fixed; identical input always yields identical scores.
package score

import (
	"regexp"
	"strings"

	"github.com/dshills/prosecheck/internal/detect"
	"github.com/dshills/prosecheck/internal/readability"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/tokenize"
)

// MinWords is the smallest document that receives a score.
const MinWords = 5

// Overall weights.
const (
	weightReadability = 0.25
	weightClarity     = 0.30
	weightEngagement  = 0.20
	weightGrammar     = 0.25
)

var (
	doubleSpaceRe    = regexp.MustCompile(` {2,}`)
	missingCapitalRe = regexp.MustCompile(`[.!?]\s+[a-z]`)
)

// Compute scores text given the issues already detected in it. It returns nil
// when text has fewer than MinWords words.
func Compute(text string, issues []schema.Issue) *schema.ScoreBundle {
	words := tokenize.Words(text)
	if len(words) < MinWords {
		return nil
	}
	sentences := tokenize.Sentences(text)
	counts := detect.CountByCategory(issues)

	b := &schema.ScoreBundle{
		Readability: readability.Score(words, sentences),
		Clarity:     Clarity(counts),
		Engagement:  Engagement(text, sentences, counts),
		Grammar:     Grammar(text),
	}
	b.Overall = Overall(b.Readability, b.Clarity, b.Engagement, b.Grammar)
	return b
}

// Clarity starts at 100 and subtracts 5 per passive construction, 4 per
// filler phrase, 3 per complex word and 6 per long sentence. The penalty is
// capped at 50 and the result floored at 10.
func Clarity(counts map[schema.Category]int) int {
	penalty := 5*counts[schema.CategoryPassiveVoice] +
		4*counts[schema.CategoryFiller] +
		3*counts[schema.CategoryComplexWord] +
		6*counts[schema.CategoryLongSentence]
	return max(10, 100-min(50, penalty))
}

// Engagement starts at 60. Sentence-length variety (more than two sentences
// whose word counts fall into at least two buckets of five) adds 15 and a
// question adds 10. Weak words, clichés and repetition subtract up to 30.
// The result is clamped to [10, 100].
func Engagement(text string, sentences []string, counts map[schema.Category]int) int {
	e := 60
	if len(sentences) > 2 {
		buckets := make(map[int]bool)
		for _, s := range sentences {
			buckets[len(tokenize.Words(s))/5] = true
		}
		if len(buckets) >= 2 {
			e += 15
		}
	}
	if strings.Contains(text, "?") {
		e += 10
	}
	e -= min(30, 2*counts[schema.CategoryWeakWord]+
		4*counts[schema.CategoryCliche]+
		3*counts[schema.CategoryRepetition])
	return min(100, max(10, e))
}

// Grammar subtracts 3 per run of two or more spaces and 5 per lowercase
// letter after sentence-ending punctuation. The penalty is capped at 40.
func Grammar(text string) int {
	penalty := 3*DoubleSpaces(text) + 5*MissingCapitals(text)
	return max(20, 100-min(40, penalty))
}

// DoubleSpaces counts runs of two or more spaces.
func DoubleSpaces(text string) int {
	return len(doubleSpaceRe.FindAllStringIndex(text, -1))
}

// MissingCapitals counts sentence starts that begin with a lowercase letter.
func MissingCapitals(text string) int {
	return len(missingCapitalRe.FindAllStringIndex(text, -1))
}

// Overall combines the four component scores with the fixed weights.
func Overall(readabilityScore, clarity, engagement, grammar int) int {
	return readability.Round(weightReadability*float64(readabilityScore) +
		weightClarity*float64(clarity) +
		weightEngagement*float64(engagement) +
		weightGrammar*float64(grammar))
}

// Grade maps an overall score to a short label.
func Grade(overall int) string {
	switch {
	case overall >= 85:
		return "Excellent"
	case overall >= 70:
		return "Good"
	case overall >= 50:
		return "Fair"
	default:
		return "Needs work"
	}
}
