// Package engine is the entry point for analysis and transformation. An
// Engine is built once from a lexicon and holds only read-only compiled
// rules, so a single Engine may serve concurrent callers.
package engine

import (
	"unicode/utf8"

	"github.com/dshills/prosecheck/internal/detect"
	"github.com/dshills/prosecheck/internal/lexicon"
	"github.com/dshills/prosecheck/internal/readability"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/score"
	"github.com/dshills/prosecheck/internal/tokenize"
	"github.com/dshills/prosecheck/internal/tone"
	"github.com/dshills/prosecheck/internal/transform"
)

// ToolName and Version identify reports produced by this build.
const (
	ToolName = "prosecheck"
	Version  = "0.1.0"
)

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

// Engine bundles the detector, tone classifier and transformer for one
// lexicon.
type Engine struct {
	detector    *detect.Detector
	classifier  *tone.Classifier
	transformer *transform.Transformer
}

// New builds an engine from lex. A nil lex selects lexicon.Default().
func New(lex *lexicon.Lexicon) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Engine{
		detector:    detect.New(lex),
		classifier:  tone.New(lex),
		transformer: transform.New(lex),
	}
}

// Analyze detects issues, scores the text and classifies its tone. Empty or
// very short text yields no issues and nil scores and tone rather than an
// error.
func (e *Engine) Analyze(text string) schema.Analysis {
	issues := e.detector.Detect(text)
	return schema.Analysis{
		Issues: issues,
		Scores: score.Compute(text, issues),
		Tone:   e.classifier.Classify(text),
		Stats:  Stats(text),
	}
}

// Issues returns only the detected issues.
func (e *Engine) Issues(text string) []schema.Issue {
	return e.detector.Detect(text)
}

// Composite returns the score bundle for text, or nil below score.MinWords.
func (e *Engine) Composite(text string) *schema.ScoreBundle {
	return score.Compute(text, e.detector.Detect(text))
}

// Readability returns the Flesch Reading Ease of text.
func (e *Engine) Readability(text string) int {
	return readability.ScoreText(text)
}

// Tone returns the tone distribution of text, or nil below tone.MinWords.
func (e *Engine) Tone(text string) *schema.ToneDistribution {
	return e.classifier.Classify(text)
}

// Transform runs one rewrite tool over text.
func (e *Engine) Transform(tool transform.Tool, text string, opts transform.Options) ([]schema.TransformResult, error) {
	return e.transformer.Apply(tool, text, opts)
}

// Report analyzes text and wraps the result with summary figures.
func (e *Engine) Report(source, format, text string) *schema.Report {
	a := e.Analyze(text)
	clarity, style := detect.CountByKind(a.Issues)
	sum := schema.Summary{
		ClarityCount:  clarity,
		StyleCount:    style,
		CategoryCount: detect.CountByCategory(a.Issues),
		DominantTone:  tone.Dominant(a.Tone),
	}
	if a.Scores != nil {
		sum.Overall = a.Scores.Overall
		sum.Grade = score.Grade(a.Scores.Overall)
	} else {
		sum.Grade = "Not enough text"
	}
	return &schema.Report{
		Tool:     ToolName,
		Version:  Version,
		Input:    schema.Input{Source: source, Format: format},
		Summary:  sum,
		Analysis: a,
	}
}

// Stats computes word, sentence and character counts and a reading-time
// estimate.
func Stats(text string) schema.Stats {
	words := len(tokenize.Words(text))
	secs := 0
	if words > 0 {
		secs = max(1, readability.Round(float64(words)*60/wordsPerMinute))
	}
	return schema.Stats{
		Words:              words,
		Sentences:          len(tokenize.Sentences(text)),
		Characters:         utf8.RuneCountInString(text),
		ReadingTimeSeconds: secs,
	}
}
