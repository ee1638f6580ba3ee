// Package schema defines all canonical data types for the prosecheck output format.
package schema

// IssueKind groups issues into the two families shown to writers.
type IssueKind string

const (
	KindClarity IssueKind = "clarity"
	KindStyle   IssueKind = "style"
)

// Category identifies the rule that produced an issue.
type Category string

const (
	CategoryPassiveVoice Category = "passive-voice"
	CategoryWeakWord     Category = "weak-word"
	CategoryFiller       Category = "filler-phrase"
	CategoryCliche       Category = "cliche"
	CategoryComplexWord  Category = "complex-word"
	CategoryLongSentence Category = "long-sentence"
	CategoryRepetition   Category = "repetition"
)

// Categories lists every category in detector emission order.
var Categories = []Category{
	CategoryPassiveVoice,
	CategoryWeakWord,
	CategoryFiller,
	CategoryCliche,
	CategoryComplexWord,
	CategoryLongSentence,
	CategoryRepetition,
}

// Issue is a single flagged span of text.
// Position is a character offset into the exact text that was analyzed.
type Issue struct {
	Kind       IssueKind `json:"kind"`
	Category   Category  `json:"category"`
	Text       string    `json:"text"`
	Message    string    `json:"message"`
	Position   int       `json:"position"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// ScoreBundle holds the composite quality score and its four components.
// Every field lies in [0, 100].
type ScoreBundle struct {
	Overall     int `json:"overall"`
	Readability int `json:"readability"`
	Clarity     int `json:"clarity"`
	Engagement  int `json:"engagement"`
	Grammar     int `json:"grammar"`
}

// Tone is one of the six stylistic categories.
type Tone string

const (
	ToneFormal     Tone = "formal"
	ToneCasual     Tone = "casual"
	ToneConfident  Tone = "confident"
	ToneAnalytical Tone = "analytical"
	ToneFriendly   Tone = "friendly"
	ToneUrgent     Tone = "urgent"
)

// Tones lists the tone categories in display order.
var Tones = []Tone{ToneFormal, ToneCasual, ToneConfident, ToneAnalytical, ToneFriendly, ToneUrgent}

// ToneDistribution is the percentage breakdown across the six tones.
// Percentages are rounded independently and need not sum to exactly 100.
type ToneDistribution struct {
	Formal     int `json:"formal"`
	Casual     int `json:"casual"`
	Confident  int `json:"confident"`
	Analytical int `json:"analytical"`
	Friendly   int `json:"friendly"`
	Urgent     int `json:"urgent"`
}

// Percent returns the percentage recorded for t, or 0 for an unknown tone.
func (d ToneDistribution) Percent(t Tone) int {
	switch t {
	case ToneFormal:
		return d.Formal
	case ToneCasual:
		return d.Casual
	case ToneConfident:
		return d.Confident
	case ToneAnalytical:
		return d.Analytical
	case ToneFriendly:
		return d.Friendly
	case ToneUrgent:
		return d.Urgent
	}
	return 0
}

// Set stores p as the percentage for t. Unknown tones are ignored.
func (d *ToneDistribution) Set(t Tone, p int) {
	switch t {
	case ToneFormal:
		d.Formal = p
	case ToneCasual:
		d.Casual = p
	case ToneConfident:
		d.Confident = p
	case ToneAnalytical:
		d.Analytical = p
	case ToneFriendly:
		d.Friendly = p
	case ToneUrgent:
		d.Urgent = p
	}
}

// TransformResult is one generated variant of the input text.
// Label is a short human-readable description, not a machine code.
type TransformResult struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Stats holds plain document statistics.
type Stats struct {
	Words              int `json:"words"`
	Sentences          int `json:"sentences"`
	Characters         int `json:"characters"`
	ReadingTimeSeconds int `json:"reading_time_seconds"`
}

// Analysis is the result of analyzing one text. Scores and Tone are nil when
// the text is too short to score.
type Analysis struct {
	Issues []Issue           `json:"issues"`
	Scores *ScoreBundle      `json:"scores"`
	Tone   *ToneDistribution `json:"tone"`
	Stats  Stats             `json:"stats"`
}

// Report is the top-level output document for one analyzed source.
type Report struct {
	Tool     string   `json:"tool"`
	Version  string   `json:"version"`
	Input    Input    `json:"input"`
	Summary  Summary  `json:"summary"`
	Analysis Analysis `json:"analysis"`
}

// Input records what was analyzed.
type Input struct {
	Source string `json:"source"`
	Format string `json:"format"`
}

// Summary holds the derived headline figures.
type Summary struct {
	Grade         string           `json:"grade"`
	Overall       int              `json:"overall"`
	DominantTone  Tone             `json:"dominant_tone,omitempty"`
	ClarityCount  int              `json:"clarity_count"`
	StyleCount    int              `json:"style_count"`
	CategoryCount map[Category]int `json:"category_count"`
}
