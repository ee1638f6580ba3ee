package score

import (
	"testing"

	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/tokenize"
)

func TestCompute_TooShort(t *testing.T) {
	for _, text := range []string{"", "   ", "Only four words here."} {
		if got := Compute(text, nil); got != nil {
			t.Errorf("Compute(%q) = %+v, want nil", text, got)
		}
	}
}

func TestCompute_OverallMatchesFormula(t *testing.T) {
	text := "The report was written by the team. It is very clear? Yes, it reads well today."
	issues := []schema.Issue{
		{Category: schema.CategoryPassiveVoice},
		{Category: schema.CategoryWeakWord},
	}
	b := Compute(text, issues)
	if b == nil {
		t.Fatal("Compute returned nil")
	}
	want := Overall(b.Readability, b.Clarity, b.Engagement, b.Grammar)
	if b.Overall != want {
		t.Errorf("Overall = %d, want %d", b.Overall, want)
	}
	if b.Clarity != 95 {
		t.Errorf("Clarity = %d, want 95", b.Clarity)
	}
	for name, v := range map[string]int{
		"overall": b.Overall, "readability": b.Readability, "clarity": b.Clarity,
		"engagement": b.Engagement, "grammar": b.Grammar,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s = %d, out of [0, 100]", name, v)
		}
	}
}

func TestClarity(t *testing.T) {
	cases := []struct {
		name   string
		counts map[schema.Category]int
		want   int
	}{
		{"none", map[schema.Category]int{}, 100},
		{"one passive", map[schema.Category]int{schema.CategoryPassiveVoice: 1}, 95},
		{"one filler", map[schema.Category]int{schema.CategoryFiller: 1}, 96},
		{"one complex", map[schema.Category]int{schema.CategoryComplexWord: 1}, 97},
		{"one long sentence", map[schema.Category]int{schema.CategoryLongSentence: 1}, 94},
		{"mixed", map[schema.Category]int{schema.CategoryPassiveVoice: 2, schema.CategoryFiller: 1, schema.CategoryComplexWord: 1}, 83},
		{"penalty capped", map[schema.Category]int{schema.CategoryLongSentence: 20}, 50},
		{"style ignored", map[schema.Category]int{schema.CategoryWeakWord: 10, schema.CategoryCliche: 3}, 100},
	}
	for _, c := range cases {
		if got := Clarity(c.counts); got != c.want {
			t.Errorf("%s: Clarity = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestEngagement(t *testing.T) {
	varied := "Go now. This sentence has quite a few more words in it. Stop."
	cases := []struct {
		name   string
		text   string
		counts map[schema.Category]int
		want   int
	}{
		{"base", "One two three four five six.", nil, 60},
		{"variety", varied, nil, 75},
		{"variety and question", varied + " Why?", nil, 85},
		{"uniform lengths", "Go now. Stop it. Run on.", nil, 60},
		{"weak words", "One two three four five six.", map[schema.Category]int{schema.CategoryWeakWord: 3}, 54},
		{"penalty capped", "One two three four five six.", map[schema.Category]int{schema.CategoryCliche: 20}, 30},
		{"repetition", "One two three four five six.", map[schema.Category]int{schema.CategoryRepetition: 2}, 54},
	}
	for _, c := range cases {
		counts := c.counts
		if counts == nil {
			counts = map[schema.Category]int{}
		}
		sentences := tokenize.Sentences(c.text)
		if got := Engagement(c.text, sentences, counts); got != c.want {
			t.Errorf("%s: Engagement = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestGrammar(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Clean text. Nothing wrong here.", 100},
		{"Hello  world. this is fine.", 92},
		{"a.  b.  c.  d.  e.  f.  g.", 60},
		{"Three   spaces count once.", 97},
	}
	for _, c := range cases {
		if got := Grammar(c.text); got != c.want {
			t.Errorf("Grammar(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestOverall(t *testing.T) {
	cases := []struct {
		r, c, e, g int
		want       int
	}{
		{100, 100, 100, 100, 100},
		{0, 0, 0, 0, 0},
		{80, 94, 60, 100, 85},  // 20 + 28.2 + 12 + 25 = 85.2
		{50, 50, 50, 51, 50},   // 50.25
		{60, 100, 70, 100, 84}, // 15 + 30 + 14 + 25
	}
	for _, c := range cases {
		if got := Overall(c.r, c.c, c.e, c.g); got != c.want {
			t.Errorf("Overall(%d, %d, %d, %d) = %d, want %d", c.r, c.c, c.e, c.g, got, c.want)
		}
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		overall int
		want    string
	}{
		{100, "Excellent"},
		{85, "Excellent"},
		{84, "Good"},
		{70, "Good"},
		{69, "Fair"},
		{50, "Fair"},
		{49, "Needs work"},
		{0, "Needs work"},
	}
	for _, c := range cases {
		if got := Grade(c.overall); got != c.want {
			t.Errorf("Grade(%d) = %q, want %q", c.overall, got, c.want)
		}
	}
}
