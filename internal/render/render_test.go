package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/prosecheck/internal/schema"
)

func sampleReport() *schema.Report {
	return &schema.Report{
		Tool:    "prosecheck",
		Version: "0.1.0",
		Input:   schema.Input{Source: "notes.md", Format: "markdown"},
		Summary: schema.Summary{
			Grade:        "Good",
			Overall:      78,
			DominantTone: schema.ToneFormal,
			ClarityCount: 1,
			StyleCount:   1,
			CategoryCount: map[schema.Category]int{
				schema.CategoryPassiveVoice: 1,
				schema.CategoryWeakWord:     1,
			},
		},
		Analysis: schema.Analysis{
			Issues: []schema.Issue{
				{
					Kind:     schema.KindClarity,
					Category: schema.CategoryPassiveVoice,
					Text:     "was thrown",
					Message:  "Passive voice: consider rewriting in active voice.",
					Position: 9,
				},
				{
					Kind:     schema.KindStyle,
					Category: schema.CategoryWeakWord,
					Text:     "very",
					Message:  "Weak word: consider removing or replacing it.",
					Position: 35,
				},
			},
			Scores: &schema.ScoreBundle{Overall: 78, Readability: 90, Clarity: 95, Engagement: 58, Grammar: 100},
			Tone:   &schema.ToneDistribution{Formal: 60, Casual: 40},
			Stats:  schema.Stats{Words: 10, Sentences: 2, Characters: 47, ReadingTimeSeconds: 3},
		},
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	report := sampleReport()
	b, err := RenderJSON(report)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	var got schema.Report
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if got.Summary.Grade != report.Summary.Grade {
		t.Errorf("grade mismatch: got %q, want %q", got.Summary.Grade, report.Summary.Grade)
	}
	if len(got.Analysis.Issues) != len(report.Analysis.Issues) {
		t.Errorf("issue count mismatch: got %d, want %d", len(got.Analysis.Issues), len(report.Analysis.Issues))
	}
	if got.Analysis.Scores == nil || *got.Analysis.Scores != *report.Analysis.Scores {
		t.Errorf("scores mismatch: got %+v, want %+v", got.Analysis.Scores, report.Analysis.Scores)
	}
	if got.Summary.CategoryCount[schema.CategoryWeakWord] != 1 {
		t.Errorf("category count lost: %v", got.Summary.CategoryCount)
	}
}

func TestRenderJSON_Nil(t *testing.T) {
	if _, err := RenderJSON(nil); err == nil {
		t.Error("expected error for nil report")
	}
}

func TestRenderJSON_NullScoresForShortText(t *testing.T) {
	report := sampleReport()
	report.Analysis.Scores = nil
	report.Analysis.Tone = nil
	b, err := RenderJSON(report)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"scores": null`) || !strings.Contains(s, `"tone": null`) {
		t.Errorf("expected null scores and tone, got:\n%s", s)
	}
}

func TestRenderTransformJSON_Empty(t *testing.T) {
	b, err := RenderTransformJSON(nil)
	if err != nil {
		t.Fatalf("RenderTransformJSON error: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("got %s, want []", b)
	}
}

func TestRenderMarkdown_ContainsAllIssues(t *testing.T) {
	md := RenderMarkdown(sampleReport())
	for _, want := range []string{"was thrown", "very", "passive-voice", "weak-word"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestRenderMarkdown_Summary(t *testing.T) {
	md := RenderMarkdown(sampleReport())
	checks := []string{"notes.md", "**Grade:** Good", "78/100", "**Tone:** formal", "## Scores", "## Tone", "3s reading time"}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_LargeCounts(t *testing.T) {
	report := sampleReport()
	report.Analysis.Stats = schema.Stats{Words: 12500, Sentences: 1040, ReadingTimeSeconds: 3750}
	md := RenderMarkdown(report)
	if !strings.Contains(md, "12,500 words, 1,040 sentences, 62m 30s reading time.") {
		t.Errorf("stats line not formatted:\n%s", md)
	}
}

func TestRenderMarkdown_EscapesPipes(t *testing.T) {
	report := sampleReport()
	report.Analysis.Issues[0].Text = "before|after"
	md := RenderMarkdown(report)
	if !strings.Contains(md, `before\|after`) {
		t.Error("pipe in issue text not escaped in markdown table")
	}
}

func TestRenderMarkdown_ShortText(t *testing.T) {
	report := sampleReport()
	report.Analysis.Issues = nil
	report.Analysis.Scores = nil
	report.Analysis.Tone = nil
	md := RenderMarkdown(report)
	if strings.Contains(md, "## Scores") || strings.Contains(md, "## Tone") {
		t.Error("short text should not render score or tone tables")
	}
	if !strings.Contains(md, "No issues found.") {
		t.Error("expected empty-issues note")
	}
}

func TestRenderTransformMarkdown(t *testing.T) {
	results := []schema.TransformResult{
		{Text: "We need to use this.", Label: "Simplified (1 change)"},
		{Text: "Fixed.\nLine two", Label: "Change log"},
	}
	md := RenderTransformMarkdown("simplify", results)
	for _, want := range []string{"## simplify", "### 1. Simplified (1 change)", "> We need to use this.", "> Line two"} {
		if !strings.Contains(md, want) {
			t.Errorf("transform markdown missing %q", want)
		}
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 00s"},
		{125, "2m 05s"},
	}
	for _, tc := range tests {
		if got := readingTime(tc.secs); got != tc.want {
			t.Errorf("readingTime(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}
