// Package render produces output from a fully assembled schema.Report or a
// set of transform results.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dshills/prosecheck/internal/schema"
)

// RenderJSON produces a pretty-printed JSON representation of the report.
// The output round-trips through json.Unmarshal back to an equal Report.
func RenderJSON(report *schema.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render: nil report")
	}
	return marshal(report)
}

// RenderReportsJSON renders several reports as one JSON array.
func RenderReportsJSON(reports []*schema.Report) ([]byte, error) {
	if reports == nil {
		reports = []*schema.Report{}
	}
	return marshal(reports)
}

// RenderTransformJSON renders transform results as a JSON array. An empty
// result set renders as [] rather than null.
func RenderTransformJSON(results []schema.TransformResult) ([]byte, error) {
	if results == nil {
		results = []schema.TransformResult{}
	}
	return marshal(results)
}

func marshal(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// RenderMarkdown produces a GitHub-flavoured Markdown summary of the report,
// suitable for PR comments or terminal output. Every issue in the report
// appears in the output.
func RenderMarkdown(report *schema.Report) string {
	if report == nil {
		return ""
	}
	var sb strings.Builder

	title := "Prose Report"
	if report.Input.Source != "" {
		title += ": " + report.Input.Source
	}
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "**Grade:** %s  \n", report.Summary.Grade)
	if report.Analysis.Scores != nil {
		fmt.Fprintf(&sb, "**Score:** %d/100  \n", report.Summary.Overall)
	}
	if report.Summary.DominantTone != "" {
		fmt.Fprintf(&sb, "**Tone:** %s  \n", report.Summary.DominantTone)
	}
	fmt.Fprintf(&sb, "**Clarity issues:** %d | **Style issues:** %d\n\n",
		report.Summary.ClarityCount, report.Summary.StyleCount)

	st := report.Analysis.Stats
	fmt.Fprintf(&sb, "%s words, %s sentences, %s reading time.\n\n",
		humanize.Comma(int64(st.Words)), humanize.Comma(int64(st.Sentences)), readingTime(st.ReadingTimeSeconds))

	if s := report.Analysis.Scores; s != nil {
		sb.WriteString("## Scores\n\n")
		sb.WriteString("| Component | Score |\n")
		sb.WriteString("|---|---|\n")
		fmt.Fprintf(&sb, "| Overall | %d |\n", s.Overall)
		fmt.Fprintf(&sb, "| Readability | %d |\n", s.Readability)
		fmt.Fprintf(&sb, "| Clarity | %d |\n", s.Clarity)
		fmt.Fprintf(&sb, "| Engagement | %d |\n", s.Engagement)
		fmt.Fprintf(&sb, "| Grammar | %d |\n", s.Grammar)
		sb.WriteString("\n")
	}

	if d := report.Analysis.Tone; d != nil {
		sb.WriteString("## Tone\n\n")
		sb.WriteString("| Tone | % |\n")
		sb.WriteString("|---|---|\n")
		for _, t := range schema.Tones {
			fmt.Fprintf(&sb, "| %s | %d |\n", t, d.Percent(t))
		}
		sb.WriteString("\n")
	}

	if len(report.Analysis.Issues) > 0 {
		sb.WriteString("## Issues\n\n")
		sb.WriteString("| Position | Kind | Category | Text | Message |\n")
		sb.WriteString("|---|---|---|---|---|\n")
		for _, is := range report.Analysis.Issues {
			msg := is.Message
			if is.Suggestion != "" {
				msg += " Suggestion: " + is.Suggestion
			}
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n",
				is.Position, is.Kind, is.Category, mdEscape(is.Text), mdEscape(msg))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No issues found.\n")
	}

	return sb.String()
}

// RenderTransformMarkdown lists transform results, one section per variant.
func RenderTransformMarkdown(tool string, results []schema.TransformResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", tool)
	if len(results) == 0 {
		sb.WriteString("No text to transform.\n")
		return sb.String()
	}
	for i, r := range results {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, r.Label)
		for _, line := range strings.Split(r.Text, "\n") {
			fmt.Fprintf(&sb, "> %s\n", line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func readingTime(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
}

// mdEscape replaces characters that would break Markdown table cells.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
