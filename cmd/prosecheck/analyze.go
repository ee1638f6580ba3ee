package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/document"
	"github.com/dshills/prosecheck/internal/logger"
	"github.com/dshills/prosecheck/internal/render"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/textio"
)

const stdinName = "-"

func newAnalyzeCmd(a *app) *cobra.Command {
	var failUnder int
	cmd := &cobra.Command{
		Use:   "analyze [file|glob ...]",
		Short: "Report issues, scores and tone for each input",
		Long: `Analyze reads each named file (or standard input when none is given, or
for "-") and prints a report. Glob patterns such as "docs/**/*.md" are
expanded. Markdown files are reduced to their prose before analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := expandSources(args)
			if err != nil {
				return err
			}
			log := logger.ForComponent("analyze")

			reports := make([]*schema.Report, 0, len(sources))
			for _, src := range sources {
				text, err := readSource(cmd.InOrStdin(), src)
				if err != nil {
					return err
				}
				r := a.eng.Report(src, inputFormat(src), text)
				log.Debug("analyzed", "source", src, "words", r.Analysis.Stats.Words, "issues", len(r.Analysis.Issues))
				reports = append(reports, r)
			}

			if err := writeReports(cmd.OutOrStdout(), a.cfg.Format, reports); err != nil {
				return err
			}
			return checkFailUnder(reports, failUnder)
		},
	}
	cmd.Flags().IntVar(&failUnder, "fail-under", 0, "exit with status 2 when any overall score is below this value")
	return cmd
}

// expandSources resolves arguments to a list of sources. Arguments with glob
// metacharacters are expanded; a pattern matching nothing is an error.
func expandSources(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinName}, nil
	}
	var out []string
	for _, arg := range args {
		if arg == stdinName || !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("analyze: glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("analyze: no files match %q", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func readSource(stdin io.Reader, src string) (string, error) {
	if src == stdinName {
		return textio.Read(stdin)
	}
	return textio.ReadFile(src)
}

func inputFormat(src string) string {
	if document.IsMarkdown(src) {
		return "markdown"
	}
	return "text"
}

func writeReports(w io.Writer, format string, reports []*schema.Report) error {
	if format == "json" {
		var (
			b   []byte
			err error
		)
		if len(reports) == 1 {
			b, err = render.RenderJSON(reports[0])
		} else {
			b, err = render.RenderReportsJSON(reports)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, err := io.WriteString(w, render.RenderMarkdown(r)); err != nil {
			return err
		}
	}
	return nil
}

// checkFailUnder returns an exit status 2 error when any scored report falls
// below threshold. Reports without scores are skipped.
func checkFailUnder(reports []*schema.Report, threshold int) error {
	if threshold <= 0 {
		return nil
	}
	for _, r := range reports {
		if s := r.Analysis.Scores; s != nil && s.Overall < threshold {
			return &exitError{
				code: 2,
				msg:  fmt.Sprintf("analyze: %s scored %d, below --fail-under %d", r.Input.Source, s.Overall, threshold),
			}
		}
	}
	return nil
}
