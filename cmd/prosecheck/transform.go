package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/render"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/transform"
)

func newTransformCmd(a *app) *cobra.Command {
	var (
		tone string
		seed uint64
	)
	names := make([]string, len(transform.Tools))
	for i, t := range transform.Tools {
		names[i] = string(t)
	}

	cmd := &cobra.Command{
		Use:   "transform <tool> [file]",
		Short: "Generate rewritten variants of a text",
		Long:  "Tools: " + strings.Join(names, ", ") + ".",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, err := transform.ParseTool(args[0])
			if err != nil {
				return err
			}
			src := stdinName
			if len(args) == 2 {
				src = args[1]
			}
			text, err := readSource(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}

			opts := transform.Options{Tone: tone}
			if opts.Tone == "" {
				opts.Tone = a.cfg.Tone
			}
			if cmd.Flags().Changed("seed") {
				opts.Rand = transform.SeededSource(seed)
			}

			results, err := a.eng.Transform(tool, text, opts)
			if err != nil {
				return err
			}
			return writeTransform(cmd.OutOrStdout(), a.cfg.Format, string(tool), results)
		},
	}
	cmd.Flags().StringVar(&tone, "tone", "", "tone profile for rewrite (see 'prosecheck tones')")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for deterministic rewrite output")
	return cmd
}

func writeTransform(w io.Writer, format, tool string, results []schema.TransformResult) error {
	if format == "json" {
		b, err := render.RenderTransformJSON(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	_, err := io.WriteString(w, render.RenderTransformMarkdown(tool, results))
	return err
}
