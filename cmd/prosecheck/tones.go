package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/profile"
)

func newTonesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List the tone profiles available to the rewrite tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range profile.Names() {
				p, err := profile.Load(name)
				if err != nil {
					return err
				}
				marker := " "
				if strings.EqualFold(name, a.cfg.Tone) {
					marker = "*"
				}
				if _, err := io.WriteString(out, marker+" "+p.Name+"\t"+p.Label+"\t"+p.Description+"\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
