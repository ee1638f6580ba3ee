package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/logger"
	"github.com/dshills/prosecheck/internal/rpc"
)

// stdio joins standard input and output into one stream for the RPC server.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve analyze and transform requests as JSON-RPC 2.0 over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.ForComponent("rpc").Info("serving on stdio")
			h := rpc.NewHandler(a.eng, a.cfg.Tone)
			return rpc.Serve(ctx, stdio{Reader: os.Stdin, Writer: os.Stdout}, h)
		},
	}
}
