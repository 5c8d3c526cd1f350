package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"studytimer/internal/bootstrap"
	"studytimer/internal/platform/config"
	"studytimer/internal/platform/ctxlog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := newRootCmd(bootstrap.Options{}).ExecuteContext(ctxlog.WithLogger(context.Background(), logger)); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(opts bootstrap.Options) *cobra.Command {
	return &cobra.Command{
		Use:           "studytimer",
		Short:         "Alternate study and break countdowns",
		Long:          "studytimer asks for a study plan, then alternates study and break countdowns for the chosen number of loops.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(cmd.InOrStdin(), cmd.OutOrStdout(), runtime.GOOS)
			if err != nil {
				return err
			}
			app := bootstrap.New(cfg, opts)
			_, err = app.SessionCLI.Start(cmd.Context())
			return err
		},
	}
}
