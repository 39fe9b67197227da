// Package main provides the CLI entry point for dox, a tool that extracts
// documentation comments from JavaScript files and prints them as JSON or
// YAML.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dead-horse/dox/jsdoc"
	"github.com/dead-horse/dox/log"
	"github.com/dead-horse/dox/version"
)

func main() {
	cfg := jsdoc.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "dox [flags] <file|glob> [file|glob ...]",
		Short: "Extract documentation comments from JavaScript files",
		Long: `dox extracts block comments from JavaScript source, splits them into a
description and @tags, and infers the declaration that follows each comment.

With one input the comments are printed as an array; with several, as an
object keyed by file path. Glob patterns such as "lib/**/*.js" are expanded.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newSchemaCmd(), newVersionCmd())

	for _, register := range []func(*cobra.Command) error{cfg.RegisterCompletions, logCfg.RegisterCompletions} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(jsdoc.ResultSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			if err != nil {
				return fmt.Errorf("%w: %w", jsdoc.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
