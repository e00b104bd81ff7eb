package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhvaleri/decaffeinate/internal/diagfmt"
	"github.com/bhvaleri/decaffeinate/internal/parser"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/trace"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse file.coffee",
		Short: "Print the syntax tree of a CoffeeScript file",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	file, err := source.NewFileSet().Load(args[0])
	if err != nil {
		return err
	}
	span, _ := trace.StartSpan(cmd.Context(), trace.ScopePass, "parse")
	prog, _, err := parser.Parse(file)
	if err != nil {
		span.End(err.Error())
		s.report(cmd.ErrOrStderr(), file.Path, err)
		return errReported
	}
	span.End("ok")
	if err := diagfmt.FormatASTPretty(cmd.OutOrStdout(), prog, file); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
