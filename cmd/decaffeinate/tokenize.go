package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhvaleri/decaffeinate/internal/diagfmt"
	"github.com/bhvaleri/decaffeinate/internal/parser"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/trace"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.coffee",
		Short: "Print the token stream of a CoffeeScript file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
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
	span, _ := trace.StartSpan(cmd.Context(), trace.ScopePass, "lex")
	ctx, lexErr := parser.Tokenize(file)
	span.End(fmt.Sprintf("%d tokens", ctx.Tokens.Len()))

	// tokens read before a failure are still printed
	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, ctx.Tokens.Tokens(), file)
	} else {
		err = diagfmt.FormatTokensPretty(out, ctx.Tokens.Tokens(), file)
	}
	if err != nil {
		return err
	}
	if lexErr != nil {
		s.report(cmd.ErrOrStderr(), file.Path, lexErr)
		return errReported
	}
	return nil
}
