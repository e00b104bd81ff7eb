package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bhvaleri/decaffeinate/internal/driver"
	"github.com/bhvaleri/decaffeinate/internal/observ"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] [paths...]",
		Short: "Convert CoffeeScript files or directories to JavaScript",
		Long: `Convert rewrites each input into JavaScript. Directories are searched
for *.coffee files. Without arguments, or with "-", it reads standard input
and writes to standard output.`,
		RunE: runConvert,
	}
	f := cmd.Flags()
	f.String("out-dir", "", "directory for converted files, default from config or next to the input")
	f.Bool("stdout", false, "write converted files to standard output")
	f.Int("jobs", 0, "files converted in parallel, default from config")
	f.Bool("cache", false, "reuse results from the on-disk cache")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.String("format", "", "error format (pretty|short|json), default from config")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
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
	if err := applyConvertFlags(cmd, s); err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	ui, err := parseToggle("ui", uiFlag)
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}

	opts := driver.Options{Jobs: s.cfg.Jobs()}
	if s.cfg.Run.Cache {
		cache, err := driver.OpenDiskCache("decaffeinate")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return convertStdin(cmd, s, opts)
	}

	paths, err := driver.ListSources(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s files found", driver.SourceExt)
	}

	var results []*driver.Result
	if !s.quiet && !toStdout && ui.resolve(os.Stdout) {
		results, err = runConvertWithUI(cmd.Context(), stdout, paths, opts)
	} else {
		results, err = driver.TranspileFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	var timing observ.Report
	failed := 0
	for _, r := range results {
		timing.Merge(r.Timing)
		if r.Err != nil {
			failed++
			s.report(stderr, r.Path, r.Err)
			continue
		}
		if toStdout {
			fmt.Fprint(stdout, r.Output)
			continue
		}
		target := s.cfg.OutputPath(r.Path)
		if err := writeOutput(target, r.Output); err != nil {
			failed++
			s.report(stderr, r.Path, err)
			continue
		}
		if !s.quiet {
			fmt.Fprintf(stderr, "%s -> %s\n", r.Path, target)
		}
	}

	if s.timings {
		fmt.Fprint(stderr, timing.String())
	}
	if !s.quiet {
		fmt.Fprintf(stderr, "converted %d of %d files\n", len(results)-failed, len(results))
	}
	if failed > 0 {
		dumpTraceRing(cmd, stderr)
		return errReported
	}
	return nil
}

func applyConvertFlags(cmd *cobra.Command, s *settings) error {
	f := cmd.Flags()
	if v, _ := f.GetString("out-dir"); v != "" {
		abs, err := filepath.Abs(v)
		if err != nil {
			return err
		}
		s.cfg.Output.Dir = abs
	}
	if v, _ := f.GetInt("jobs"); v > 0 {
		s.cfg.Run.Jobs = v
	}
	if v, _ := f.GetBool("cache"); v {
		s.cfg.Run.Cache = true
	}
	if v, _ := f.GetString("format"); v != "" {
		s.cfg.Diagnostics.Format = v
	}
	return s.cfg.Validate()
}

func convertStdin(cmd *cobra.Command, s *settings, opts driver.Options) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	res := driver.TranspileSource(cmd.Context(), "<stdin>", src, opts)
	if s.timings {
		defer fmt.Fprint(cmd.ErrOrStderr(), res.Timing.String())
	}
	if res.Err != nil {
		s.report(cmd.ErrOrStderr(), res.Path, res.Err)
		dumpTraceRing(cmd, cmd.ErrOrStderr())
		return errReported
	}
	_, err = io.WriteString(cmd.OutOrStdout(), res.Output)
	return err
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644) // #nosec G306 -- generated source is not secret
}
