package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bhvaleri/decaffeinate/internal/config"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/diagfmt"
)

// settings is the config file with the persistent flags applied on top.
type settings struct {
	cfg     config.Config
	color   bool
	quiet   bool
	timings bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	if v, _ := flags.GetString("color"); v != "" {
		cfg.Diagnostics.Color = strings.ToLower(v)
	}
	if v, _ := flags.GetInt("context"); v >= 0 {
		cfg.Diagnostics.Context = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg}
	s.quiet, _ = flags.GetBool("quiet")
	s.timings, _ = flags.GetBool("timings")
	colorMode, err := parseToggle("color", cfg.Diagnostics.Color)
	if err != nil {
		return nil, err
	}
	s.color = colorMode.resolve(os.Stderr)
	color.NoColor = !s.color
	return s, nil
}

// report writes err in the configured diagnostics format. Errors that are
// not positioned in a source file are printed as "name: err".
func (s *settings) report(w io.Writer, name string, err error) {
	pe, ok := diag.AsPatchError(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", name, err)
		return
	}
	switch s.cfg.Diagnostics.Format {
	case "short":
		fmt.Fprintln(w, diagfmt.Short(pe, diagfmt.PathModeAsIs))
	case "json":
		_ = diagfmt.JSON(w, pe, diagfmt.JSONOpts{IncludePositions: true})
	default:
		_ = diagfmt.Pretty(w, pe, diagfmt.PrettyOpts{
			Color:   s.color,
			Context: s.cfg.Diagnostics.Context,
			Header:  true,
		})
	}
}
