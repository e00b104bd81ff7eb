// Package config loads decaffeinate.toml, the per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is looked up in the working directory and its parents.
const FileName = "decaffeinate.toml"

// Config is the decoded file merged over the defaults.
type Config struct {
	Output      Output      `toml:"output"`
	Diagnostics Diagnostics `toml:"diagnostics"`
	Run         Run         `toml:"run"`

	// Path of the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

type Output struct {
	// Dir receives converted files; empty writes them next to the input.
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
}

type Diagnostics struct {
	Format  string `toml:"format"` // pretty|short|json
	Context int    `toml:"context"`
	Color   string `toml:"color"` // auto|on|off
}

type Run struct {
	Jobs  int  `toml:"jobs"` // 0 means GOMAXPROCS
	Cache bool `toml:"cache"`
}

func Default() Config {
	return Config{
		Output:      Output{Extension: ".js"},
		Diagnostics: Diagnostics{Format: "pretty", Context: 2, Color: "auto"},
	}
}

var (
	formats = []string{"pretty", "short", "json"}
	colors  = []string{"auto", "on", "off"}
)

// Find returns the nearest decaffeinate.toml at or above startDir.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest config file, or the defaults when there is
// none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes path over the defaults. Unknown keys and invalid values
// are errors.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := oneOf("[diagnostics].format", c.Diagnostics.Format, formats); err != nil {
		return err
	}
	if err := oneOf("[diagnostics].color", c.Diagnostics.Color, colors); err != nil {
		return err
	}
	if c.Diagnostics.Context < 0 {
		return fmt.Errorf("[diagnostics].context must not be negative, got %d", c.Diagnostics.Context)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must not be negative, got %d", c.Run.Jobs)
	}
	if ext := c.Output.Extension; ext == "" || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("[output].extension must start with '.', got %q", ext)
	}
	return nil
}

// Jobs resolves the configured worker count.
func (c Config) Jobs() int {
	if c.Run.Jobs > 0 {
		return c.Run.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// OutputPath maps an input file to the path its JavaScript is written to.
// Relative output directories are resolved against the config file.
func (c Config) OutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + c.Output.Extension
	dir := c.Output.Dir
	switch {
	case dir == "":
		return filepath.Join(filepath.Dir(input), base)
	case !filepath.IsAbs(dir) && c.Path != "":
		dir = filepath.Join(filepath.Dir(c.Path), dir)
	}
	return filepath.Join(dir, base)
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (expected %s)", key, value, strings.Join(allowed, "|"))
}
