package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestVersion_DefaultValues(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotContains(t, Version, "\x1b[", "Version keys the cache and must stay plain")
}

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })

	tests := []struct {
		version string
		plain   string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			color.NoColor = true
			assert.Equal(t, tt.plain, Colored())

			color.NoColor = false
			got := Colored()
			if tt.version == "nightly" {
				assert.Equal(t, "nightly", got)
				return
			}
			assert.Contains(t, got, "\x1b[")
		})
	}
}
