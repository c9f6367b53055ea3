package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/cli/config"
	"github.com/seoward-lab/seoward/pkg/domain/types"
)

func writeSOPFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sop.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o644)).Required()
	return path
}

func TestSOPConfigure(t *testing.T) {
	t.Run("no path yields no overrides", func(t *testing.T) {
		var cfg config.SOP
		lib, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.B(t, lib == nil).True()
	})

	t.Run("loads overrides", func(t *testing.T) {
		path := writeSOPFile(t, `
[[sop]]
issue = "no_title"
procedure = "Write a unique title under 60 characters."

[[sop]]
issue = "slow_load"
procedure = "Profile with Lighthouse and fix the top offender."
`)
		cfg := config.NewSOPWithPath(path)
		lib, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, lib.Lookup(types.IssueNoTitle)).Equal("Write a unique title under 60 characters.")
		gt.Value(t, lib.Lookup(types.IssueSlowLoad)).Equal("Profile with Lighthouse and fix the top offender.")
	})

	t.Run("rejects unknown issue codes", func(t *testing.T) {
		path := writeSOPFile(t, `
[[sop]]
issue = "totally_made_up"
procedure = "whatever"
`)
		cfg := config.NewSOPWithPath(path)
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrUnknownIssueCode)
	})

	t.Run("rejects duplicate entries", func(t *testing.T) {
		path := writeSOPFile(t, `
[[sop]]
issue = "no_title"
procedure = "first"

[[sop]]
issue = "no_title"
procedure = "second"
`)
		cfg := config.NewSOPWithPath(path)
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})

	t.Run("rejects missing procedure", func(t *testing.T) {
		path := writeSOPFile(t, `
[[sop]]
issue = "no_title"
`)
		cfg := config.NewSOPWithPath(path)
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidConfig)
	})
}
