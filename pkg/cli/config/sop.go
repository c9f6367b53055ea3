package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/triage"
	"github.com/urfave/cli/v3"
)

// SOP holds the CLI flag for standard-operating-procedure overrides.
// The file replaces the built-in procedure text for the issue codes it
// names; all other codes keep their defaults.
type SOP struct {
	path string
}

// Flags returns CLI flags for SOP configuration
func (s *SOP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sop-config",
			Usage:       "Path to TOML file with SOP overrides per issue code",
			Sources:     cli.EnvVars("SEOWARD_SOP_CONFIG"),
			Destination: &s.path,
		},
	}
}

// SOPEntry is one override in the TOML file
type SOPEntry struct {
	Issue     string `toml:"issue"`
	Procedure string `toml:"procedure"`
}

// Validate checks if the SOPEntry is valid
func (e *SOPEntry) Validate() error {
	if e.Issue == "" {
		return goerr.Wrap(ErrInvalidConfig, "sop entry issue code is required")
	}
	if !types.IssueCode(e.Issue).IsKnown() {
		return goerr.Wrap(ErrUnknownIssueCode, "sop entry names an unroutable issue code",
			goerr.V("issue", e.Issue))
	}
	if e.Procedure == "" {
		return goerr.Wrap(ErrInvalidConfig, "sop entry procedure text is required",
			goerr.V("issue", e.Issue))
	}
	return nil
}

type sopFile struct {
	Entries []SOPEntry `toml:"sop"`
}

// Configure loads the override file and returns it as a library. A nil
// library is returned when no path was given.
func (s *SOP) Configure() (triage.SOPLibrary, error) {
	if s.path == "" {
		return nil, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sop config file", goerr.V(ConfigPathKey, s.path))
	}

	var file sopFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML sop config", goerr.V(ConfigPathKey, s.path))
	}

	lib := make(triage.SOPLibrary, len(file.Entries))
	for _, entry := range file.Entries {
		if err := entry.Validate(); err != nil {
			return nil, goerr.Wrap(err, "sop config validation failed", goerr.V(ConfigPathKey, s.path))
		}
		code := types.IssueCode(entry.Issue)
		if _, ok := lib[code]; ok {
			return nil, goerr.Wrap(ErrInvalidConfig, "duplicate sop entry",
				goerr.V(ConfigPathKey, s.path), goerr.V("issue", entry.Issue))
		}
		lib[code] = entry.Procedure
	}

	return lib, nil
}
