package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/seoward-lab/seoward/pkg/cli/config"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/triage"
)

// cmdTriage classifies a crawler report offline and prints the task
// drafts it would produce, without touching any repository. Useful for
// tuning SOP overrides and inspecting crawler output before ingest.
func cmdTriage() *cli.Command {
	var pagesPath string
	var campaignID string
	var sopCfg config.SOP

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "pages",
			Usage:       "Path to JSON file with crawler page findings",
			Required:    true,
			Destination: &pagesPath,
		},
		&cli.StringFlag{
			Name:        "campaign-id",
			Usage:       "Campaign ID to stamp on the drafts",
			Value:       "dry-run",
			Destination: &campaignID,
		},
	}
	flags = append(flags, sopCfg.Flags()...)

	return &cli.Command{
		Name:  "triage",
		Usage: "Dry-run the issue classifier and task builder against a crawler report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(pagesPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read pages file", goerr.V("path", pagesPath))
			}

			var pages []model.AuditPage
			if err := json.Unmarshal(data, &pages); err != nil {
				return goerr.Wrap(err, "failed to parse pages file", goerr.V("path", pagesPath))
			}

			sopOverrides, err := sopCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load sop configuration")
			}
			sop := triage.DefaultSOPLibrary().Merge(sopOverrides)

			agg := triage.Aggregate(pages)
			result := triage.BuildTasks(types.CampaignID(campaignID), agg, nil, sop)

			type failure struct {
				Code  string `json:"code"`
				Pages int    `json:"pages"`
				Error string `json:"error"`
			}
			out := struct {
				Drafts   []triage.TaskDraft `json:"drafts"`
				Failures []failure          `json:"failures,omitempty"`
			}{
				Drafts: result.Drafts,
			}
			for _, f := range result.Failures {
				out.Failures = append(out.Failures, failure{
					Code:  f.Code.String(),
					Pages: f.Pages,
					Error: f.Err.Error(),
				})
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return goerr.Wrap(err, "failed to encode triage result")
			}
			return nil
		},
	}
}
