package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/authz"
	"github.com/seoward-lab/seoward/pkg/service/triage"
)

// cmdPolicy prints the issue routing table and the effective access
// matrix per role, evaluated against the same code paths the server
// uses. Handy while explaining to an agency why a member cannot see a
// task, or where a finding will be routed.
func cmdPolicy() *cli.Command {
	return &cli.Command{
		Name:  "policy",
		Usage: "Print the issue routing table and the role access matrix",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := printRoutingTable(); err != nil {
				return err
			}
			fmt.Println()
			return printAccessMatrix()
		},
	}
}

func printRoutingTable() error {
	fmt.Println(color.New(color.Bold).Sprint("Issue routing"))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "issue\ttask type\trole queue\tpriority")
	for _, code := range types.KnownIssueCodes() {
		cls, err := triage.Classify(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			code.String(), cls.TaskType.String(), cls.Role.String(), colorPriority(cls.Priority))
	}
	return w.Flush()
}

func colorPriority(p types.Priority) string {
	switch p {
	case types.PriorityUrgent:
		return color.New(color.FgRed, color.Bold).Sprint(p.String())
	case types.PriorityHigh:
		return color.New(color.FgYellow).Sprint(p.String())
	default:
		return p.String()
	}
}

func printAccessMatrix() error {
	fmt.Println(color.New(color.Bold).Sprint("Role access"))

	const orgID = types.OrgID("org")
	self := types.ProfileID("self")
	other := types.ProfileID("other")

	type check struct {
		name   string
		action types.AccessAction
		res    func(p model.Principal) authz.Resource
	}

	checks := []check{
		{"read campaign", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityCampaign, OrganizationID: orgID}
		}},
		{"update campaign", types.ActionUpdate, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityCampaign, OrganizationID: orgID}
		}},
		{"create task", types.ActionCreate, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityTask, OrganizationID: orgID}
		}},
		{"read assigned task", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityTask, OrganizationID: orgID, AssignedTo: p.ID}
		}},
		{"read others' task", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityTask, OrganizationID: orgID, AssignedTo: other}
		}},
		{"update assigned task", types.ActionUpdate, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityTask, OrganizationID: orgID, AssignedTo: p.ID}
		}},
		{"read content", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityContent, OrganizationID: orgID, AssignedTo: other}
		}},
		{"read audit", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityAudit, OrganizationID: orgID}
		}},
		{"read activity", types.ActionRead, func(p model.Principal) authz.Resource {
			return authz.Resource{Kind: types.EntityActivity, OrganizationID: orgID}
		}},
	}

	allow := color.New(color.FgGreen).Sprint("allow")
	deny := color.New(color.FgRed).Sprint("deny")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "role")
	for _, ch := range checks {
		fmt.Fprintf(w, "\t%s", ch.name)
	}
	fmt.Fprintln(w)

	for _, role := range types.AllRoles() {
		p := model.Principal{ID: self, Role: role, OrganizationID: orgID}
		fmt.Fprint(w, color.New(color.Bold).Sprint(role.String()))
		for _, ch := range checks {
			verdict := deny
			if authz.Can(p, ch.action, ch.res(p)) {
				verdict = allow
			}
			fmt.Fprintf(w, "\t%s", verdict)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
