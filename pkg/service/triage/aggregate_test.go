package triage_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/seoward-lab/seoward/pkg/domain/model"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/service/triage"
)

func TestAggregate(t *testing.T) {
	t.Run("groups pages by issue code in first-seen order", func(t *testing.T) {
		pages := []model.AuditPage{
			{URL: "https://example.com/", Issues: []types.IssueCode{types.IssueNoTitle, types.IssueSlowLoad}},
			{URL: "https://example.com/about", Issues: []types.IssueCode{types.IssueNoTitle}},
			{URL: "https://example.com/blog", Issues: []types.IssueCode{types.IssueLowContent, types.IssueNoTitle}},
		}

		agg := triage.Aggregate(pages)
		gt.B(t, agg.Empty()).False()

		groups := agg.Groups()
		gt.Array(t, groups).Length(3)

		gt.Value(t, groups[0].Code).Equal(types.IssueNoTitle)
		gt.Array(t, groups[0].Pages).Length(3)
		gt.Value(t, groups[0].Pages[0]).Equal("https://example.com/")
		gt.Value(t, groups[0].Pages[1]).Equal("https://example.com/about")
		gt.Value(t, groups[0].Pages[2]).Equal("https://example.com/blog")

		gt.Value(t, groups[1].Code).Equal(types.IssueSlowLoad)
		gt.Value(t, groups[2].Code).Equal(types.IssueLowContent)
	})

	t.Run("duplicate page within a group is kept once", func(t *testing.T) {
		pages := []model.AuditPage{
			{URL: "https://example.com/a", Issues: []types.IssueCode{types.IssueNoH1}},
			{URL: "https://example.com/a", Issues: []types.IssueCode{types.IssueNoH1}},
		}

		agg := triage.Aggregate(pages)
		gt.Array(t, agg.Groups()).Length(1)
		gt.Array(t, agg.Groups()[0].Pages).Length(1)
	})

	t.Run("zero issues yields empty but marked result", func(t *testing.T) {
		pages := []model.AuditPage{
			{URL: "https://example.com/"},
			{URL: "https://example.com/about", Issues: []types.IssueCode{}},
		}

		agg := triage.Aggregate(pages)
		gt.B(t, agg.Empty()).True()
		gt.Array(t, agg.Groups()).Length(0)
	})

	t.Run("nil aggregation is not empty-but-marked", func(t *testing.T) {
		var agg *triage.Aggregation
		gt.B(t, agg.Empty()).False()
		gt.Value(t, agg.Groups()).Nil()
	})

	t.Run("unknown codes are aggregated, not dropped", func(t *testing.T) {
		pages := []model.AuditPage{
			{URL: "https://example.com/x", Issues: []types.IssueCode{"unknown_xyz"}},
		}

		agg := triage.Aggregate(pages)
		gt.Array(t, agg.Groups()).Length(1)
		gt.Value(t, agg.Groups()[0].Code).Equal(types.IssueCode("unknown_xyz"))
	})
}
