package types

// IssueCode is a stable identifier for one category of audit finding,
// as reported by the external crawler. Unknown codes are carried as-is:
// classification decides what to do with them, parsing does not reject
// them wholesale.
type IssueCode string

const (
	IssueNoTitle         IssueCode = "no_title"
	IssueNoDescription   IssueCode = "no_description"
	IssueNoH1            IssueCode = "no_h1"
	IssueSlowLoad        IssueCode = "slow_load"
	IssueRedirectChain   IssueCode = "redirect_chain"
	IssueMissingSchema   IssueCode = "missing_schema"
	IssueBroken          IssueCode = "is_broken"
	IssueLowContent      IssueCode = "low_content"
	IssueKeywordGap      IssueCode = "keyword_gap"
	IssueLinkOpportunity IssueCode = "link_opportunity"
)

// KnownIssueCodes returns the issue codes the classifier can route
func KnownIssueCodes() []IssueCode {
	return []IssueCode{
		IssueNoTitle,
		IssueNoDescription,
		IssueNoH1,
		IssueSlowLoad,
		IssueRedirectChain,
		IssueMissingSchema,
		IssueBroken,
		IssueLowContent,
		IssueKeywordGap,
		IssueLinkOpportunity,
	}
}

// IsKnown reports whether the classifier has a routing entry for the code
func (c IssueCode) IsKnown() bool {
	switch c {
	case IssueNoTitle,
		IssueNoDescription,
		IssueNoH1,
		IssueSlowLoad,
		IssueRedirectChain,
		IssueMissingSchema,
		IssueBroken,
		IssueLowContent,
		IssueKeywordGap,
		IssueLinkOpportunity:
		return true
	default:
		return false
	}
}

// String returns the string representation of the issue code
func (c IssueCode) String() string {
	return string(c)
}
