package triage

import "github.com/seoward-lab/seoward/pkg/domain/types"

// SOPLibrary maps issue codes to standard operating procedure text.
// The text is authored elsewhere (typically by an AI collaborator
// offline) and stored verbatim on each generated task; the engine
// never interprets it.
type SOPLibrary map[types.IssueCode]string

// Lookup returns the SOP text for a code, or empty when none exists
func (l SOPLibrary) Lookup(code types.IssueCode) string {
	if l == nil {
		return ""
	}
	return l[code]
}

// Merge overlays the given entries on a copy of the library. Used to
// apply operator overrides from configuration without mutating the
// defaults.
func (l SOPLibrary) Merge(overrides SOPLibrary) SOPLibrary {
	merged := make(SOPLibrary, len(l)+len(overrides))
	for code, text := range l {
		merged[code] = text
	}
	for code, text := range overrides {
		merged[code] = text
	}
	return merged
}

// DefaultSOPLibrary returns the built-in procedure text per issue code
func DefaultSOPLibrary() SOPLibrary {
	return SOPLibrary{
		types.IssueNoTitle: "1. Open each page in the checklist.\n" +
			"2. Write a unique title tag of 50-60 characters including the primary keyword.\n" +
			"3. Deploy and verify the rendered <title> with a crawler spot check.",
		types.IssueNoDescription: "1. Open each page in the checklist.\n" +
			"2. Write a meta description of 140-160 characters with a clear call to action.\n" +
			"3. Deploy and verify the rendered tag.",
		types.IssueNoH1: "1. Open each page in the checklist.\n" +
			"2. Add exactly one H1 matching the page's primary topic.\n" +
			"3. Confirm no other heading was demoted or duplicated.",
		types.IssueSlowLoad: "1. Profile each page with a lab tool and record LCP.\n" +
			"2. Compress images, defer non-critical scripts, enable caching headers.\n" +
			"3. Re-measure and record the improvement in the task notes.",
		types.IssueRedirectChain: "1. Trace the redirect hops for each page.\n" +
			"2. Point every internal link and redirect rule at the final URL.\n" +
			"3. Verify each page resolves in a single hop.",
		types.IssueMissingSchema: "1. Pick the schema.org type matching the page content.\n" +
			"2. Add JSON-LD markup and validate it with a structured data tester.\n" +
			"3. Deploy and re-validate on the live URL.",
		types.IssueBroken: "1. Reproduce the error code for each page.\n" +
			"2. Restore the content or 301-redirect to the closest live page.\n" +
			"3. Update internal links pointing at the broken URL.",
		types.IssueLowContent: "1. Review search intent for each page's target query.\n" +
			"2. Expand the copy past 300 words of genuinely useful content.\n" +
			"3. Hand off to review when the draft is ready.",
		types.IssueKeywordGap: "1. Review the competitor coverage for each listed topic.\n" +
			"2. Decide per topic: new page, or expand an existing one.\n" +
			"3. Produce briefs for the chosen pages and queue them for creation.",
		types.IssueLinkOpportunity: "1. Qualify each prospect domain for relevance and authority.\n" +
			"2. Prepare outreach with a concrete content angle.\n" +
			"3. Track placements and mark each item complete when the link is live.",
	}
}
