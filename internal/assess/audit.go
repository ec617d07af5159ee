package assess

import "fmt"

const (
	auditScaleMin = 1
	auditScaleMax = 5
)

// AuditBand maps a minimum total score (inclusive) to a description.
// Bands are ordered highest cutoff first; the first band whose Min the
// total reaches is selected, and the last band is the catch-all.
type AuditBand struct {
	Min         int
	Description string
}

// AuditConfig is the lookup table behind the fixed-form purpose audit.
// Threshold values live in configuration, not in the scoring algorithm.
type AuditConfig struct {
	Bands []AuditBand
	// MentorshipThreshold: totals above this value set the mentorship flag.
	MentorshipThreshold int
}

// DefaultAuditConfig bands the published four-question audit: 16+ is
// excellent, 12..15 moderate, below that low.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Bands: []AuditBand{
			{Min: 16, Description: "Excellent alignment with your purpose. Keep nurturing your intentions."},
			{Min: 12, Description: "Moderate alignment. There is room to deepen your connection with your purpose."},
			{Min: 0, Description: "Low alignment. Consider exploring mentorship opportunities to activate your purpose."},
		},
		MentorshipThreshold: 10,
	}
}

// ScoreAudit sums an ordered purpose-audit response list, bands the total
// and flags mentorship when the total clears the configured threshold.
// Out-of-range responses are rejected rather than silently summed.
func ScoreAudit(responses []int, cfg AuditConfig) (AuditResult, error) {
	if len(responses) == 0 {
		return AuditResult{}, NewInvalidError("no responses provided")
	}
	total := 0
	for _, r := range responses {
		if r < auditScaleMin || r > auditScaleMax {
			return AuditResult{}, NewInvalidError(fmt.Sprintf(
				"all responses must be integers between %d and %d", auditScaleMin, auditScaleMax))
		}
		total += r
	}
	desc := ""
	for _, b := range cfg.Bands {
		if total >= b.Min {
			desc = b.Description
			break
		}
	}
	if desc == "" {
		return AuditResult{}, NewConfigError(fmt.Sprintf("no audit band covers score %d", total))
	}
	return AuditResult{
		Score:                 total,
		Description:           desc,
		MentorshipRecommended: total > cfg.MentorshipThreshold,
	}, nil
}
