package assess

import "testing"

func TestScoreAudit_Bands(t *testing.T) {
	cfg := DefaultAuditConfig()
	cases := []struct {
		name      string
		responses []int
		wantScore int
		wantDesc  string
	}{
		{"excellent", []int{4, 4, 4, 4}, 16, cfg.Bands[0].Description},
		{"moderate", []int{3, 3, 3, 3}, 12, cfg.Bands[1].Description},
		{"low", []int{2, 2, 2, 2}, 8, cfg.Bands[2].Description},
		{"all fives", []int{5, 5, 5, 5}, 20, cfg.Bands[0].Description},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ScoreAudit(tc.responses, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Score != tc.wantScore {
				t.Fatalf("score=%d; want %d", res.Score, tc.wantScore)
			}
			if res.Description != tc.wantDesc {
				t.Fatalf("description=%q; want %q", res.Description, tc.wantDesc)
			}
		})
	}
}

func TestScoreAudit_MentorshipThreshold(t *testing.T) {
	cfg := DefaultAuditConfig()
	cfg.MentorshipThreshold = 10

	res, err := ScoreAudit([]int{3, 3, 3, 3}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 12 || !res.MentorshipRecommended {
		t.Fatalf("score=%d mentorship=%v; want 12/true", res.Score, res.MentorshipRecommended)
	}

	// At or below the threshold the flag stays off.
	res, err = ScoreAudit([]int{2, 2, 3, 3}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 10 || res.MentorshipRecommended {
		t.Fatalf("score=%d mentorship=%v; want 10/false", res.Score, res.MentorshipRecommended)
	}
}

func TestScoreAudit_RejectsOutOfRange(t *testing.T) {
	for _, responses := range [][]int{{0, 3, 3, 3}, {3, 3, 3, 6}, {}} {
		_, err := ScoreAudit(responses, DefaultAuditConfig())
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorInvalid {
			t.Fatalf("responses %v: expected invalid error, got %v", responses, err)
		}
	}
}
