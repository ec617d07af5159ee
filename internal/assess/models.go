package assess

// Scale defines the numeric response range for an assessment.
// Labels is sparse; unlabeled values render as bare numbers in the UI.
type Scale struct {
	Min    int            `json:"min"`
	Max    int            `json:"max"`
	Labels map[int]string `json:"labels,omitempty"`
}

// Band maps an inclusive total-score range to interpretation text.
type Band struct {
	Min            int    `json:"min"`
	Max            int    `json:"max"`
	Interpretation string `json:"interpretation"`
	Guidance       string `json:"guidance"`
}

// Definition is an assessment: ordered questions, a response scale and
// ordered interpretation bands. Definitions are loaded once and never
// mutated afterwards.
type Definition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Questions    []string `json:"questions"`
	Scale        Scale    `json:"scale"`
	ScoringLogic string   `json:"scoring_logic"`
	Bands        []Band   `json:"bands"`
}

// MinTotal is the lowest total score a complete response set can produce.
func (d Definition) MinTotal() int { return len(d.Questions) * d.Scale.Min }

// MaxTotal is the highest total score a complete response set can produce.
func (d Definition) MaxTotal() int { return len(d.Questions) * d.Scale.Max }

// ScoreResult is the outcome of scoring one response set.
type ScoreResult struct {
	AssessmentID   string  `json:"assessment_id"`
	Score          int     `json:"score"`
	MaxScore       int     `json:"max_score"`
	Average        float64 `json:"average"`
	Interpretation string  `json:"interpretation"`
	Guidance       string  `json:"guidance"`
}

// AuditResult is the outcome of the fixed-form purpose audit.
type AuditResult struct {
	Score                 int    `json:"score"`
	Description           string `json:"description"`
	MentorshipRecommended bool   `json:"mentorship_recommended"`
}
