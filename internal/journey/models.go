package journey

import "time"

// Journey is one user's purpose-activation journey, anchored by the
// intention statement they committed to.
type Journey struct {
	ID                 int64     `json:"id"`
	UserName           string    `json:"user_name"`
	IntentionStatement string    `json:"intention_statement"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Milestone marks progress within a journey.
type Milestone struct {
	ID          int64      `json:"id"`
	JourneyID   int64      `json:"journey_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AlignmentScore is a recorded reflective-practice score on a journey.
type AlignmentScore struct {
	ID         int64     `json:"id"`
	JourneyID  int64     `json:"journey_id"`
	Score      float64   `json:"score"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Intention is a standalone intention submission (pre-journey).
type Intention struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Statement string    `json:"statement"`
	CreatedAt time.Time `json:"created_at"`
}
