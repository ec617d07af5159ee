package journey

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a journey (or child record) does not exist.
var ErrNotFound = errors.New("journey not found")

// Store persists journeys and their child records.
type Store interface {
	CreateJourney(ctx context.Context, userName, intention string) (Journey, error)
	GetJourney(ctx context.Context, id int64) (Journey, error)
	ListJourneys(ctx context.Context) ([]Journey, error)

	CreateMilestone(ctx context.Context, journeyID int64, title, description string, achievedAt *time.Time) (Milestone, error)
	ListMilestones(ctx context.Context, journeyID int64) ([]Milestone, error)

	CreateAlignmentScore(ctx context.Context, journeyID int64, score float64, notes string, recordedAt time.Time) (AlignmentScore, error)
	ListAlignmentScores(ctx context.Context, journeyID int64) ([]AlignmentScore, error)

	SaveIntention(ctx context.Context, in Intention) error

	AppendEvent(ctx context.Context, typ, key, dataJSON string) error
}
