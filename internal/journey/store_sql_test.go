package journey_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/purpose-activation/toolkit/internal/db"
	"github.com/purpose-activation/toolkit/internal/journey"
)

func newTestStore(t *testing.T) *journey.SQLStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return journey.NewSQLStore(dbh, "sqlite")
}

func TestJourneyRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	j, err := st.CreateJourney(ctx, "Ada", "Build tools that matter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := st.GetJourney(ctx, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserName != "Ada" || got.IntentionStatement != "Build tools that matter" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	list, err := st.ListJourneys(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != j.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestGetJourney_NotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.GetJourney(context.Background(), 999)
	if !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMilestones(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	j, err := st.CreateJourney(ctx, "Ada", "intent")
	if err != nil {
		t.Fatalf("create journey: %v", err)
	}

	achieved := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m, err := st.CreateMilestone(ctx, j.ID, "First retreat", "weekend workshop", &achieved)
	if err != nil {
		t.Fatalf("create milestone: %v", err)
	}
	if m.JourneyID != j.ID || m.AchievedAt == nil {
		t.Fatalf("unexpected milestone: %+v", m)
	}

	if _, err := st.CreateMilestone(ctx, 12345, "x", "", nil); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing journey, got %v", err)
	}

	ms, err := st.ListMilestones(ctx, j.ID)
	if err != nil {
		t.Fatalf("list milestones: %v", err)
	}
	if len(ms) != 1 || ms[0].Title != "First retreat" || !ms[0].AchievedAt.Equal(achieved) {
		t.Fatalf("unexpected milestones: %+v", ms)
	}
}

func TestAlignmentScores(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	j, err := st.CreateJourney(ctx, "Ada", "intent")
	if err != nil {
		t.Fatalf("create journey: %v", err)
	}

	recorded := time.Date(2025, 7, 2, 8, 30, 0, 0, time.UTC)
	a, err := st.CreateAlignmentScore(ctx, j.ID, 7.5, "morning check-in", recorded)
	if err != nil {
		t.Fatalf("create score: %v", err)
	}
	if a.Score != 7.5 {
		t.Fatalf("score=%v; want 7.5", a.Score)
	}

	scores, err := st.ListAlignmentScores(ctx, j.ID)
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	if len(scores) != 1 || scores[0].Notes != "morning check-in" || !scores[0].RecordedAt.Equal(recorded) {
		t.Fatalf("unexpected scores: %+v", scores)
	}

	if _, err := st.ListAlignmentScores(ctx, 777); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIntentionsAndEvents(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	err := st.SaveIntention(ctx, journey.Intention{ID: "i-1", Statement: "Lead with intention"})
	if err != nil {
		t.Fatalf("save intention: %v", err)
	}
	if err := st.AppendEvent(ctx, "IntentSubmitted", "i-1", `{"statement":"Lead with intention"}`); err != nil {
		t.Fatalf("append event: %v", err)
	}
}
