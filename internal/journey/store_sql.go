package journey

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	now    func() time.Time
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, now: func() time.Time { return time.Now().UTC() }}
}

func (s *SQLStore) CreateJourney(ctx context.Context, userName, intention string) (Journey, error) {
	now := s.now()
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO journeys (user_name, intention_statement, created_at, updated_at)
		 VALUES ($1,$2,$3,$4) RETURNING id`,
		userName, intention, now.Unix(), now.Unix()).Scan(&id)
	if err != nil {
		return Journey{}, err
	}
	return Journey{ID: id, UserName: userName, IntentionStatement: intention, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *SQLStore) GetJourney(ctx context.Context, id int64) (Journey, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_name, intention_statement, created_at, updated_at FROM journeys WHERE id=$1`, id)
	return scanJourney(row)
}

func (s *SQLStore) ListJourneys(ctx context.Context) ([]Journey, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_name, intention_statement, created_at, updated_at
		 FROM journeys ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Journey{}
	for rows.Next() {
		j, err := scanJourney(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateMilestone(ctx context.Context, journeyID int64, title, description string, achievedAt *time.Time) (Milestone, error) {
	if err := s.ensureJourney(ctx, journeyID); err != nil {
		return Milestone{}, err
	}
	now := s.now()
	var achieved sql.NullInt64
	if achievedAt != nil {
		achieved = sql.NullInt64{Int64: achievedAt.Unix(), Valid: true}
	}
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO milestones (journey_id, title, description, achieved_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		journeyID, title, description, achieved, now.Unix(), now.Unix()).Scan(&id)
	if err != nil {
		return Milestone{}, err
	}
	return Milestone{
		ID: id, JourneyID: journeyID, Title: title, Description: description,
		AchievedAt: achievedAt, CreatedAt: now, UpdatedAt: now,
	}, nil
}

func (s *SQLStore) ListMilestones(ctx context.Context, journeyID int64) ([]Milestone, error) {
	if err := s.ensureJourney(ctx, journeyID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, journey_id, title, description, achieved_at, created_at, updated_at
		 FROM milestones WHERE journey_id=$1 ORDER BY created_at DESC, id DESC`, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Milestone{}
	for rows.Next() {
		var m Milestone
		var desc sql.NullString
		var achieved sql.NullInt64
		var created, updated int64
		if err := rows.Scan(&m.ID, &m.JourneyID, &m.Title, &desc, &achieved, &created, &updated); err != nil {
			return nil, err
		}
		m.Description = desc.String
		if achieved.Valid {
			t := time.Unix(achieved.Int64, 0).UTC()
			m.AchievedAt = &t
		}
		m.CreatedAt = time.Unix(created, 0).UTC()
		m.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateAlignmentScore(ctx context.Context, journeyID int64, score float64, notes string, recordedAt time.Time) (AlignmentScore, error) {
	if err := s.ensureJourney(ctx, journeyID); err != nil {
		return AlignmentScore{}, err
	}
	now := s.now()
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO alignment_scores (journey_id, score, notes, recorded_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		journeyID, score, notes, recordedAt.Unix(), now.Unix(), now.Unix()).Scan(&id)
	if err != nil {
		return AlignmentScore{}, err
	}
	return AlignmentScore{
		ID: id, JourneyID: journeyID, Score: score, Notes: notes,
		RecordedAt: recordedAt.UTC(), CreatedAt: now, UpdatedAt: now,
	}, nil
}

func (s *SQLStore) ListAlignmentScores(ctx context.Context, journeyID int64) ([]AlignmentScore, error) {
	if err := s.ensureJourney(ctx, journeyID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, journey_id, score, notes, recorded_at, created_at, updated_at
		 FROM alignment_scores WHERE journey_id=$1 ORDER BY recorded_at DESC, id DESC`, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []AlignmentScore{}
	for rows.Next() {
		var a AlignmentScore
		var notes sql.NullString
		var recorded, created, updated int64
		if err := rows.Scan(&a.ID, &a.JourneyID, &a.Score, &notes, &recorded, &created, &updated); err != nil {
			return nil, err
		}
		a.Notes = notes.String
		a.RecordedAt = time.Unix(recorded, 0).UTC()
		a.CreatedAt = time.Unix(created, 0).UTC()
		a.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) SaveIntention(ctx context.Context, in Intention) error {
	created := in.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO intentions (id, user_id, statement, created_at) VALUES ($1,$2,$3,$4)`,
		in.ID, in.UserID, in.Statement, created.Unix())
	return err
}

func (s *SQLStore) AppendEvent(ctx context.Context, typ, key, dataJSON string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at) VALUES ($1,$2,$3,$4)`,
		typ, key, dataJSON, s.now().Unix())
	return err
}

func (s *SQLStore) ensureJourney(ctx context.Context, id int64) error {
	var exist int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM journeys WHERE id=$1`, id).Scan(&exist)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJourney(row rowScanner) (Journey, error) {
	var j Journey
	var created, updated int64
	if err := row.Scan(&j.ID, &j.UserName, &j.IntentionStatement, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Journey{}, ErrNotFound
		}
		return Journey{}, err
	}
	j.CreatedAt = time.Unix(created, 0).UTC()
	j.UpdatedAt = time.Unix(updated, 0).UTC()
	return j, nil
}
