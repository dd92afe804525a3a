package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/pkg/models"
)

// Querier is the subset of pgxpool.Pool the store needs. pgxmock satisfies
// it too, which keeps the tests off a live database.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists feedback and interaction state to Postgres. Durability is
// best-effort from the engine's point of view; the store only reports
// errors, it never retries.
type Store struct {
	db     Querier
	logger *logrus.Logger
}

func New(db Querier, logger *logrus.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// EnsureSchema creates the feedback and interactions tables when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS feedback (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			assessment_id TEXT NOT NULL,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			context JSONB,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			user_id TEXT NOT NULL,
			assessment_id TEXT NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			last_activity TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (user_id, assessment_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	s.logger.Info("Storage schema ready")
	return nil
}

// SaveFeedback appends one feedback row. The feature context, when present,
// is stored as JSONB alongside the rating.
func (s *Store) SaveFeedback(ctx context.Context, fb models.FeedbackEvent) error {
	var contextJSON []byte
	if fb.Context != nil {
		var err error
		contextJSON, err = json.Marshal(fb.Context)
		if err != nil {
			return fmt.Errorf("failed to marshal feedback context: %w", err)
		}
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO feedback (user_id, assessment_id, rating, context, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		fb.UserID, fb.AssessmentID, fb.Rating, contextJSON, fb.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// SaveInteraction upserts one (user, assessment) row, adding the new weight
// to any already accumulated score.
func (s *Store) SaveInteraction(ctx context.Context, userID, assessmentID string, score float64, lastActivity time.Time) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO interactions (user_id, assessment_id, score, last_activity)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, assessment_id)
		 DO UPDATE SET score = interactions.score + EXCLUDED.score,
		               last_activity = EXCLUDED.last_activity`,
		userID, assessmentID, score, lastActivity)
	if err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}
	return nil
}

// LoadRecentFeedback returns up to limit feedback events, most recent
// first. Used once at startup to warm the in-memory log.
func (s *Store) LoadRecentFeedback(ctx context.Context, limit int) ([]models.FeedbackEvent, error) {
	rows, err := s.db.Query(ctx,
		`SELECT user_id, assessment_id, rating, context, created_at
		 FROM feedback
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	defer rows.Close()

	var out []models.FeedbackEvent
	for rows.Next() {
		var fb models.FeedbackEvent
		var contextJSON []byte
		if err := rows.Scan(&fb.UserID, &fb.AssessmentID, &fb.Rating, &contextJSON, &fb.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		if len(contextJSON) > 0 {
			var fc models.FeatureContext
			if err := json.Unmarshal(contextJSON, &fc); err != nil {
				s.logger.WithError(err).Warn("Skipping malformed feedback context")
			} else {
				fb.Context = &fc
			}
		}
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return out, nil
}

// Health verifies the database answers queries.
func (s *Store) Health(ctx context.Context) error {
	var one int
	if err := s.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}

// Stats reports row counts for observability endpoints.
type Stats struct {
	FeedbackCount    int64 `json:"feedback_count"`
	InteractionCount int64 `json:"interaction_count"`
	DistinctUsers    int64 `json:"distinct_users"`
}

func (s *Store) Statistics(ctx context.Context) (*Stats, error) {
	var st Stats
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM feedback").Scan(&st.FeedbackCount); err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM interactions").Scan(&st.InteractionCount); err != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", err)
	}
	if err := s.db.QueryRow(ctx, "SELECT COUNT(DISTINCT user_id) FROM interactions").Scan(&st.DistinctUsers); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return &st, nil
}
