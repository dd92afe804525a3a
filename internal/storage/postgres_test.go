package storage

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apteva/apteva/pkg/models"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(mock, logger), mock
}

func TestStore_SaveFeedback(t *testing.T) {
	t.Run("without context", func(t *testing.T) {
		store, mock := newMockStore(t)
		ts := time.Now()

		mock.ExpectExec("INSERT INTO feedback").
			WithArgs("u1", "opq", 5, []byte(nil), ts).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		fb := models.FeedbackEvent{UserID: "u1", AssessmentID: "opq", Rating: 5, Timestamp: ts}
		require.NoError(t, store.SaveFeedback(context.Background(), fb))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with feature context", func(t *testing.T) {
		store, mock := newMockStore(t)
		ts := time.Now()

		mock.ExpectExec("INSERT INTO feedback").
			WithArgs("u1", "sjt", 3, pgxmock.AnyArg(), ts).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		fb := models.FeedbackEvent{
			UserID: "u1", AssessmentID: "sjt", Rating: 3, Timestamp: ts,
			Context: &models.FeatureContext{
				Features:       map[string]float64{"semantic_similarity": 0.8},
				PredictedScore: 9.5,
			},
		}
		require.NoError(t, store.SaveFeedback(context.Background(), fb))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		store, mock := newMockStore(t)
		ts := time.Now()

		mock.ExpectExec("INSERT INTO feedback").
			WithArgs("u1", "opq", 5, []byte(nil), ts).
			WillReturnError(assert.AnError)

		fb := models.FeedbackEvent{UserID: "u1", AssessmentID: "opq", Rating: 5, Timestamp: ts}
		assert.Error(t, store.SaveFeedback(context.Background(), fb))
	})
}

func TestStore_SaveInteraction(t *testing.T) {
	store, mock := newMockStore(t)
	ts := time.Now()

	mock.ExpectExec("INSERT INTO interactions").
		WithArgs("u1", "opq", 0.3, ts).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.SaveInteraction(context.Background(), "u1", "opq", 0.3, ts))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadRecentFeedback(t *testing.T) {
	t.Run("returns newest first with contexts", func(t *testing.T) {
		store, mock := newMockStore(t)
		now := time.Now()

		rows := pgxmock.NewRows([]string{"user_id", "assessment_id", "rating", "context", "created_at"}).
			AddRow("u2", "sjt", 4, []byte(`{"features":{"role_match":2},"predicted_score":11}`), now).
			AddRow("u1", "opq", 5, []byte(nil), now.Add(-time.Hour))

		mock.ExpectQuery("SELECT user_id, assessment_id, rating, context, created_at").
			WithArgs(100).
			WillReturnRows(rows)

		got, err := store.LoadRecentFeedback(context.Background(), 100)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "u2", got[0].UserID)
		require.NotNil(t, got[0].Context)
		assert.Equal(t, 2.0, got[0].Context.Features["role_match"])
		assert.Equal(t, 11.0, got[0].Context.PredictedScore)

		assert.Equal(t, "u1", got[1].UserID)
		assert.Nil(t, got[1].Context)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed context is skipped, row kept", func(t *testing.T) {
		store, mock := newMockStore(t)
		now := time.Now()

		rows := pgxmock.NewRows([]string{"user_id", "assessment_id", "rating", "context", "created_at"}).
			AddRow("u1", "opq", 2, []byte(`{not json`), now)

		mock.ExpectQuery("SELECT user_id, assessment_id, rating, context, created_at").
			WithArgs(10).
			WillReturnRows(rows)

		got, err := store.LoadRecentFeedback(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].Context)
	})
}

func TestStore_Statistics(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedback`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM interactions`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(17)))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT user_id\) FROM interactions`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(9)))

	st, err := store.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), st.FeedbackCount)
	assert.Equal(t, int64(17), st.InteractionCount)
	assert.Equal(t, int64(9), st.DistinctUsers)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Health(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	assert.NoError(t, store.Health(context.Background()))
}
