package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

// setupAttemptTestRepository creates an attempt repository with a mock database
func setupAttemptTestRepository(t *testing.T) (*attemptRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewAttemptRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestAttemptRepository_List(t *testing.T) {
	repo, mock, cleanup := setupAttemptTestRepository(t)
	defer cleanup()

	attemptedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attempts WHERE quiz_id = \? AND user_id = \?`).
		WithArgs("quiz-1", "student-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{"attempt_id", "score", "attempted_at", "duration", "user_id", "quiz_id"}).
		AddRow("attempt-1", 72.5, attemptedAt, 540, "student-1", "quiz-1")
	mock.ExpectQuery(`SELECT.*FROM attempts.*WHERE quiz_id = \? AND user_id = \?.*ORDER BY attempted_at DESC, attempt_id DESC.*LIMIT \? OFFSET \?`).
		WithArgs("quiz-1", "student-1", 20, 0).
		WillReturnRows(rows)

	items, total, err := repo.List(context.Background(), models.AttemptListQuery{
		QuizID:    "quiz-1",
		UserID:    "student-1",
		PageQuery: models.PageQuery{Page: 1, PageSize: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.InDelta(t, 72.5, items[0].Score, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptRepository_StatsByUser(t *testing.T) {
	repo, mock, cleanup := setupAttemptTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"quiz_id", "attempt_count", "average_score"}).
		AddRow("quiz-1", 3, 72.5).
		AddRow("quiz-2", 1, 90.0)
	mock.ExpectQuery(`SELECT quiz_id, COUNT\(\*\).*AVG\(score\).*FROM attempts.*WHERE user_id = \?.*GROUP BY quiz_id`).
		WithArgs("student-1").
		WillReturnRows(rows)

	stats, err := repo.StatsByUser(context.Background(), "student-1")

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 3, stats[0].AttemptCount)
	assert.InDelta(t, 90.0, stats[1].AverageScore, 0.001)
}

func TestAttemptRepository_GlobalStatsByUser(t *testing.T) {
	t.Run("with attempts", func(t *testing.T) {
		repo, mock, cleanup := setupAttemptTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"total_attempts", "global_average_score"}).AddRow(4, 78.25)
		mock.ExpectQuery(`SELECT COUNT\(\*\).*COALESCE\(AVG\(score\), 0\).*FROM attempts.*WHERE user_id = \?`).
			WithArgs("student-1").
			WillReturnRows(rows)

		stats, err := repo.GlobalStatsByUser(context.Background(), "student-1")

		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalAttempts)
		assert.InDelta(t, 78.25, stats.GlobalAverageScore, 0.001)
	})

	t.Run("no attempts yields zeroes", func(t *testing.T) {
		repo, mock, cleanup := setupAttemptTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"total_attempts", "global_average_score"}).AddRow(0, 0)
		mock.ExpectQuery(`SELECT COUNT\(\*\).*COALESCE\(AVG\(score\), 0\).*FROM attempts.*WHERE user_id = \?`).
			WithArgs("ghost").
			WillReturnRows(rows)

		stats, err := repo.GlobalStatsByUser(context.Background(), "ghost")

		require.NoError(t, err)
		assert.Zero(t, stats.TotalAttempts)
		assert.Zero(t, stats.GlobalAverageScore)
	})
}

func TestAttemptRepository_Delete(t *testing.T) {
	repo, mock, cleanup := setupAttemptTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`DELETE FROM attempts WHERE attempt_id = \?`).
		WithArgs("attempt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), "attempt-1")

	require.NoError(t, err)
	assert.True(t, deleted)
}
