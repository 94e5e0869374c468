package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

var model3DColumns = []string{"model_id", "title", "discipline", "embryo_day", "description", "status", "published_at", "author_user_id"}

// setupModel3DTestRepository creates a model repository with a mock database
func setupModel3DTestRepository(t *testing.T) (*model3DRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewModel3DRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewModel3DRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewModel3DRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestModel3DRepository_GetByID(t *testing.T) {
	published := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		modelID       string
		setupMock     func(sqlmock.Sqlmock)
		expectNil     bool
		expectedError bool
		errorContains string
	}{
		{
			name:    "success",
			modelID: "model-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(model3DColumns).
					AddRow("model-1", "Heart development", "Embryology", 21, nil, "Active", published, "prof-1")
				mock.ExpectQuery(`SELECT.*FROM models_3d.*WHERE model_id = \?`).
					WithArgs("model-1").
					WillReturnRows(rows)
			},
		},
		{
			name:    "model not found returns nil",
			modelID: "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM models_3d.*WHERE model_id = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name:    "database error",
			modelID: "model-1",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT.*FROM models_3d.*WHERE model_id = \?`).
					WithArgs("model-1").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to get model by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupModel3DTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.modelID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			} else if tt.expectNil {
				assert.NoError(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "model-1", result.ModelID)
				assert.Equal(t, models.StatusActive, result.Status)
				require.NotNil(t, result.PublishedAt)
				assert.Equal(t, published, *result.PublishedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestModel3DRepository_List(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		repo, mock, cleanup := setupModel3DTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM models_3d WHERE.*title LIKE \?.*status = \?`).
			WithArgs("%heart%", "%heart%", "Active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		rows := sqlmock.NewRows(model3DColumns).
			AddRow("model-1", "Heart development", nil, nil, nil, "Active", nil, "prof-1").
			AddRow("model-2", "Heart valves", nil, nil, nil, "Active", nil, "prof-1")
		mock.ExpectQuery(`SELECT.*FROM models_3d.*ORDER BY published_at DESC, model_id DESC.*LIMIT \? OFFSET \?`).
			WithArgs("%heart%", "%heart%", "Active", 20, 20).
			WillReturnRows(rows)

		status := models.StatusActive
		items, total, err := repo.List(context.Background(), models.Model3DListQuery{
			Search:    "heart",
			Status:    &status,
			PageQuery: models.PageQuery{Page: 2, PageSize: 20},
		})

		require.NoError(t, err)
		assert.Equal(t, 42, total)
		require.Len(t, items, 2)
		assert.Equal(t, "model-1", items[0].ModelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		repo, mock, cleanup := setupModel3DTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM models_3d`).
			WillReturnError(errors.New("database error"))

		items, total, err := repo.List(context.Background(), models.Model3DListQuery{
			PageQuery: models.PageQuery{Page: 1, PageSize: 20},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count models")
		assert.Nil(t, items)
		assert.Zero(t, total)
	})
}

func TestModel3DRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupModel3DTestRepository(t)
	defer cleanup()

	discipline := "Embryology"
	m := &models.Model3D{
		ModelID:      "model-1",
		Title:        "Heart development",
		Discipline:   &discipline,
		Status:       models.StatusDraft,
		AuthorUserID: "prof-1",
	}

	mock.ExpectExec(`INSERT INTO models_3d`).
		WithArgs("model-1", "Heart development", &discipline, nil, nil, "Draft", nil, "prof-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModel3DRepository_Delete(t *testing.T) {
	t.Run("row deleted", func(t *testing.T) {
		repo, mock, cleanup := setupModel3DTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM models_3d WHERE model_id = \?`).
			WithArgs("model-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(context.Background(), "model-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("no row matched", func(t *testing.T) {
		repo, mock, cleanup := setupModel3DTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM models_3d WHERE model_id = \?`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestModel3DRepository_Exists(t *testing.T) {
	repo, mock, cleanup := setupModel3DTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM models_3d WHERE model_id = \?\)`).
		WithArgs("model-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "model-1")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestModel3DRepository_Count(t *testing.T) {
	repo, mock, cleanup := setupModel3DTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM models_3d`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, count)
}
