package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
}

func TestModel3DService_Create(t *testing.T) {
	discipline := "  Embryology  "

	tests := []struct {
		name            string
		req             *models.CreateModel3DRequest
		createErr       error
		expectedErr     error
		expectedStatus  models.ModelStatus
		expectPublished bool
	}{
		{
			name:           "defaults to draft",
			req:            &models.CreateModel3DRequest{Title: "Heart development"},
			expectedStatus: models.StatusDraft,
		},
		{
			name:            "created active stamps publishedAt",
			req:             &models.CreateModel3DRequest{Title: "Heart development", Status: "Active"},
			expectedStatus:  models.StatusActive,
			expectPublished: true,
		},
		{
			name:        "unknown status",
			req:         &models.CreateModel3DRequest{Title: "Heart development", Status: "Archived"},
			expectedErr: ErrValidation,
		},
		{
			name:        "blank title",
			req:         &models.CreateModel3DRequest{Title: "   "},
			expectedErr: ErrValidation,
		},
		{
			name:        "repository error",
			req:         &models.CreateModel3DRequest{Title: "Heart development"},
			createErr:   errors.New("database error"),
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockModel3DRepository{createErr: tt.createErr}
			svc := NewModel3DService(repo)
			svc.now = fixedNow

			result, err := svc.Create(context.Background(), professorPrincipal("prof-1"), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				assert.Nil(t, repo.created)
				return
			}
			if tt.createErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.ModelID)
			assert.Equal(t, "Heart development", result.Title)
			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, "prof-1", result.AuthorUserID)
			if tt.expectPublished {
				require.NotNil(t, result.PublishedAt)
				assert.Equal(t, fixedNow(), *result.PublishedAt)
			} else {
				assert.Nil(t, result.PublishedAt)
			}
			assert.Equal(t, result, repo.created)
		})
	}

	t.Run("trims optional text fields", func(t *testing.T) {
		repo := &mockModel3DRepository{}
		svc := NewModel3DService(repo)
		svc.now = fixedNow

		result, err := svc.Create(context.Background(), professorPrincipal("prof-1"), &models.CreateModel3DRequest{
			Title:      "  Heart development  ",
			Discipline: &discipline,
		})

		require.NoError(t, err)
		assert.Equal(t, "Heart development", result.Title)
		require.NotNil(t, result.Discipline)
		assert.Equal(t, "Embryology", *result.Discipline)
	})
}

func TestModel3DService_Update_StatusTransitions(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		currentStatus     models.ModelStatus
		currentPublished  *time.Time
		newStatus         string
		expectedPublished *time.Time
	}{
		{
			name:              "draft to active stamps now",
			currentStatus:     models.StatusDraft,
			currentPublished:  nil,
			newStatus:         "Active",
			expectedPublished: timePtr(fixedNow()),
		},
		{
			name:              "active to active keeps original stamp",
			currentStatus:     models.StatusActive,
			currentPublished:  &earlier,
			newStatus:         "Active",
			expectedPublished: &earlier,
		},
		{
			name:              "active to draft clears the stamp",
			currentStatus:     models.StatusActive,
			currentPublished:  &earlier,
			newStatus:         "Draft",
			expectedPublished: nil,
		},
		{
			name:              "active to closed keeps the stamp",
			currentStatus:     models.StatusActive,
			currentPublished:  &earlier,
			newStatus:         "Closed",
			expectedPublished: &earlier,
		},
		{
			name:              "closed back to active keeps the stamp",
			currentStatus:     models.StatusClosed,
			currentPublished:  &earlier,
			newStatus:         "Active",
			expectedPublished: &earlier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockModel3DRepository{
				model: &models.Model3D{
					ModelID:      "model-1",
					Title:        "Heart development",
					Status:       tt.currentStatus,
					PublishedAt:  tt.currentPublished,
					AuthorUserID: "prof-1",
				},
			}
			svc := NewModel3DService(repo)
			svc.now = fixedNow

			result, err := svc.Update(context.Background(), "model-1", &models.UpdateModel3DRequest{
				Title:  "Heart development",
				Status: tt.newStatus,
			})

			require.NoError(t, err)
			if tt.expectedPublished == nil {
				assert.Nil(t, result.PublishedAt)
			} else {
				require.NotNil(t, result.PublishedAt)
				assert.Equal(t, *tt.expectedPublished, *result.PublishedAt)
			}
			assert.Equal(t, models.ModelStatus(tt.newStatus), result.Status)
			assert.Equal(t, result, repo.updated)
		})
	}
}

func TestModel3DService_Update_NotFound(t *testing.T) {
	repo := &mockModel3DRepository{}
	svc := NewModel3DService(repo)

	result, err := svc.Update(context.Background(), "missing", &models.UpdateModel3DRequest{
		Title:  "Heart development",
		Status: "Draft",
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestModel3DService_List(t *testing.T) {
	t.Run("normalizes pagination and trims search", func(t *testing.T) {
		repo := &mockModel3DRepository{
			items: []models.Model3D{{ModelID: "model-1"}},
			total: 1,
		}
		svc := NewModel3DService(repo)

		result, err := svc.List(context.Background(), models.Model3DListQuery{
			Search:    "  heart  ",
			PageQuery: models.PageQuery{Page: 0, PageSize: 500},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 1, repo.lastListQuery.Page)
		assert.Equal(t, models.MaxPageSize, repo.lastListQuery.PageSize)
		assert.Equal(t, "heart", repo.lastListQuery.Search)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		repo := &mockModel3DRepository{}
		svc := NewModel3DService(repo)

		result, err := svc.List(context.Background(), models.Model3DListQuery{})

		require.NoError(t, err)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.Total)
	})
}

func TestModel3DService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockModel3DRepository{model: &models.Model3D{ModelID: "model-1"}}
		svc := NewModel3DService(repo)

		result, err := svc.GetByID(context.Background(), "model-1")

		require.NoError(t, err)
		assert.Equal(t, "model-1", result.ModelID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockModel3DRepository{}
		svc := NewModel3DService(repo)

		result, err := svc.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestModel3DService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo := &mockModel3DRepository{deleted: true}
		svc := NewModel3DService(repo)

		assert.NoError(t, svc.Delete(context.Background(), "model-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockModel3DRepository{}
		svc := NewModel3DService(repo)

		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
