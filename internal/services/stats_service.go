package services

import (
	"context"

	"github.com/embryolab/backend/internal/models"
)

// ModelCountRepository counts 3D models for the dashboard
type ModelCountRepository interface {
	Count(ctx context.Context) (int, error)
}

// QuizCountRepository counts quizzes for the dashboard
type QuizCountRepository interface {
	Count(ctx context.Context) (int, error)
}

// StudentCountRepository counts distinct users holding the Student role
type StudentCountRepository interface {
	CountStudents(ctx context.Context) (int, error)
}

type statsService struct {
	models   ModelCountRepository
	quizzes  QuizCountRepository
	students StudentCountRepository
}

// NewStatsService creates a new statistics service
func NewStatsService(modelRepo ModelCountRepository, quizRepo QuizCountRepository, userRepo StudentCountRepository) *statsService {
	return &statsService{
		models:   modelRepo,
		quizzes:  quizRepo,
		students: userRepo,
	}
}

// Overview returns the dashboard counters. The three counts are independent
// queries, without cross-consistency guarantees between them.
func (s *statsService) Overview(ctx context.Context) (*models.StatsOverview, error) {
	modelsCount, err := s.models.Count(ctx)
	if err != nil {
		return nil, err
	}

	quizzesCount, err := s.quizzes.Count(ctx)
	if err != nil {
		return nil, err
	}

	studentsCount, err := s.students.CountStudents(ctx)
	if err != nil {
		return nil, err
	}

	return &models.StatsOverview{
		ModelsCount:   modelsCount,
		QuizzesCount:  quizzesCount,
		StudentsCount: studentsCount,
	}, nil
}
