package services

import (
	"context"
	"io"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
)

// The mocks below are shared by the service tests in this package. Each mock
// is configured through its fields and records the calls the test cares about.

func studentPrincipal(userID string) auth.Principal {
	return auth.Principal{UserID: userID, Roles: []string{auth.RoleStudent}}
}

func professorPrincipal(userID string) auth.Principal {
	return auth.Principal{UserID: userID, Roles: []string{auth.RoleProfessor}}
}

// mockModel3DRepository is a mock implementation of Model3DRepository
type mockModel3DRepository struct {
	model     *models.Model3D
	items     []models.Model3D
	total     int
	exists    bool
	deleted   bool
	err       error
	createErr error
	updateErr error
	deleteErr error

	lastListQuery models.Model3DListQuery
	created       *models.Model3D
	updated       *models.Model3D
}

func (m *mockModel3DRepository) GetByID(ctx context.Context, modelID string) (*models.Model3D, error) {
	return m.model, m.err
}

func (m *mockModel3DRepository) Exists(ctx context.Context, modelID string) (bool, error) {
	return m.exists, m.err
}

func (m *mockModel3DRepository) List(ctx context.Context, q models.Model3DListQuery) ([]models.Model3D, int, error) {
	m.lastListQuery = q
	return m.items, m.total, m.err
}

func (m *mockModel3DRepository) Create(ctx context.Context, mo *models.Model3D) error {
	m.created = mo
	return m.createErr
}

func (m *mockModel3DRepository) Update(ctx context.Context, mo *models.Model3D) error {
	m.updated = mo
	return m.updateErr
}

func (m *mockModel3DRepository) Delete(ctx context.Context, modelID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockModelLookup implements ModelLookupRepository
type mockModelLookup struct {
	exists bool
	err    error
}

func (m *mockModelLookup) Exists(ctx context.Context, modelID string) (bool, error) {
	return m.exists, m.err
}

// mockQuizLookup implements QuizLookupRepository
type mockQuizLookup struct {
	exists bool
	err    error
}

func (m *mockQuizLookup) Exists(ctx context.Context, quizID string) (bool, error) {
	return m.exists, m.err
}

// mockQuestionLookup implements QuestionLookupRepository
type mockQuestionLookup struct {
	exists bool
	err    error
}

func (m *mockQuestionLookup) Exists(ctx context.Context, questionID string) (bool, error) {
	return m.exists, m.err
}

// mockModelFileRepository is a mock implementation of ModelFileRepository
type mockModelFileRepository struct {
	file      *models.ModelFile
	items     []models.ModelFile
	total     int
	deleted   bool
	err       error
	createErr error
	updateErr error
	deleteErr error

	created         *models.ModelFile
	updated         *models.ModelFile
	lastMakePrimary bool
}

func (m *mockModelFileRepository) GetByID(ctx context.Context, fileID string) (*models.ModelFile, error) {
	return m.file, m.err
}

func (m *mockModelFileRepository) ListByModel(ctx context.Context, q models.ModelFileListQuery) ([]models.ModelFile, int, error) {
	return m.items, m.total, m.err
}

func (m *mockModelFileRepository) Create(ctx context.Context, f *models.ModelFile) error {
	m.created = f
	return m.createErr
}

func (m *mockModelFileRepository) UpdateMeta(ctx context.Context, f *models.ModelFile, makePrimary bool) error {
	m.updated = f
	m.lastMakePrimary = makePrimary
	return m.updateErr
}

func (m *mockModelFileRepository) Delete(ctx context.Context, fileID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockFileStore is a mock implementation of FileStore
type mockFileStore struct {
	saveErr   error
	deleteErr error

	savedPath    string
	deletedPaths []string
}

func (m *mockFileStore) Save(ctx context.Context, relPath string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.savedPath = relPath
	return relPath, nil
}

func (m *mockFileStore) Delete(ctx context.Context, relPath string) error {
	m.deletedPaths = append(m.deletedPaths, relPath)
	return m.deleteErr
}

func (m *mockFileStore) URL(relPath string) string {
	return "/uploads/" + relPath
}

// mockModelMediaRepository is a mock implementation of ModelMediaRepository
type mockModelMediaRepository struct {
	media     *models.ModelMedia
	items     []models.ModelMedia
	total     int
	deleted   bool
	err       error
	createErr error
	updateErr error
	deleteErr error

	created         *models.ModelMedia
	updated         *models.ModelMedia
	lastMakePrimary bool
}

func (m *mockModelMediaRepository) GetByID(ctx context.Context, mediaID string) (*models.ModelMedia, error) {
	return m.media, m.err
}

func (m *mockModelMediaRepository) ListByModel(ctx context.Context, q models.ModelMediaListQuery) ([]models.ModelMedia, int, error) {
	return m.items, m.total, m.err
}

func (m *mockModelMediaRepository) Create(ctx context.Context, md *models.ModelMedia) error {
	m.created = md
	return m.createErr
}

func (m *mockModelMediaRepository) UpdateMeta(ctx context.Context, md *models.ModelMedia, makePrimary bool) error {
	m.updated = md
	m.lastMakePrimary = makePrimary
	return m.updateErr
}

func (m *mockModelMediaRepository) Delete(ctx context.Context, mediaID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockQuizRepository is a mock implementation of QuizRepository
type mockQuizRepository struct {
	quiz      *models.Quiz
	items     []models.Quiz
	total     int
	exists    bool
	deleted   bool
	err       error
	createErr error
	updateErr error
	deleteErr error

	created *models.Quiz
	updated *models.Quiz
}

func (m *mockQuizRepository) GetByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	return m.quiz, m.err
}

func (m *mockQuizRepository) Exists(ctx context.Context, quizID string) (bool, error) {
	return m.exists, m.err
}

func (m *mockQuizRepository) List(ctx context.Context, q models.QuizListQuery) ([]models.Quiz, int, error) {
	return m.items, m.total, m.err
}

func (m *mockQuizRepository) Create(ctx context.Context, q *models.Quiz) error {
	m.created = q
	return m.createErr
}

func (m *mockQuizRepository) Update(ctx context.Context, q *models.Quiz) error {
	m.updated = q
	return m.updateErr
}

func (m *mockQuizRepository) Delete(ctx context.Context, quizID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockQuestionRepository is a mock implementation of QuestionRepository
type mockQuestionRepository struct {
	question  *models.Question
	items     []models.Question
	total     int
	deleted   bool
	err       error
	createErr error
	updateErr error
	deleteErr error

	created *models.Question
	updated *models.Question
}

func (m *mockQuestionRepository) GetByID(ctx context.Context, questionID string) (*models.Question, error) {
	return m.question, m.err
}

func (m *mockQuestionRepository) ListByQuiz(ctx context.Context, q models.QuestionListQuery) ([]models.Question, int, error) {
	return m.items, m.total, m.err
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *models.Question) error {
	m.created = q
	return m.createErr
}

func (m *mockQuestionRepository) Update(ctx context.Context, q *models.Question) error {
	m.updated = q
	return m.updateErr
}

func (m *mockQuestionRepository) Delete(ctx context.Context, questionID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockAttemptRepository is a mock implementation of AttemptRepository
type mockAttemptRepository struct {
	attempt     *models.Attempt
	items       []models.Attempt
	total       int
	deleted     bool
	stats       []models.AttemptStats
	globalStats *models.AttemptGlobalStats
	err         error
	createErr   error
	deleteErr   error

	lastListQuery models.AttemptListQuery
	created       *models.Attempt
}

func (m *mockAttemptRepository) GetByID(ctx context.Context, attemptID string) (*models.Attempt, error) {
	return m.attempt, m.err
}

func (m *mockAttemptRepository) List(ctx context.Context, q models.AttemptListQuery) ([]models.Attempt, int, error) {
	m.lastListQuery = q
	return m.items, m.total, m.err
}

func (m *mockAttemptRepository) Create(ctx context.Context, a *models.Attempt) error {
	m.created = a
	return m.createErr
}

func (m *mockAttemptRepository) Delete(ctx context.Context, attemptID string) (bool, error) {
	return m.deleted, m.deleteErr
}

func (m *mockAttemptRepository) StatsByUser(ctx context.Context, userID string) ([]models.AttemptStats, error) {
	return m.stats, m.err
}

func (m *mockAttemptRepository) GlobalStatsByUser(ctx context.Context, userID string) (*models.AttemptGlobalStats, error) {
	return m.globalStats, m.err
}

// mockAttemptAnswerRepository is a mock implementation of AttemptAnswerRepository
type mockAttemptAnswerRepository struct {
	answer    *models.AttemptAnswer
	items     []models.AttemptAnswer
	deleted   bool
	err       error
	createErr error
	deleteErr error

	created *models.AttemptAnswer
}

func (m *mockAttemptAnswerRepository) Get(ctx context.Context, attemptID, questionID string) (*models.AttemptAnswer, error) {
	return m.answer, m.err
}

func (m *mockAttemptAnswerRepository) ListByAttempt(ctx context.Context, attemptID string) ([]models.AttemptAnswer, error) {
	return m.items, m.err
}

func (m *mockAttemptAnswerRepository) Create(ctx context.Context, a *models.AttemptAnswer) error {
	m.created = a
	return m.createErr
}

func (m *mockAttemptAnswerRepository) Delete(ctx context.Context, attemptID, questionID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockNotificationRepository is a mock implementation of NotificationRepository
type mockNotificationRepository struct {
	notification *models.Notification
	items        []models.Notification
	total        int
	deleted      bool
	markAllCount int
	err          error
	createErr    error
	markReadErr  error
	deleteErr    error

	lastListQuery  models.NotificationListQuery
	created        *models.Notification
	markReadCalled bool
	markAllUserID  string
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	return m.notification, m.err
}

func (m *mockNotificationRepository) List(ctx context.Context, q models.NotificationListQuery) ([]models.Notification, int, error) {
	m.lastListQuery = q
	return m.items, m.total, m.err
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	m.created = n
	return m.createErr
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	m.markReadCalled = true
	return m.markReadErr
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	m.markAllUserID = userID
	return m.markAllCount, m.err
}

func (m *mockNotificationRepository) Delete(ctx context.Context, notificationID string) (bool, error) {
	return m.deleted, m.deleteErr
}

// mockUserLookup implements UserLookupRepository
type mockUserLookup struct {
	exists bool
	err    error
}

func (m *mockUserLookup) ExistsByID(ctx context.Context, userID string) (bool, error) {
	return m.exists, m.err
}

// mockEventLogRepository is a mock implementation of EventLogRepository
type mockEventLogRepository struct {
	event     *models.EventLog
	items     []models.EventLog
	total     int
	err       error
	createErr error

	created *models.EventLog
}

func (m *mockEventLogRepository) GetByID(ctx context.Context, eventLogID string) (*models.EventLog, error) {
	return m.event, m.err
}

func (m *mockEventLogRepository) List(ctx context.Context, q models.EventLogListQuery) ([]models.EventLog, int, error) {
	return m.items, m.total, m.err
}

func (m *mockEventLogRepository) Create(ctx context.Context, e *models.EventLog) error {
	m.created = e
	return m.createErr
}

// mockCounter implements the dashboard count interfaces
type mockCounter struct {
	count int
	err   error
}

func (m *mockCounter) Count(ctx context.Context) (int, error) {
	return m.count, m.err
}

func (m *mockCounter) CountStudents(ctx context.Context) (int, error) {
	return m.count, m.err
}
