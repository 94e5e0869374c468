package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
)

// EventLogRepository defines methods for event log data access
type EventLogRepository interface {
	// GetByID retrieves an event by ID, nil when absent
	GetByID(ctx context.Context, eventLogID string) (*models.EventLog, error)
	// List retrieves events with filtering and pagination, newest first
	List(ctx context.Context, q models.EventLogListQuery) ([]models.EventLog, int, error)
	// Create inserts an event
	Create(ctx context.Context, e *models.EventLog) error
}

type eventLogService struct {
	events EventLogRepository
	now    func() time.Time
}

// NewEventLogService creates a new event log service
func NewEventLogService(events EventLogRepository) *eventLogService {
	return &eventLogService{
		events: events,
		now:    time.Now,
	}
}

// List retrieves event log entries with filtering and pagination
func (s *eventLogService) List(ctx context.Context, q models.EventLogListQuery) (*models.PagedResult[models.EventLog], error) {
	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.events.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.EventLog{}
	}

	return &models.PagedResult[models.EventLog]{Total: total, Items: items}, nil
}

// GetByID retrieves a single event log entry
func (s *eventLogService) GetByID(ctx context.Context, eventLogID string) (*models.EventLog, error) {
	e, err := s.events.GetByID(ctx, eventLogID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// Create records a usage event. The actor is the calling user when one is
// authenticated; anonymous events keep a NULL user.
func (s *eventLogService) Create(ctx context.Context, principal auth.Principal, req *models.CreateEventLogRequest) (*models.EventLog, error) {
	eventType := trimmed(req.EventType)
	if eventType == "" {
		return nil, fmt.Errorf("%w: eventType is required", ErrValidation)
	}

	var userID *string
	if principal.UserID != "" {
		id := principal.UserID
		userID = &id
	}

	e := &models.EventLog{
		EventLogID: uuid.NewString(),
		EventType:  eventType,
		Payload:    req.Payload,
		CreatedAt:  s.now().UTC(),
		UserID:     userID,
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}
