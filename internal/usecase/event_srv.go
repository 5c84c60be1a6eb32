package usecase

import (
	"context"
	"errors"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context, req *request.EventListRequest) (*response.PaginatedResponse[response.EventResponse], error)
	GetBySlug(ctx context.Context, slug string) (*response.EventResponse, error)

	// Admin
	Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateEventRequest) (*response.EventResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo  *repository.Repository
	tx    database.TxManager
	audit AuditService
	log   *zap.Logger
}

func NewEventService(repo *repository.Repository, tx database.TxManager, audit AuditService, log *zap.Logger) EventService {
	return &eventService{
		repo:  repo,
		tx:    tx,
		audit: audit,
		log:   log.With(zap.String("service", "event")),
	}
}

func (s *eventService) List(ctx context.Context, req *request.EventListRequest) (*response.PaginatedResponse[response.EventResponse], error) {
	celebrityID, err := parseOptionalID(req.CelebrityID, "celebrity")
	if err != nil {
		return nil, err
	}
	f := entity.EventFilter{CelebrityID: celebrityID, Upcoming: req.Upcoming}

	events, err := s.repo.Event.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list events", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list events")
	}

	total, err := s.repo.Event.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count events", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list events")
	}

	return paginate(events, response.EventToResponse, req.PaginatedRequest, total), nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*response.EventResponse, error) {
	event, err := s.repo.Event.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("slug", slug))
		return nil, utils.ErrInternal(err, "failed to load event")
	}
	if event == nil {
		return nil, utils.ErrNotFound("event not found")
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	celebrityID, err := parseID(req.CelebrityID, "celebrity")
	if err != nil {
		return nil, err
	}

	status := entity.EventStatusScheduled
	if req.Status != nil {
		status = entity.EventStatus(*req.Status)
	}

	event := &entity.Event{
		Base:        entity.NewBase(),
		CelebrityID: celebrityID,
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		TicketPrice: req.TicketPrice,
		Capacity:    req.Capacity,
		Status:      status,
		ImageURL:    req.ImageURL,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// 1. Celebrity must exist
		celebrity, err := s.repo.Celebrity.FindByID(ctx, celebrityID)
		if err != nil {
			return err
		}
		if celebrity == nil {
			return utils.ErrNotFound("celebrity not found")
		}

		// 2. Slug
		event.Slug, err = uniqueSlug(ctx, req.Title, "event", s.repo.Event.SlugExists)
		if err != nil {
			return err
		}

		// 3. Insert
		return s.repo.Event.Create(ctx, event)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("event slug already exists")
		}
		return nil, appOrInternal(s.log, err, "failed to create event", zap.String("title", req.Title))
	}

	s.audit.Record(ctx, entity.AuditActionCreate, "event", event.ID.String(), map[string]any{
		"title":        event.Title,
		"celebrity_id": celebrityID.String(),
		"starts_at":    event.StartsAt,
		"capacity":     event.Capacity,
	})
	s.log.Info("Event created", zap.String("id", event.ID.String()), zap.String("slug", event.Slug))

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to update event")
	}
	if event == nil {
		return nil, utils.ErrNotFound("event not found")
	}

	changes := map[string]any{}
	if req.Title != nil {
		event.Title = *req.Title
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
		changes["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
		changes["ends_at"] = *req.EndsAt
	}
	if req.TicketPrice != nil {
		if req.TicketPrice.IsNegative() {
			return nil, utils.ErrBadRequest("ticket price cannot be negative")
		}
		event.TicketPrice = *req.TicketPrice
		changes["ticket_price"] = req.TicketPrice.String()
	}
	if req.Capacity != nil {
		if *req.Capacity < event.TicketsSold {
			return nil, utils.ErrBadRequest("capacity cannot be lower than tickets already sold (%d)", event.TicketsSold)
		}
		event.Capacity = *req.Capacity
		changes["capacity"] = *req.Capacity
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
		changes["status"] = *req.Status
	}
	if req.ImageURL != nil {
		event.ImageURL = req.ImageURL
	}

	if !event.EndsAt.After(event.StartsAt) {
		return nil, utils.ErrBadRequest("ends_at must be after starts_at")
	}

	event.UpdatedAt = time.Now()
	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.log.Error("Failed to update event", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "event not found")
	}

	s.audit.Record(ctx, entity.AuditActionUpdate, "event", id.String(), changes)
	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete event", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "event not found")
	}

	s.audit.Record(ctx, entity.AuditActionDelete, "event", id.String(), nil)
	return nil
}
