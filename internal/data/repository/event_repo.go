package repository

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context, f entity.EventFilter, limit, offset int) ([]*entity.Event, error)
	Count(ctx context.Context, f entity.EventFilter) (int64, error)
	Update(ctx context.Context, event *entity.Event) error
	ReserveTickets(ctx context.Context, id uuid.UUID, quantity int) error
	ReleaseTickets(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const eventColumns = `id, celebrity_id, title, slug, description, venue, location, starts_at, ends_at,
		       ticket_price, capacity, tickets_sold, status, image_url, created_at, updated_at, deleted_at`

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID,
		&e.CelebrityID,
		&e.Title,
		&e.Slug,
		&e.Description,
		&e.Venue,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.TicketPrice,
		&e.Capacity,
		&e.TicketsSold,
		&e.Status,
		&e.ImageURL,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *entity.Event) error {
	query := `
		INSERT INTO events (id, celebrity_id, title, slug, description, venue, location, starts_at, ends_at,
		                    ticket_price, capacity, tickets_sold, status, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		e.ID,
		e.CelebrityID,
		e.Title,
		e.Slug,
		e.Description,
		e.Venue,
		e.Location,
		e.StartsAt,
		e.EndsAt,
		e.TicketPrice,
		e.Capacity,
		e.TicketsSold,
		e.Status,
		e.ImageURL,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create event", zap.Error(err), zap.String("slug", e.Slug))
		return fmt.Errorf("create event %s: %w", e.Slug, err)
	}
	return nil
}

func (r *eventRepository) findOne(ctx context.Context, where string, arg any) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + where + ` AND deleted_at IS NULL`

	e, err := scanEvent(database.Conn(ctx, r.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find event %v: %w", arg, err)
	}
	return e, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *eventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check event slug %s: %w", slug, err)
	}
	return exists, nil
}

func eventFilter(f entity.EventFilter) *filter {
	fb := newFilter("deleted_at IS NULL")
	if f.CelebrityID != nil {
		fb.add("celebrity_id = ?", *f.CelebrityID)
	}
	if f.Upcoming {
		fb.clauses = append(fb.clauses, "starts_at > NOW()", "status = 'scheduled'")
	}
	return fb
}

func (r *eventRepository) FindAll(ctx context.Context, f entity.EventFilter, limit, offset int) ([]*entity.Event, error) {
	fb := eventFilter(f)
	suffix, args := fb.page(limit, offset)
	query := `SELECT ` + eventColumns + ` FROM events` + fb.where() + ` ORDER BY starts_at ASC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Count(ctx context.Context, f entity.EventFilter) (int64, error) {
	fb := eventFilter(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, fmt.Errorf("count events: %w", err)
	}
	return total, nil
}

func (r *eventRepository) Update(ctx context.Context, e *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, venue = $4, location = $5, starts_at = $6, ends_at = $7,
		    ticket_price = $8, capacity = $9, status = $10, image_url = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		e.ID,
		e.Title,
		e.Description,
		e.Venue,
		e.Location,
		e.StartsAt,
		e.EndsAt,
		e.TicketPrice,
		e.Capacity,
		e.Status,
		e.ImageURL,
		e.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update event", zap.Error(err), zap.String("id", e.ID.String()))
		return fmt.Errorf("update event %s: %w", e.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", e.ID.String(), ErrNotFound)
	}
	return nil
}

// ReserveTickets atomically adds quantity to tickets_sold, failing with
// ErrCapacityExceeded when not enough seats remain.
func (r *eventRepository) ReserveTickets(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE events
		SET tickets_sold = tickets_sold + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND tickets_sold + $2 <= capacity
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, quantity)
	if err != nil {
		r.log.Error("Failed to reserve tickets", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("reserve tickets %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return ErrCapacityExceeded
	}
	return nil
}

func (r *eventRepository) ReleaseTickets(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `UPDATE events SET tickets_sold = GREATEST(tickets_sold - $2, 0), updated_at = NOW() WHERE id = $1`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, id, quantity); err != nil {
		r.log.Error("Failed to release tickets", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("release tickets %s: %w", id.String(), err)
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `UPDATE events SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete event", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
