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

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.SupportTicket, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.SupportTicket, error)
	Count(ctx context.Context, status *string) (int64, error)
	UpdateStatus(ctx context.Context, ticket *entity.SupportTicket) error
	CreateReply(ctx context.Context, reply *entity.TicketReply) error
	FindReplies(ctx context.Context, ticketID uuid.UUID) ([]*entity.TicketReply, error)
}

const ticketColumns = `id, reference, user_id, subject, category, priority, status, created_at, updated_at, closed_at`

type supportTicketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupportTicketRepository(db database.PgxIface, log *zap.Logger) SupportTicketRepository {
	return &supportTicketRepository{
		db:  db,
		log: log.With(zap.String("repository", "support_ticket")),
	}
}

func scanTicket(row pgx.Row) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	err := row.Scan(
		&t.ID,
		&t.Reference,
		&t.UserID,
		&t.Subject,
		&t.Category,
		&t.Priority,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *supportTicketRepository) Create(ctx context.Context, t *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (id, reference, user_id, subject, category, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		t.ID, t.Reference, t.UserID, t.Subject, t.Category, t.Priority, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create support ticket", zap.Error(err), zap.String("user_id", t.UserID.String()))
		return fmt.Errorf("create support ticket: %w", err)
	}
	return nil
}

func (r *supportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	t, err := scanTicket(database.Conn(ctx, r.db).QueryRow(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find support ticket", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find support ticket %s: %w", id.String(), err)
	}
	return t, nil
}

func (r *supportTicketRepository) list(ctx context.Context, fb *filter, limit, offset int) ([]*entity.SupportTicket, error) {
	suffix, args := fb.page(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM support_tickets`+fb.where()+` ORDER BY updated_at DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list support tickets", zap.Error(err))
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support ticket row: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *supportTicketRepository) count(ctx context.Context, fb *filter) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM support_tickets`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count support tickets", zap.Error(err))
		return 0, fmt.Errorf("count support tickets: %w", err)
	}
	return total, nil
}

func (r *supportTicketRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.SupportTicket, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.list(ctx, fb, limit, offset)
}

func (r *supportTicketRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	fb := newFilter()
	fb.add("user_id = ?", userID)
	return r.count(ctx, fb)
}

func (r *supportTicketRepository) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.SupportTicket, error) {
	return r.list(ctx, statusFilter(status), limit, offset)
}

func (r *supportTicketRepository) Count(ctx context.Context, status *string) (int64, error) {
	return r.count(ctx, statusFilter(status))
}

func (r *supportTicketRepository) UpdateStatus(ctx context.Context, t *entity.SupportTicket) error {
	query := `UPDATE support_tickets SET status = $2, closed_at = $3, updated_at = $4 WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, t.ID, t.Status, t.ClosedAt, t.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update support ticket", zap.Error(err), zap.String("id", t.ID.String()))
		return fmt.Errorf("update support ticket %s: %w", t.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("support ticket %s: %w", t.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *supportTicketRepository) CreateReply(ctx context.Context, reply *entity.TicketReply) error {
	query := `
		INSERT INTO ticket_replies (id, ticket_id, author_id, is_staff, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		reply.ID, reply.TicketID, reply.AuthorID, reply.IsStaff, reply.Message, reply.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create ticket reply", zap.Error(err), zap.String("ticket_id", reply.TicketID.String()))
		return fmt.Errorf("create ticket reply: %w", err)
	}
	return nil
}

func (r *supportTicketRepository) FindReplies(ctx context.Context, ticketID uuid.UUID) ([]*entity.TicketReply, error) {
	query := `
		SELECT id, ticket_id, author_id, is_staff, message, created_at
		FROM ticket_replies
		WHERE ticket_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		r.log.Error("Failed to list ticket replies", zap.Error(err))
		return nil, fmt.Errorf("list ticket replies: %w", err)
	}
	defer rows.Close()

	var replies []*entity.TicketReply
	for rows.Next() {
		var reply entity.TicketReply
		if err := rows.Scan(&reply.ID, &reply.TicketID, &reply.AuthorID, &reply.IsStaff, &reply.Message, &reply.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket reply row: %w", err)
		}
		replies = append(replies, &reply)
	}
	return replies, rows.Err()
}
