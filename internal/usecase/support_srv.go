package usecase

import (
	"context"
	"errors"
	"fmt"
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

const ticketRefPrefix = "TKT"

type SupportService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.SupportTicketResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.SupportTicketResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*response.SupportTicketResponse, error)
	Reply(ctx context.Context, id uuid.UUID, req *request.TicketReplyRequest) (*response.TicketReplyResponse, error)

	// Admin
	AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.SupportTicketResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateTicketStatusRequest) (*response.SupportTicketResponse, error)
}

type supportService struct {
	repo   *repository.Repository
	tx     database.TxManager
	notify NotificationService
	audit  AuditService
	log    *zap.Logger
}

func NewSupportService(repo *repository.Repository, tx database.TxManager, notify NotificationService, audit AuditService, log *zap.Logger) SupportService {
	return &supportService{
		repo:   repo,
		tx:     tx,
		notify: notify,
		audit:  audit,
		log:    log.With(zap.String("service", "support")),
	}
}

func (s *supportService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.SupportTicketResponse, error) {
	priority := entity.TicketPriority(req.Priority)
	if priority == "" {
		priority = entity.TicketPriorityMedium
	}

	ticket := &entity.SupportTicket{
		BaseNoDelete: entity.NewBaseNoDelete(),
		Reference:    utils.GenerateReference(ticketRefPrefix),
		UserID:       userID,
		Subject:      req.Subject,
		Category:     req.Category,
		Priority:     priority,
		Status:       entity.TicketStatusOpen,
	}
	reply := &entity.TicketReply{
		BaseSimple: entity.NewBaseSimple(),
		TicketID:   ticket.ID,
		AuthorID:   userID,
		Message:    req.Message,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.SupportTicket.Create(ctx, ticket); err != nil {
			return err
		}
		return s.repo.SupportTicket.CreateReply(ctx, reply)
	})
	if err != nil {
		s.log.Error("Failed to create support ticket", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to create support ticket")
	}

	s.log.Info("Support ticket created", zap.String("ticket_id", ticket.ID.String()), zap.String("reference", ticket.Reference))

	resp := response.TicketToResponse(ticket)
	resp.Replies = []response.TicketReplyResponse{response.TicketReplyToResponse(reply)}
	return &resp, nil
}

func (s *supportService) ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.SupportTicketResponse], error) {
	tickets, err := s.repo.SupportTicket.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list support tickets", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list support tickets")
	}

	total, err := s.repo.SupportTicket.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count support tickets", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list support tickets")
	}

	return paginate(tickets, response.TicketToResponse, *page, total), nil
}

func (s *supportService) Get(ctx context.Context, id uuid.UUID) (*response.SupportTicketResponse, error) {
	ticket, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, err
	}

	replies, err := s.repo.SupportTicket.FindReplies(ctx, id)
	if err != nil {
		s.log.Error("Failed to load replies", zap.Error(err), zap.String("ticket_id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load support ticket")
	}

	resp := response.TicketToResponse(ticket)
	resp.Replies = make([]response.TicketReplyResponse, 0, len(replies))
	for _, r := range replies {
		resp.Replies = append(resp.Replies, response.TicketReplyToResponse(r))
	}
	return &resp, nil
}

// Reply appends a message. Staff replies move an open ticket to in_progress
// and notify the owner; owner replies reopen a resolved ticket.
func (s *supportService) Reply(ctx context.Context, id uuid.UUID, req *request.TicketReplyRequest) (*response.TicketReplyResponse, error) {
	ticket, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == entity.TicketStatusClosed {
		return nil, utils.ErrBadRequest("ticket is closed")
	}

	authorID, _ := utils.GetUserIDFromContext(ctx)
	isStaff := utils.IsAdmin(ctx) && authorID != ticket.UserID

	reply := &entity.TicketReply{
		BaseSimple: entity.NewBaseSimple(),
		TicketID:   id,
		AuthorID:   authorID,
		IsStaff:    isStaff,
		Message:    req.Message,
	}

	next := ticket.Status
	switch {
	case isStaff && ticket.Status == entity.TicketStatusOpen:
		next = entity.TicketStatusInProgress
	case !isStaff && ticket.Status == entity.TicketStatusResolved:
		next = entity.TicketStatusOpen
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.SupportTicket.CreateReply(ctx, reply); err != nil {
			return err
		}
		ticket.UpdatedAt = reply.CreatedAt
		if next != ticket.Status {
			ticket.Status = next
		}
		return s.repo.SupportTicket.UpdateStatus(ctx, ticket)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.ErrNotFound("support ticket not found")
	}
	if err != nil {
		s.log.Error("Failed to add reply", zap.Error(err), zap.String("ticket_id", id.String()))
		return nil, utils.ErrInternal(err, "failed to add reply")
	}

	if isStaff {
		s.notify.Notify(ctx, ticket.UserID, entity.NotificationSupport,
			"New reply on "+ticket.Reference,
			fmt.Sprintf("Support replied to your ticket %q.", ticket.Subject),
			"/support/"+id.String())
	}

	resp := response.TicketReplyToResponse(reply)
	return &resp, nil
}

func (s *supportService) AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.SupportTicketResponse], error) {
	tickets, err := s.repo.SupportTicket.FindAll(ctx, req.Status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list support tickets", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list support tickets")
	}

	total, err := s.repo.SupportTicket.Count(ctx, req.Status)
	if err != nil {
		s.log.Error("Failed to count support tickets", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list support tickets")
	}

	return paginate(tickets, response.TicketToResponse, req.PaginatedRequest, total), nil
}

func (s *supportService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateTicketStatusRequest) (*response.SupportTicketResponse, error) {
	next := entity.TicketStatus(req.Status)

	ticket, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := ticket.Status

	now := time.Now()
	ticket.Status = next
	ticket.UpdatedAt = now
	if next == entity.TicketStatusClosed {
		ticket.ClosedAt = &now
	} else {
		ticket.ClosedAt = nil
	}

	if err := s.repo.SupportTicket.UpdateStatus(ctx, ticket); err != nil {
		s.log.Error("Failed to update support ticket", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "support ticket not found")
	}

	s.audit.Record(ctx, entity.AuditActionStatusChange, "support_ticket", id.String(), map[string]any{
		"from": string(prev),
		"to":   string(next),
	})
	s.notify.Notify(ctx, ticket.UserID, entity.NotificationSupport,
		"Ticket "+ticket.Reference+" "+string(next),
		fmt.Sprintf("Your ticket %q is now %s.", ticket.Subject, next),
		"/support/"+id.String())

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *supportService) find(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := s.repo.SupportTicket.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find support ticket", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load support ticket")
	}
	if ticket == nil {
		return nil, utils.ErrNotFound("support ticket not found")
	}
	return ticket, nil
}

func (s *supportService) findVisible(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(ctx, ticket.UserID) {
		return nil, utils.ErrForbidden("you do not have access to this ticket")
	}
	return ticket, nil
}
