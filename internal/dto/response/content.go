package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	Link      string                  `json:"link,omitempty"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

type AuditResponse struct {
	ID        string             `json:"id"`
	ActorID   string             `json:"actor_id"`
	Action    entity.AuditAction `json:"action"`
	Entity    string             `json:"entity"`
	EntityID  string             `json:"entity_id"`
	Changes   map[string]any     `json:"changes,omitempty"`
	IP        string             `json:"ip,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type BlogPostResponse struct {
	ID          string            `json:"id"`
	AuthorID    string            `json:"author_id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     *string           `json:"excerpt,omitempty"`
	Content     string            `json:"content,omitempty"`
	CoverImage  *string           `json:"cover_image,omitempty"`
	Tags        []string          `json:"tags"`
	Status      entity.BlogStatus `json:"status"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type MediaResponse struct {
	ID           string    `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatsResponse struct {
	Users             int64           `json:"users"`
	Celebrities       int64           `json:"celebrities"`
	Events            int64           `json:"events"`
	PendingBookings   int64           `json:"pending_bookings"`
	PendingDeposits   int64           `json:"pending_deposits"`
	OpenTickets       int64           `json:"open_tickets"`
	ActiveMemberships int64           `json:"active_memberships"`
	Revenue           decimal.Decimal `json:"revenue"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.Hex(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func AuditToResponse(a *entity.Audit) AuditResponse {
	return AuditResponse{
		ID:        a.ID.Hex(),
		ActorID:   a.ActorID,
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Changes:   a.Changes,
		IP:        a.IP,
		CreatedAt: a.CreatedAt,
	}
}

// BlogPostToResponse omits the body when withContent is false (list views).
func BlogPostToResponse(p *entity.BlogPost, withContent bool) BlogPostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	resp := BlogPostResponse{
		ID:          p.ID.String(),
		AuthorID:    p.AuthorID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		CoverImage:  p.CoverImage,
		Tags:        tags,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
	if withContent {
		resp.Content = p.Content
	}
	return resp
}

func MediaToResponse(m *entity.Media) MediaResponse {
	return MediaResponse{
		ID:           m.ID.String(),
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		SizeBytes:    m.SizeBytes,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
	}
}

func StatsToResponse(s *entity.DashboardStats) StatsResponse {
	return StatsResponse{
		Users:             s.Users,
		Celebrities:       s.Celebrities,
		Events:            s.Events,
		PendingBookings:   s.PendingBookings,
		PendingDeposits:   s.PendingDeposits,
		OpenTickets:       s.OpenTickets,
		ActiveMemberships: s.ActiveMemberships,
		Revenue:           s.Revenue,
	}
}
