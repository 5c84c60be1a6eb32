package usecase

import (
	"context"
	"errors"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BlogService interface {
	List(ctx context.Context, req *request.BlogListRequest, publishedOnly bool) (*response.PaginatedResponse[response.BlogPostResponse], error)
	GetBySlug(ctx context.Context, slug string) (*response.BlogPostResponse, error)

	// Admin
	GetByID(ctx context.Context, id uuid.UUID) (*response.BlogPostResponse, error)
	Create(ctx context.Context, authorID uuid.UUID, req *request.BlogPostRequest) (*response.BlogPostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.BlogPostRequest) (*response.BlogPostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogService struct {
	repo  repository.BlogPostRepository
	audit AuditService
	log   *zap.Logger
}

func NewBlogService(repo repository.BlogPostRepository, audit AuditService, log *zap.Logger) BlogService {
	return &blogService{
		repo:  repo,
		audit: audit,
		log:   log.With(zap.String("service", "blog")),
	}
}

func (s *blogService) List(ctx context.Context, req *request.BlogListRequest, publishedOnly bool) (*response.PaginatedResponse[response.BlogPostResponse], error) {
	f := entity.BlogFilter{Tag: req.Tag, PublishedOnly: publishedOnly}

	posts, err := s.repo.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list blog posts")
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count blog posts", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list blog posts")
	}

	return paginate(posts, blogSummary, req.PaginatedRequest, total), nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*response.BlogPostResponse, error) {
	post, err := s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.String("slug", slug))
		return nil, utils.ErrInternal(err, "failed to load blog post")
	}
	if post == nil {
		return nil, utils.ErrNotFound("blog post not found")
	}

	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*response.BlogPostResponse, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, req *request.BlogPostRequest) (*response.BlogPostResponse, error) {
	slug, err := uniqueSlug(ctx, req.Title, "post", s.repo.SlugExists)
	if err != nil {
		s.log.Error("Failed to generate slug", zap.Error(err), zap.String("title", req.Title))
		return nil, utils.ErrInternal(err, "failed to create blog post")
	}

	post := &entity.BlogPost{
		Base:     entity.NewBase(),
		AuthorID: authorID,
		Slug:     slug,
	}
	applyBlogPost(post, req, post.CreatedAt)

	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("a blog post with this slug already exists")
		}
		s.log.Error("Failed to create blog post", zap.Error(err), zap.String("slug", slug))
		return nil, utils.ErrInternal(err, "failed to create blog post")
	}

	s.log.Info("Blog post created", zap.String("post_id", post.ID.String()), zap.String("slug", slug))
	s.audit.Record(ctx, entity.AuditActionCreate, "blog_post", post.ID.String(), map[string]any{
		"title":  post.Title,
		"status": string(post.Status),
	})

	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *request.BlogPostRequest) (*response.BlogPostResponse, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	applyBlogPost(post, req, now)
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		s.log.Error("Failed to update blog post", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "blog post not found")
	}

	s.audit.Record(ctx, entity.AuditActionUpdate, "blog_post", id.String(), map[string]any{
		"title":  post.Title,
		"status": string(post.Status),
	})
	resp := response.BlogPostToResponse(post, true)
	return &resp, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete blog post", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "blog post not found")
	}
	s.audit.Record(ctx, entity.AuditActionDelete, "blog_post", id.String(), nil)
	return nil
}

func (s *blogService) find(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find blog post", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load blog post")
	}
	if post == nil {
		return nil, utils.ErrNotFound("blog post not found")
	}
	return post, nil
}

// applyBlogPost copies the request onto post. published_at is stamped the
// first time the post goes live and kept afterwards.
func applyBlogPost(post *entity.BlogPost, req *request.BlogPostRequest, now time.Time) {
	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.CoverImage = req.CoverImage
	post.Tags = req.Tags
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Status = entity.BlogStatus(req.Status)
	if post.Status == entity.BlogStatusPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
}

func blogSummary(p *entity.BlogPost) response.BlogPostResponse {
	return response.BlogPostToResponse(p, false)
}
