package adaptor

import (
	"errors"
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service usecase.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		log:     log.With(zap.String("handler", "blog")),
	}
}

func blogListFromQuery(r *http.Request) *request.BlogListRequest {
	return &request.BlogListRequest{
		PaginatedRequest: pageFromQuery(r),
		Tag:              utils.QueryStringPtr(r.URL.Query(), "tag"),
	}
}

// List handles GET /api/blog
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context(), blogListFromQuery(r), true)
	if err != nil {
		handleServiceError(w, h.log, err, "list posts")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// GetBySlug handles GET /api/blog/{slug}
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleServiceError(w, h.log, err, "get post")
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// AdminList handles GET /api/admin/blog (drafts included)
func (h *BlogHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context(), blogListFromQuery(r), false)
	if err != nil {
		handleServiceError(w, h.log, err, "admin list posts")
		return
	}

	utils.ResponseSuccess(w, "success", posts)
}

// Get handles GET /api/admin/blog/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get post")
		return
	}

	utils.ResponseSuccess(w, "success", post)
}

// Create handles POST /api/admin/blog
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.BlogPostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.service.Create(r.Context(), authorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create post")
		return
	}

	utils.ResponseCreated(w, "Post created successfully", post)
}

// Update handles PUT /api/admin/blog/{id}
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.BlogPostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update post")
		return
	}

	utils.ResponseSuccess(w, "Post updated successfully", post)
}

// Delete handles DELETE /api/admin/blog/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete post")
		return
	}

	utils.ResponseSuccess(w, "Post deleted successfully", nil)
}

type MediaHandler struct {
	service  usecase.MediaService
	maxBytes int64
	log      *zap.Logger
}

func NewMediaHandler(service usecase.MediaService, maxBytes int64, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service:  service,
		maxBytes: maxBytes,
		log:      log.With(zap.String("handler", "media")),
	}
}

// Upload handles POST /api/admin/media (multipart field "file")
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	uploaderID, ok := currentUser(w, r)
	if !ok {
		return
	}

	// multipart framing gets 1 MiB on top of the file limit
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseBadRequest(w, "File too large", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"file": "This field is required"})
		return
	}
	defer file.Close()

	media, err := h.service.Upload(r.Context(), uploaderID, header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload media")
		return
	}

	utils.ResponseCreated(w, "File uploaded successfully", media)
}

// List handles GET /api/admin/media
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)
	media, err := h.service.List(r.Context(), &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list media")
		return
	}

	utils.ResponseSuccess(w, "success", media)
}

// Delete handles DELETE /api/admin/media/{id}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete media")
		return
	}

	utils.ResponseSuccess(w, "File deleted successfully", nil)
}
