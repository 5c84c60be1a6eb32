package adaptor

import (
	"net/http"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /api/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}

// List handles GET /api/admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.UserListRequest{
		PaginatedRequest: pageFromQuery(r),
		Search:           utils.QueryStringPtr(query, "search"),
		Role:             utils.QueryStringPtr(query, "role"),
	}
	if !validateQuery(w, req) {
		return
	}

	users, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// Get handles GET /api/admin/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Update handles PUT /api/admin/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req request.AdminUpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.AdminUpdate(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// Delete handles DELETE /api/admin/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
