package adaptor

import (
	"encoding/json"
	"net/http"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/realtime"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Celebrity     *CelebrityHandler
	Event         *EventHandler
	Booking       *BookingHandler
	Membership    *MembershipHandler
	Donation      *DonationHandler
	Wallet        *WalletHandler
	PaymentMethod *PaymentMethodHandler
	Support       *SupportHandler
	Notification  *NotificationHandler
	Audit         *AuditHandler
	Blog          *BlogHandler
	Media         *MediaHandler
	Platform      *PlatformHandler
	Stats         *StatsHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(service.Auth, config.JWT.CookieName, !config.App.Debug, log),
		User:          NewUserHandler(service.User, log),
		Celebrity:     NewCelebrityHandler(service.Celebrity, service.Donation, log),
		Event:         NewEventHandler(service.Event, log),
		Booking:       NewBookingHandler(service.Booking, log),
		Membership:    NewMembershipHandler(service.Membership, log),
		Donation:      NewDonationHandler(service.Donation, log),
		Wallet:        NewWalletHandler(service.Deposit, service.Transaction, log),
		PaymentMethod: NewPaymentMethodHandler(service.PaymentMethod, log),
		Support:       NewSupportHandler(service.Support, log),
		Notification:  NewNotificationHandler(service.Notification, hub, log),
		Audit:         NewAuditHandler(service.Audit, log),
		Blog:          NewBlogHandler(service.Blog, log),
		Media:         NewMediaHandler(service.Media, config.Upload.MaxBytes, log),
		Platform:      NewPlatformHandler(service.Platform, log),
		Stats:         NewStatsHandler(service.Stats, log),
	}
}

// handleServiceError writes the AppError carried by err. Client errors are
// logged at warn level, everything else at error level with a masked message.
// Values the schema rejects are answered with 400 rather than 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := utils.StatusCode(err)
	if code >= http.StatusInternalServerError && repository.IsInvalidValue(err) {
		log.Warn("Value rejected by database", zap.String("operation", operation), zap.Error(err))
		utils.ResponseBadRequest(w, "One or more values are out of range", nil)
		return
	}
	if code >= http.StatusInternalServerError {
		log.Error("Service error", zap.String("operation", operation), zap.Error(err))
	} else {
		log.Warn("Request rejected",
			zap.String("operation", operation),
			zap.Int("status", code),
			zap.String("reason", utils.ErrorMessage(err)))
	}
	utils.ResponseError(w, err)
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the 400 response itself and reports whether the handler may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

func validateQuery(w http.ResponseWriter, req any) bool {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid query parameters", validationErrors)
		return false
	}
	return true
}

// pathUUID parses a chi URL parameter as a UUID, answering 400 when it is not one.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated user set by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

func pageFromQuery(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}.Normalize()
}

func statusListFromQuery(r *http.Request) *request.StatusListRequest {
	return &request.StatusListRequest{
		PaginatedRequest: pageFromQuery(r),
		Status:           utils.QueryStringPtr(r.URL.Query(), "status"),
	}
}
