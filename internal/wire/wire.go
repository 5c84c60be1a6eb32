package wire

import (
	"context"
	"net/http"
	"strings"
	"time"

	"celebrity-booking/internal/adaptor"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/middleware"
	"celebrity-booking/pkg/realtime"
	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Probe reports whether a backing store is reachable.
type Probe func(ctx context.Context) error

// App holds the wired router and the pieces main needs for lifecycle control.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	Limiter *middleware.RateLimiter
}

// routes carries what every route group needs to build its middleware.
type routes struct {
	repo    *repository.Repository
	config  *utils.Config
	tokens  *utils.TokenManager
	limiter *middleware.RateLimiter
	log     *zap.Logger
}

func (rt *routes) auth() func(http.Handler) http.Handler {
	return middleware.AuthSession(rt.tokens, rt.repo.Session, rt.config.JWT.CookieName, rt.log)
}

func (rt *routes) admin() func(http.Handler) http.Handler {
	return middleware.Admin(rt.repo.User, rt.log)
}

// adminGroup mounts pattern behind authentication and the admin role check.
func (rt *routes) adminGroup(r chi.Router, pattern string, fn func(r chi.Router)) {
	r.Route(pattern, func(r chi.Router) {
		r.Use(rt.auth())
		r.Use(rt.admin())
		fn(r)
	})
}

// Wiring builds services, handlers and the router.
func Wiring(deps usecase.Deps, hub *realtime.Hub, probes map[string]Probe) *App {
	service := usecase.NewService(deps)
	handler := adaptor.NewHandler(service, hub, deps.Config, deps.Log)

	rt := &routes{
		repo:    deps.Repo,
		config:  deps.Config,
		tokens:  deps.Tokens,
		limiter: middleware.NewRateLimiter(deps.Config.RateLimit.RPS, deps.Config.RateLimit.Burst, deps.Log),
		log:     deps.Log,
	}

	return &App{
		Router:  setupRouter(handler, rt, probes),
		Service: service,
		Limiter: rt.limiter,
	}
}

func setupRouter(handler *adaptor.Handler, rt *routes, probes map[string]Probe) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.ClientIP)
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Recover(rt.log))
	r.Use(middleware.CORS(rt.config.App.CORSOrigins))
	r.Use(middleware.Metrics)

	// Apply routes
	wireAuth(r, handler.Auth, rt)
	wireUser(r, handler.User, handler.Wallet, rt)
	wireCelebrity(r, handler.Celebrity, rt)
	wireEvent(r, handler.Event, rt)
	wireBooking(r, handler.Booking, rt)
	wireMembership(r, handler.Membership, rt)
	wireWallet(r, handler.Donation, handler.Wallet, handler.PaymentMethod, rt)
	wireSupport(r, handler.Support, rt)
	wireNotification(r, handler.Notification, rt)
	wireContent(r, handler.Blog, handler.Media, rt)
	wireAdmin(r, handler.Audit, handler.Platform, handler.Stats, rt)

	// Uploaded media
	uploadPrefix := "/" + strings.Trim(rt.config.Upload.PublicURL, "/")
	fs := http.StripPrefix(uploadPrefix+"/", http.FileServer(http.Dir(rt.config.Upload.Dir)))
	r.Handle(uploadPrefix+"/*", fs)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", healthHandler(probes, rt.log))

	return r
}

func healthHandler(probes map[string]Probe, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := make(map[string]string, len(probes))
		healthy := true
		for name, probe := range probes {
			if err := probe(ctx); err != nil {
				log.Warn("Health probe failed", zap.String("dependency", name), zap.Error(err))
				checks[name] = "down"
				healthy = false
				continue
			}
			checks[name] = "up"
		}

		if !healthy {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "unhealthy", checks, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", checks)
	}
}
