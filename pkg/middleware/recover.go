package middleware

import (
	"errors"
	"net/http"

	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500. http.ErrAbortHandler is passed
// through so net/http can drop the connection quietly.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				}
				if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
					fields = append(fields, zap.Stringer("user_id", userID))
				}
				logger.Error("Panic recovered", fields...)

				utils.ResponseInternalError(w, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
