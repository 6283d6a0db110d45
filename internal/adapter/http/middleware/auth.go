package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

// --- base auth middleware ---

// Auth validates the device JWT and injects the device into the context.
// Requests without an Authorization header pass through anonymously;
// protected endpoints reject them via RequireDevice.
func (h *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(header)
		if err != nil {
			errorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}

		d, err := h.auth.Authenticate(ctx, token)
		if err != nil || d == nil {
			h.log.Error(wrap.ErrorCtx(ctx, err), "failed to authenticate device", err)
			errorResponse(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		ctx = wrap.WithDeviceID(ctx, d.DeviceID)
		next.ServeHTTP(w, r.WithContext(models.WithDevice(ctx, d)))
	})
}

// RequireDevice wraps a handler and allows only authenticated devices.
func (h *Middleware) RequireDevice(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if models.DeviceFromContext(r.Context()) == nil {
			errorResponse(w, http.StatusUnauthorized, "authorization required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// --- header parser ---
func extractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("invalid Authorization header format")
	}
	return parts[1], nil
}
