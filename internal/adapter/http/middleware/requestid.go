package middleware

import (
	"net/http"

	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID takes the request id from the incoming header or generates one,
// stores it in the log context and echoes it back to the client.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)

		ctx := wrap.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
