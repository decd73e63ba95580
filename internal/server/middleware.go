package server

import (
	"net/http"
	"time"

	"github.com/Xunop/bookserver/internal/http/request"
	"github.com/Xunop/bookserver/internal/log"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := request.FindClientIP(r)
		requestID := uuid.NewString()
		r = request.WithValues(r, clientIP, requestID)

		t1 := time.Now()
		defer func() {
			log.Debug("Incoming request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("proto", r.Proto),
				zap.String("client_ip", clientIP),
				zap.Duration("duration", time.Since(t1)))
		}()

		next.ServeHTTP(w, r)
	})
}
