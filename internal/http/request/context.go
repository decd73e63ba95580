package request // import "github.com/Xunop/bookserver/internal/http/request"

import (
	"context"
	"net/http"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	RequestIDContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

// ClientIP returns the client IP address stored in the context, falling
// back to the request headers.
func ClientIP(r *http.Request) string {
	if ip := getContextStringValue(r, ClientIPContextKey); ip != "" {
		return ip
	}
	return FindClientIP(r)
}

// RequestID returns the id the logging middleware gave the request.
func RequestID(r *http.Request) string {
	return getContextStringValue(r, RequestIDContextKey)
}

// WithValues stores the client IP and request id on the request context.
func WithValues(r *http.Request, clientIP, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), ClientIPContextKey, clientIP)
	ctx = context.WithValue(ctx, RequestIDContextKey, requestID)
	return r.WithContext(ctx)
}
