package request

import (
	"net/http"
	"strings"
)

// QueryStringParam returns a trimmed query parameter, or defaultValue when
// it is missing or blank.
func QueryStringParam(r *http.Request, param, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(param))
	if value == "" {
		return defaultValue
	}
	return value
}
