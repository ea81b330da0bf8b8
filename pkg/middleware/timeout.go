package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"Request timeout","code":"SRV_004"}`

// Timeout bounds the handler's run time. The request context is cancelled when it expires, so
// in-flight queries stop as well.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.TimeoutHandler(next, timeout, timeoutBody)
	}
}
