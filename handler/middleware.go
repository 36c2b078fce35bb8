package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// Logger logs every request except health checks.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrap := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		wrap.Header().Set(requestIDHeader, requestID)

		reqStart := time.Now().UTC()
		next.ServeHTTP(wrap, r)

		status := wrap.Status()
		dur := time.Since(reqStart).Milliseconds()

		// Avoid logging health checks to avoid spamming the logs
		if strings.Contains(r.URL.RequestURI(), "healthz") {
			return
		}
		logr := logrus.WithContext(r.Context()).
			WithField("request_id", requestID).
			WithField("status", status).
			WithField("dur[ms]", dur)
		logLine := "HTTP: " + r.Method + " " + r.URL.RequestURI()
		if status >= http.StatusInternalServerError {
			logr.Errorln(logLine)
		} else {
			logr.Infoln(logLine)
		}
	})
}
