package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			RequestID: uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path),
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func handlerName(path string) string {
	switch path {
	case "/graphql":
		return "handleGraphQL"
	case "/generate-query":
		return "handleGenerateQuery"
	case "/fetch-orders":
		return "handleFetchOrders"
	}
	return "unknown"
}
