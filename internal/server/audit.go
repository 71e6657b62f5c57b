package server

import (
	"time"
)

type AuditLogEntry struct {
	RequestID  string    `json:"request_id"`
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
