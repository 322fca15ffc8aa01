package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessStartSession     = "session started successfully"
	MessageSuccessEndSession       = "session ended successfully"
	MessageSuccessGetActiveSession = "active session retrieved successfully"

	MessageFailedStartSession     = "failed to start session"
	MessageFailedEndSession       = "failed to end session"
	MessageFailedGetActiveSession = "failed to retrieve active session"
	MessageNoActiveSession        = "no active session"

	ErrSessionAlreadyActive = errors.New("a session of this kind is already active")
	ErrNoActiveSession      = errors.New("no active session")
)

type (
	SessionResponse struct {
		ID        string     `json:"id"`
		StartTime time.Time  `json:"start_time"`
		EndTime   *time.Time `json:"end_time,omitempty"`
		Status    string     `json:"status"`
	}
)
