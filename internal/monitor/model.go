package monitor

import (
	"context"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusUnknown   = "unknown"
)

// Target is one probed dependency.
type Target struct {
	Name          string
	ComponentType string
	Probe         func(ctx context.Context) error
}

// TargetState is the last observed readiness of a target.
type TargetState struct {
	Name          string    `json:"name"`
	ComponentType string    `json:"componentType"`
	Status        string    `json:"status"`
	FailStreak    int       `json:"failStreak"`
	LatencyMs     int64     `json:"latencyMs"`
	LastChecked   time.Time `json:"lastChecked"`
	LastError     string    `json:"lastError,omitempty"`
}
