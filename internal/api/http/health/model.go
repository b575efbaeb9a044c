package health

import "wordsolver/internal/monitor"

// == health ==
type HealthResponse struct {
	Status     string                `json:"status"`
	Components []monitor.TargetState `json:"components"`
}
