package health

import (
	"net/http"

	apimodel "wordsolver/internal/api/http/utils"
	"wordsolver/internal/monitor"
)

type StateReader interface {
	States() []monitor.TargetState
	Healthy() bool
}

func NewRequestHandler(readiness StateReader) *RequestHandler {
	return &RequestHandler{
		readiness: readiness,
	}
}

type RequestHandler struct {
	readiness StateReader
}

// GetHealth godoc
// @Summary report service readiness
// @Description per-component readiness as observed by the in-process probes
// @Tags health
// @Produce json
// @Success 200 {object} apimodel.ApiResponse
// @Success 503 {object} apimodel.ApiResponse
// @Router /v1/health [get]
func (h *RequestHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	states := h.readiness.States()

	status := monitor.StatusHealthy
	statusCode := http.StatusOK
	if !h.readiness.Healthy() {
		status = monitor.StatusUnhealthy
		statusCode = http.StatusServiceUnavailable
	}

	resp := HealthResponse{
		Status:     status,
		Components: states,
	}
	if statusCode == http.StatusOK {
		apimodel.RespondSuccess(w, statusCode, "service healthy", resp)
		return
	}
	apimodel.RespondFail(w, statusCode, "service degraded", resp)
}
