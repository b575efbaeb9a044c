package view

import (
	"errors"
	"net/http"

	"wordsolver/internal/api/http/logger"
	apimodel "wordsolver/internal/api/http/utils"
	coregame "wordsolver/internal/core/game"
	"wordsolver/internal/core/solver"
	wordview "wordsolver/internal/view"
)

func NewRequestHandler(gameHandler coregame.GameServiceHandler) *RequestHandler {
	return &RequestHandler{
		gameHandler: gameHandler,
	}
}

type RequestHandler struct {
	gameHandler coregame.GameServiceHandler
}

// GetAnswers godoc
// @Summary render possible answers
// @Description solve the letter constraints and render the matching words as an HTML card
// @Tags view
// @Produce html
// @Param exact query string false "Exact pattern, _ for unknown positions"
// @Param correct query string false "Letters known to be present"
// @Param incorrect query string false "Letters known to be absent"
// @Success 200 {string} string "HTML card"
// @Router /answers [get]
func (h *RequestHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	constraints := solver.Constraints{
		Exact:     query.Get("exact"),
		Correct:   query.Get("correct"),
		Incorrect: query.Get("incorrect"),
	}

	result, err := h.gameHandler.Solve(r.Context(), constraints)
	if err != nil {
		if errors.Is(err, coregame.ErrInvalidConstraints) {
			apimodel.RespondFail(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{
		Exact:     constraints.Exact,
		Correct:   constraints.Correct,
		Incorrect: constraints.Incorrect,
		WordCount: len(result.Words),
		Cached:    result.Cached,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := wordview.RenderWordList(w, result.Words); err != nil {
		// Headers are already out, nothing more to do for the client.
		logger.SetReason(r.Context(), "render failed: "+err.Error())
	}
}
