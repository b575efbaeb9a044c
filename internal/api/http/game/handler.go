package game

import (
	"errors"
	"net/http"

	"wordsolver/internal/api/http/logger"
	apimodel "wordsolver/internal/api/http/utils"
	"wordsolver/internal/auth"
	coregame "wordsolver/internal/core/game"
	"wordsolver/internal/core/solver"
	coreuser "wordsolver/internal/core/user"
)

func NewRequestHandler(gameHandler coregame.GameServiceHandler, userHandler coreuser.UserServiceHandler) *RequestHandler {
	return &RequestHandler{
		gameHandler: gameHandler,
		userHandler: userHandler,
	}
}

type RequestHandler struct {
	gameHandler coregame.GameServiceHandler
	userHandler coreuser.UserServiceHandler
}

// FindLetters godoc
// @Summary solve letter constraints
// @Description return dictionary words matching the letter constraints
// @Tags game
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param request body FindLettersRequest true "Constraints"
// @Success 200 {object} apimodel.ApiResponse
// @Router /v1/game/general-letters [post]
func (h *RequestHandler) FindLetters(w http.ResponseWriter, r *http.Request) {
	token := auth.BearerToken(r)
	userId, err := h.userHandler.Authorize(r.Context(), token)
	if err != nil {
		if errors.Is(err, coreuser.ErrUnauthorized) {
			apimodel.RespondUnauthorized(w)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "authorize failed: "+err.Error(), nil)
		return
	}
	logger.SetActor(r.Context(), userId)

	var req FindLettersRequest
	if err := apimodel.DecodeRequestBody(r, &req); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	result, err := h.gameHandler.Solve(r.Context(), solver.Constraints{
		Exact:     req.Exact,
		Correct:   req.Correct,
		Incorrect: req.Incorrect,
	})
	if err != nil {
		if errors.Is(err, coregame.ErrInvalidConstraints) {
			apimodel.RespondFail(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		apimodel.RespondFail(w, http.StatusInternalServerError, "service failed: "+err.Error(), nil)
		return
	}

	logger.SetTarget(r.Context(), logger.Target{
		Exact:     req.Exact,
		Correct:   req.Correct,
		Incorrect: req.Incorrect,
		WordCount: len(result.Words),
		Cached:    result.Cached,
	})

	apimodel.RespondSuccess(w, http.StatusOK, "words found", FindLettersResponse{
		Words:  result.Words,
		Count:  len(result.Words),
		Cached: result.Cached,
	})
}
