package live

import (
	"net/http"

	"github.com/gorilla/websocket"

	"wordsolver/internal/api/http/logger"
	apimodel "wordsolver/internal/api/http/utils"
	"wordsolver/internal/auth"
	"wordsolver/internal/core/solver"
	coreuser "wordsolver/internal/core/user"
	"wordsolver/internal/dict"
)

func NewRequestHandler(solverHandler solver.SolverServiceHandler, userHandler coreuser.UserServiceHandler, words *dict.WordSet) *RequestHandler {
	return &RequestHandler{
		solverHandler: solverHandler,
		userHandler:   userHandler,
		words:         words,
		upgrader:      websocket.Upgrader{},
	}
}

type RequestHandler struct {
	solverHandler solver.SolverServiceHandler
	userHandler   coreuser.UserServiceHandler
	words         *dict.WordSet
	upgrader      websocket.Upgrader
}

// LiveSolve godoc
// @Summary stream constraint solves
// @Description websocket; each JSON constraint message is answered with the matching words
// @Tags game
// @Param token query string false "Bearer token (alternative to the Authorization header)"
// @Router /v1/game/live [get]
func (h *RequestHandler) LiveSolve(w http.ResponseWriter, r *http.Request) {
	token := auth.BearerToken(r)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	userId, err := h.userHandler.Authorize(r.Context(), token)
	if err != nil {
		apimodel.RespondUnauthorized(w)
		return
	}
	logger.SetActor(r.Context(), userId)

	up := h.upgrader
	if up.CheckOrigin == nil {
		up.CheckOrigin = func(r *http.Request) bool { return true }
	}

	ws, err := up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	for {
		var query LiveQuery
		if err := ws.ReadJSON(&query); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.SetReason(r.Context(), "stream closed: "+err.Error())
			}
			return
		}

		result := h.solve(query)
		if err := ws.WriteJSON(result); err != nil {
			return
		}
	}
}

func (h *RequestHandler) solve(query LiveQuery) LiveResult {
	constraints, err := h.solverHandler.Normalize(solver.Constraints{
		Exact:     query.Exact,
		Correct:   query.Correct,
		Incorrect: query.Incorrect,
	})
	if err != nil {
		return LiveResult{Error: err.Error()}
	}

	found := h.solverHandler.Filter(h.words.Words(), constraints)
	return LiveResult{Words: found, Count: len(found)}
}
