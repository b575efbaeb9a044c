package http

import (
	_ "wordsolver/docs"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"wordsolver/internal/api/http/game"
	"wordsolver/internal/api/http/health"
	"wordsolver/internal/api/http/live"
	"wordsolver/internal/api/http/logger"
	"wordsolver/internal/api/http/user"
	"wordsolver/internal/api/http/view"
	coregame "wordsolver/internal/core/game"
	"wordsolver/internal/core/solver"
	coreuser "wordsolver/internal/core/user"
	"wordsolver/internal/dict"
)

// @title Wordsolver API
// @version 1.0
// @description Letter-constraint word solver backend
// @BasePath /
// @schemes http

// RouterDeps carries the wired services the routes are built from.
type RouterDeps struct {
	UserService   coreuser.UserServiceHandler
	GameService   coregame.GameServiceHandler
	SolverService solver.SolverServiceHandler
	LiveWords     *dict.WordSet
	Readiness     health.StateReader
	AuditLog      logger.Logger
	Node          string
}

func NewApiRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	userHandler := user.NewRequestHandler(deps.UserService)
	gameHandler := game.NewRequestHandler(deps.GameService, deps.UserService)
	viewHandler := view.NewRequestHandler(deps.GameService)
	liveHandler := live.NewRequestHandler(deps.SolverService, deps.UserService, deps.LiveWords)
	healthHandler := health.NewRequestHandler(deps.Readiness)

	// middleware
	r.Use(middleware.RequestID)
	r.Use(logger.LoggerMiddleware(deps.AuditLog, "wordsolver-api", deps.Node))
	r.Use(middleware.Recoverer)

	// == users ==
	r.Post("/v1/users/register", userHandler.RegisterUser) // register user
	r.Get("/v1/users", userHandler.GetUserList)            // list users
	r.Get("/v1/users/{userId}", userHandler.GetUserById)   // get user
	r.Put("/v1/users/{userId}", userHandler.UpdateUser)    // update user
	r.Delete("/v1/users/{userId}", userHandler.DeleteUser) // delete user
	r.Post("/v1/users/login", userHandler.LoginUser)       // login, returns bearer token
	r.Post("/v1/users/revoke", userHandler.RevokeToken)    // revoke bearer token

	// == game ==
	r.Post("/v1/game/general-letters", gameHandler.FindLetters) // solve letter constraints
	r.Get("/v1/game/live", liveHandler.LiveSolve)               // websocket solve stream

	// == view ==
	r.Get("/answers", viewHandler.GetAnswers) // server-rendered answers card

	// == health ==
	r.Get("/v1/health", healthHandler.GetHealth)

	return r
}

func NewSwaggerRouter() *chi.Mux {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// == swagger ==
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
