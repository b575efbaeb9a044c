package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpapi "wordsolver/internal/api/http"
	"wordsolver/internal/api/http/logger"
	"wordsolver/internal/auth"
	"wordsolver/internal/cache"
	"wordsolver/internal/config"
	coregame "wordsolver/internal/core/game"
	"wordsolver/internal/core/solver"
	coreuser "wordsolver/internal/core/user"
	"wordsolver/internal/dict"
	"wordsolver/internal/monitor"
	"wordsolver/internal/store/revoked"
	"wordsolver/internal/store/users"
	"wordsolver/internal/store/words"
	"wordsolver/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Args:  cobra.NoArgs,
	Short: "Run the solver HTTP API",
	Long:  `Connects to Postgres and Redis, loads the dictionary, and serves the solver API until interrupted.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("auth secret must be set (config or SOLVERD_JWT_SECRET)")
	}

	log := newLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// == datastores ==
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	defer redisClient.Close()

	wordStore := words.NewWordStore(pool)
	userStore := users.NewUserStore(pool)
	revokedStore := revoked.NewRevokedStore(pool)
	for name, ensure := range map[string]func(context.Context) error{
		"word_list":      wordStore.EnsureSchema,
		"users":          userStore.EnsureSchema,
		"revoked_tokens": revokedStore.EnsureSchema,
	} {
		if err := ensure(ctx); err != nil {
			return fmt.Errorf("ensure schema %s: %w", name, err)
		}
	}

	resultCache := cache.NewResultCache(redisClient, cfg.Redis.ResultTTL, log)

	// == services ==
	tokenService := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	userService := coreuser.NewUserService(userStore, revokedStore, tokenService)
	solverService := solver.NewSolverService()
	gameService := coregame.NewGameService(solverService, wordStore, resultCache)

	// == dictionary ==
	dictStore := dict.NewDictStore(cfg.Dict.SnapshotPath)
	dictManager := dict.NewDictManager(log)

	liveWords, err := dictManager.LoadWordFile(cfg.Dict.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Dict.Path).Msg("word file unavailable, using last snapshot")
		snapshot, serr := dictStore.GetSnapshot()
		if serr != nil {
			return fmt.Errorf("load dictionary: %w", serr)
		}
		liveWords = snapshot.Words
	} else {
		if _, err := wordStore.BulkInsert(ctx, liveWords); err != nil {
			return fmt.Errorf("seed word_list: %w", err)
		}
		if err := dictStore.SetSnapshot(cfg.Dict.Path, liveWords); err != nil {
			log.Warn().Err(err).Msg("snapshot save failed")
		}
	}
	wordSet := dict.NewWordSet(liveWords)
	log.Info().Int("words", wordSet.Len()).Msg("dictionary loaded")

	go func() {
		err := dictManager.Watch(ctx, cfg.Dict.Path, func(reloaded []string) {
			wordSet.Replace(reloaded)
			if _, err := wordStore.BulkInsert(ctx, reloaded); err != nil {
				log.Warn().Err(err).Msg("reseed word_list failed")
			}
			if err := dictStore.SetSnapshot(cfg.Dict.Path, reloaded); err != nil {
				log.Warn().Err(err).Msg("snapshot save failed")
			}
			resultCache.Bump()
			log.Info().Int("words", len(reloaded)).Msg("dictionary reloaded")
		})
		if err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("dictionary watcher stopped")
		}
	}()

	// == readiness ==
	readiness := monitor.NewReadinessMonitor(
		cfg.Monitor.Interval,
		cfg.Monitor.Timeout,
		cfg.Monitor.Retries,
		log,
		monitor.Target{Name: "postgres", ComponentType: "datastore", Probe: pool.Ping},
		monitor.Target{Name: "redis", ComponentType: "datastore", Probe: resultCache.Ping},
	)
	go func() {
		_ = readiness.Start(ctx)
	}()

	// == audit log ==
	auditLog := logger.JsonLineLogger{Out: openAuditLog(log)}

	node, _ := os.Hostname()

	// == rest api ==
	apiRouter := httpapi.NewApiRouter(httpapi.RouterDeps{
		UserService:   userService,
		GameService:   gameService,
		SolverService: solverService,
		LiveWords:     wordSet,
		Readiness:     readiness,
		AuditLog:      auditLog,
		Node:          node,
	})
	apiSrv := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: apiRouter,
	}
	go func() {
		log.Info().Str("addr", cfg.Server.ListenAddr).Msg("api server listening")
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("api server failed")
			stop()
		}
	}()

	// == swagger ==
	swaggerSrv := &http.Server{
		Addr:    cfg.Server.SwaggerAddr,
		Handler: httpapi.NewSwaggerRouter(),
	}
	go func() {
		log.Info().Str("addr", cfg.Server.SwaggerAddr).Msg("swagger listening")
		if err := swaggerSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn().Err(err).Msg("swagger server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	_ = swaggerSrv.Shutdown(shutdownCtx)
	return nil
}

// openAuditLog returns the audit event sink, stderr when the log dir is not
// writable.
func openAuditLog(log zerolog.Logger) *os.File {
	if err := os.MkdirAll(utils.AuditLogDir, 0o750); err != nil {
		log.Warn().Err(err).Msg("audit log dir unavailable, writing to stderr")
		return os.Stderr
	}
	path := filepath.Join(utils.AuditLogDir, "audit.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		log.Warn().Err(err).Msg("audit log open failed, writing to stderr")
		return os.Stderr
	}
	return f
}
