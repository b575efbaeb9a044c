package game

import (
	"context"
	"fmt"

	"wordsolver/internal/cache"
	"wordsolver/internal/core/solver"
	"wordsolver/internal/store/words"
)

func NewGameService(solverHandler solver.SolverServiceHandler, wordStore words.WordStoreHandler, resultCache cache.ResultCacheHandler) *GameService {
	return &GameService{
		solverHandler: solverHandler,
		wordStore:     wordStore,
		resultCache:   resultCache,
	}
}

type GameService struct {
	solverHandler solver.SolverServiceHandler
	wordStore     words.WordStoreHandler
	resultCache   cache.ResultCacheHandler
}

// Solve answers a constraint query, cache first, database on miss.
func (s *GameService) Solve(ctx context.Context, c solver.Constraints) (SolveResult, error) {
	normalized, err := s.solverHandler.Normalize(c)
	if err != nil {
		return SolveResult{}, fmt.Errorf("%w: %v", ErrInvalidConstraints, err)
	}

	key := s.solverHandler.CacheKey(normalized)
	if cached, ok := s.resultCache.Get(ctx, key); ok {
		return SolveResult{Words: cached, Cached: true}, nil
	}

	where, args := s.solverHandler.Predicate(normalized)
	found, err := s.wordStore.Search(ctx, where, args)
	if err != nil {
		return SolveResult{}, err
	}

	s.resultCache.Put(ctx, key, found)
	return SolveResult{Words: found}, nil
}
