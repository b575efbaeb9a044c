package game

import (
	"context"

	"wordsolver/internal/core/solver"
)

type GameServiceHandler interface {
	Solve(ctx context.Context, c solver.Constraints) (SolveResult, error)
}
