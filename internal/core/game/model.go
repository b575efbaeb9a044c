package game

import "errors"

var ErrInvalidConstraints = errors.New("invalid constraints")

type SolveResult struct {
	Words  []string
	Cached bool
}
