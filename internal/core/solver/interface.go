package solver

type SolverServiceHandler interface {
	Normalize(c Constraints) (Constraints, error)
	Predicate(c Constraints) (string, []any)
	Matches(word string, c Constraints) bool
	Filter(words []string, c Constraints) []string
	CacheKey(c Constraints) string
}
