package solver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

func NewSolverService() *SolverService {
	return &SolverService{}
}

type SolverService struct{}

// Normalize lowercases the constraints and rejects anything that could not
// describe a word: non a-z letters, oversized patterns, and letters that are
// simultaneously required and excluded.
func (s *SolverService) Normalize(c Constraints) (Constraints, error) {
	out := Constraints{
		Exact:     strings.ToLower(strings.TrimSpace(c.Exact)),
		Correct:   strings.ToLower(strings.TrimSpace(c.Correct)),
		Incorrect: strings.ToLower(strings.TrimSpace(c.Incorrect)),
	}

	if len(out.Exact) > MaxExactLen {
		return Constraints{}, fmt.Errorf("exact pattern too long: %d", len(out.Exact))
	}
	if len(out.Correct) > MaxLetterSet {
		return Constraints{}, fmt.Errorf("too many required letters: %d", len(out.Correct))
	}
	if len(out.Incorrect) > MaxLetterSet {
		return Constraints{}, fmt.Errorf("too many excluded letters: %d", len(out.Incorrect))
	}

	for _, r := range out.Exact {
		if r != '_' && (r < 'a' || r > 'z') {
			return Constraints{}, fmt.Errorf("exact pattern must contain only a-z and '_'")
		}
	}
	for _, r := range out.Correct {
		if r < 'a' || r > 'z' {
			return Constraints{}, fmt.Errorf("required letters must be a-z")
		}
	}
	for _, r := range out.Incorrect {
		if r < 'a' || r > 'z' {
			return Constraints{}, fmt.Errorf("excluded letters must be a-z")
		}
	}

	for _, r := range out.Correct {
		if strings.ContainsRune(out.Incorrect, r) {
			return Constraints{}, fmt.Errorf("letter %q both required and excluded", r)
		}
	}
	for _, r := range out.Exact {
		if r != '_' && strings.ContainsRune(out.Incorrect, r) {
			return Constraints{}, fmt.Errorf("letter %q fixed in pattern but excluded", r)
		}
	}

	return out, nil
}

// Predicate builds a parameterized WHERE fragment over the word column.
// Callers compose it into "SELECT word FROM word_list WHERE <fragment>".
// Constraints must be normalized first; no input reaches the SQL text.
func (s *SolverService) Predicate(c Constraints) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if c.Exact != "" {
		// '_' is the single-character LIKE wildcard, so the normalized
		// pattern is usable as-is
		args = append(args, c.Exact)
		clauses = append(clauses, fmt.Sprintf("word LIKE $%d", len(args)))
	}

	for _, r := range c.Correct {
		args = append(args, string(r))
		clauses = append(clauses, fmt.Sprintf("position($%d in word) > 0", len(args)))
	}

	if c.Incorrect != "" {
		args = append(args, "["+c.Incorrect+"]")
		clauses = append(clauses, fmt.Sprintf("word !~ $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, " AND "), args
}

// Matches is the in-memory equivalent of Predicate, used by the live stream
// and as the reference semantics in tests.
func (s *SolverService) Matches(word string, c Constraints) bool {
	if c.Exact != "" {
		if len(word) != len(c.Exact) {
			return false
		}
		for i := range c.Exact {
			if c.Exact[i] == '_' {
				continue
			}
			if word[i] != c.Exact[i] {
				return false
			}
		}
	}
	for _, r := range c.Correct {
		if !strings.ContainsRune(word, r) {
			return false
		}
	}
	for _, r := range c.Incorrect {
		if strings.ContainsRune(word, r) {
			return false
		}
	}
	return true
}

// Filter keeps the words matching c, preserving input order.
func (s *SolverService) Filter(words []string, c Constraints) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if s.Matches(w, c) {
			out = append(out, w)
		}
	}
	return out
}

// CacheKey derives a stable digest for the normalized constraints.
func (s *SolverService) CacheKey(c Constraints) string {
	sum := sha256.Sum256([]byte(c.Exact + "|" + c.Correct + "|" + c.Incorrect))
	return "solve:" + hex.EncodeToString(sum[:])
}
