package solver

// Constraints describes one solve request.
//
//   - Exact: positional pattern, one rune per letter slot, '_' for an
//     unknown position (e.g. "c_t")
//   - Correct: letters that must appear somewhere in the word
//   - Incorrect: letters that must not appear anywhere
type Constraints struct {
	Exact     string
	Correct   string
	Incorrect string
}

const (
	MaxExactLen  = 32
	MaxLetterSet = 26
)
