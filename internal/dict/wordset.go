package dict

import "sync"

// WordSet is the in-memory dictionary shared by the live stream. Replace swaps
// the whole set at once so readers never observe a partial reload.
type WordSet struct {
	mu    sync.RWMutex
	words []string
}

func NewWordSet(words []string) *WordSet {
	s := &WordSet{}
	s.Replace(words)
	return s
}

func (s *WordSet) Replace(words []string) {
	copied := make([]string, len(words))
	copy(copied, words)
	s.mu.Lock()
	s.words = copied
	s.mu.Unlock()
}

func (s *WordSet) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words
}

func (s *WordSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
