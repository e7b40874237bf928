package lexicon

import "github.com/vovakirdan/lexicon/internal/core"

// Scorer tracks the session score and the best score.
// The best score only ever rises; every rise is written to the store.
type Scorer struct {
	store         core.BestStore
	key           string
	pointsPerChar int
	current       int
	best          int
}

// NewScorer creates a scorer with no store attached.
func NewScorer(key string, pointsPerChar int) *Scorer {
	return &Scorer{key: key, pointsPerChar: pointsPerChar}
}

// Attach sets the store and loads the stored best into memory.
func (s *Scorer) Attach(store core.BestStore) error {
	s.store = store
	return s.LoadBest()
}

// LoadBest reads the stored best. A lower stored value never lowers the
// best already held in memory.
func (s *Scorer) LoadBest() error {
	if s.store == nil {
		return nil
	}
	stored, err := s.store.BestScore(s.key)
	if err != nil {
		return err
	}
	s.best = max(s.best, stored)
	return nil
}

// Points returns the reward for completing text.
func (s *Scorer) Points(text string) int {
	return len(text) * s.pointsPerChar
}

// Award adds points for a completed word. It reports whether the best score
// rose and any error from persisting it; on error the in-memory best is kept.
func (s *Scorer) Award(text string) (bool, error) {
	s.current += s.Points(text)
	if s.current <= s.best {
		return false, nil
	}

	s.best = s.current
	if s.store == nil {
		return true, nil
	}
	stored, err := s.store.RecordBest(s.key, s.best)
	if err != nil {
		return true, err
	}
	s.best = max(s.best, stored)
	return true, nil
}

// Reset zeroes the session score. The best score is kept.
func (s *Scorer) Reset() {
	s.current = 0
}

// Current returns the session score.
func (s *Scorer) Current() int {
	return s.current
}

// Best returns the best score.
func (s *Scorer) Best() int {
	return s.best
}
