package core

// BestStore persists a single best-score value per key.
// RecordBest must never lower a stored value; it returns the value
// that is stored after the call.
type BestStore interface {
	BestScore(key string) (int, error)
	RecordBest(key string, score int) (int, error)
}
