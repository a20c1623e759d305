package highscore

import "sync"

// Persister is the load/save contract the game uses for its best score.
type Persister interface {
	Load(key string) (int, error)
	Save(key string, value int) error
}

// Shared serialises access to a Persister from many concurrent games (one
// per SSH session) and never lets a save lower the stored value, so a
// session that started before another one set a record cannot overwrite it
// on exit.
type Shared struct {
	mu     sync.Mutex
	inner  Persister
	cached map[string]int
}

// NewShared wraps p for concurrent use.
func NewShared(p Persister) *Shared {
	return &Shared{
		inner:  p,
		cached: make(map[string]int),
	}
}

// Load returns the best value seen so far for key.
func (s *Shared) Load(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cached[key]; ok {
		return v, nil
	}
	v, err := s.inner.Load(key)
	s.cached[key] = v
	return v, err
}

// Save persists max(stored, value).
func (s *Shared) Save(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cached[key]
	if !ok {
		// A corrupt record reads as 0 and gets replaced.
		v, _ = s.inner.Load(key)
	}
	if v > value {
		value = v
	}
	s.cached[key] = value
	return s.inner.Save(key, value)
}
