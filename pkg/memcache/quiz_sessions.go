// pkg/memcache/quiz_sessions.go
package mem

import (
	"maps"
	"sync"
	"time"

	"tripnation/pkg/quiz"
)

// QuizSessionStore keeps quiz progress per session id until it expires.
type QuizSessionStore interface {
	Set(id string, state quiz.State, ttl time.Duration)

	// Get returns the state for id if not expired. Reading does not extend
	// the expiry; Set again to refresh it.
	Get(id string) (quiz.State, bool)

	Delete(id string)
}

type entry struct {
	state     quiz.State
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *QuizSessions) Set(id string, state quiz.State, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		state:     cloneState(state),
		expiresAt: s.now().Add(ttl),
	}
}

func (s *QuizSessions) Get(id string) (quiz.State, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return quiz.State{}, false
	}
	if s.now().After(e.expiresAt) {
		s.deleteExpired(id)
		return quiz.State{}, false
	}
	return cloneState(e.state), true
}

// deleteExpired re-reads id under the write lock so a Set that landed after
// the read is kept.
func (s *QuizSessions) deleteExpired(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[id]; ok && s.now().After(e.expiresAt) {
		delete(s.data, id)
	}
}

func (s *QuizSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

// Sweep drops every expired session and reports how many were removed.
func (s *QuizSessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Answers maps are shared by reference, so the store never hands out its own.
func cloneState(st quiz.State) quiz.State {
	answers := make(quiz.Answers, len(st.Answers))
	maps.Copy(answers, st.Answers)
	return quiz.State{Step: st.Step, Answers: answers}
}
