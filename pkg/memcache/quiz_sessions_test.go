package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripnation/pkg/quiz"
)

func TestQuizSessionsSetGet(t *testing.T) {
	s := NewQuizSessions()
	s.Set("a", quiz.State{Step: 2, Answers: quiz.Answers{"q1": "praia"}}, time.Minute)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got.Step)
	assert.Equal(t, "praia", got.Answers["q1"])

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestQuizSessionsReturnsCopies(t *testing.T) {
	s := NewQuizSessions()
	answers := quiz.Answers{"q1": "praia"}
	s.Set("a", quiz.State{Step: 1, Answers: answers}, time.Minute)
	answers["q1"] = "cidade"

	got, _ := s.Get("a")
	got.Answers["q2"] = "surf"

	again, _ := s.Get("a")
	assert.Equal(t, quiz.Answers{"q1": "praia"}, again.Answers)
}

func TestQuizSessionsExpire(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewQuizSessions()
	s.now = func() time.Time { return now }

	s.Set("short", quiz.State{Step: 1}, time.Minute)
	s.Set("long", quiz.State{Step: 1}, time.Hour)

	now = now.Add(2 * time.Minute)
	_, ok := s.Get("short")
	assert.False(t, ok)
	_, ok = s.Get("long")
	assert.True(t, ok)

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.Sweep())
}

func TestQuizSessionsDelete(t *testing.T) {
	s := NewQuizSessions()
	s.Set("a", quiz.State{}, time.Minute)
	s.Delete("a")
	_, ok := s.Get("a")
	assert.False(t, ok)
}

func TestQuizSessionsExpiredCleanupKeepsRefreshedEntry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewQuizSessions()
	s.now = func() time.Time { return now }

	s.Set("a", quiz.State{Step: 1}, time.Minute)
	now = now.Add(2 * time.Minute)

	// A Set between Get's read and its cleanup must survive.
	s.Set("a", quiz.State{Step: 3}, time.Minute)
	s.deleteExpired("a")

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, got.Step)

	now = now.Add(2 * time.Minute)
	s.deleteExpired("a")
	s.mu.RLock()
	_, stored := s.data["a"]
	s.mu.RUnlock()
	assert.False(t, stored)
}
