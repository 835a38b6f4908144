package services

import (
	"sync"

	"anonchat_server/models"
)

// MatchmakingService holds the waiting queue and pairs compatible users.
// Entries keep insertion order so the earliest eligible user always wins.
type MatchmakingService struct {
	mu      sync.Mutex
	waiting []*models.WaitingUser
}

// NewMatchmakingService initializes an empty queue
func NewMatchmakingService() *MatchmakingService {
	return &MatchmakingService{}
}

// EnqueueOrMatch scans the queue front-to-back for the first compatible
// partner. On a hit the partner's entry is removed and returned; otherwise the
// requester is appended as a new waiting entry. The scan, the claim, and the
// insert share one critical section, so an entry can never be claimed twice
// and a connection can never be queued twice.
func (s *MatchmakingService) EnqueueOrMatch(user models.WaitingUser) (*models.WaitingUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A re-join replaces any previous entry for the same connection.
	s.removeLocked(user.ConnectionID)

	for i, candidate := range s.waiting {
		if !compatible(user, *candidate) {
			continue
		}
		s.waiting = append(s.waiting[:i], s.waiting[i+1:]...)
		return candidate, true
	}

	entry := user
	s.waiting = append(s.waiting, &entry)
	return nil, false
}

// Cancel removes the waiting entry for a connection. Calling it for a
// connection that is not waiting is a no-op.
func (s *MatchmakingService) Cancel(connID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(connID)
}

// WaitingCount returns the number of queued users
func (s *MatchmakingService) WaitingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiting)
}

func (s *MatchmakingService) removeLocked(connID string) bool {
	for i, u := range s.waiting {
		if u.ConnectionID == connID {
			s.waiting = append(s.waiting[:i], s.waiting[i+1:]...)
			return true
		}
	}
	return false
}

// compatible applies the filter check in both directions. A user is never
// compatible with their own connection.
func compatible(requester, candidate models.WaitingUser) bool {
	if candidate.ConnectionID == requester.ConnectionID {
		return false
	}
	if requester.GenderFilter != models.GenderAny && candidate.Gender != requester.GenderFilter {
		return false
	}
	if candidate.GenderFilter != models.GenderAny && candidate.GenderFilter != requester.Gender {
		return false
	}
	return true
}
