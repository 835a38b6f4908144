package services

import (
	"sync"
	"time"

	"anonchat_server/models"
	"anonchat_server/utils"
)

// RateLimiterService tracks per-device daily usage of filtered matching.
type RateLimiterService struct {
	mu    sync.Mutex
	usage map[string]*models.UsageRecord

	// Now is swappable so tests can roll the calendar day over.
	Now func() time.Time
}

// NewRateLimiterService initializes an empty in-memory limiter
func NewRateLimiterService() *RateLimiterService {
	return &RateLimiterService{
		usage: make(map[string]*models.UsageRecord),
		Now:   time.Now,
	}
}

// CheckAndConsume verifies a device is under its daily limit and, if so,
// consumes one attempt. Unfiltered requests are always allowed and never touch
// the counter. The check and the increment happen under one lock so two
// concurrent requests from the same device cannot both claim the last slot.
func (s *RateLimiterService) CheckAndConsume(deviceID string, filtered bool, limit int) (bool, int) {
	if !filtered {
		return true, limit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.DayKey(s.Now())
	record, ok := s.usage[deviceID]
	if !ok || record.Date != today {
		// A stale record belongs to a previous day; start fresh.
		record = &models.UsageRecord{Date: today}
		s.usage[deviceID] = record
	}

	if record.Count >= limit {
		return false, 0
	}

	record.Count++
	return true, limit - record.Count
}

// ActiveDevices returns how many devices currently have a usage record
func (s *RateLimiterService) ActiveDevices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.usage)
}
