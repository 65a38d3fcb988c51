package service

import (
	"context"
	"sync"

	"poolbridge"
)

const defaultEventCap = 100

// LogFilter narrows a command-log listing.
type LogFilter struct {
	Type  string // CIRCUIT | TEMP; empty matches all
	Limit int    // max entries returned; <=0 means no limit
}

// EventLogService keeps a bounded, in-memory log of recent commands. Oldest
// entries are dropped once capacity is reached; nothing is ever written to
// disk.
type EventLogService struct {
	mu     sync.Mutex
	cap    int
	events []poolbridge.PoolEvent
}

func NewEventLogService(capacity int) *EventLogService {
	if capacity <= 0 {
		capacity = defaultEventCap
	}
	return &EventLogService{cap: capacity}
}

// Append records one event, evicting the oldest entry at capacity.
func (s *EventLogService) Append(ctx context.Context, e poolbridge.PoolEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == s.cap {
		copy(s.events, s.events[1:])
		s.events = s.events[:s.cap-1]
	}
	s.events = append(s.events, e)
	return nil
}

// List returns matching events, newest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]poolbridge.PoolEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]poolbridge.PoolEvent, 0, len(s.events))
	for i := len(s.events) - 1; i >= 0; i-- {
		e := s.events[i]
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
