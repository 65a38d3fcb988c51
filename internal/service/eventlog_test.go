package service

import (
	"context"
	"fmt"
	"testing"

	"poolbridge"
)

func appendN(t *testing.T, s *EventLogService, n int, typ string) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := s.Append(context.Background(), poolbridge.PoolEvent{
			EventID: fmt.Sprintf("%s-%d", typ, i),
			Type:    typ,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func TestEventLog_NewestFirst(t *testing.T) {
	s := NewEventLogService(10)
	appendN(t, s, 3, EventCircuit)

	out, err := s.List(context.Background(), LogFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len=%d", len(out))
	}
	if out[0].EventID != "CIRCUIT-2" || out[2].EventID != "CIRCUIT-0" {
		t.Fatalf("order wrong: %v, %v", out[0].EventID, out[2].EventID)
	}
}

func TestEventLog_CapacityEvictsOldest(t *testing.T) {
	s := NewEventLogService(5)
	appendN(t, s, 8, EventCircuit)

	out, _ := s.List(context.Background(), LogFilter{})
	if len(out) != 5 {
		t.Fatalf("len=%d, want capacity 5", len(out))
	}
	if out[0].EventID != "CIRCUIT-7" || out[4].EventID != "CIRCUIT-3" {
		t.Fatalf("eviction wrong: newest=%s oldest=%s", out[0].EventID, out[4].EventID)
	}
}

func TestEventLog_FilterAndLimit(t *testing.T) {
	s := NewEventLogService(20)
	appendN(t, s, 4, EventCircuit)
	appendN(t, s, 4, EventTemp)

	out, _ := s.List(context.Background(), LogFilter{Type: EventTemp})
	if len(out) != 4 {
		t.Fatalf("type filter len=%d", len(out))
	}
	for _, e := range out {
		if e.Type != EventTemp {
			t.Fatalf("wrong type in filtered list: %s", e.Type)
		}
	}

	out, _ = s.List(context.Background(), LogFilter{Limit: 3})
	if len(out) != 3 {
		t.Fatalf("limit len=%d", len(out))
	}
}
