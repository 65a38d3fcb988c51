package service

import (
	"context"

	"poolbridge"
)

type MonitoringService struct {
	demo *DemoStore
}

func NewMonitoringService(demo *DemoStore) *MonitoringService {
	return &MonitoringService{demo: demo}
}

// Snapshot returns the current demo dataset. Live gateways are never polled
// here; state reads against a physical system go through the diagnostic tool.
func (s *MonitoringService) Snapshot(ctx context.Context) (poolbridge.PoolState, error) {
	return s.demo.Snapshot(), nil
}
