package service

import (
	"context"
	"time"

	"poolbridge"
	"poolbridge/internal/logger"
	"poolbridge/internal/screenlogic"
)

// Commands dispatches validated device commands to the demo backend or, with
// live credentials, through the gateway bridge.
type Commands interface {
	SetCircuit(ctx context.Context, mode AuthMode, circuitID int, on bool) (poolbridge.CommandResult, error)
	SetTemperature(ctx context.Context, mode AuthMode, bodyIndex int, tempF float64) (poolbridge.CommandResult, error)
}

// Monitoring exposes the demo backend snapshot (circuits, body temps).
type Monitoring interface {
	Snapshot(ctx context.Context) (poolbridge.PoolState, error)
}

// EventLog exposes the in-memory command log with filtering access.
type EventLog interface {
	Append(ctx context.Context, e poolbridge.PoolEvent) error
	List(ctx context.Context, f LogFilter) ([]poolbridge.PoolEvent, error)
}

// Bridge performs exactly one gateway command per call: locate, dial+login,
// command, close. Implementations must be re-entrant.
type Bridge interface {
	SetCircuit(ctx context.Context, creds poolbridge.Credentials, circuitID int, on bool) error
	SetTemperature(ctx context.Context, creds poolbridge.Credentials, bodyIndex int, tempF float64) error
	FetchConfig(ctx context.Context, creds poolbridge.Credentials) (poolbridge.ControllerConfig, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Commands
	Monitoring
	EventLog
}

// NewService wires the gateway boundary into concrete services. eventCap
// bounds the in-memory command log.
func NewService(locator screenlogic.Locator, dialer screenlogic.Dialer, commandTimeout time.Duration, eventCap int, log *logger.Logger) *Service {
	demo := NewDemoStore()
	events := NewEventLogService(eventCap)
	bridge := NewGatewayBridge(locator, dialer, commandTimeout, log)
	return &Service{
		Commands:   NewCommandService(bridge, demo, events, log),
		Monitoring: NewMonitoringService(demo),
		EventLog:   events,
	}
}
