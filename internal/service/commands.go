package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"poolbridge"
	"poolbridge/internal/logger"
)

// Event types recorded in the command log.
const (
	EventCircuit = "CIRCUIT"
	EventTemp    = "TEMP"
)

// CommandService routes validated commands to the demo store or the gateway
// bridge, depending on the resolved AuthMode, and records the outcome in the
// command log. Holds no per-request state.
type CommandService struct {
	bridge Bridge
	demo   *DemoStore
	events EventLog
	log    *logger.Logger
}

func NewCommandService(bridge Bridge, demo *DemoStore, events EventLog, log *logger.Logger) *CommandService {
	return &CommandService{bridge: bridge, demo: demo, events: events, log: log}
}

// SetCircuit turns a circuit on or off. Demo mode mutates the in-memory
// store and cannot fail; live mode is one bridge call.
func (s *CommandService) SetCircuit(ctx context.Context, mode AuthMode, circuitID int, on bool) (poolbridge.CommandResult, error) {
	if mode.IsLive() {
		if err := s.bridge.SetCircuit(ctx, mode.Credentials(), circuitID, on); err != nil {
			return poolbridge.CommandResult{}, err
		}
		s.record(ctx, EventCircuit, fmt.Sprintf("circuit %d set to %t", circuitID, on), false,
			map[string]any{"circuit_id": circuitID, "state": on})
		return poolbridge.CommandResult{Success: true}, nil
	}

	s.demo.SetCircuit(circuitID, on)
	s.record(ctx, EventCircuit, fmt.Sprintf("circuit %d set to %t (demo)", circuitID, on), true,
		map[string]any{"circuit_id": circuitID, "state": on})
	return poolbridge.CommandResult{Success: true, Demo: true}, nil
}

// SetTemperature sets a body's target temperature. Range validation happens
// at the HTTP boundary; bodyIndex and tempF arrive here already checked.
func (s *CommandService) SetTemperature(ctx context.Context, mode AuthMode, bodyIndex int, tempF float64) (poolbridge.CommandResult, error) {
	if mode.IsLive() {
		if err := s.bridge.SetTemperature(ctx, mode.Credentials(), bodyIndex, tempF); err != nil {
			return poolbridge.CommandResult{}, err
		}
		s.record(ctx, EventTemp, fmt.Sprintf("body %d setpoint %.0f°F", bodyIndex, tempF), false,
			map[string]any{"body": bodyIndex, "temp": tempF})
		return poolbridge.CommandResult{Success: true}, nil
	}

	s.demo.SetTemperature(bodyIndex, tempF)
	s.record(ctx, EventTemp, fmt.Sprintf("body %d setpoint %.0f°F (demo)", bodyIndex, tempF), true,
		map[string]any{"body": bodyIndex, "temp": tempF})
	return poolbridge.CommandResult{Success: true, Demo: true}, nil
}

func (s *CommandService) record(ctx context.Context, typ, desc string, demo bool, meta map[string]any) {
	err := s.events.Append(ctx, poolbridge.PoolEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Demo:        demo,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "type", typ, "err", err)
	}
}
