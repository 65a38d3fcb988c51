package handlers

import (
	"context"

	"poolbridge"
	"poolbridge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCommands struct {
	circuitRes poolbridge.CommandResult
	circuitErr error
	tempRes    poolbridge.CommandResult
	tempErr    error

	circuitCalls int
	tempCalls    int

	lastMode      service.AuthMode
	lastCircuitID int
	lastState     bool
	lastBodyIndex int
	lastTemp      float64
}

func (m *mockCommands) SetCircuit(ctx context.Context, mode service.AuthMode, circuitID int, on bool) (poolbridge.CommandResult, error) {
	m.circuitCalls++
	m.lastMode = mode
	m.lastCircuitID = circuitID
	m.lastState = on
	return m.circuitRes, m.circuitErr
}

func (m *mockCommands) SetTemperature(ctx context.Context, mode service.AuthMode, bodyIndex int, tempF float64) (poolbridge.CommandResult, error) {
	m.tempCalls++
	m.lastMode = mode
	m.lastBodyIndex = bodyIndex
	m.lastTemp = tempF
	return m.tempRes, m.tempErr
}

type mockMonitoring struct {
	state poolbridge.PoolState
	err   error
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (poolbridge.PoolState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	appended   []poolbridge.PoolEvent
	resp       []poolbridge.PoolEvent
	listErr    error
	lastFilter service.LogFilter
}

func (m *mockEventLog) Append(ctx context.Context, e poolbridge.PoolEvent) error {
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]poolbridge.PoolEvent, error) {
	m.lastFilter = f
	return m.resp, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
