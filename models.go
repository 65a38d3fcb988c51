package poolbridge

import "time"

// Body indexes as the ScreenLogic gateway numbers them.
const (
	BodyPool = 0
	BodySpa  = 1
)

// Temperature setpoint limits in °F accepted by the gateway.
const (
	MinSetPointF = 40
	MaxSetPointF = 104
)

// Credentials identify a ScreenLogic system for the remote login step.
// They are forwarded to the gateway verbatim and never persisted.
type Credentials struct {
	SystemName string `json:"systemName"`
	Password   string `json:"password"`
}

// CommandResult is the normalized outcome of a dispatched command.
// Echoed input fields are added by the HTTP layer; Demo marks that the
// command was applied to the in-memory backend instead of a gateway.
type CommandResult struct {
	Success bool `json:"success"`
	Demo    bool `json:"demo,omitempty"`
}

// PoolState is a snapshot of the demo backend: circuit on/off states and
// target temperatures per body.
type PoolState struct {
	Circuits  map[int]bool `json:"circuits"`
	PoolTempF float64      `json:"pool_temp_f"`
	SpaTempF  float64      `json:"spa_temp_f"`
	Demo      bool         `json:"demo"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PoolEvent is a single command-log entry.
type PoolEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // CIRCUIT | TEMP | CONFIG
	Description string    `json:"description"` // human-readable
	Demo        bool      `json:"demo"`
	Metadata    any       `json:"metadata,omitempty"`
}

// CircuitInfo describes one controllable output as reported by the gateway.
type CircuitInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Function string `json:"function,omitempty"`
	Interface string `json:"interface,omitempty"`
}

// BodyInfo describes one water body and its current/target temperatures.
type BodyInfo struct {
	Index        int     `json:"index"`
	Name         string  `json:"name"`
	CurrentTempF float64 `json:"current_temp_f"`
	SetPointF    float64 `json:"set_point_f"`
	HeatMode     int     `json:"heat_mode"`
}

// ControllerConfig is the full configuration dump fetched by the diagnostic
// tool: gateway identity plus circuit and body inventories.
type ControllerConfig struct {
	GatewayName string        `json:"gateway_name"`
	Version     string        `json:"version"`
	Circuits    []CircuitInfo `json:"circuits"`
	Bodies      []BodyInfo    `json:"bodies"`
}
