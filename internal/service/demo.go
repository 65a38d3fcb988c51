package service

import (
	"sync"
	"time"

	"poolbridge"
)

// Demo dataset defaults. Circuit numbers follow the gateway's convention
// (feature circuits start at 500; 500 is the spa, 505 the pool).
const (
	demoPoolTempF = 76.0
	demoSpaTempF  = 98.0
)

var demoCircuitDefaults = map[int]bool{
	500: false, // Spa
	501: false, // Waterfall
	502: false, // Pool Light
	503: false, // Spa Light
	505: true,  // Pool
}

// DemoStore is the in-memory substitute for a gateway: circuit states and
// body setpoints mutated by the same command shapes the live bridge accepts,
// with no network I/O. State is shared across concurrent requests, so every
// access is serialized by the mutex. Initialized lazily on first access and
// lives only for the process lifetime.
type DemoStore struct {
	mu        sync.Mutex
	ready     bool
	circuits  map[int]bool
	bodyTemps [2]float64
	updatedAt time.Time
}

func NewDemoStore() *DemoStore {
	return &DemoStore{}
}

// ensureInit populates the default dataset. Callers must hold mu.
func (d *DemoStore) ensureInit() {
	if d.ready {
		return
	}
	d.circuits = make(map[int]bool, len(demoCircuitDefaults))
	for id, on := range demoCircuitDefaults {
		d.circuits[id] = on
	}
	d.bodyTemps[poolbridge.BodyPool] = demoPoolTempF
	d.bodyTemps[poolbridge.BodySpa] = demoSpaTempF
	d.updatedAt = time.Now().UTC()
	d.ready = true
}

// SetCircuit records a circuit state. Unknown circuit ids are accepted and
// added, mirroring the gateway which drives whatever circuit it is told to.
func (d *DemoStore) SetCircuit(circuitID int, on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensureInit()
	d.circuits[circuitID] = on
	d.updatedAt = time.Now().UTC()
}

// SetTemperature records a body setpoint. bodyIndex outside the two demo
// bodies is ignored; range validation happens before dispatch.
func (d *DemoStore) SetTemperature(bodyIndex int, tempF float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensureInit()
	if bodyIndex < 0 || bodyIndex >= len(d.bodyTemps) {
		return
	}
	d.bodyTemps[bodyIndex] = tempF
	d.updatedAt = time.Now().UTC()
}

// Snapshot returns a copy of the current demo state.
func (d *DemoStore) Snapshot() poolbridge.PoolState {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ensureInit()
	circuits := make(map[int]bool, len(d.circuits))
	for id, on := range d.circuits {
		circuits[id] = on
	}
	return poolbridge.PoolState{
		Circuits:  circuits,
		PoolTempF: d.bodyTemps[poolbridge.BodyPool],
		SpaTempF:  d.bodyTemps[poolbridge.BodySpa],
		Demo:      true,
		UpdatedAt: d.updatedAt,
	}
}
