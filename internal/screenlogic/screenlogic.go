// Package screenlogic is the boundary to the ScreenLogic gateway: locating a
// system on the network, opening an authenticated session, and issuing single
// commands over it. The Pentair wire protocol to the pool controller itself
// lives behind the gateway; this package only speaks the gateway's remote
// JSON interface.
package screenlogic

import (
	"context"
	"net"
	"strconv"

	"poolbridge"
)

// Addr is the resolved network location of a gateway.
type Addr struct {
	IP   string
	Port int
}

func (a Addr) String() string {
	return net.JoinHostPort(a.IP, strconv.Itoa(a.Port))
}

// Locator resolves a system name to a gateway address. Implementations must
// honor ctx cancellation.
type Locator interface {
	Locate(ctx context.Context, systemName string) (Addr, error)
}

// Session is a single authenticated connection to a gateway. A Session is
// owned by exactly one command invocation: one command, then Close. Close is
// idempotent and must always be invoked, including after a failed command.
type Session interface {
	SetCircuitState(ctx context.Context, circuitID int, on bool) error
	SetBodyTemperature(ctx context.Context, bodyIndex int, tempF float64) error
	FetchConfig(ctx context.Context) (poolbridge.ControllerConfig, error)
	Close() error
}

// Dialer opens an authenticated Session against a located gateway.
type Dialer interface {
	Dial(ctx context.Context, addr Addr, creds poolbridge.Credentials) (Session, error)
}
