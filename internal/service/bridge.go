package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"poolbridge"
	"poolbridge/internal/logger"
	"poolbridge/internal/screenlogic"
)

const defaultCommandTimeout = 10 * time.Second

// BridgeError is the normalized failure for any step of the gateway
// sequence: discovery, connect/login, or the command itself. Callers see one
// failure kind; the underlying cause stays available via Unwrap.
type BridgeError struct {
	Op  string // command being performed, e.g. "set circuit state"
	Err error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// GatewayBridge issues exactly one gateway command per invocation: locate the
// system, open an authenticated session, run the command, close the session.
// The session is released on every exit path. All fields are immutable after
// construction, so concurrent invocations share no mutable state.
type GatewayBridge struct {
	locator screenlogic.Locator
	dialer  screenlogic.Dialer
	timeout time.Duration
	log     *logger.Logger
}

func NewGatewayBridge(locator screenlogic.Locator, dialer screenlogic.Dialer, timeout time.Duration, log *logger.Logger) *GatewayBridge {
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	return &GatewayBridge{locator: locator, dialer: dialer, timeout: timeout, log: log}
}

func (b *GatewayBridge) SetCircuit(ctx context.Context, creds poolbridge.Credentials, circuitID int, on bool) error {
	return b.withSession(ctx, creds, "set circuit state", func(ctx context.Context, s screenlogic.Session) error {
		return s.SetCircuitState(ctx, circuitID, on)
	})
}

func (b *GatewayBridge) SetTemperature(ctx context.Context, creds poolbridge.Credentials, bodyIndex int, tempF float64) error {
	return b.withSession(ctx, creds, "set temperature", func(ctx context.Context, s screenlogic.Session) error {
		return s.SetBodyTemperature(ctx, bodyIndex, tempF)
	})
}

func (b *GatewayBridge) FetchConfig(ctx context.Context, creds poolbridge.Credentials) (poolbridge.ControllerConfig, error) {
	var cfg poolbridge.ControllerConfig
	err := b.withSession(ctx, creds, "fetch config", func(ctx context.Context, s screenlogic.Session) error {
		var err error
		cfg, err = s.FetchConfig(ctx)
		return err
	})
	if err != nil {
		return poolbridge.ControllerConfig{}, err
	}
	return cfg, nil
}

// withSession runs fn against a freshly opened session, bounding the whole
// locate+dial+command sequence with one timeout and closing the session on
// every exit path. No retries: a failed command is reported immediately.
func (b *GatewayBridge) withSession(ctx context.Context, creds poolbridge.Credentials, op string, fn func(ctx context.Context, s screenlogic.Session) error) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	cmdID := uuid.NewString()

	addr, err := b.locator.Locate(ctx, creds.SystemName)
	if err != nil {
		b.logw("gateway_locate_failed", cmdID, op, err)
		return &BridgeError{Op: op, Err: fmt.Errorf("locate gateway: %w", err)}
	}

	sess, err := b.dialer.Dial(ctx, addr, creds)
	if err != nil {
		b.logw("gateway_connect_failed", cmdID, op, err)
		return &BridgeError{Op: op, Err: fmt.Errorf("connect %s: %w", addr, err)}
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && b.log != nil {
			b.log.Infow("gateway_close_failed", "cmd_id", cmdID, "err", cerr)
		}
	}()

	if err := fn(ctx, sess); err != nil {
		b.logw("gateway_command_failed", cmdID, op, err)
		return &BridgeError{Op: op, Err: err}
	}
	return nil
}

func (b *GatewayBridge) logw(key, cmdID, op string, err error) {
	if b.log != nil {
		b.log.Errorw(key, "cmd_id", cmdID, "op", op, "err", err)
	}
}
