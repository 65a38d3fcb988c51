package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"poolbridge"
	"poolbridge/internal/screenlogic"
)

type fakeLocator struct {
	addr       screenlogic.Addr
	err        error
	calls      int
	lastSystem string
}

func (f *fakeLocator) Locate(ctx context.Context, systemName string) (screenlogic.Addr, error) {
	f.calls++
	f.lastSystem = systemName
	return f.addr, f.err
}

type fakeSession struct {
	circuitErr error
	tempErr    error
	cfg        poolbridge.ControllerConfig
	cfgErr     error

	circuitCalls int
	tempCalls    int
	closeCalls   int

	lastCircuitID int
	lastState     bool
	lastBodyIndex int
	lastTemp      float64
}

func (f *fakeSession) SetCircuitState(ctx context.Context, circuitID int, on bool) error {
	f.circuitCalls++
	f.lastCircuitID = circuitID
	f.lastState = on
	return f.circuitErr
}

func (f *fakeSession) SetBodyTemperature(ctx context.Context, bodyIndex int, tempF float64) error {
	f.tempCalls++
	f.lastBodyIndex = bodyIndex
	f.lastTemp = tempF
	return f.tempErr
}

func (f *fakeSession) FetchConfig(ctx context.Context) (poolbridge.ControllerConfig, error) {
	return f.cfg, f.cfgErr
}

func (f *fakeSession) Close() error {
	f.closeCalls++
	return nil
}

type fakeDialer struct {
	session     *fakeSession
	err         error
	calls       int
	lastAddr    screenlogic.Addr
	lastCreds   poolbridge.Credentials
	sawDeadline bool
}

func (f *fakeDialer) Dial(ctx context.Context, addr screenlogic.Addr, creds poolbridge.Credentials) (screenlogic.Session, error) {
	f.calls++
	f.lastAddr = addr
	f.lastCreds = creds
	_, f.sawDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

var testCreds = poolbridge.Credentials{SystemName: "Pentair: 00-11-22", Password: "1234"}

func TestGatewayBridge_SetCircuit_OneDialOneClose(t *testing.T) {
	sess := &fakeSession{}
	loc := &fakeLocator{addr: screenlogic.Addr{IP: "10.0.0.12", Port: 80}}
	dial := &fakeDialer{session: sess}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	if err := b.SetCircuit(context.Background(), testCreds, 505, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.calls != 1 || dial.calls != 1 || sess.closeCalls != 1 {
		t.Fatalf("locate=%d dial=%d close=%d, want 1/1/1", loc.calls, dial.calls, sess.closeCalls)
	}
	if loc.lastSystem != testCreds.SystemName {
		t.Fatalf("system name not forwarded to locator: %q", loc.lastSystem)
	}
	if dial.lastCreds != testCreds {
		t.Fatalf("credentials not forwarded to dialer: %+v", dial.lastCreds)
	}
	if sess.circuitCalls != 1 || sess.lastCircuitID != 505 || !sess.lastState {
		t.Fatalf("command not issued: %+v", sess)
	}
	if !dial.sawDeadline {
		t.Fatalf("expected a bounded deadline on the dial context")
	}
}

func TestGatewayBridge_SessionClosedEvenWhenCommandFails(t *testing.T) {
	sess := &fakeSession{circuitErr: errors.New("gateway rejected command")}
	loc := &fakeLocator{addr: screenlogic.Addr{IP: "10.0.0.12", Port: 80}}
	dial := &fakeDialer{session: sess}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	err := b.SetCircuit(context.Background(), testCreds, 505, true)
	if err == nil {
		t.Fatalf("expected error")
	}
	if sess.closeCalls != 1 {
		t.Fatalf("close calls=%d, want 1 even on command failure", sess.closeCalls)
	}
	var be *BridgeError
	if !errors.As(err, &be) {
		t.Fatalf("error %T is not a BridgeError", err)
	}
	if be.Op != "set circuit state" {
		t.Fatalf("op=%q", be.Op)
	}
	if !errors.Is(err, sess.circuitErr) {
		t.Fatalf("underlying cause not wrapped")
	}
}

func TestGatewayBridge_DiscoveryFailureSkipsDial(t *testing.T) {
	loc := &fakeLocator{err: errors.New("no gateway on network")}
	dial := &fakeDialer{session: &fakeSession{}}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	err := b.SetTemperature(context.Background(), testCreds, poolbridge.BodySpa, 85)
	if err == nil {
		t.Fatalf("expected error")
	}
	if dial.calls != 0 {
		t.Fatalf("dial must not run after discovery failure")
	}
	var be *BridgeError
	if !errors.As(err, &be) || be.Op != "set temperature" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGatewayBridge_DialFailure(t *testing.T) {
	loc := &fakeLocator{addr: screenlogic.Addr{IP: "10.0.0.12", Port: 80}}
	dial := &fakeDialer{err: errors.New("connection refused")}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	err := b.SetCircuit(context.Background(), testCreds, 505, true)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, dial.err) {
		t.Fatalf("underlying dial failure not wrapped: %v", err)
	}
}

func TestGatewayBridge_SetTemperature(t *testing.T) {
	sess := &fakeSession{}
	loc := &fakeLocator{addr: screenlogic.Addr{IP: "10.0.0.12", Port: 80}}
	dial := &fakeDialer{session: sess}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	if err := b.SetTemperature(context.Background(), testCreds, poolbridge.BodyPool, 82); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.tempCalls != 1 || sess.lastBodyIndex != poolbridge.BodyPool || sess.lastTemp != 82 {
		t.Fatalf("command not issued: %+v", sess)
	}
	if sess.closeCalls != 1 {
		t.Fatalf("close calls=%d", sess.closeCalls)
	}
}

func TestGatewayBridge_FetchConfig(t *testing.T) {
	sess := &fakeSession{cfg: poolbridge.ControllerConfig{
		GatewayName: "Pentair: 00-11-22",
		Circuits:    []poolbridge.CircuitInfo{{ID: 505, Name: "Pool"}},
	}}
	loc := &fakeLocator{addr: screenlogic.Addr{IP: "10.0.0.12", Port: 80}}
	dial := &fakeDialer{session: sess}
	b := NewGatewayBridge(loc, dial, time.Second, nil)

	cfg, err := b.FetchConfig(context.Background(), testCreds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GatewayName != "Pentair: 00-11-22" || len(cfg.Circuits) != 1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if sess.closeCalls != 1 {
		t.Fatalf("close calls=%d", sess.closeCalls)
	}
}
