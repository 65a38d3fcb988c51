package screenlogic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"poolbridge"
)

// Gateway remote commands.
const (
	cmdLogin           = "login"
	cmdSetCircuit      = "setCircuitState"
	cmdSetHeatSetPoint = "setHeatSetPoint"
	cmdGetConfig       = "getConfig"
)

const (
	defaultHandshakeTimeout = 5 * time.Second
	okResponse              = "200"
)

// request is one JSON frame sent to the gateway.
type request struct {
	MessageID string         `json:"messageID"`
	Command   string         `json:"command"`
	Params    map[string]any `json:"params,omitempty"`
}

// response is one JSON frame received from the gateway. Data carries the
// command-specific payload (only getConfig uses it).
type response struct {
	MessageID string          `json:"messageID"`
	Command   string          `json:"command"`
	Response  string          `json:"response"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// WSDialer opens gateway sessions over the gateway's JSON WebSocket surface.
type WSDialer struct {
	HandshakeTimeout time.Duration
}

// Dial connects to the gateway and performs the login exchange. On login
// failure the connection is closed before returning.
func (d *WSDialer) Dial(ctx context.Context, addr Addr, creds poolbridge.Credentials) (Session, error) {
	timeout := d.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{HandshakeTimeout: timeout}

	u := url.URL{Scheme: "ws", Host: addr.String()}
	conn, _, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial gateway %s: %w", addr, err)
	}

	s := &wsSession{conn: conn}
	if err := s.login(ctx, creds); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// wsSession is a single authenticated WebSocket connection. It serializes
// request/response exchanges with a mutex; a session is owned by one command
// invocation so contention never occurs in practice.
type wsSession struct {
	conn      *websocket.Conn
	mu        sync.Mutex
	nextID    uint64
	closeOnce sync.Once
	closeErr  error
}

func (s *wsSession) login(ctx context.Context, creds poolbridge.Credentials) error {
	err := s.roundTrip(ctx, cmdLogin, map[string]any{
		"systemName": creds.SystemName,
		"password":   creds.Password,
	}, nil)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (s *wsSession) SetCircuitState(ctx context.Context, circuitID int, on bool) error {
	return s.roundTrip(ctx, cmdSetCircuit, map[string]any{
		"id":    circuitID,
		"state": on,
	}, nil)
}

func (s *wsSession) SetBodyTemperature(ctx context.Context, bodyIndex int, tempF float64) error {
	return s.roundTrip(ctx, cmdSetHeatSetPoint, map[string]any{
		"body": bodyIndex,
		"temp": tempF,
	}, nil)
}

func (s *wsSession) FetchConfig(ctx context.Context) (poolbridge.ControllerConfig, error) {
	var cfg poolbridge.ControllerConfig
	if err := s.roundTrip(ctx, cmdGetConfig, nil, &cfg); err != nil {
		return poolbridge.ControllerConfig{}, err
	}
	return cfg, nil
}

// Close sends a close frame and tears down the connection. Idempotent.
func (s *wsSession) Close() error {
	s.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// roundTrip issues one command and waits for its matching response, skipping
// unsolicited frames (the gateway pushes notifications on the same socket).
func (s *wsSession) roundTrip(ctx context.Context, command string, params map[string]any, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := strconv.FormatUint(s.nextID, 10)
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.conn.SetWriteDeadline(deadline)
		_ = s.conn.SetReadDeadline(deadline)
	}

	if err := s.conn.WriteJSON(request{MessageID: id, Command: command, Params: params}); err != nil {
		return fmt.Errorf("send %s: %w", command, err)
	}

	for {
		var resp response
		if err := s.conn.ReadJSON(&resp); err != nil {
			return fmt.Errorf("await %s ack: %w", command, err)
		}
		if resp.MessageID != id {
			continue
		}
		if resp.Response != okResponse {
			if resp.Message != "" {
				return fmt.Errorf("%s rejected by gateway: %s", command, resp.Message)
			}
			return fmt.Errorf("%s rejected by gateway: status %s", command, resp.Response)
		}
		if out != nil {
			if len(resp.Data) == 0 {
				return fmt.Errorf("%s ack carried no payload", command)
			}
			if err := json.Unmarshal(resp.Data, out); err != nil {
				return fmt.Errorf("decode %s payload: %w", command, err)
			}
		}
		return nil
	}
}
