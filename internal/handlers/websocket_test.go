package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"poolbridge"
	"poolbridge/internal/service"

	"github.com/gorilla/websocket"
)

func TestWSConnect_StreamsState(t *testing.T) {
	mon := &mockMonitoring{state: poolbridge.PoolState{
		Circuits:  map[int]bool{500: false, 505: true},
		PoolTempF: 76,
		SpaTempF:  98,
		Demo:      true,
	}}
	r := newTestRouter(&service.Service{Monitoring: mon})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval=50ms"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Initial frame arrives immediately; a second follows on the ticker.
	for i := 0; i < 2; i++ {
		var env wsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		if env.Type != "state" {
			t.Fatalf("frame %d type=%q, want state", i, env.Type)
		}
		raw, _ := json.Marshal(env.Data)
		var st poolbridge.PoolState
		if err := json.Unmarshal(raw, &st); err != nil {
			t.Fatalf("decode state: %v", err)
		}
		if !st.Demo || st.SpaTempF != 98 || !st.Circuits[505] {
			t.Fatalf("unexpected state payload: %+v", st)
		}
	}
}
