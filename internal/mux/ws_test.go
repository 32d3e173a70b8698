package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack-server/pkg/room"
)

type wsEvent struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// waitForWSEvent reads frames until the named event arrives
func waitForWSEvent(t *testing.T, conn *websocket.Conn, name string) wsEvent {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var ev wsEvent
		require.NoError(t, conn.ReadJSON(&ev), "waiting for event %q", name)
		if ev.Name == name {
			return ev
		}
	}
}

func TestWebSocket_CreateJoinAndBet(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	alice := dialWS(t, ts)
	require.NoError(t, alice.WriteJSON(room.Message{
		Action:      "createRoom",
		PlayerName:  "Alice",
		PlayerCount: 2,
		Rounds:      1,
		Timeout:     30,
	}))

	var created struct {
		RoomID string `json:"roomId"`
	}
	ev := waitForWSEvent(t, alice, "roomCreated")
	require.NoError(t, json.Unmarshal(ev.Data, &created))
	a.Len(created.RoomID, 6)

	bob := dialWS(t, ts)
	require.NoError(t, bob.WriteJSON(room.Message{
		Action:     "joinRoom",
		RoomID:     created.RoomID,
		PlayerName: "Bob",
	}))

	// seating the second player fills the table and starts the game
	waitForWSEvent(t, alice, "gameStarted")
	waitForWSEvent(t, bob, "bettingPhase")

	require.NoError(t, alice.WriteJSON(room.Message{Action: "placeBet", Bet: 10}))
	require.NoError(t, bob.WriteJSON(room.Message{Action: "placeBet", Bet: 20}))

	waitForWSEvent(t, alice, "cardsDealt")
	waitForWSEvent(t, bob, "cardsDealt")
	waitForWSEvent(t, bob, "nextPlayer")
}

func TestWebSocket_ErrorsStayWithTheSender(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	conn := dialWS(t, ts)
	require.NoError(t, conn.WriteJSON(room.Message{Action: "joinRoom", RoomID: "NOPE00"}))

	ev := waitForWSEvent(t, conn, "error")
	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(ev.Data, &payload))
	a.Equal("room not found", payload.Message)
}

func TestWebSocket_PlainGETRejected(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
