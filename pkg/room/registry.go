package room

import (
	"errors"
	"strings"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/config"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/token"
)

const (
	roomCodeLength   = 6
	maxCodeAttempts  = 10
	registryChanSize = 256
)

// Registry owns every active room, keyed by room code. It is the only
// process-wide mutable state: rooms are created and torn down on its run
// loop, which also routes connection-scoped messages (createRoom, joinRoom)
// before a client belongs to a room.
type Registry struct {
	log   logrus.FieldLogger
	clock quartz.Clock

	rooms map[string]*Room

	inbound    chan clientMessage
	disconnect chan *Client
	emptied    chan *Room
	failed     chan failedJoin
}

// failedJoin is a room's report that it rejected a client the registry had
// already pointed at it
type failedJoin struct {
	client *Client
	room   *Room
}

// NewRegistry returns a new room registry
func NewRegistry() *Registry {
	return &Registry{
		log:        logrus.WithField("component", "registry"),
		clock:      quartz.NewReal(),
		rooms:      make(map[string]*Room),
		inbound:    make(chan clientMessage, registryChanSize),
		disconnect: make(chan *Client, registryChanSize),
		emptied:    make(chan *Room, registryChanSize),
		failed:     make(chan failedJoin, registryChanSize),
	}
}

// Open starts the registry run loop
func (reg *Registry) Open() {
	go reg.runLoop()
}

// ReceivedMessage is called when the server receives a message from a
// connected client. This method returns quickly.
func (reg *Registry) ReceivedMessage(client *Client, message *Message) {
	reg.inbound <- clientMessage{client: client, message: message}
}

// ClientDisconnected is called when a client's connection closes.
// This method returns quickly.
func (reg *Registry) ClientDisconnected(client *Client) {
	reg.disconnect <- client
}

func (reg *Registry) roomEmptied(room *Room) {
	reg.emptied <- room
}

func (reg *Registry) joinFailed(client *Client, room *Room) {
	reg.failed <- failedJoin{client: client, room: room}
}

func (reg *Registry) runLoop() {
	for {
		select {
		case cm := <-reg.inbound:
			reg.handleMessage(cm.client, cm.message)
		case client := <-reg.disconnect:
			reg.handleDisconnect(client)
		case room := <-reg.emptied:
			reg.handleEmptied(room)
		case fj := <-reg.failed:
			reg.handleJoinFailed(fj)
		}
	}
}

func (reg *Registry) handleMessage(client *Client, message *Message) {
	switch message.Action {
	case actionCreateRoom:
		if client.room != nil {
			client.Send(errorEvent(ErrAlreadyInRoom))
			return
		}

		settings := blackjack.Settings{
			Seats:           message.PlayerCount,
			Rounds:          message.Rounds,
			TurnTimeout:     message.Timeout,
			StartingCredits: config.Instance().Game.StartingCredits,
		}
		if settings.TurnTimeout == 0 {
			settings.TurnTimeout = config.Instance().Game.DefaultTurnTimeout
		}

		room, err := reg.createRoom(settings)
		if err != nil {
			client.Send(errorEvent(err))
			return
		}

		client.room = room
		room.Join(client, message.PlayerName, true)

	case actionJoinRoom:
		if client.room != nil {
			client.Send(errorEvent(ErrAlreadyInRoom))
			return
		}

		room, ok := reg.rooms[strings.ToUpper(message.RoomID)]
		if !ok {
			client.Send(errorEvent(ErrRoomNotFound))
			return
		}

		client.room = room
		room.Join(client, message.PlayerName, false)

	default:
		if client.room == nil {
			client.Send(errorEvent(ErrRoomNotFound))
			return
		}

		client.room.Deliver(client, message)
	}
}

func (reg *Registry) handleDisconnect(client *Client) {
	if client.room == nil {
		return
	}

	client.room.Leave(client)
	client.room = nil
}

// handleJoinFailed frees the connection to try another room. The guard
// matters: the client may have already disconnected and rejoined elsewhere
// by the time the report arrives.
func (reg *Registry) handleJoinFailed(fj failedJoin) {
	if fj.client.room == fj.room {
		fj.client.room = nil
	}
}

func (reg *Registry) handleEmptied(room *Room) {
	if current, ok := reg.rooms[room.code]; ok && current == room {
		delete(reg.rooms, room.code)
		room.Shutdown()
		reg.log.WithField("room", room.code).Info("room destroyed")
	}
}

// createRoom allocates a unique room code and starts the room's run loop.
// Codes are generated randomly and retried on collision.
func (reg *Registry) createRoom(settings blackjack.Settings) (*Room, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := token.Generate(roomCodeLength)
		if err != nil {
			return nil, err
		}

		if _, exists := reg.rooms[code]; exists {
			continue
		}

		room, err := newRoom(reg, code, settings, reg.clock)
		if err != nil {
			return nil, err
		}

		reg.rooms[code] = room
		room.Open()
		reg.log.WithField("room", code).Info("room created")

		return room, nil
	}

	return nil, errors.New("could not allocate a unique room code")
}
