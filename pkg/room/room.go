package room

import (
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/blackjack"
)

type clientMessage struct {
	client  *Client
	message *Message
}

type joinRequest struct {
	client *Client
	name   string

	// created is true when this join is the room creator's
	created bool
}

// Room pairs one blackjack game with the clients subscribed to it.
//
// All game mutations happen on the room's run loop: inbound messages, joins,
// leaves, and clock ticks are handled one at a time to completion, so the
// state machine needs no locking and members observe events in the order the
// transitions occurred.
type Room struct {
	code     string
	registry *Registry
	game     *blackjack.Game
	log      logrus.FieldLogger

	clients map[string]*Client

	join    chan joinRequest
	leave   chan *Client
	inbound chan clientMessage
	close   chan bool

	// stopped is set once the room empties and awaits teardown; it is only
	// touched from the run loop
	stopped bool
}

func newRoom(registry *Registry, code string, settings blackjack.Settings, clock quartz.Clock) (*Room, error) {
	log := logrus.WithField("room", code)

	game, err := blackjack.NewGame(log, code, settings, clock)
	if err != nil {
		return nil, err
	}

	return &Room{
		code:     code,
		registry: registry,
		game:     game,
		log:      log,
		clients:  make(map[string]*Client),
		join:     make(chan joinRequest, 256),
		leave:    make(chan *Client, 256),
		inbound:  make(chan clientMessage, 256),
		close:    make(chan bool),
	}, nil
}

// Code returns the room's short join code
func (r *Room) Code() string {
	return r.code
}

// Game returns the room's game state machine
func (r *Room) Game() *blackjack.Game {
	return r.game
}

// Open starts the run loop
func (r *Room) Open() {
	go r.runLoop()
}

// Shutdown terminates the run loop. Only the registry may call this, and
// only after the room has emptied.
func (r *Room) Shutdown() {
	close(r.close)
}

// Join asks the run loop to seat the client. This method returns quickly.
func (r *Room) Join(client *Client, name string, created bool) {
	r.join <- joinRequest{client: client, name: name, created: created}
}

// Leave asks the run loop to unseat the client. This method returns quickly.
func (r *Room) Leave(client *Client) {
	r.leave <- client
}

// Deliver hands an inbound message to the run loop. This method returns quickly.
func (r *Room) Deliver(client *Client, message *Message) {
	r.inbound <- clientMessage{client: client, message: message}
}

func (r *Room) runLoop() {
	r.log.Debug("room run loop started")

	ticker := time.NewTicker(r.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case req := <-r.join:
			r.handleJoin(req)
		case client := <-r.leave:
			r.handleLeave(client)
		case cm := <-r.inbound:
			r.handleMessage(cm.client, cm.message)
		case <-ticker.C:
			r.handleTick()
		case <-r.close:
			r.drainRequests()
			r.log.Debug("room run loop terminated")
			return
		}
	}
}

// drainRequests rejects everything still queued behind the teardown. The
// registry routes joins concurrently with the shutdown of an emptied room,
// and the select above may take the closed channel ahead of a pending join;
// without the drain that client would stay pointed at a dead room forever.
func (r *Room) drainRequests() {
	for {
		select {
		case req := <-r.join:
			req.client.Send(errorEvent(ErrRoomNotFound))
			r.registry.joinFailed(req.client, r)
		case cm := <-r.inbound:
			cm.client.Send(errorEvent(ErrRoomNotFound))
		case <-r.leave:
		default:
			return
		}
	}
}

func (r *Room) handleJoin(req joinRequest) {
	if r.stopped {
		req.client.Send(errorEvent(ErrRoomNotFound))
		r.registry.joinFailed(req.client, r)
		return
	}

	name := req.name
	if name == "" {
		name = util.RandomName()
	}

	events, err := r.game.AddPlayer(req.client.ID, name)
	if err != nil {
		req.client.Send(errorEvent(err))
		r.registry.joinFailed(req.client, r)
		return
	}

	r.clients[req.client.ID] = req.client

	if req.created {
		req.client.Send(blackjack.Event{
			Name: "roomCreated",
			Data: roomCreatedPayload{
				RoomID:  r.code,
				Players: r.roster(),
			},
		})
	}

	r.dispatch(events)
}

func (r *Room) handleLeave(client *Client) {
	if _, ok := r.clients[client.ID]; !ok {
		return
	}

	delete(r.clients, client.ID)

	events, err := r.game.RemovePlayer(client.ID)
	if err != nil {
		r.log.WithError(err).WithField("client", client.ID).Error("could not remove player")
	} else {
		r.dispatch(events)
	}

	if r.game.Empty() {
		r.stopped = true
		r.registry.roomEmptied(r)
	}
}

func (r *Room) handleMessage(client *Client, message *Message) {
	events, err := r.route(client, message)
	if err != nil {
		// the rejected action had no side effects; only the offender hears
		// about it
		client.Send(errorEvent(err))
		return
	}

	r.dispatch(events)
}

func (r *Room) route(client *Client, message *Message) ([]blackjack.Event, error) {
	switch message.Action {
	case actionStartGame:
		return r.game.Start(client.ID)
	case actionPlaceBet:
		return r.game.PlaceBet(client.ID, message.Bet)
	case actionGameAction:
		action, err := blackjack.ActionFromString(message.Subject)
		if err != nil {
			return nil, err
		}

		return r.game.PlayerAction(client.ID, action)
	}

	return nil, ErrUnknownAction
}

func (r *Room) handleTick() {
	if r.stopped {
		return
	}

	events, err := r.game.Tick()
	if err != nil {
		r.log.WithError(err).Error("tick failed")
		return
	}

	r.dispatch(events)
}

// dispatch fans events out in transition order. Broadcasts reach every
// member; addressed events reach only their recipient.
func (r *Room) dispatch(events []blackjack.Event) {
	for _, ev := range events {
		if ev.To == "" {
			for _, client := range r.clients {
				if !client.Send(ev) {
					r.log.WithField("client", client.ID).Warn("send buffer full, dropping event")
				}
			}
			continue
		}

		if client, ok := r.clients[ev.To]; ok {
			client.Send(ev)
		}
	}
}

type rosterEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsHost  bool   `json:"isHost"`
	Credits int    `json:"credits"`
}

func (r *Room) roster() []rosterEntry {
	players := r.game.Players()
	roster := make([]rosterEntry, len(players))
	for i, p := range players {
		roster[i] = rosterEntry{
			ID:      p.ID,
			Name:    p.Name,
			IsHost:  p.IsHost(),
			Credits: p.Credits(),
		}
	}

	return roster
}
