package room

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a player connected to the server via websockets.
// Its ID is connection-scoped: reconnecting yields a new identity.
type Client struct {
	// ID uniquely identifies the connection
	ID string

	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan interface{}

	// room is the room the client joined. Only the registry run loop may
	// touch this field.
	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:    uuid.New().String(),
		Conn:  conn,
		Close: make(chan string),
		send:  make(chan interface{}, 256),
	}
}

// Send queues a message for delivery to the web client.
// Returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client. It deliberately
// reads nothing but the immutable ID: the write loop calls it concurrently
// with the registry loop, which owns every other field.
func (c *Client) String() string {
	return c.ID
}
