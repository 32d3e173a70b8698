package room

import "errors"

// ErrRoomNotFound is an error when the room code does not match an active room
var ErrRoomNotFound = errors.New("room not found")

// ErrAlreadyInRoom is an error when a connection that already joined a room
// tries to create or join another
var ErrAlreadyInRoom = errors.New("you are already in a room")

// ErrUnknownAction is an error for an unrecognized message action
var ErrUnknownAction = errors.New("unknown action")
