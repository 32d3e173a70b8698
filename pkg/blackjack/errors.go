package blackjack

import "errors"

// ErrRoomFull is an error when a player tries to join a room with no open seats
var ErrRoomFull = errors.New("the room is full")

// ErrGameInProgress is an error when a player tries to join after the game left the waiting phase
var ErrGameInProgress = errors.New("the game is already in progress")

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrInvalidBet is an error for a bet that is not a positive multiple of 10,
// or that exceeds the player's credits
var ErrInvalidBet = errors.New("bet must be a positive multiple of 10 and no more than your credits")

// ErrInvalidAction is an error for an unknown action, or one that is illegal in the current phase
var ErrInvalidAction = errors.New("that action cannot be performed right now")

// ErrNotHost is returned when a non-host player tries to start the game
var ErrNotHost = errors.New("only the host may start the game")

// ErrNotEnoughPlayers is returned when the host starts a game with fewer than two players
var ErrNotEnoughPlayers = errors.New("need at least two players to start")

// ErrPlayerNotFound is returned when the player is not seated in this game
var ErrPlayerNotFound = errors.New("player is not in this game")
