package room

import "errors"

var (
	ErrInvalid          = errors.New("that room does not exist")
	ErrFull             = errors.New("this room is full")
	ErrAlreadyJoined    = errors.New("you already joined this game")
	ErrNotEnoughPlayers = errors.New("not enough players to start the game")
	ErrNotLeader        = errors.New("only the room leader can start the game")
	ErrAwaitTurn        = errors.New("it's not your turn")
	ErrWrongState       = errors.New("room is in the wrong state")
)
