package coloretto

import "errors"

var (
	ErrPlayers    = errors.New("invalid number of players")
	ErrNoCard     = errors.New("there is no card to place")
	ErrFlipped    = errors.New("you already took a card")
	ErrNoStack    = errors.New("that stack doesn't exist")
	ErrEmptyStack = errors.New("you cannot take an empty stack")
	ErrFullStack  = errors.New("that stack is full")
	ErrGameOver   = errors.New("the game is already over")
)
