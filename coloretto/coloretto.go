// Package coloretto implements the rules of the Coloretto card game as a
// pure in-memory state machine. It performs no I/O and holds no locks; each
// action is a deterministic transition applied by whoever owns the value.
package coloretto

import (
	"fmt"
	"sort"
)

// Coloretto is the full engine state for one running game. The seat order of
// Players is fixed at construction, Turn always indexes into it, and Current
// holds the flipped card awaiting placement (nil means a flip is due).
type Coloretto struct {
	Players []Player `json:"players"`
	Deck    Deck     `json:"deck"`
	Stacks  []Stack  `json:"stacks"`
	Current *Card    `json:"current"`
	Turn    int      `json:"turn"`
	Winner  *int     `json:"winner"`
}

// New builds a game for 2 to 5 seats. The deck variant and stack layout are
// selected by seat count: two players get stacks of capacity 1, 2 and 3,
// larger games get one capacity-3 stack per seat.
func New(size int) (*Coloretto, error) {
	if size < 2 || size > 5 {
		return nil, ErrPlayers
	}

	players := make([]Player, size)
	for i := range players {
		players[i] = NewPlayer()
	}

	var deck Deck
	switch size {
	case 2:
		deck = SmallDeck()
	case 3:
		deck = MediumDeck()
	default:
		deck = LargeDeck()
	}

	var stacks []Stack
	if size == 2 {
		stacks = []Stack{NewStack(1), NewStack(2), NewStack(3)}
	} else {
		stacks = make([]Stack, size)
		for i := range stacks {
			stacks[i] = NewStack(3)
		}
	}

	return &Coloretto{
		Players: players,
		Deck:    deck,
		Stacks:  stacks,
		Current: nil,
		Turn:    0,
		Winner:  nil,
	}, nil
}

// Perform applies one action for the seat whose turn it is. Which actions are
// legal depends on whether a flipped card is pending: with no card up the
// seat may flip or take, with a card up it must place.
func (c *Coloretto) Perform(action Action) error {
	if c.Winner != nil {
		return ErrGameOver
	}

	if c.Current == nil {
		switch action.Kind {
		case Flip:
			return c.flip()
		case Place:
			return ErrNoCard
		case Take:
			return c.take(action.Index)
		}
	} else {
		switch action.Kind {
		case Flip, Take:
			return ErrFlipped
		case Place:
			return c.place(action.Index)
		}
	}
	return fmt.Errorf("unknown action kind: %d", int(action.Kind))
}

func (c *Coloretto) flip() error {
	if card, ok := c.Deck.Draw(); ok {
		c.Current = &card
	}
	// An exhausted deck leaves Current unset; the card counts make this
	// unreachable in a 2..5 player game.
	return nil
}

func (c *Coloretto) take(index int) error {
	if index < 0 || index >= len(c.Stacks) {
		return ErrNoStack
	}
	if c.Stacks[index].IsEmpty() {
		return ErrEmptyStack
	}

	stack := c.Stacks[index]
	c.Stacks = append(c.Stacks[:index], c.Stacks[index+1:]...)

	// Taking a stack with the gold card refills it with one fresh draw
	// before it changes hands.
	if stack.HasGold() {
		if card, ok := c.Deck.Draw(); ok {
			stack.Push(card)
		}
	}

	c.Players[c.Turn].InsertStack(stack)

	if c.allClaimed() {
		c.endRound()
	} else {
		c.Turn = (c.Turn + 1) % len(c.Players)
	}
	return nil
}

func (c *Coloretto) place(index int) error {
	if index < 0 || index >= len(c.Stacks) {
		return ErrNoStack
	}
	if c.Stacks[index].IsFull() {
		return ErrFullStack
	}

	c.Stacks[index].Push(*c.Current)
	c.Current = nil
	c.Turn = (c.Turn + 1) % len(c.Players)
	return nil
}

func (c *Coloretto) allClaimed() bool {
	for i := range c.Players {
		if !c.Players[i].HasStack() {
			return false
		}
	}
	return true
}

// endRound discards whatever is left on the unclaimed stacks, moves every
// claimed stack into its owner's collection and returns the empty shells to
// play, sorted into the canonical order. Turn keeps its value: the next flip
// belongs to whichever seat it already points at.
func (c *Coloretto) endRound() {
	for i := range c.Stacks {
		c.Stacks[i].Clear()
	}
	for i := range c.Players {
		stack, err := c.Players[i].CollectStack()
		if err != nil {
			continue
		}
		c.Stacks = append(c.Stacks, stack)
	}
	sort.SliceStable(c.Stacks, func(i, j int) bool {
		return stackLess(c.Stacks[i], c.Stacks[j])
	})
}
