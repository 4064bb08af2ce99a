// room/room.go
//
// Package room wraps the coloretto engine into a multiplayer session: a
// roster of identities behind a short code, with enrollment while waiting,
// a leader-gated start and turn-authorized action dispatch once playing.
// Like the engine it is pure state; persistence belongs to the caller.
package room

import (
	"fmt"
	"math/rand"

	"github.com/wfunc/coloretto/coloretto"
	"github.com/wfunc/coloretto/session"
)

// Room is one game session. Players is the enrollment roster while waiting;
// Start reshuffles it into the seat order, so once playing the slice index is
// the engine seat, not the join order.
type Room struct {
	Id      RoomId         `json:"id"`
	Players []session.User `json:"players"`
	Status  Status         `json:"status"`
}

// New creates a waiting room with a fresh code. The creator occupies roster
// position 0 and is thereby the leader.
func New(creator session.User) *Room {
	return &Room{
		Id:      GenerateId(),
		Players: []session.User{creator},
		Status:  Status{},
	}
}

// Enroll appends a new identity to the roster of a waiting room.
func (r *Room) Enroll(user session.User) error {
	if !r.Status.Waiting() {
		return ErrWrongState
	}
	if r.contains(user) {
		return ErrAlreadyJoined
	}
	if len(r.Players) >= 5 {
		return ErrFull
	}
	r.Players = append(r.Players, user)
	return nil
}

// Remove drops every roster entry matching the identity. Removing an absent
// identity is not an error.
func (r *Room) Remove(user session.User) error {
	if !r.Status.Waiting() {
		return ErrWrongState
	}
	kept := r.Players[:0]
	for _, u := range r.Players {
		if u != user {
			kept = append(kept, u)
		}
	}
	r.Players = kept
	return nil
}

// Start shuffles the roster into seats and brings up an engine sized to it.
// Only the current leader may start, and only with at least two enrolled.
func (r *Room) Start(user session.User) error {
	if len(r.Players) == 0 || r.Players[0] != user {
		return ErrNotLeader
	}
	if !r.Status.Waiting() {
		return ErrWrongState
	}
	if len(r.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	rand.Shuffle(len(r.Players), func(i, j int) {
		r.Players[i], r.Players[j] = r.Players[j], r.Players[i]
	})

	game, err := coloretto.New(len(r.Players))
	if err != nil {
		return fmt.Errorf("coloretto: %w", err)
	}
	r.Status = Status{Playing: game}
	return nil
}

// Perform dispatches an action into the engine after checking that the
// acting identity's seat matches the engine's turn pointer.
func (r *Room) Perform(user session.User, action coloretto.Action) error {
	if r.Status.Waiting() {
		return ErrWrongState
	}
	if r.seat(user) != r.Status.Playing.Turn {
		return ErrAwaitTurn
	}
	if err := r.Status.Playing.Perform(action); err != nil {
		return fmt.Errorf("coloretto: %w", err)
	}
	return nil
}

func (r *Room) contains(user session.User) bool {
	return r.seat(user) >= 0
}

// seat returns the roster index of the identity, -1 if absent.
func (r *Room) seat(user session.User) int {
	for i, u := range r.Players {
		if u == user {
			return i
		}
	}
	return -1
}
