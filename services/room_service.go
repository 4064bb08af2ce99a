// services/room_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wfunc/coloretto/coloretto"
	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/persistence"
	"github.com/wfunc/coloretto/room"
	"github.com/wfunc/coloretto/session"
)

// Notifier receives the fresh room snapshot after every successful mutation.
// Defined here to break the import cycle with the broadcast hub.
type Notifier interface {
	NotifyRoom(code string, snapshot []byte)
}

// RoomService owns the read-decode-mutate-encode-write cycle against the
// room store. Load and Save are two separate calls with no version check, so
// concurrent mutations of one room can lose an update; see the RoomStore
// contract.
type RoomService struct {
	store    persistence.RoomStore
	archive  persistence.Archive
	notifier Notifier
}

func NewRoomService(store persistence.RoomStore, archive persistence.Archive) *RoomService {
	return &RoomService{
		store:   store,
		archive: archive,
	}
}

// SetNotifier attaches a snapshot listener. Optional; nil means no pushes.
func (s *RoomService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Create makes a waiting room led by the caller and persists it.
func (s *RoomService) Create(ctx context.Context, user session.User) (*room.Room, error) {
	r := room.New(user)
	encoded, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode room: %w", err)
	}
	if err := s.store.Save(ctx, r.Id.String(), encoded); err != nil {
		return nil, fmt.Errorf("save room: %w", err)
	}
	logger.Log.Infof("Room %s created by %s", r.Id, user)
	return r, nil
}

// Join enrolls the caller into a waiting room.
func (s *RoomService) Join(ctx context.Context, code string, user session.User) (*room.Room, error) {
	return s.update(ctx, code, func(r *room.Room) error {
		return r.Enroll(user)
	})
}

// Leave removes the caller from a waiting room.
func (s *RoomService) Leave(ctx context.Context, code string, user session.User) (*room.Room, error) {
	return s.update(ctx, code, func(r *room.Room) error {
		return r.Remove(user)
	})
}

// Start begins the game, leader permitting, and archives the seating.
func (s *RoomService) Start(ctx context.Context, code string, user session.User) (*room.Room, error) {
	r, err := s.update(ctx, code, func(r *room.Room) error {
		return r.Start(user)
	})
	if err != nil {
		return nil, err
	}

	players := make([]string, len(r.Players))
	for i, u := range r.Players {
		players[i] = u.String()
	}
	if err := s.archive.RecordGameStart(r.Id.String(), players); err != nil {
		// The archive is best-effort; a failed record must not undo a
		// started game.
		logger.Log.Warnf("Failed to archive game start for room %s: %v", r.Id, err)
	}
	logger.Log.Infof("Room %s started with %d players", r.Id, len(r.Players))
	return r, nil
}

// Status reads the room without mutating it.
func (s *RoomService) Status(ctx context.Context, code string) (*room.Room, error) {
	id, err := room.ParseId(code)
	if err != nil {
		return nil, err
	}
	data, err := s.store.Load(ctx, id.String())
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}
	var r room.Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode room: %w", err)
	}
	return &r, nil
}

// Perform applies a turn-authorized game action and archives it.
func (s *RoomService) Perform(ctx context.Context, code string, user session.User, action coloretto.Action) (*room.Room, error) {
	r, err := s.update(ctx, code, func(r *room.Room) error {
		return r.Perform(user, action)
	})
	if err != nil {
		return nil, err
	}

	if err := s.archive.RecordAction(r.Id.String(), user.String(), action.String()); err != nil {
		logger.Log.Warnf("Failed to archive action for room %s: %v", r.Id, err)
	}
	return r, nil
}

// PlayerGames reports how many started games an identity has been seated in.
func (s *RoomService) PlayerGames(user session.User) (int64, error) {
	return s.archive.PlayerGames(user.String())
}

// update is the shared read-modify-write cycle for all mutating operations.
func (s *RoomService) update(ctx context.Context, code string, mutate func(*room.Room) error) (*room.Room, error) {
	id, err := room.ParseId(code)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Load(ctx, id.String())
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}

	var r room.Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode room: %w", err)
	}

	if err := mutate(&r); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("encode room: %w", err)
	}
	if err := s.store.Save(ctx, id.String(), encoded); err != nil {
		return nil, fmt.Errorf("save room: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyRoom(id.String(), encoded)
	}
	return &r, nil
}
