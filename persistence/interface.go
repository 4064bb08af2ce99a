// persistence/interface.go
package persistence

import (
	"context"
	"errors"
)

// RoomStore holds one serialized room document per code. Load and Save are
// separate, non-transactional calls: callers doing read-modify-write get no
// version check, so two concurrent mutations of the same room can lose the
// first write. See DESIGN.md for why that behavior is kept.
type RoomStore interface {
	Load(ctx context.Context, code string) ([]byte, error)
	Save(ctx context.Context, code string, data []byte) error
	Close() error
}

// Archive records played games for later inspection. It is write-mostly and
// strictly off the hot path of rule evaluation.
type Archive interface {
	RecordGameStart(roomID string, players []string) error
	RecordAction(roomID, player, action string) error
	PlayerGames(player string) (int64, error)
	Close() error
}

// ErrNotFound is returned by Load when no room exists under the code.
var ErrNotFound = errors.New("record not found")

// roomKey forms the storage key for a room code.
func roomKey(code string) string {
	return "game/" + code
}
