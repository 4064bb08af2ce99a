// persistence/memory.go
package persistence

import (
	"context"
	"sync"
)

// MemoryRoomStore is a map-backed RoomStore for tests and local development.
// It mimics the redis store's contract, including the unguarded
// read-modify-write window between Load and Save.
type MemoryRoomStore struct {
	mutex sync.RWMutex
	rooms map[string][]byte
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{
		rooms: make(map[string][]byte),
	}
}

func (s *MemoryRoomStore) Load(ctx context.Context, code string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, exists := s.rooms[roomKey(code)]
	if !exists {
		return nil, ErrNotFound
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

func (s *MemoryRoomStore) Save(ctx context.Context, code string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.rooms[roomKey(code)] = copied
	return nil
}

func (s *MemoryRoomStore) Close() error {
	return nil
}
