// broadcast/broadcast.go
package broadcast

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wfunc/coloretto/logger"
)

// Conn is the minimal send surface the hub needs from a websocket
// connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub fans fresh room snapshots out to whoever is watching a room. The
// snapshot is the same JSON document the store holds, so watchers see
// exactly the persisted state.
type Hub struct {
	mutex    sync.RWMutex
	watchers map[string]map[Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[string]map[Conn]struct{}),
	}
}

// Watch registers a connection as a watcher of the room code.
func (h *Hub) Watch(code string, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.watchers[code] == nil {
		h.watchers[code] = make(map[Conn]struct{})
	}
	h.watchers[code][conn] = struct{}{}
}

// Leave deregisters a watcher. The connection itself is closed by the caller.
func (h *Hub) Leave(code string, conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.watchers[code]; exists {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.watchers, code)
		}
	}
}

// NotifyRoom pushes a snapshot to every watcher of the room. Connections
// that fail to accept the write are dropped and closed.
func (h *Hub) NotifyRoom(code string, snapshot []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.watchers[code] {
		if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			logger.Log.Warnf("Dropping watcher of room %s: %v", code, err)
			delete(h.watchers[code], conn)
			conn.Close()
		}
	}
	if len(h.watchers[code]) == 0 {
		delete(h.watchers, code)
	}
}

// Watchers reports the total number of registered watcher connections.
func (h *Hub) Watchers() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	total := 0
	for _, conns := range h.watchers {
		total += len(conns)
	}
	return total
}
