package broadcast

import (
	"errors"
	"os"
	"testing"

	"github.com/wfunc/coloretto/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockConn is a test double for the Conn interface.
type MockConn struct {
	Messages [][]byte
	Fail     bool
	Closed   bool
}

func (c *MockConn) WriteMessage(messageType int, data []byte) error {
	if c.Fail {
		return errors.New("write failed")
	}
	c.Messages = append(c.Messages, data)
	return nil
}

func (c *MockConn) Close() error {
	c.Closed = true
	return nil
}

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	conn1 := &MockConn{}
	conn2 := &MockConn{}
	other := &MockConn{}

	hub.Watch("AbCd", conn1)
	hub.Watch("AbCd", conn2)
	hub.Watch("WxYz", other)

	hub.NotifyRoom("AbCd", []byte("snapshot"))

	if len(conn1.Messages) != 1 || len(conn2.Messages) != 1 {
		t.Error("Every watcher of the room should receive the snapshot")
	}
	if len(other.Messages) != 0 {
		t.Error("Watchers of other rooms should receive nothing")
	}
	if hub.Watchers() != 3 {
		t.Errorf("Expected 3 watchers, got %d", hub.Watchers())
	}
}

func TestHubDropsFailedWatchers(t *testing.T) {
	hub := NewHub()
	good := &MockConn{}
	bad := &MockConn{Fail: true}

	hub.Watch("AbCd", good)
	hub.Watch("AbCd", bad)

	hub.NotifyRoom("AbCd", []byte("snapshot"))

	if !bad.Closed {
		t.Error("A watcher that fails to accept a write should be closed")
	}
	if hub.Watchers() != 1 {
		t.Errorf("Expected 1 watcher after the drop, got %d", hub.Watchers())
	}

	// The surviving watcher keeps receiving.
	hub.NotifyRoom("AbCd", []byte("again"))
	if len(good.Messages) != 2 {
		t.Errorf("Expected 2 messages on the surviving watcher, got %d", len(good.Messages))
	}
}

func TestHubLeave(t *testing.T) {
	hub := NewHub()
	conn := &MockConn{}

	hub.Watch("AbCd", conn)
	hub.Leave("AbCd", conn)

	if hub.Watchers() != 0 {
		t.Errorf("Expected no watchers after leave, got %d", hub.Watchers())
	}

	hub.NotifyRoom("AbCd", []byte("snapshot"))
	if len(conn.Messages) != 0 {
		t.Error("A departed watcher should receive nothing")
	}

	// Leaving twice is harmless.
	hub.Leave("AbCd", conn)
}
