package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/wfunc/coloretto/coloretto"
	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/persistence"
	"github.com/wfunc/coloretto/room"
	"github.com/wfunc/coloretto/session"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockArchive records calls for assertions.
type MockArchive struct {
	Starts  []string
	Actions []string
}

func (a *MockArchive) RecordGameStart(roomID string, players []string) error {
	a.Starts = append(a.Starts, roomID)
	return nil
}

func (a *MockArchive) RecordAction(roomID, player, action string) error {
	a.Actions = append(a.Actions, action)
	return nil
}

func (a *MockArchive) PlayerGames(player string) (int64, error) {
	return int64(len(a.Starts)), nil
}

func (a *MockArchive) Close() error { return nil }

// MockNotifier captures pushed snapshots.
type MockNotifier struct {
	Codes []string
}

func (n *MockNotifier) NotifyRoom(code string, snapshot []byte) {
	n.Codes = append(n.Codes, code)
}

func newTestService() (*RoomService, *persistence.MemoryRoomStore, *MockArchive) {
	store := persistence.NewMemoryRoomStore()
	archive := &MockArchive{}
	return NewRoomService(store, archive), store, archive
}

func TestCreateAndStatus(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, session.User("alice"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	loaded, err := service.Status(ctx, created.Id.String())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if loaded.Id != created.Id {
		t.Errorf("Expected room %s, got %s", created.Id, loaded.Id)
	}
	if !loaded.Status.Waiting() {
		t.Error("Fresh room should be waiting")
	}
}

func TestStatusErrors(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.Status(ctx, "nope!"); !errors.Is(err, room.ErrInvalid) {
		t.Errorf("Malformed code should fail with ErrInvalid, got %v", err)
	}
	if _, err := service.Status(ctx, "AbCd"); !errors.Is(err, persistence.ErrNotFound) {
		t.Errorf("Missing room should fail with ErrNotFound, got %v", err)
	}
}

func TestFullFlow(t *testing.T) {
	service, _, archive := newTestService()
	ctx := context.Background()
	notifier := &MockNotifier{}
	service.SetNotifier(notifier)

	created, err := service.Create(ctx, session.User("alice"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	code := created.Id.String()

	r, err := service.Join(ctx, code, session.User("bob"))
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if len(r.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(r.Players))
	}

	r, err = service.Start(ctx, code, session.User("alice"))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if r.Status.Waiting() {
		t.Fatal("Started room should be playing")
	}
	if len(archive.Starts) != 1 {
		t.Errorf("Start should be archived once, got %d", len(archive.Starts))
	}

	actor := r.Players[r.Status.Playing.Turn]
	r, err = service.Perform(ctx, code, actor, coloretto.FlipAction())
	if err != nil {
		t.Fatalf("Perform failed: %v", err)
	}
	if r.Status.Playing.Current == nil {
		t.Error("Flip should leave a card pending")
	}
	if len(archive.Actions) != 1 || archive.Actions[0] != "flip" {
		t.Errorf("Action should be archived, got %v", archive.Actions)
	}

	// Join, start and perform each pushed a snapshot.
	if len(notifier.Codes) != 3 {
		t.Errorf("Expected 3 notifications, got %d", len(notifier.Codes))
	}

	// Mutations persist across reads.
	loaded, err := service.Status(ctx, code)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if loaded.Status.Waiting() || loaded.Status.Playing.Current == nil {
		t.Error("Persisted room should carry the flipped card")
	}
}

func TestPerformRejectionDoesNotPersist(t *testing.T) {
	service, _, archive := newTestService()
	ctx := context.Background()

	created, _ := service.Create(ctx, session.User("alice"))
	code := created.Id.String()
	service.Join(ctx, code, session.User("bob"))
	started, _ := service.Start(ctx, code, session.User("alice"))

	waiter := started.Players[(started.Status.Playing.Turn+1)%2]
	if _, err := service.Perform(ctx, code, waiter, coloretto.FlipAction()); !errors.Is(err, room.ErrAwaitTurn) {
		t.Fatalf("Out-of-turn perform should fail with ErrAwaitTurn, got %v", err)
	}

	loaded, _ := service.Status(ctx, code)
	if loaded.Status.Playing.Current != nil {
		t.Error("Rejected action should not change the stored room")
	}
	if len(archive.Actions) != 0 {
		t.Error("Rejected action should not be archived")
	}
}

// TestLostUpdateRace constructs the read-modify-write race deterministically:
// two actors read the same stored state, both mutate and save, and the
// second write silently discards the first. This documents the historical
// behavior of the persistence contract.
func TestLostUpdateRace(t *testing.T) {
	service, store, _ := newTestService()
	ctx := context.Background()

	created, _ := service.Create(ctx, session.User("alice"))
	code := created.Id.String()

	// Both requests read the same snapshot.
	data, err := store.Load(ctx, code)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	var first, second room.Room
	json.Unmarshal(data, &first)
	json.Unmarshal(data, &second)

	// Request one enrolls bob, request two enrolls carol.
	if err := first.Enroll(session.User("bob")); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if err := second.Enroll(session.User("carol")); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	firstDoc, _ := json.Marshal(&first)
	secondDoc, _ := json.Marshal(&second)
	store.Save(ctx, code, firstDoc)
	store.Save(ctx, code, secondDoc)

	loaded, err := service.Status(ctx, code)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if len(loaded.Players) != 2 {
		t.Fatalf("Lost update: expected 2 players in the winning write, got %d", len(loaded.Players))
	}
	if loaded.Players[1] != session.User("carol") {
		t.Errorf("The second write should win, got %v", loaded.Players)
	}
}
