package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/xaca/triviaboard-go/internal/model"
	"github.com/xaca/triviaboard-go/internal/testutil"
)

func receiveOrFail(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestBroadcaster_BroadcastTeamsUpdate(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("session-1")
	defer manager.RemoveHub("session-1")

	client := NewClient(hub, "host")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastTeamsUpdate("session-1", []*model.Team{
		{ID: "t1", Name: "Swift Fox", Score: 300},
		{ID: "t2", Name: "Wild Wolf", Score: -200},
	})

	msg := receiveOrFail(t, client)

	if !strings.HasPrefix(msg, "event: teams-update\n") {
		t.Errorf("message missing event name: %q", msg)
	}
	expected := `data: [{"id":"t1","name":"Swift Fox","score":300},{"id":"t2","name":"Wild Wolf","score":-200}]`
	if !strings.Contains(msg, expected) {
		t.Errorf("message payload mismatch\ngot:  %q\nwant substring: %q", msg, expected)
	}
}

func TestBroadcaster_BroadcastTeamsUpdateEmptyList(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("session-1")
	defer manager.RemoveHub("session-1")

	client := NewClient(hub, "host")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastTeamsUpdate("session-1", nil)

	msg := receiveOrFail(t, client)
	if !strings.Contains(msg, "data: []") {
		t.Errorf("expected empty JSON array payload, got %q", msg)
	}
}

func TestBroadcaster_BroadcastBoardUpdate(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	hub := manager.GetOrCreateHub("session-1")
	defer manager.RemoveHub("session-1")

	client := NewClient(hub, "team-a")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	broadcaster.BroadcastBoardUpdate("session-1", model.Position{Row: 2, Col: 3})

	msg := receiveOrFail(t, client)

	if !strings.HasPrefix(msg, "event: board-update\n") {
		t.Errorf("message missing event name: %q", msg)
	}
	if !strings.Contains(msg, `data: {"row":2,"col":3}`) {
		t.Errorf("message payload mismatch: %q", msg)
	}
}

func TestBroadcaster_NoHubIsNoop(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, testutil.NopLogger())

	// No hub exists for the session; both broadcasts must be silent no-ops
	broadcaster.BroadcastTeamsUpdate("missing", []*model.Team{{ID: "t1"}})
	broadcaster.BroadcastBoardUpdate("missing", model.Position{Row: 0, Col: 0})
}
