package notification

import (
	"testing"

	"campushire/models"
)

type stubChannel struct{ name string }

func (s *stubChannel) Push(n *models.Notification) error { return nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	ch := &stubChannel{name: "a"}

	r.Register("u42", ch)

	got, ok := r.Lookup("u42")
	if !ok {
		t.Fatal("expected a channel for u42")
	}
	if got != ch {
		t.Fatal("lookup returned a different channel")
	}
}

func TestRegistry_LastWriterWins(t *testing.T) {
	r := NewRegistry()
	chA := &stubChannel{name: "a"}
	chB := &stubChannel{name: "b"}

	r.Register("u42", chA)
	r.Register("u42", chB)

	got, ok := r.Lookup("u42")
	if !ok {
		t.Fatal("expected a channel for u42")
	}
	if got != chB {
		t.Fatal("expected the later registration to win")
	}
}

func TestRegistry_UnregisterAbsentIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Unregister("never-registered")

	if _, ok := r.Lookup("never-registered"); ok {
		t.Fatal("expected no channel after unregister")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.Register("u42", &stubChannel{})
	r.Unregister("u42")

	if _, ok := r.Lookup("u42"); ok {
		t.Fatal("expected mapping to be removed")
	}
}

func TestRegistry_ReleaseKeepsNewerChannel(t *testing.T) {
	r := NewRegistry()
	chA := &stubChannel{name: "a"}
	chB := &stubChannel{name: "b"}

	r.Register("u42", chA)
	r.Register("u42", chB)

	// A stale close handler for the old connection must not evict the new one.
	r.Release("u42", chA)

	got, ok := r.Lookup("u42")
	if !ok || got != chB {
		t.Fatal("expected the newer channel to survive a stale release")
	}

	r.Release("u42", chB)
	if _, ok := r.Lookup("u42"); ok {
		t.Fatal("expected release of the current channel to remove the mapping")
	}
}

func TestRegistry_ActiveCount(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", &stubChannel{})
	r.Register("u2", &stubChannel{})
	r.Register("u1", &stubChannel{}) // replacement, not a new entry

	if got := r.ActiveCount(); got != 2 {
		t.Fatalf("expected 2 active connections, got %d", got)
	}
}
