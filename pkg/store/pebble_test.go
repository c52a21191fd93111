package store

import (
	"fmt"
	"testing"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
)

func openTestStore(t *testing.T) {
	t.Helper()
	logger.Init()
	if Ready() {
		_ = Close()
	}
	if err := Open(t.TempDir()); err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })
}

func TestSessionRoundTrip(t *testing.T) {
	openTestStore(t)

	if _, ok, err := GetSession(); err != nil || ok {
		t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
	}
	if err := SaveSession([]byte(`{"user":"a"}`)); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	raw, ok, err := GetSession()
	if err != nil || !ok {
		t.Fatalf("GetSession failed: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"user":"a"}` {
		t.Fatalf("unexpected session payload: %s", raw)
	}

	// overwrite replaces the record
	if err := SaveSession([]byte(`{"user":"b"}`)); err != nil {
		t.Fatalf("SaveSession overwrite failed: %v", err)
	}
	raw, _, _ = GetSession()
	if string(raw) != `{"user":"b"}` {
		t.Fatalf("expected overwritten session, got %s", raw)
	}
}

func TestClearSessionIdempotent(t *testing.T) {
	openTestStore(t)

	if err := SaveSession([]byte(`{}`)); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if err := ClearSession(); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	if _, ok, _ := GetSession(); ok {
		t.Fatalf("session still present after clear")
	}
	// clearing an absent session succeeds
	if err := ClearSession(); err != nil {
		t.Fatalf("second ClearSession failed: %v", err)
	}
}

func TestAppendEventOrdering(t *testing.T) {
	openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := AppendEvent([]byte(fmt.Sprintf(`{"n":%d}`, i))); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}
	evs, err := ListEvents()
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(evs) != 5 {
		t.Fatalf("expected 5 events, got %d", len(evs))
	}
	for i, ev := range evs {
		want := fmt.Sprintf(`{"n":%d}`, i)
		if ev != want {
			t.Fatalf("event %d out of order: got %s want %s", i, ev, want)
		}
	}

	limited, err := ListEvents(2)
	if err != nil {
		t.Fatalf("ListEvents(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(limited))
	}
}

func TestNotOpenedErrors(t *testing.T) {
	if Ready() {
		_ = Close()
	}
	if err := SaveSession([]byte(`{}`)); err == nil {
		t.Fatalf("expected error when store is closed")
	}
	if _, _, err := GetSession(); err == nil {
		t.Fatalf("expected error when store is closed")
	}
	if err := AppendEvent([]byte(`{}`)); err == nil {
		t.Fatalf("expected error when store is closed")
	}
}
