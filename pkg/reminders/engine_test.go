package reminders

import (
	"errors"
	"testing"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
)

func TestAddAssignsUniqueIDs(t *testing.T) {
	e := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		r, err := e.Add(Draft{Title: "water"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestAddDefaults(t *testing.T) {
	e := New()
	r, err := e.Add(Draft{Title: "stretch"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if r.Kind != models.ReminderTask {
		t.Fatalf("expected task default, got %q", r.Kind)
	}
	if r.Date == "" {
		t.Fatalf("expected default date")
	}
	if r.Completed {
		t.Fatalf("new reminder must start incomplete")
	}
}

func TestAddValidation(t *testing.T) {
	e := New()
	if _, err := e.Add(Draft{}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := e.Add(Draft{Title: "x", Recur: "not a cron"}); !errors.Is(err, ErrInvalidRecur) {
		t.Fatalf("expected ErrInvalidRecur, got %v", err)
	}
	if _, err := e.Add(Draft{Title: "x", Recur: "0 8 * * *"}); err != nil {
		t.Fatalf("valid cron rejected: %v", err)
	}
}

func TestToggleComplete(t *testing.T) {
	e := New()
	r, _ := e.Add(Draft{Title: "vitamin"})

	got, err := e.ToggleComplete(r.ID)
	if err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	if !got.Completed {
		t.Fatalf("expected completed after toggle")
	}
	got, _ = e.ToggleComplete(r.ID)
	if got.Completed {
		t.Fatalf("double toggle must restore original state")
	}
}

func TestToggleAbsentIsError(t *testing.T) {
	e := New()
	if _, err := e.ToggleComplete("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrderAndActive(t *testing.T) {
	e := New()
	a, _ := e.Add(Draft{Title: "first"})
	b, _ := e.Add(Draft{Title: "second"})
	c, _ := e.Add(Draft{Title: "third"})

	all := e.List()
	if len(all) != 3 || all[0].ID != a.ID || all[1].ID != b.ID || all[2].ID != c.ID {
		t.Fatalf("insertion order lost: %+v", all)
	}

	if _, err := e.ToggleComplete(b.ID); err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	active := e.ListActive()
	if len(active) != 2 || active[0].ID != a.ID || active[1].ID != c.ID {
		t.Fatalf("unexpected active list: %+v", active)
	}
}

func TestListReturnsCopy(t *testing.T) {
	e := New()
	_, _ = e.Add(Draft{Title: "original"})
	out := e.List()
	out[0].Title = "tampered"
	if e.List()[0].Title != "original" {
		t.Fatalf("List must return a copy")
	}
}

func TestSeed(t *testing.T) {
	e := New()
	e.Seed()
	all := e.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 seeds, got %d", len(all))
	}
	if all[0].Title != "Prenatal Vitamin" || all[0].Kind != models.ReminderMedication {
		t.Fatalf("unexpected first seed: %+v", all[0])
	}
	if all[0].Recur == "" {
		t.Fatalf("vitamin seed must recur daily")
	}
	if all[1].Title != "OB/GYN Checkup" || all[1].Kind != models.ReminderAppointment {
		t.Fatalf("unexpected second seed: %+v", all[1])
	}
	if all[2].Time != "All day" {
		t.Fatalf("unexpected third seed: %+v", all[2])
	}
	if len(e.ListActive()) != 3 {
		t.Fatalf("all seeds must start active")
	}
}
