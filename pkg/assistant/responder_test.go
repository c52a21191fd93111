package assistant

import (
	"strings"
	"testing"

	"github.com/YuvrajZende/patientcare-flows/pkg/reminders"
)

func TestRuleMatching(t *testing.T) {
	r := NewResponder(nil)
	cases := []struct {
		input string
		want  string
	}{
		{"When should I take my MEDICATION?", "prenatal vitamins"},
		{"i feel so tired lately", "Fatigue is common"},
		{"bad cramp this morning", "severe pain"},
		{"what should I eat", "folate, iron, calcium"},
		{"when is my next doctor visit", "next scheduled appointment"},
		{"thank you!", "You're welcome"},
		// "weather" contains "eat", so the nutrition rule fires
		{"what's the weather like", "folate, iron, calcium"},
		{"hello there", "pregnancy journey"},
		{"", "pregnancy journey"},
	}
	for _, c := range cases {
		got := r.Respond(c.input)
		if !strings.Contains(got, c.want) {
			t.Fatalf("input %q: reply %q does not contain %q", c.input, got, c.want)
		}
	}
}

// The first matching rule wins; "medication pain" hits the medication bucket
// because it is evaluated earlier.
func TestRuleOrder(t *testing.T) {
	r := NewResponder(nil)
	got := r.Respond("medication pain")
	if !strings.Contains(got, "prenatal vitamins") {
		t.Fatalf("expected medication rule to win, got %q", got)
	}
}

func TestReminderRuleSideEffect(t *testing.T) {
	engine := reminders.New()
	r := NewResponder(engine)

	got := r.Respond("please remind me")
	if !strings.Contains(got, "added a new reminder") {
		t.Fatalf("unexpected reply: %q", got)
	}
	items := engine.List()
	if len(items) != 1 {
		t.Fatalf("expected 1 reminder created, got %d", len(items))
	}
	if items[0].Title != "New reminder from chat" || items[0].Time != "12:00" {
		t.Fatalf("unexpected chat reminder: %+v", items[0])
	}
}

func TestNoSideEffectWithoutEngine(t *testing.T) {
	r := NewResponder(nil)
	got := r.Respond("set a reminder")
	if !strings.Contains(got, "added a new reminder") {
		t.Fatalf("unexpected reply: %q", got)
	}
}
