package assistant

import (
	"errors"
	"testing"
	"time"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
)

func newTestConversation() *Conversation {
	return NewConversation(NewResponder(nil), 10*time.Millisecond)
}

func waitIdle(t *testing.T, c *Conversation) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.Busy() {
		if time.Now().After(deadline) {
			t.Fatalf("conversation never became idle")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestGreetingSeed(t *testing.T) {
	c := newTestConversation()
	defer c.Close()

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected greeting seed, got %d messages", len(msgs))
	}
	if msgs[0].Sender != models.SenderAssistant || msgs[0].Text != Greeting {
		t.Fatalf("unexpected greeting: %+v", msgs[0])
	}
}

func TestSendAppendsAndReplies(t *testing.T) {
	c := newTestConversation()
	defer c.Close()

	msg, err := c.Send("  thank you  ")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if msg.Text != "thank you" {
		t.Fatalf("input not trimmed: %q", msg.Text)
	}
	if !c.Busy() {
		t.Fatalf("conversation must be busy until the reply lands")
	}

	waitIdle(t, c)
	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected greeting+user+reply, got %d", len(msgs))
	}
	if msgs[1].Sender != models.SenderUser || msgs[2].Sender != models.SenderAssistant {
		t.Fatalf("unexpected sender order: %+v", msgs)
	}
}

func TestSendWhileBusy(t *testing.T) {
	c := NewConversation(NewResponder(nil), 200*time.Millisecond)
	defer c.Close()

	if _, err := c.Send("hello"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if _, err := c.Send("again"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	// the rejected send must not land in the transcript
	if got := len(c.Messages()); got != 2 {
		t.Fatalf("expected 2 messages, got %d", got)
	}

	waitIdle(t, c)
	if _, err := c.Send("after reply"); err != nil {
		t.Fatalf("Send after reply failed: %v", err)
	}
}

func TestSendEmpty(t *testing.T) {
	c := newTestConversation()
	defer c.Close()

	if _, err := c.Send("   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if got := len(c.Messages()); got != 1 {
		t.Fatalf("empty send must not mutate the transcript, got %d messages", got)
	}
}

func TestCloseCancelsPendingReply(t *testing.T) {
	c := NewConversation(NewResponder(nil), time.Hour)

	if _, err := c.Send("hello"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	c.Close()

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("canceled reply must not land, got %d messages", len(msgs))
	}
	if c.Busy() {
		t.Fatalf("conversation still busy after Close")
	}
}
