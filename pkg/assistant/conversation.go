package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/YuvrajZende/patientcare-flows/pkg/models"
)

// ErrBusy signals a send while a reply is still pending. The conversation
// handles one exchange at a time.
var ErrBusy = errors.New("assistant is replying")

// ErrEmptyMessage signals a blank or whitespace-only send.
var ErrEmptyMessage = errors.New("message text is required")

// DefaultReplyDelay simulates assistant thinking time.
const DefaultReplyDelay = time.Second

var msgSeq uint64

func msgID() string {
	return fmt.Sprintf("msg-%d-%d", time.Now().UTC().UnixNano(), atomic.AddUint64(&msgSeq, 1))
}

// Conversation is the message transcript plus the single in-flight exchange.
// After Send the conversation is busy until the delayed reply lands or Close
// cancels it.
type Conversation struct {
	mu        sync.Mutex
	messages  []models.Message
	busy      bool
	responder *Responder
	delay     time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConversation opens a conversation seeded with the assistant greeting.
// delay <= 0 falls back to DefaultReplyDelay.
func NewConversation(responder *Responder, delay time.Duration) *Conversation {
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Conversation{
		responder: responder,
		delay:     delay,
		ctx:       ctx,
		cancel:    cancel,
	}
	c.messages = append(c.messages, models.Message{
		ID:     msgID(),
		Sender: models.SenderAssistant,
		Text:   Greeting,
		TS:     time.Now().UTC().UnixNano(),
	})
	return c
}

// Send appends the user message and schedules the assistant reply after the
// configured delay. Returns ErrBusy while a previous reply is pending and
// ErrEmptyMessage for blank input; neither mutates the transcript.
func (c *Conversation) Send(text string) (models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Message{}, ErrEmptyMessage
	}
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return models.Message{}, ErrBusy
	}
	msg := models.Message{
		ID:     msgID(),
		Sender: models.SenderUser,
		Text:   trimmed,
		TS:     time.Now().UTC().UnixNano(),
	}
	c.messages = append(c.messages, msg)
	c.busy = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.reply(trimmed)
	return msg, nil
}

// reply waits out the thinking delay and appends the canned response. A
// Close during the delay drops the reply and leaves the transcript as is.
func (c *Conversation) reply(input string) {
	defer c.wg.Done()
	t := time.NewTimer(c.delay)
	defer t.Stop()
	select {
	case <-c.ctx.Done():
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
		return
	case <-t.C:
	}
	text := c.responder.Respond(input)
	c.mu.Lock()
	c.messages = append(c.messages, models.Message{
		ID:     msgID(),
		Sender: models.SenderAssistant,
		Text:   text,
		TS:     time.Now().UTC().UnixNano(),
	})
	c.busy = false
	c.mu.Unlock()
}

// Busy reports whether a reply is pending.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Messages returns a copy of the transcript in append order.
func (c *Conversation) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Close cancels any pending reply and waits for the reply goroutine to
// finish. The transcript stays readable after Close.
func (c *Conversation) Close() {
	c.cancel()
	c.wg.Wait()
}
