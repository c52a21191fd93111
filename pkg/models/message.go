package models

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in the assistant conversation. The sequence is
// append-only; insertion order is display order.
type Message struct {
	ID     string `json:"id"`
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	// TS is the creation timestamp (ns).
	TS int64 `json:"ts"`
}
