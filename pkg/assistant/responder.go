// Package assistant implements the canned maternal-health chat responder.
// Replies are keyword matched in a fixed order; the first matching rule wins
// and the final rule is a catch-all, so every input produces a reply.
package assistant

import (
	"strings"

	"github.com/YuvrajZende/patientcare-flows/pkg/logger"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/reminders"
	"github.com/YuvrajZende/patientcare-flows/pkg/telemetry"
)

// Greeting is the assistant's opening message in a fresh conversation.
const Greeting = "Hello! I'm your pregnancy assistant. I can help you track medications, appointments, and provide advice for your maternal health journey."

// rule is one keyword bucket. Name feeds the replies metric label.
type rule struct {
	name     string
	keywords []string
	reply    string
}

// rules are evaluated top to bottom against the lowercased input. Order
// matters: "reminder" contains "remind", so the reminder rule sits after the
// buckets whose keywords could shadow it.
var rules = []rule{
	{
		name:     "medication",
		keywords: []string{"medicine", "medication", "pill"},
		reply:    "According to your pregnancy stage, it's important to take your prenatal vitamins daily. Would you like me to set a reminder for your medications?",
	},
	{
		name:     "fatigue",
		keywords: []string{"tired", "fatigue", "exhausted"},
		reply:    "Fatigue is common during pregnancy. Try to rest when you can, stay hydrated, and maintain a balanced diet rich in iron. Would you like me to suggest some pregnancy-safe energy-boosting foods?",
	},
	{
		name:     "pain",
		keywords: []string{"pain", "cramp"},
		reply:    "If you're experiencing severe pain, please contact your healthcare provider immediately or use the SOS feature. For mild cramping, rest and hydration may help, but always consult your doctor about any concerns.",
	},
	{
		name:     "nutrition",
		keywords: []string{"food", "eat", "diet"},
		reply:    "For a healthy pregnancy, focus on whole foods rich in folate, iron, calcium, and protein. Foods like leafy greens, lean proteins, whole grains, and dairy products are excellent choices. Would you like specific meal suggestions?",
	},
	{
		name:     "appointment",
		keywords: []string{"appointment", "doctor", "visit"},
		reply:    "Your next scheduled appointment is on the calendar. Regular prenatal visits are important to monitor both your health and your baby's development. Is there something specific you'd like to discuss with your doctor?",
	},
	{
		name:     "reminder",
		keywords: []string{"remind", "reminder"},
		reply:    "I've added a new reminder for you. You can customize it in the reminders section.",
	},
	{
		name:     "thanks",
		keywords: []string{"thank"},
		reply:    "You're welcome! I'm here to help with your pregnancy journey. Is there anything else you'd like to know?",
	},
}

const fallbackReply = "I'm here to help with your pregnancy journey. You can ask me about your medications, appointments, health concerns, or nutrition advice. I can also set reminders for you."

// Responder turns a user message into a canned reply. The optional reminder
// engine receives the side effect of the reminder rule.
type Responder struct {
	engine *reminders.Engine
}

func NewResponder(engine *reminders.Engine) *Responder {
	return &Responder{engine: engine}
}

// Respond matches the input against the rule table, case-insensitively, and
// returns the reply text. The reminder rule additionally creates a task
// reminder as a side effect when an engine is wired.
func (r *Responder) Respond(input string) string {
	q := strings.ToLower(input)
	for _, rl := range rules {
		if !matches(q, rl.keywords) {
			continue
		}
		if rl.name == "reminder" {
			r.addChatReminder()
		}
		telemetry.AssistantReplies.WithLabelValues(rl.name).Inc()
		return rl.reply
	}
	telemetry.AssistantReplies.WithLabelValues("fallback").Inc()
	return fallbackReply
}

func matches(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

func (r *Responder) addChatReminder() {
	if r.engine == nil {
		return
	}
	rem, err := r.engine.Add(reminders.Draft{
		Kind:  models.ReminderTask,
		Title: "New reminder from chat",
		Time:  "12:00",
	})
	if err != nil {
		logger.Error("chat_reminder_failed", "error", err)
		return
	}
	logger.Info("chat_reminder_added", "id", rem.ID)
}
