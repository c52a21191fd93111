package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/YuvrajZende/patientcare-flows/pkg/assistant"
	"github.com/YuvrajZende/patientcare-flows/pkg/models"
	"github.com/YuvrajZende/patientcare-flows/pkg/utils"
)

// RegisterAssistant registers HTTP handlers for the chat transcript.
func RegisterAssistant(r *mux.Router) {
	r.HandleFunc("/assistant/messages", listMessages).Methods(http.MethodGet)
	r.HandleFunc("/assistant/messages", sendMessage).Methods(http.MethodPost)
}

func listMessages(w http.ResponseWriter, _ *http.Request) {
	msgs := deps.Conversation.Messages()
	_ = utils.JSONWrite(w, http.StatusOK, struct {
		Messages []models.Message `json:"messages"`
		Busy     bool             `json:"busy"`
	}{Messages: msgs, Busy: deps.Conversation.Busy()})
}

// sendMessage accepts the user message and returns it immediately; the
// assistant reply lands in the transcript after the thinking delay. A send
// while a reply is pending answers 409.
func sendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeStrict(r, &body); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	msg, err := deps.Conversation.Send(body.Text)
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			utils.JSONError(w, http.StatusConflict, err.Error())
			return
		}
		utils.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	slog.Info("assistant_message_sent", "id", msg.ID)
	_ = utils.JSONWrite(w, http.StatusAccepted, msg)
}
