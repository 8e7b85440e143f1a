package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/transport/http/middleware"
	"github.com/campusconnect/backend/pkg/validator"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListMessages returns every message sent or received by the caller,
// oldest first.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	messages, err := h.messageService.ListMessages(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list messages: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Conversation returns the messages exchanged with one contact.
func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	contactID, err := uuid.Parse(r.PathValue("contactID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid contact ID")
		return
	}

	messages, err := h.messageService.Conversation(r.Context(), userID, contactID)
	if err != nil {
		log.Printf("ERROR list conversation: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		ReceiverID uuid.UUID `json:"receiver_id"`
		Content    string    `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	msg, err := h.messageService.Send(r.Context(), userID, input.ReceiverID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyContent):
			writeError(w, http.StatusBadRequest, "MISSING_CONTENT", "Message content is required")
		case errors.Is(err, service.ErrNoRecipient):
			writeError(w, http.StatusBadRequest, "MISSING_RECEIVER", "receiver_id is required")
		case errors.Is(err, service.ErrCannotMessageSelf):
			writeError(w, http.StatusBadRequest, "CANNOT_MESSAGE_SELF", "Cannot send a message to yourself")
		case errors.Is(err, service.ErrContactNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Contact not found")
		default:
			log.Printf("ERROR send message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}
