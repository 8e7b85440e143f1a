package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/transport/http/middleware"
	"github.com/campusconnect/backend/pkg/validator"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// Feed serves the engine's current snapshot, newest first.
func (h *BoardHandler) Feed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.boardService.Feed())
}

func (h *BoardHandler) Post(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	msg, err := h.boardService.Post(r.Context(), userID, input.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, "MISSING_CONTENT", "Message content is required")
		} else {
			log.Printf("ERROR post board message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}
