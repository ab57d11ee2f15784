package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"quizzly-backend/internal/config"
)

var validate = validator.New()

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid generate request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		log.WithError(err).Warn("generate request failed validation")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Generate(r.Context(), req.Topic)
	if err != nil {
		// The upstream error is surfaced verbatim, matching the agent
		// failure contract.
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID, err := strconv.ParseUint(r.URL.Query().Get("session_id"), 10, 64)
	if err != nil {
		log.Warn("missing or invalid session_id query parameter")
		config.Error(w, http.StatusBadRequest, "session_id is required")
		return
	}

	resp, err := h.service.NextQuestion(r.Context(), uint(sessionID))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid submit request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		log.WithError(err).Warn("submit request failed validation")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Submit(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("invalid finalize request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		log.WithError(err).Warn("finalize request failed validation")
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Finalize(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrChoiceNotFound):
		log.WithError(err).Warn("referenced entity not found")
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoMoreQuestions):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error("quiz operation failed")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
