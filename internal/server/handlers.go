package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/userdb/internal/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// UserHandler serves the user record endpoints.
type UserHandler struct {
	store    Store
	logger   *log.Logger
	validate *validator.Validate
}

// NewUserHandler builds a [UserHandler] with its own validator instance.
func NewUserHandler(store Store, logger *log.Logger) *UserHandler {
	return &UserHandler{
		store:    store,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// MountRoutes registers the /users routes.
func (h *UserHandler) MountRoutes(r chi.Router) {
	r.Post("/", h.createUser)
	r.Get("/", h.listUsers)
	r.Get("/{id}", h.getUser)
	r.Put("/{id}", h.updateUser)
	r.Delete("/{id}", h.deleteUser)
}

// userPayload is the request body for create and update.
type userPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// errorBody is the JSON envelope for all error responses.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	user, err := h.store.Create(payload.Email, payload.Name)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List()
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.store.Get(id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	user, err := h.store.Update(id, payload.Email, payload.Name)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deletion, err := h.store.DeleteWithLog(id)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	if deletion == nil {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	writeJSON(w, http.StatusOK, deletion)
}

func (h *UserHandler) listDeletions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Deletions()
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// decodePayload parses and validates the request body, responding with 400 on
// malformed JSON and 422 on validation failure.
func (h *UserHandler) decodePayload(w http.ResponseWriter, r *http.Request) (*userPayload, bool) {
	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed_body", nil)
		return nil, false
	}

	if err := h.validate.Struct(&payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", fieldErrors(err))
		return nil, false
	}

	return &payload, true
}

// pathID parses the {id} path parameter, responding with 400 when it is not
// an integer.
func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return id, true
}

// writeStoreError maps the storage error taxonomy onto status codes. A commit
// failure gets its own code since the caller cannot tell whether the deletion
// persisted.
func (h *UserHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("store operation failed", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()), "error", err)

	switch {
	case errors.Is(err, shared.ErrConstraint):
		writeError(w, http.StatusConflict, "email_taken", nil)
	case errors.Is(err, shared.ErrCommit):
		writeError(w, http.StatusInternalServerError, "commit_ambiguous", nil)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// fieldErrors flattens validator failures into a field -> message map.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "email":
			out[field] = "must be a valid email address"
		default:
			out[field] = "is invalid"
		}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, fields map[string]string) {
	writeJSON(w, status, errorBody{Error: code, Fields: fields})
}
