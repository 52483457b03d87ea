package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/go-chi/chi/v5"
)

// registerUser handles POST /api/v1/user/.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid registration payload")
		h.writeError(w, r, ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

// lookupUser handles GET /api/v1/user/{username}.
func (h *Handler) lookupUser(w http.ResponseWriter, r *http.Request) {
	username, err := usernameParam(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid username in path")
		h.writeError(w, r, ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserService.Lookup(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserLookupResult{UserID: user.UserID}, http.StatusOK)
}

// usernameParam returns the decoded {username} segment. chi matches on
// RawPath when the client escaped a reserved byte such as "/", and the
// segment then arrives still escaped.
func usernameParam(r *http.Request) (string, error) {
	username := chi.URLParam(r, "username")
	if r.URL.RawPath == "" {
		return username, nil
	}

	return url.PathUnescape(username)
}

// writeError answers with the JSON error body for err. Server-side failures
// are logged with their full text, which is never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}

	utils.WriteError(w, message, status)
}
