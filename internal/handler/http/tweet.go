package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/go-chi/chi/v5"
)

const (
	formFieldMessage  = "message"
	formFieldAuthorID = "author_id"
)

// createTweet handles POST /api/v1/tweet/. The body is either JSON or a
// url-encoded form with the same field names.
func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTweetCreationRequest(r)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid tweet payload")
		h.writeError(w, r, err)
		return
	}

	if _, err = h.services.TweetService.Create(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TweetCreationResult{}, http.StatusCreated)
}

// getTweet handles GET /api/v1/tweet/{tweetID}.
func (h *Handler) getTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := strconv.ParseInt(chi.URLParam(r, "tweetID"), 10, 64)
	if err != nil {
		h.writeError(w, r, service.ErrInvalidTweetID)
		return
	}

	tweet, err := h.services.TweetService.Get(r.Context(), tweetID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tweet, http.StatusOK)
}

func decodeTweetCreationRequest(r *http.Request) (models.TweetCreationRequest, error) {
	var req models.TweetCreationRequest

	mediaType := "application/json"
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return req, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		req.Message = r.PostForm.Get(formFieldMessage)
		if raw := r.PostForm.Get(formFieldAuthorID); raw != "" {
			authorID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return req, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
			}
			req.AuthorID = authorID
		}
	default:
		return req, ErrUnsupportedContentType
	}

	return req, nil
}
