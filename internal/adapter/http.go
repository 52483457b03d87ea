package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/go-resty/resty/v2"
)

const (
	userLookupPath  = "/api/v1/user/"
	tweetCreatePath = "/api/v1/tweet/"

	traceIDHeader = "X-Trace-ID"
)

type httpTweetAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTweetAPI constructs an HTTP/REST implementation of [TweetAPI]. It
// normalises the base URL from adapterCfg.HTTPAddress and applies
// adapterCfg.RequestTimeout to every request. The client never retries.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTweetAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (TweetAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpTweetAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// LookupUser implements [TweetAPI]. The username is path-escaped, so names
// containing "/" or spaces reach the server as a single path segment.
func (h *httpTweetAPI) LookupUser(ctx context.Context, username string) (models.UserLookupResult, error) {
	resp, err := h.request(ctx).
		Get(userLookupPath + url.PathEscape(username))
	if err != nil {
		return models.UserLookupResult{}, fmt.Errorf("lookup user request: %w", err)
	}

	var result models.UserLookupResult
	decodeErr := decodeBody(resp, &result)
	if decodeErr == nil && result.Error != "" {
		h.logger.Debug().
			Str("username", username).
			Int("status", resp.StatusCode()).
			Str("error", result.Error).
			Msg("user lookup answered with error")
		return result, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return models.UserLookupResult{}, err
	}
	if decodeErr != nil {
		return models.UserLookupResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}
	if result.UserID <= 0 {
		return models.UserLookupResult{}, fmt.Errorf("%w: missing user_id", ErrMalformedResponse)
	}

	return result, nil
}

// CreateTweet implements [TweetAPI]. The request is sent as JSON. An empty
// 2xx body is treated as success.
func (h *httpTweetAPI) CreateTweet(ctx context.Context, req models.TweetCreationRequest) (models.TweetCreationResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(tweetCreatePath)
	if err != nil {
		return models.TweetCreationResult{}, fmt.Errorf("create tweet request: %w", err)
	}

	var result models.TweetCreationResult
	decodeErr := decodeBody(resp, &result)
	if decodeErr == nil && result.Error != "" {
		h.logger.Debug().
			Int64("author_id", req.AuthorID).
			Int("status", resp.StatusCode()).
			Str("error", result.Error).
			Msg("tweet creation answered with error")
		return result, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return models.TweetCreationResult{}, err
	}
	if decodeErr != nil && len(strings.TrimSpace(string(resp.Body()))) > 0 {
		return models.TweetCreationResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}

	return models.TweetCreationResult{}, nil
}

// request starts a request bound to ctx that forwards the trace id, if any.
func (h *httpTweetAPI) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(body) == 0 {
		return fmt.Errorf("empty body")
	}

	return json.Unmarshal(body, v)
}
