// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/utils"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) TweetAPI {
	t.Helper()
	a, err := NewHTTPTweetAPI(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── NewHTTPTweetAPI ─────────────────────────────────────────────────────────

func TestNewHTTPTweetAPI_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTweetAPI(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trims slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "keeps path", raw: "http://host/prefix/", want: "http://host/prefix"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── LookupUser ──────────────────────────────────────────────────────────────

func TestLookupUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/user/alice", r.URL.Path)
		writeBody(w, http.StatusOK, `{"user_id":42}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, models.UserLookupResult{UserID: 42}, got)
}

func TestLookupUser_EscapesUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/user/a%2Fb%20c", r.URL.EscapedPath())
		writeBody(w, http.StatusOK, `{"user_id":7}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "a/b c")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestLookupUser_ErrorFieldWithOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"error":"not found"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Equal(t, "not found", got.Error)
}

func TestLookupUser_ErrorFieldWithNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusNotFound, `{"error":"user not found"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Equal(t, "user not found", got.Error)
}

func TestLookupUser_NonJSONErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "alice")

	require.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestLookupUser_MissingUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "alice")

	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLookupUser_GarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `<html>`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "alice")

	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLookupUser_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).LookupUser(context.Background(), "alice")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup user request")
}

// ── CreateTweet ─────────────────────────────────────────────────────────────

func TestCreateTweet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tweet/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"message": "hello", "author_id": float64(42)}, body)

		writeBody(w, http.StatusCreated, `{}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateTweet(context.Background(), models.TweetCreationRequest{Message: "hello", AuthorID: 42})

	require.NoError(t, err)
	assert.Empty(t, got.Error)
}

func TestCreateTweet_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateTweet(context.Background(), models.TweetCreationRequest{Message: "x", AuthorID: 1})

	require.NoError(t, err)
	assert.Empty(t, got.Error)
}

func TestCreateTweet_ErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusTooManyRequests, `{"error":"rate limited"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateTweet(context.Background(), models.TweetCreationRequest{Message: "x", AuthorID: 1})

	require.NoError(t, err)
	assert.Equal(t, "rate limited", got.Error)
}

func TestCreateTweet_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateTweet(context.Background(), models.TweetCreationRequest{Message: "x", AuthorID: 1})

	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "503")
}

func TestCreateTweet_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateTweet(context.Background(), models.TweetCreationRequest{Message: "x", AuthorID: 1})

	require.ErrorIs(t, err, ErrInternalServerError)
}

// ── Trace id ────────────────────────────────────────────────────────────────

func TestRequests_ForwardTraceID(t *testing.T) {
	var lookupTrace, createTrace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			lookupTrace = r.Header.Get("X-Trace-ID")
			writeBody(w, http.StatusOK, `{"user_id":1}`)
		default:
			createTrace = r.Header.Get("X-Trace-ID")
			writeBody(w, http.StatusCreated, `{}`)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-7")

	_, err := a.LookupUser(ctx, "alice")
	require.NoError(t, err)
	_, err = a.CreateTweet(ctx, models.TweetCreationRequest{Message: "hi", AuthorID: 1})
	require.NoError(t, err)

	assert.Equal(t, "trace-7", lookupTrace)
	assert.Equal(t, "trace-7", createTrace)
}

func TestRequests_NoTraceIDWithoutContextValue(t *testing.T) {
	var trace string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = r.Header.Get("X-Trace-ID")
		writeBody(w, http.StatusOK, `{"user_id":1}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).LookupUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Empty(t, trace)
}
