package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/mock"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/validators"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTweetSvc(t *testing.T) (TweetService, *mock.MockUserRepository, *mock.MockTweetRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tweets := mock.NewMockTweetRepository(ctrl)

	svc := NewTweetValidationService().Wrap(NewTweetService(users, tweets, logger.Nop()))
	return svc, users, tweets
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestTweetService_Create_Success(t *testing.T) {
	svc, users, tweets := newTestTweetSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindUserByID(ctx, int64(42)).Return(models.User{UserID: 42}, nil),
		tweets.EXPECT().CreateTweet(ctx, models.Tweet{AuthorID: 42, Message: "hello"}).
			Return(models.Tweet{TweetID: 1, AuthorID: 42, Message: "hello"}, nil),
	)

	tweet, err := svc.Create(ctx, models.TweetCreationRequest{Message: "hello", AuthorID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(1), tweet.TweetID)
}

func TestTweetService_Create_ValidationStopsEarly(t *testing.T) {
	tests := []struct {
		name    string
		req     models.TweetCreationRequest
		wantErr error
	}{
		{name: "too long", req: models.TweetCreationRequest{Message: strings.Repeat("a", 141), AuthorID: 1}, wantErr: validators.ErrTweetTooLong},
		{name: "empty", req: models.TweetCreationRequest{AuthorID: 1}, wantErr: validators.ErrTweetEmpty},
		{name: "no author", req: models.TweetCreationRequest{Message: "hi"}, wantErr: validators.ErrInvalidAuthorID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestTweetSvc(t)

			_, err := svc.Create(context.Background(), tt.req)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTweetService_Create_UnknownAuthor(t *testing.T) {
	svc, users, _ := newTestTweetSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Create(context.Background(), models.TweetCreationRequest{Message: "hi", AuthorID: 9})

	require.ErrorIs(t, err, store.ErrAuthorNotFound)
}

func TestTweetService_Create_AuthorDeletedConcurrently(t *testing.T) {
	svc, users, tweets := newTestTweetSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{UserID: 9}, nil)
	tweets.EXPECT().CreateTweet(gomock.Any(), gomock.Any()).Return(models.Tweet{}, store.ErrAuthorNotFound)

	_, err := svc.Create(context.Background(), models.TweetCreationRequest{Message: "hi", AuthorID: 9})

	require.ErrorIs(t, err, store.ErrAuthorNotFound)
}

func TestTweetService_Create_LookupFailure(t *testing.T) {
	svc, users, _ := newTestTweetSvc(t)
	dbErr := errors.New("db down")

	users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, dbErr)

	_, err := svc.Create(context.Background(), models.TweetCreationRequest{Message: "hi", AuthorID: 9})

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, store.ErrAuthorNotFound)
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestTweetService_Get(t *testing.T) {
	svc, _, tweets := newTestTweetSvc(t)

	tweets.EXPECT().FindTweetByID(gomock.Any(), int64(5)).Return(models.Tweet{TweetID: 5, Message: "hello"}, nil)

	tweet, err := svc.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "hello", tweet.Message)
}

func TestTweetService_Get_InvalidID(t *testing.T) {
	svc, _, _ := newTestTweetSvc(t)

	_, err := svc.Get(context.Background(), 0)

	require.ErrorIs(t, err, ErrInvalidTweetID)
}

func TestTweetService_Get_NotFound(t *testing.T) {
	svc, _, tweets := newTestTweetSvc(t)

	tweets.EXPECT().FindTweetByID(gomock.Any(), int64(5)).Return(models.Tweet{}, store.ErrTweetNotFound)

	_, err := svc.Get(context.Background(), 5)

	require.ErrorIs(t, err, store.ErrTweetNotFound)
}
