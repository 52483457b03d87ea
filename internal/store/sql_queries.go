package store

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

// Inserts return only the generated key. The remaining columns are known to
// the caller, and SQLite reports no declared type for RETURNING columns, so a
// returned timestamp could not be scanned into time.Time.
var (
	userColumns  = []string{"user_id", "username", "created_at"}
	tweetColumns = []string{"tweet_id", "author_id", "message", "created_at"}
)

func buildCreateUserQuery(b squirrel.StatementBuilderType, username string, createdAt time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns("username", "created_at").
		Values(username, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(b squirrel.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByIDQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateTweetQuery(b squirrel.StatementBuilderType, tweet models.Tweet) (string, []any, error) {
	query, args, err := b.
		Insert(models.Tweet{}.TableName()).
		Columns("author_id", "message", "created_at").
		Values(tweet.AuthorID, tweet.Message, tweet.CreatedAt).
		Suffix("RETURNING tweet_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindTweetByIDQuery(b squirrel.StatementBuilderType, tweetID int64) (string, []any, error) {
	query, args, err := b.
		Select(tweetColumns...).
		From(models.Tweet{}.TableName()).
		Where(squirrel.Eq{"tweet_id": tweetID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
