// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueries_Placeholders(t *testing.T) {
	pg := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	lite := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	query, args, err := buildFindUserByUsernameQuery(pg, "alice")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, username, created_at FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"alice"}, args)

	query, _, err = buildFindUserByUsernameQuery(lite, "alice")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, username, created_at FROM users WHERE username = ?", query)
}

func TestBuildCreateTweetQuery(t *testing.T) {
	b := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	now := time.Now()

	query, args, err := buildCreateTweetQuery(b, models.Tweet{AuthorID: 3, Message: "hi", CreatedAt: now})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO tweets (author_id,message,created_at) VALUES (?,?,?) RETURNING tweet_id", query)
	assert.Equal(t, []any{int64(3), "hi", now}, args)
}
