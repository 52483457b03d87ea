package models

import "time"

// User is an account that can author tweets.
// Only the identifier and the username are visible to API clients.
type User struct {
	// UserID is the server-assigned identifier the client resolves a
	// username to before posting.
	UserID int64 `json:"user_id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterUserRequest is the body of POST /api/v1/user/.
type RegisterUserRequest struct {
	Username string `json:"username"`
}

// UserLookupResult is returned by GET /api/v1/user/{username}.
//
// A non-empty Error signals failure regardless of the HTTP status the server
// answered with.
type UserLookupResult struct {
	UserID int64  `json:"user_id,omitempty"`
	Error  string `json:"error,omitempty"`
}
