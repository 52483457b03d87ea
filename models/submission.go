package models

// SubmissionInput holds the two form fields as they were at submit time.
// It is request-scoped and never retained after the submission finishes.
type SubmissionInput struct {
	TweetText string
	Username  string
}

// ErrorResponse is the JSON body the API answers with on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
