// Package http implements the REST API consumed by the tweet client.
//
// Requests pass through trace-id, access logging and gzip middleware before
// reaching the user, tweet and version handlers, which delegate to the
// service layer. Every error response is a JSON object of the form
// {"error": "..."}.
package http
