// Package server runs the API server's HTTP and gRPC listeners and shuts
// them down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
