package server

// Server is the lifecycle shared by every transport server in this package.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
