// Package config provides configuration loading, merging, and validation
// for the tweet client and the API server.
//
// Configuration is assembled from multiple sources; later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Config file (JSON or YAML, path from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
