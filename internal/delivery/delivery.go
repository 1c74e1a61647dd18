// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP API, worker).
// Implementations register an fx OnStop hook for graceful shutdown; Serve
// blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
