// Package delivery defines the entry points of the application.
package delivery

import "context"

// Delivery is a server that can be started by the application runner.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
