// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running transport such as the HTTP API server.
type Delivery interface {
	Serve(ctx context.Context) error
}
