// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application.
// Serve blocks until the server stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
