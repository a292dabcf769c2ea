// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends or it is
// shut down through an fx lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
