// Package account models the identity side of the order engine: the
// platform roles and the Actor value object that every mutating operation
// receives from the authentication layer.
//
// The engine never authenticates anyone itself. The inbound adapter
// verifies credentials and constructs an Actor; the core only asks "may
// this actor do that to this resource", which is answered by the access
// policy in the services package.
package account
