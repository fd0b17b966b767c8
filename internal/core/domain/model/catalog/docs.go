// Package catalog holds read-only models of the entities the order engine
// references but does not own: users, restaurants, delivery addresses, and
// menu items.
//
// The engine validates order requests against these models (existence,
// menu item availability and ownership, current price for the line item
// snapshot) but never mutates them; their CRUD lives outside this core
// behind the CatalogReader port.
package catalog
