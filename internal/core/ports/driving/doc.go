// Package driving defines the interfaces through which the outside
// world calls INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI (or any HTTP collaborator layered on top) depends on these
// interfaces; core services implement them.
package driving
