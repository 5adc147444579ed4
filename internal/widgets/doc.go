// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, or role/capability logic
package widgets
