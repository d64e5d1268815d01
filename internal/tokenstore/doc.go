// Package tokenstore provides the two TokenStore implementations used by the
// server: an in-memory single-slot store for stateless deployments (the token
// is simply lost on restart, and the frontend re-initiates /login), and a
// sqlite-backed store that persists the token as a single well-known row so
// that it survives restarts.
package tokenstore
