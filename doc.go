// Package webshell implements a single-user command relay for a browser
// facing terminal: raw input lines are parsed, dispatched to builtin file and
// host-introspection services or to the host shell, and returned as
// render-ready results together with an append-only session history.
//
// The package deliberately offers no sandboxing, authentication or remote
// execution; it is the core a presentation layer calls with a line of text.
package webshell
