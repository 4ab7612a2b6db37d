// Package idgen wraps the UUID generator so tests can stub it. It lives
// under internal because callers must treat identifiers as opaque strings.
package idgen
