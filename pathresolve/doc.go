// Package pathresolve implements the Path Resolver: it turns a path
// template string, containing zero or more {dotted.expression} tokens,
// into a concrete RFC 6901 JSON Pointer against a working context.
package pathresolve
