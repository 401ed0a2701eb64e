// Package valueresolve implements the Value Resolver: it turns a ValueSpec
// plus a working context into a concrete JSON value, per §4.4.
package valueresolve
