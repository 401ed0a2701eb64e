// Package jsonptr walks untyped JSON trees (the map[string]any/[]any/scalar
// shape produced by encoding/json) using two small grammars: RFC 6901
// JSON Pointers and dotted expressions (event.groupId, vars.id). The two
// grammars are kept as separate entry points since pointer and dotted
// syntax must never be conflated; pointers walk objects and arrays, while
// dotted expressions walk object keys only.
package jsonptr
