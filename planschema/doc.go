// Package planschema implements the Plan Validator: it compiles the
// bundled Transform Plan meta-schema exactly once per engine instance and
// validates incoming plans against it, per §4.1 and the meta-schema
// defined in §6.
package planschema
