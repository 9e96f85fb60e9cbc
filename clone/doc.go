// Package clone copies object graphs.
//
// A shallow clone copies one object and shares everything it references.
// A deep clone copies every object reachable from the root and preserves
// sharing and cycles: two references to the same object in the original
// refer to the same copy in the clone.
//
// Only pointers, maps and slices have identity in Go, so only they are
// cloned as objects. Struct values, arrays and interfaces are rebuilt
// inline with their references redirected to the copies. Funcs, channels
// and unsafe pointers are never cloned.
//
// Objects are allocated without running constructors and filled field by
// field through the field query of package query.
package clone
