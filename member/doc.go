// Package member describes the introspectable members of Go types.
//
// A member is a struct field, a method from a method set, or a constructor
// function registered for a type. The package walks a type together with
// everything it embeds and flattens the result into an ordered member list:
//
//   - Fields: own fields first, then the fields of every embedded struct,
//     depth-first. Promoted fields carry their full index path.
//   - Methods: the method set of the type, then the method sets of embedded
//     types and embedded interfaces. A later method that is equivalent to an
//     earlier one (see [Equivalent]) is hidden by it.
//   - Constructors: the functions registered with [RegisterConstructor].
//
// Key types:
//   - Field, Method, Constructor: immutable member descriptors
//   - Modifier: bit set used for filtering
//   - TypeID and TypeRegistry: stable names for runtime types
package member
