// Package query is a fluent, filterable view over the members of a type.
//
// A query starts from an entry point such as FieldsOf or MethodsOn, is
// narrowed with ByName, WithModifiers, Filter and friends, and ends with a
// terminal operation: Get and Set for fields, Invoke for methods and
// constructors. The selection mode decides how several remaining members
// resolve:
//   - First: use the first match, at least one is required
//   - Only: use the single match, more than one is an error (default)
//   - All: use every match in order
//
// A query mutates itself until it is frozen. Every operation on a frozen
// query returns a new query that shares the member array and copies it on
// the first removal, so a frozen query can serve as a template and be
// shared between goroutines. A query that is not frozen must not be used
// concurrently.
//
// Chain errors are sticky: the first one is kept, later chain operations
// do nothing, and terminal operations return it.
package query
