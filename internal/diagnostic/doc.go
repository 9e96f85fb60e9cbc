// Package diagnostic provides structured warnings and errors for source
// directives.
//
// Key capabilities:
//   - Malformed directive reports with their source position
//   - Directives bound to unknown types or methods
//   - Suggestions for misspelled method names
package diagnostic
