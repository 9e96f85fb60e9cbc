package query

//go:generate go tool stringer -type=SelectionMode -output=mode_string.go

// SelectionMode governs how a terminal operation resolves the matching members.
type SelectionMode int

const (
	// First uses the first match and requires at least one.
	First SelectionMode = iota
	// Only uses the single match and fails when there are several.
	Only
	// All uses every match in order.
	All
)
