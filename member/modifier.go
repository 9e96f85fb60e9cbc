package member

import "strings"

// Modifier is a set of flags describing a member.
type Modifier uint32

const (
	// Exported is set for exported fields and methods and for constructors
	// whose function is exported.
	Exported Modifier = 1 << iota
	// Embedded is set for anonymous struct fields.
	Embedded
	// Promoted is set for fields and methods reached through an embedded field.
	Promoted
	// PointerReceiver is set for methods that are only in the pointer method set.
	PointerReceiver
	// Variadic is set for methods and constructors with a variadic last parameter.
	Variadic
	// Fallible is set for methods and constructors whose last result is an error.
	Fallible
	// Static is set for members that are used without a receiver.
	Static
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{Exported, "exported"},
	{Embedded, "embedded"},
	{Promoted, "promoted"},
	{PointerReceiver, "pointer-receiver"},
	{Variadic, "variadic"},
	{Fallible, "fallible"},
	{Static, "static"},
}

// Has reports whether every flag of mask is set.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask == mask
}

// Any reports whether at least one flag of mask is set.
func (m Modifier) Any(mask Modifier) bool {
	return m&mask != 0
}

// String returns the flags joined by "|".
func (m Modifier) String() string {
	if m == 0 {
		return "none"
	}

	var parts []string
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}

	return strings.Join(parts, "|")
}
