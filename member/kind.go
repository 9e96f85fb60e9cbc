package member

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the category of a member.
type Kind int

const (
	KindField Kind = iota
	KindMethod
	KindConstructor
)
