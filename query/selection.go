package query

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"mirror/internal/cache"
	"mirror/internal/common"
	"mirror/internal/match"
	"mirror/member"
	"mirror/utils"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// selection is the state shared by every query specialization.
type selection[M member.Member] struct {
	typ      reflect.Type
	kind     member.Kind
	matching []M
	owned    bool // matching may be compacted in place
	mode     SelectionMode
	bound    bool
	receiver reflect.Value // zero Value for the static context
	frozen   bool
	err      error
	name     string // last name passed to ByName
	hint     string // closest name ByName removed
}

func newSelection[M member.Member](kind member.Kind, t reflect.Type) *selection[M] {
	s := &selection[M]{typ: t, kind: kind, mode: Only}
	if t == nil {
		s.err = fmt.Errorf("%w: nil type", ErrInvalidArgument)
		return s
	}

	members := cache.Members(kind, t)

	s.matching = make([]M, len(members))
	for i, m := range members {
		s.matching[i] = m.(M)
	}

	s.owned = true

	return s
}

// derive returns the selection an operation may change: s itself, or a
// copy sharing the member array when s is frozen.
func (s *selection[M]) derive() *selection[M] {
	if !s.frozen {
		return s
	}

	d := *s
	d.frozen = false
	d.owned = false

	return &d
}

func (s *selection[M]) fail(err error) *selection[M] {
	if s.err != nil {
		return s
	}

	d := s.derive()
	d.err = err

	return d
}

// filter keeps the members satisfying keep, preserving their order. Nothing
// is allocated before the first removal; an owned array is compacted in
// place, a shared one is copied once.
func (s *selection[M]) filter(keep func(M) bool) *selection[M] {
	if s.err != nil {
		return s
	}

	if keep == nil {
		return s.fail(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}

	d := s.derive()

	var target []M

	for i, m := range d.matching {
		if keep(m) {
			if target != nil {
				target = append(target, m)
			}

			continue
		}

		if target == nil {
			if d.owned {
				target = d.matching[:i]
			} else {
				target = make([]M, i, len(d.matching)-1)
				copy(target, d.matching[:i])
			}
		}
	}

	if target != nil {
		if d.owned {
			clear(d.matching[len(target):])
		}

		d.matching = target
		d.owned = true
	}

	return d
}

func (s *selection[M]) byName(name string) *selection[M] {
	if s.err != nil {
		return s
	}

	var removed []string

	d := s.filter(func(m M) bool {
		if m.Name() == name {
			return true
		}

		removed = append(removed, m.Name())

		return false
	})

	d.name = name
	d.hint = ""

	if len(d.matching) == 0 {
		d.hint, _ = match.Suggest(name, removed)
	}

	return d
}

func (s *selection[M]) withModifiers(mask member.Modifier) *selection[M] {
	return s.filter(func(m M) bool { return m.Modifiers().Has(mask) })
}

func (s *selection[M]) withoutModifiers(mask member.Modifier) *selection[M] {
	return s.filter(func(m M) bool { return !m.Modifiers().Any(mask) })
}

func (s *selection[M]) setMode(mode SelectionMode) *selection[M] {
	if s.err != nil {
		return s
	}

	if !utils.IsInRange(First, mode, All) {
		return s.fail(fmt.Errorf("%w: selection mode %s", ErrInvalidArgument, mode))
	}

	d := s.derive()
	d.mode = mode

	return d
}

func (s *selection[M]) freeze() *selection[M] {
	s.frozen = true
	s.owned = false

	return s
}

// bind sets the receiver once per lineage. The zero Value binds the static
// context.
func (s *selection[M]) bind(recv reflect.Value) *selection[M] {
	if s.err != nil {
		return s
	}

	if s.bound {
		return s.fail(fmt.Errorf("%w: receiver already bound", ErrInvalidState))
	}

	d := s.derive()
	d.bound = true
	d.receiver = recv

	return d
}

func (s *selection[M]) on(x any) *selection[M] {
	if s.err != nil {
		return s
	}

	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}

	if !v.IsValid() {
		return s.fail(fmt.Errorf("%w: nil receiver", ErrInvalidArgument))
	}

	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return s.fail(fmt.Errorf("%w: nil %s receiver", ErrInvalidArgument, v.Type()))
	}

	return s.bind(v)
}

// resolve picks the member a single-target operation uses.
func (s *selection[M]) resolve() (M, error) {
	var zero M

	if s.err != nil {
		return zero, s.err
	}

	if s.mode == Only && common.IsMultiple(s.matching) {
		return zero, fmt.Errorf("%w: %d %ss of %s match: %s",
			ErrAmbiguousMember, len(s.matching), strings.ToLower(s.kind.String()), s.typ, s)
	}

	m, ok := common.First(s.matching)
	if !ok {
		return zero, s.noSuchMember()
	}

	return m, nil
}

func (s *selection[M]) noSuchMember() error {
	what := strings.ToLower(s.kind.String())
	if s.name != "" {
		what += " " + s.name
	}

	if s.hint != "" {
		return fmt.Errorf("%w: %s in %s (did you mean %s?)", ErrNoSuchMember, what, s.typ, s.hint)
	}

	return fmt.Errorf("%w: %s in %s", ErrNoSuchMember, what, s.typ)
}

func (s *selection[M]) members() []M {
	out := make([]M, len(s.matching))
	copy(out, s.matching)

	return out
}

func (s *selection[M]) String() string {
	parts := make([]string, len(s.matching))
	for i, m := range s.matching {
		parts[i] = m.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (s *selection[M]) dump() string {
	return dumper.Sdump(s.matching)
}
