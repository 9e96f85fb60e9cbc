package clone

import (
	"maps"
	"os"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"mirror/internal/logging"
	"mirror/member"
)

// Builder collects the protection set of a Cloner.
// Protected objects and types are never cloned: the clone refers to the
// original instead.
type Builder struct {
	objects map[identity]struct{}
	types   map[reflect.Type]struct{}
	kinds   map[reflect.Kind]struct{}
	logger  *zap.Logger
}

// NewBuilder returns a builder protecting only funcs, channels and unsafe
// pointers, which are never cloned.
func NewBuilder() *Builder {
	return &Builder{
		objects: make(map[identity]struct{}),
		types:   make(map[reflect.Type]struct{}),
		kinds: map[reflect.Kind]struct{}{
			reflect.Func:          {},
			reflect.Chan:          {},
			reflect.UnsafePointer: {},
		},
	}
}

// Defaults protects runtime types whose copies are meaningless or unsafe:
// reflection and member descriptors, locations, synchronization
// primitives, open files and loggers.
func (b *Builder) Defaults() *Builder {
	for _, t := range []reflect.Type{
		reflect.TypeOf(reflect.TypeOf(0)),
		reflect.TypeFor[reflect.Value](),
		reflect.TypeFor[member.Field](),
		reflect.TypeFor[member.Method](),
		reflect.TypeFor[member.Constructor](),
		reflect.TypeFor[member.TypeRegistry](),
		reflect.TypeFor[time.Location](),
		reflect.TypeFor[sync.Mutex](),
		reflect.TypeFor[sync.RWMutex](),
		reflect.TypeFor[sync.WaitGroup](),
		reflect.TypeFor[sync.Once](),
		reflect.TypeFor[os.File](),
		reflect.TypeFor[zap.Logger](),
	} {
		b.ProtectType(t)
	}

	return b
}

// Protect protects the object x refers to. Values without reference
// identity (anything but a non-nil pointer, map or slice) cannot be
// protected and are ignored.
func (b *Builder) Protect(x any) *Builder {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}

	if id, ok := identityOf(v); ok {
		b.objects[id] = struct{}{}
	}

	return b
}

// ProtectType protects every value of type t. Protecting a struct type
// also protects pointers to it.
func (b *Builder) ProtectType(t reflect.Type) *Builder {
	if t != nil {
		b.types[t] = struct{}{}
	}

	return b
}

// ProtectKind protects every value of kind k.
func (b *Builder) ProtectKind(k reflect.Kind) *Builder {
	b.kinds[k] = struct{}{}
	return b
}

// WithLogger sets the logger of the cloner. By default the cloner logs to
// the process-wide logger.
func (b *Builder) WithLogger(l *zap.Logger) *Builder {
	b.logger = l
	return b
}

// Apply adds the protections of a profile.
func (b *Builder) Apply(p *Profile) *Builder {
	if p == nil {
		return b
	}

	if p.Defaults {
		b.Defaults()
	}

	for _, t := range p.types {
		b.ProtectType(t)
	}

	for _, k := range p.kinds {
		b.ProtectKind(k)
	}

	return b
}

// Build snapshots the protection set into an immutable Cloner.
// The builder may be reused afterwards.
func (b *Builder) Build() *Cloner {
	logger := b.logger
	if logger == nil {
		logger = logging.Named("clone")
	}

	c := &Cloner{
		objects: maps.Clone(b.objects),
		types:   maps.Clone(b.types),
		kinds:   maps.Clone(b.kinds),
		log:     logger,
	}

	c.log.Debug("cloner built",
		zap.Int("objects", len(c.objects)),
		zap.Int("types", len(c.types)),
		zap.Int("kinds", len(c.kinds)))

	return c
}
