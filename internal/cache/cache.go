// Package cache memoizes member enumeration per type.
//
// Entries live in a bounded LRU; an evicted entry is recomputed on the
// next lookup, so callers never depend on an entry staying resident.
// Every lookup returns a fresh slice the caller may mutate.
package cache

import (
	"errors"
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"mirror/internal/logging"
	"mirror/member"
)

// DefaultSize is the number of (kind, type) entries kept by the default cache.
const DefaultSize = 512

var ErrInvalidSize = errors.New("cache size must be positive")

type key struct {
	kind member.Kind
	typ  reflect.Type
}

type entry struct {
	generation uint64
	members    []member.Member
}

// Cache is a bounded member cache. One mutex covers lookup and population,
// so a type is never enumerated twice concurrently.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache
}

// New returns an empty cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	entries, err := lru.NewWithEvict(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &Cache{entries: entries}, nil
}

func onEvict(k, _ any) {
	ck := k.(key)
	logging.Named("cache").Debug("evicted",
		zap.Stringer("kind", ck.kind),
		zap.Stringer("type", ck.typ))
}

// Members returns the members of the given kind for t. Entries computed
// before a constructor registration or an access policy change are
// recomputed.
func (c *Cache) Members(kind member.Kind, t reflect.Type) []member.Member {
	if t == nil {
		return nil
	}

	k := key{kind: kind, typ: t}
	gen := member.Generation()

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries.Get(k); ok {
		if e := v.(*entry); e.generation == gen {
			return clone(e.members)
		}
	}

	members := member.Collect(kind, t)
	c.entries.Add(k, &entry{generation: gen, members: members})

	logging.Named("cache").Debug("populated",
		zap.Stringer("kind", kind),
		zap.Stringer("type", t),
		zap.Int("members", len(members)))

	return clone(members)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
}

// Resize changes the capacity, evicting the oldest entries if needed.
func (c *Cache) Resize(size int) error {
	if size <= 0 {
		return ErrInvalidSize
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Resize(size)

	return nil
}

func clone(members []member.Member) []member.Member {
	if members == nil {
		return nil
	}

	out := make([]member.Member, len(members))
	copy(out, members)

	return out
}
