package cache

import (
	"reflect"

	"mirror/member"
)

var global *Cache

func init() {
	c, err := New(DefaultSize)
	if err != nil {
		panic(err)
	}

	global = c
}

// Default returns the process-wide cache.
func Default() *Cache { return global }

// Members looks t up in the process-wide cache.
func Members(kind member.Kind, t reflect.Type) []member.Member {
	return global.Members(kind, t)
}

// Purge empties the process-wide cache.
func Purge() { global.Purge() }

// Resize changes the capacity of the process-wide cache.
func Resize(size int) error { return global.Resize(size) }
