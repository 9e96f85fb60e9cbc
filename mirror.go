// Package mirror wires the member query engine and the graph cloner to
// process-wide settings.
//
// The engine works without any setup. Configure (or LoadConfig) resizes
// the member cache, installs a logger and rebuilds the default cloner from
// a protection profile.
package mirror

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"mirror/clone"
	"mirror/internal/cache"
	"mirror/internal/config"
	"mirror/internal/logging"
	"mirror/member"
)

// Types resolves the type names used by clone profiles.
var Types = member.NewTypeRegistry()

var cloner atomic.Pointer[clone.Cloner]

func init() {
	cloner.Store(clone.NewBuilder().Defaults().Build())
}

// RegisterType makes T known to clone profiles by name.
func RegisterType[T any]() (member.TypeID, error) {
	return member.RegisterType[T](Types)
}

// LoadConfig loads the configuration at path (mirror.yaml in the working
// directory when empty) and applies it.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := Configure(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Configure applies cfg: cache size, logger and default cloner. Nothing
// changes when any part of cfg is invalid.
func Configure(cfg *config.Config) error {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	b := clone.NewBuilder().Defaults()

	if cfg.Clone.Profile != "" {
		p, err := clone.LoadProfile(cfg.Clone.Profile, Types)
		if err != nil {
			return err
		}

		b.Apply(p)
	}

	if err := cache.Resize(cfg.Cache.Size); err != nil {
		return fmt.Errorf("cache.size %d: %w", cfg.Cache.Size, err)
	}

	logging.Set(logger)
	cloner.Store(b.Build())

	logger.Debug("configured",
		zap.Int("cache_size", cfg.Cache.Size),
		zap.String("clone_profile", cfg.Clone.Profile))

	return nil
}

// Cloner returns the default cloner.
func Cloner() *clone.Cloner { return cloner.Load() }

// DeepClone deep-clones x with the default cloner.
func DeepClone(x any) (any, error) { return Cloner().DeepClone(x) }

// ShallowClone shallow-clones x with the default cloner.
func ShallowClone(x any) (any, error) { return Cloner().ShallowClone(x) }

// Deep returns a deep clone of x made by the default cloner.
func Deep[T any](x T) (T, error) { return clone.Deep(Cloner(), x) }

// Shallow returns a shallow clone of x made by the default cloner.
func Shallow[T any](x T) (T, error) { return clone.Shallow(Cloner(), x) }

// CachedTypes returns the number of (kind, type) entries in the member cache.
func CachedTypes() int { return cache.Default().Len() }

// Forget empties the member cache.
func Forget() { cache.Purge() }
