package ggsvg

import (
	"slices"
	"sync/atomic"

	"github.com/gogpu/ggsvg/provider"
)

// providerSnapshot fingerprints the provider configuration: the settings
// epoch, each provider's identity in order, each versioned provider's
// version and the versions of the watched font sources.
type providerSnapshot struct {
	epoch     uint64
	providers []provider.Provider
	versions  []uint64
	watched   []uint64
}

func (s *providerSnapshot) equal(o *providerSnapshot) bool {
	return s.epoch == o.epoch &&
		slices.Equal(s.providers, o.providers) &&
		slices.Equal(s.versions, o.versions) &&
		slices.Equal(s.watched, o.watched)
}

// ProviderTracker detects changes of the provider configuration and runs
// invalidation callbacks when it drifts.
//
// ProviderTracker is safe for concurrent use.
type ProviderTracker struct {
	settings *Settings
	watch    []provider.Versioned
	current  atomic.Pointer[providerSnapshot]
	onChange []func()
}

// NewProviderTracker creates a tracker for s. The current configuration is
// the baseline; onChange callbacks run on every later drift.
func NewProviderTracker(s *Settings, onChange ...func()) *ProviderTracker {
	return newProviderTracker(s, nil, onChange...)
}

// newProviderTracker also treats a version change of any watched source,
// such as the loader's own font catalog, as drift.
func newProviderTracker(s *Settings, watch []provider.Versioned, onChange ...func()) *ProviderTracker {
	t := &ProviderTracker{settings: s, watch: watch, onChange: onChange}
	t.current.Store(t.take())
	return t
}

func (t *ProviderTracker) take() *providerSnapshot {
	epoch, providers := t.settings.state()
	snap := &providerSnapshot{
		epoch:     epoch,
		providers: providers,
		versions:  make([]uint64, len(providers)),
	}
	for i, p := range providers {
		if v, ok := p.(provider.Versioned); ok {
			snap.versions[i] = v.Version()
		}
	}
	if len(t.watch) > 0 {
		snap.watched = make([]uint64, len(t.watch))
		for i, v := range t.watch {
			snap.watched[i] = v.Version()
		}
	}
	return snap
}

// RefreshIfChanged recomputes the fingerprint and, when it differs from
// the stored one, installs it and runs the invalidation callbacks. Only the
// caller that installs a new fingerprint runs them. It reports whether the
// configuration changed.
func (t *ProviderTracker) RefreshIfChanged() bool {
	next := t.take()
	for {
		cur := t.current.Load()
		if cur.equal(next) {
			return false
		}
		if t.current.CompareAndSwap(cur, next) {
			break
		}
	}

	Logger().Debug("ggsvg: typeface providers changed, dropping caches",
		"epoch", next.epoch, "providers", len(next.providers))
	for _, fn := range t.onChange {
		fn()
	}
	return true
}

// Providers returns the provider list of the current fingerprint. The
// slice must not be modified.
func (t *ProviderTracker) Providers() []provider.Provider {
	return t.current.Load().providers
}
