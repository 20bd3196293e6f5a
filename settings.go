package ggsvg

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ggsvg/provider"
)

// Settings holds the typeface provider configuration shared by loaders.
//
// Every change bumps an epoch. Loaders compare the epoch and the provider
// list on each entry point and drop their caches when either moved.
//
// Settings is safe for concurrent use.
type Settings struct {
	mu        sync.RWMutex
	providers []provider.Provider
	epoch     uint64
}

// NewSettings creates settings with the given providers, consulted in order.
// Nil and incomparable providers are dropped.
func NewSettings(providers ...provider.Provider) *Settings {
	return &Settings{providers: usableProviders(providers)}
}

// SetTypefaceProviders replaces the provider list. Nil and incomparable
// providers are dropped.
func (s *Settings) SetTypefaceProviders(providers ...provider.Provider) {
	usable := usableProviders(providers)
	s.mu.Lock()
	s.providers = usable
	s.epoch++
	s.mu.Unlock()
}

// TypefaceProviders returns a copy of the provider list.
func (s *Settings) TypefaceProviders() []provider.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.providers)
}

// Invalidate forces every loader using s to drop its caches on its next
// call, for example after fonts were installed on the system.
func (s *Settings) Invalidate() {
	s.mu.Lock()
	s.epoch++
	s.mu.Unlock()
}

// Epoch returns the change counter.
func (s *Settings) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.epoch
}

// state returns the epoch and a copy of the providers as one snapshot.
func (s *Settings) state() (uint64, []provider.Provider) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.epoch, slices.Clone(s.providers)
}

// usableProviders copies the providers that can serve as cache key fields.
func usableProviders(providers []provider.Provider) []provider.Provider {
	usable := make([]provider.Provider, 0, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		if !provider.Comparable(p) {
			Logger().Warn("ggsvg: ignoring typeface provider that cannot be compared", "type", fmt.Sprintf("%T", p))
			continue
		}
		usable = append(usable, p)
	}
	return usable
}
