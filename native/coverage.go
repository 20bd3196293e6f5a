package native

import "sync"

// RuneCoverage memoizes per-rune glyph coverage of a typeface using
// 2 bits per rune (checked, covered), in 256-rune blocks allocated on demand.
//
// RuneCoverage is safe for concurrent use.
type RuneCoverage struct {
	mu     sync.RWMutex
	blocks map[uint32]*coverageBlock
}

// coverageBlock holds 256 runes × 2 bits.
type coverageBlock [8]uint64

// NewRuneCoverage creates an empty coverage memo.
func NewRuneCoverage() *RuneCoverage {
	return &RuneCoverage{blocks: make(map[uint32]*coverageBlock)}
}

// bitPos returns the block key, word index and bit offset of the
// "checked" bit of r. The "covered" bit is the next one.
func bitPos(r rune) (key, word, shift uint32) {
	idx := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, idx / 64, idx % 64
}

// Get returns (covered, checked). checked is false when r was never stored.
func (c *RuneCoverage) Get(r rune) (covered, checked bool) {
	key, word, shift := bitPos(r)

	c.mu.RLock()
	b, ok := c.blocks[key]
	var w uint64
	if ok {
		w = b[word]
	}
	c.mu.RUnlock()

	return w>>(shift+1)&1 != 0, w>>shift&1 != 0
}

// Set stores the coverage of r.
func (c *RuneCoverage) Set(r rune, covered bool) {
	key, word, shift := bitPos(r)

	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.blocks[key]
	if !ok {
		b = &coverageBlock{}
		c.blocks[key] = b
	}
	b[word] |= 1 << shift
	if covered {
		b[word] |= 1 << (shift + 1)
	} else {
		b[word] &^= 1 << (shift + 1)
	}
}

// Lookup returns the memoized coverage of r, calling probe on first use.
// Concurrent first lookups may both call probe; probe must be pure.
func (c *RuneCoverage) Lookup(r rune, probe func(rune) bool) bool {
	if covered, checked := c.Get(r); checked {
		return covered
	}
	covered := probe(r)
	c.Set(r, covered)
	return covered
}

// Clear removes all entries.
func (c *RuneCoverage) Clear() {
	c.mu.Lock()
	c.blocks = make(map[uint32]*coverageBlock)
	c.mu.Unlock()
}
