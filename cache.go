package koin

import "sync"

// ── Instance cache ────────────────────────────────────────────────────────────

// cacheKey identifies a cached Single instance by the namespace that owns its
// definition plus the identity key. Two callers starting in different
// namespaces that resolve to the same definition share the same cache slot.
type cacheKey struct {
	owner *namespace
	key   Key
}

// cacheEntry is the per-key memoizing gate. An entry is pending until done is
// closed; afterwards exactly one of value / err is meaningful. Waiters hold
// the entry pointer directly, so a concurrent release can drop the entry from
// the map without disturbing callers already waiting on it.
type cacheEntry struct {
	owner string // owning namespace path, matched by release
	done  chan struct{}
	value any
	err   error
}

// instanceCache holds materialized Single instances. It is the container's
// only mutable shared state: the namespace tree and definitions are read-only
// after Build. Creation is mutually exclusive per cache key, never behind a
// single global lock — mu only guards the map itself, and is never held while
// a provider runs.
type instanceCache struct {
	mu      sync.Mutex
	entries map[cacheKey]*cacheEntry
}

func newInstanceCache() *instanceCache {
	return &instanceCache{entries: make(map[cacheKey]*cacheEntry)}
}

// getOrCreate returns the ready instance for k, or performs exactly-once
// creation via build. Concurrent callers for the same key wait for the
// in-flight creation and observe its result — including its failure. A failed
// creation removes the entry, so a later caller may retry. The boolean
// reports whether this call performed the creation.
func (c *instanceCache) getOrCreate(k cacheKey, build func() (any, error)) (any, bool, error) {
	c.mu.Lock()
	if e, ok := c.entries[k]; ok {
		c.mu.Unlock()
		<-e.done
		return e.value, false, e.err
	}
	e := &cacheEntry{owner: k.owner.path, done: make(chan struct{})}
	c.entries[k] = e
	c.mu.Unlock()

	value, err := build()

	c.mu.Lock()
	if err != nil {
		e.err = err
		// Drop the entry so an unrelated later call may retry, unless a
		// release already removed it (and possibly a new attempt replaced it).
		if c.entries[k] == e {
			delete(c.entries, k)
		}
	} else {
		e.value = value
		// If a release raced with this creation the entry is gone from the
		// map: waiters still receive this value, but the next resolution
		// recreates the instance.
	}
	c.mu.Unlock()
	close(e.done)

	return value, err == nil, err
}

// release removes every entry owned by the namespace at path or any of its
// descendants and reports how many were dropped. Pending entries are removed
// immediately: their in-flight creations settle against the detached entry,
// so the release wins and the next resolution starts fresh. Releasing a path
// with no cached entries is a no-op.
func (c *instanceCache) release(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for k, e := range c.entries {
		if isUnderPath(e.owner, path) {
			delete(c.entries, k)
			dropped++
		}
	}
	return dropped
}

// size reports the number of live entries, pending included.
func (c *instanceCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
