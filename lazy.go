package koin

import "sync"

// Deferred is a lazy handle on a resolution: it captures the key and start
// namespace at declaration time and resolves on first Get, through the same
// instance-cache path as a direct Resolve. The outcome — value or error — is
// memoized on the handle.
//
//	// Koin: val repo: Repo by inject()
//	repo := koin.Defer[*Repo](c, koin.From("org.sample"))
//	...
//	r, err := repo.Get() // resolves now, then always returns the same result
//
// A Release after the first Get does not refresh the handle; build a new one
// to observe a recreated instance.
type Deferred[T any] struct {
	container *Container
	opts      []ResolveOption
	once      sync.Once
	value     T
	err       error
}

// Defer builds a lazy handle for type T on the given container. The options
// are captured and applied when the first Get triggers resolution.
func Defer[T any](c *Container, opts ...ResolveOption) *Deferred[T] {
	return &Deferred[T]{container: c, opts: opts}
}

// Get resolves the handle on first call and returns the memoized result on
// every call after that. Safe for concurrent use.
func (d *Deferred[T]) Get() (T, error) {
	d.once.Do(func() {
		d.value, d.err = Resolve[T](d.container, d.opts...)
	})
	return d.value, d.err
}

// MustGet is Get for wiring paths where a resolution failure is a programming
// error; it panics on error.
func (d *Deferred[T]) MustGet() T {
	v, err := d.Get()
	if err != nil {
		panic(err)
	}
	return v
}
