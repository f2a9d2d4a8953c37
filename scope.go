package koin

// ── Resolution context ────────────────────────────────────────────────────────

// resolveState is the ephemeral per-call state of one resolution: the set of
// (namespace, key) pairs currently being created on the active call stack,
// used for cycle detection, plus the ordered stack for error reporting. It is
// shared by every nested Scope of the same top-level Resolve call and never
// persisted.
type resolveState struct {
	active map[cacheKey]struct{}
	stack  []string
}

func newResolveState() *resolveState {
	return &resolveState{active: make(map[cacheKey]struct{})}
}

// Scope is the resolution context handed to a Provider. It is rooted at the
// owning namespace of the definition being created, so lookups inside the
// provider walk upward from where the definition lives — cross-namespace
// wiring works regardless of where the original caller started.
//
//	// Koin: single { ComponentB(get()) } — get() resolves from the module's path
type Scope struct {
	container *Container
	ns        *namespace
	state     *resolveState
}

// Path returns the namespace path this scope is rooted at.
func (s *Scope) Path() string { return s.ns.path }

// Container returns the container this scope resolves against.
func (s *Scope) Container() *Container { return s.container }

// Resolve looks up key from this scope's namespace (or the one named by a
// From option) and materializes an instance, reusing the caller's in-flight
// set so self-dependent definitions fail with CircularDependencyError instead
// of recursing forever.
func (s *Scope) Resolve(key Key, opts ...ResolveOption) (any, error) {
	o := applyResolveOptions(opts)
	if o.namedSet {
		key.Qualifier = o.named
	}
	start := s.ns
	if o.fromSet {
		start = s.container.tree.nearest(o.from)
	}
	return s.container.resolve(key, start, s.state)
}

// Get is the generic form of [Scope.Resolve]; it is the idiomatic way to pull
// dependencies inside a provider:
//
//	m.Single(koin.KeyOf[*Service](), func(s *koin.Scope) (any, error) {
//	    repo, err := koin.Get[*Repo](s)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Service{Repo: repo}, nil
//	})
func Get[T any](s *Scope, opts ...ResolveOption) (T, error) {
	var zero T
	key := KeyOf[T]()
	v, err := s.Resolve(key, opts...)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, mismatch(key, v)
	}
	return out, nil
}
