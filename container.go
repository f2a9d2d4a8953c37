package koin

import (
	"fmt"
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the finished runtime: an immutable namespace tree of
// definitions plus the mutable instance cache. Build it once with [Build];
// it is then safe to share across any number of goroutines issuing Resolve
// and Release calls. There is no ambient global container — independent
// Container values are fully isolated, which keeps test runs hermetic.
type Container struct {
	tree   *tree
	cache  *instanceCache
	logger *zap.Logger
}

// Build merges the given declaration modules into one unified namespace tree
// and returns a ready container with an empty instance cache.
//
//	// Koin: startKoin { modules(appModule, orgModule) }
//	c, err := koin.Build([]*koin.Module{appModule, orgModule})
//
// Modules may target the same path, including via nested Inner modules; their
// definitions are folded into the same namespace node. If two declarations
// register the same key in the same resulting namespace, Build fails with
// *ConflictError and no usable container is produced. Conflict reporting is
// deterministic: the surviving error is the first conflicting (namespace,
// key) pair in depth-first path order, regardless of the order the modules
// were handed in.
func Build(modules []*Module, opts ...BuildOption) (*Container, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := newTree()
	var conflicts []*ConflictError
	for _, m := range modules {
		if m == nil {
			continue
		}
		m.walk(func(path string, d moduleDecl) {
			if err := t.register(path, d.key, d.kind, d.provider); err != nil {
				conflicts = append(conflicts, err)
				return
			}
			o.logger.Debug("registered definition",
				zap.String("namespace", path),
				zap.Stringer("key", d.key),
				zap.Stringer("kind", d.kind))
		})
	}
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool {
			if conflicts[i].Path != conflicts[j].Path {
				return conflicts[i].Path < conflicts[j].Path
			}
			return conflicts[i].Key.String() < conflicts[j].Key.String()
		})
		return nil, conflicts[0]
	}

	return &Container{tree: t, cache: newInstanceCache(), logger: o.logger}, nil
}

// Resolve looks up key along the ancestor chain from the starting namespace
// (root by default, or the one named by a From option) and returns an
// instance: a cached-or-created one for Single definitions, a fresh one for
// Factory definitions.
//
//	// Koin: get<ComponentC>() from the "org.sample" context
//	v, err := c.Resolve(koin.KeyOf[*ComponentC](), koin.From("org.sample"))
func (c *Container) Resolve(key Key, opts ...ResolveOption) (any, error) {
	o := applyResolveOptions(opts)
	if o.namedSet {
		key.Qualifier = o.named
	}
	start := c.tree.root
	if o.fromSet {
		start = c.tree.nearest(o.from)
	}
	return c.resolve(key, start, newResolveState())
}

// Release removes every cached Single instance owned by the namespace at
// path or any of its descendants. Definitions are untouched: subsequent
// resolutions lazily recreate the instances. Release is idempotent and never
// fails — an unknown or empty-handed path is a no-op.
//
//	// Koin: releaseContext("org")
//	c.Release("org")
func (c *Container) Release(path string) {
	path = normalizePath(path)
	dropped := c.cache.release(path)
	c.logger.Debug("released namespace",
		zap.String("namespace", path),
		zap.Int("instances", dropped))
}

// Close tears the container down by releasing every cached instance. The
// tree and definitions remain valid, so Close is equivalent to releasing the
// root namespace; it exists to make teardown explicit at end of life.
func (c *Container) Close() {
	c.Release("")
}

// CachedInstances reports the number of live cache entries, in-flight
// creations included. Intended for diagnostics and tests.
func (c *Container) CachedInstances() int {
	return c.cache.size()
}

// ── Resolution engine ─────────────────────────────────────────────────────────

// resolve is the core engine: nearest-ancestor lookup, cycle detection, and
// materialization. st is shared with any nested resolutions the definition's
// provider performs.
func (c *Container) resolve(key Key, start *namespace, st *resolveState) (any, error) {
	d, ok := start.lookup(key)
	if !ok {
		return nil, &NotFoundError{Key: key, Path: start.path}
	}

	ck := cacheKey{owner: d.owner, key: d.key}
	if _, inFlight := st.active[ck]; inFlight {
		chain := make([]string, 0, len(st.stack)+1)
		chain = append(chain, st.stack...)
		chain = append(chain, definitionName(d))
		return nil, &CircularDependencyError{Chain: chain}
	}
	st.active[ck] = struct{}{}
	st.stack = append(st.stack, definitionName(d))
	defer func() {
		delete(st.active, ck)
		st.stack = st.stack[:len(st.stack)-1]
	}()

	scope := &Scope{container: c, ns: d.owner, state: st}

	if d.kind == kindFactory {
		v, err := d.provider(scope)
		if err != nil {
			return nil, &CreationError{Path: d.owner.path, Key: d.key, Err: err}
		}
		return v, nil
	}

	v, created, err := c.cache.getOrCreate(ck, func() (any, error) {
		return d.provider(scope)
	})
	if err != nil {
		return nil, &CreationError{Path: d.owner.path, Key: d.key, Err: err}
	}
	if created {
		c.logger.Debug("created instance",
			zap.String("namespace", d.owner.path),
			zap.Stringer("key", d.key))
	}
	return v, nil
}

// definitionName renders a definition for circular-dependency chains.
func definitionName(d *definition) string {
	if d.owner.path == "" {
		return d.key.String()
	}
	return d.key.String() + "@" + d.owner.path
}

// ── Generic helper ────────────────────────────────────────────────────────────

// Resolve is the generic form of [Container.Resolve] — the recommended way to
// retrieve values:
//
//	repo, err := koin.Resolve[*Repo](c, koin.From("org.sample"))
func Resolve[T any](c *Container, opts ...ResolveOption) (T, error) {
	var zero T
	key := KeyOf[T]()
	v, err := c.Resolve(key, opts...)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, mismatch(key, v)
	}
	return out, nil
}

func mismatch(key Key, got any) *TypeMismatchError {
	return &TypeMismatchError{
		Key:      key,
		Expected: key.Type.String(),
		Got:      fmt.Sprintf("%v", reflect.TypeOf(got)),
	}
}
