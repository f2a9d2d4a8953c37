package koin

// ── Module DSL ────────────────────────────────────────────────────────────────

// Module is an independently authored namespace-tree declaration — the unit
// the outer DSL layer hands to Build. Several modules may target the same
// path; Build folds them into one unified tree.
//
//	// Koin: module("org.sample") { single { Repo(get()) } }
//	m := koin.NewModule("org.sample")
//	m.Single(koin.KeyOf[*Repo](), provideRepo)
//
// A Module records declarations only. Conflicts (the same key declared twice
// in the same resulting namespace) are detected during Build, never here, so
// the builder methods chain without error returns.
type Module struct {
	path  string
	decls []moduleDecl
	inner []*Module
}

type moduleDecl struct {
	key      Key
	kind     kind
	provider Provider
}

// NewModule starts a declaration tree rooted at path. The empty path targets
// the root namespace.
func NewModule(path string) *Module {
	return &Module{path: normalizePath(path)}
}

// Path returns the namespace path this module declares into.
func (m *Module) Path() string { return m.path }

// Single declares a cached definition: the provider runs at most once per
// owning namespace, and the instance is reused until the namespace (or an
// ancestor of it) is released.
//
//	// Koin: single { Database(get()) }
func (m *Module) Single(key Key, provider Provider) *Module {
	m.decls = append(m.decls, moduleDecl{key: key, kind: kindSingle, provider: provider})
	return m
}

// Factory declares an uncached definition: the provider runs on every
// resolution and each caller receives a fresh instance.
//
//	// Koin: factory { RequestHandler(get()) }
func (m *Module) Factory(key Key, provider Provider) *Module {
	m.decls = append(m.decls, moduleDecl{key: key, kind: kindFactory, provider: provider})
	return m
}

// Inner declares a nested module one segment below this one and returns it.
// Its declarations travel with the parent into Build.
//
//	// Koin: module("org") { module("sample") { ... } }
//	org := koin.NewModule("org")
//	sample := org.Inner("sample") // declares into "org.sample"
func (m *Module) Inner(segment string) *Module {
	child := NewModule(joinPath(m.path, normalizePath(segment)))
	m.inner = append(m.inner, child)
	return child
}

// walk visits this module's declarations and then, depth-first, every inner
// module's.
func (m *Module) walk(visit func(path string, d moduleDecl)) {
	for _, d := range m.decls {
		visit(m.path, d)
	}
	for _, inner := range m.inner {
		inner.walk(visit)
	}
}
