// Package koin provides a Koin-compatible hierarchical dependency-resolution
// and lifecycle runtime for Go.
//
// # Overview
//
// Definitions live in a tree of dot-separated namespaces. A lookup walks the
// ancestor chain from its starting namespace toward the root and uses the
// nearest definition it finds, so a namespace sees everything its ancestors
// declare while siblings stay invisible to each other. Single definitions are
// created lazily, exactly once, and cached per owning namespace; Factory
// definitions produce a fresh instance on every resolution. Releasing a
// namespace drops the cached instances of its whole subtree without touching
// the definitions, so the next resolution simply recreates them.
//
// It mirrors the concepts of Koin's module/single/factory DSL as closely as
// Go's type system allows. Because Go has no constructor reflection,
// definitions are explicit provider closures keyed by type identity plus an
// optional qualifier — there is no autowiring.
//
// # Declaring
//
//	// Koin: module { single { Database() } }
//	app := koin.NewModule("") // root namespace
//	app.Single(koin.KeyOf[*Database](), func(s *koin.Scope) (any, error) {
//	    return OpenDatabase()
//	})
//
//	// Koin: module("org") { single { Repo(get()) } }
//	org := koin.NewModule("org")
//	org.Single(koin.KeyOf[*Repo](), func(s *koin.Scope) (any, error) {
//	    db, err := koin.Get[*Database](s) // walks up from "org"
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Repo{DB: db}, nil
//	})
//
//	// Nested declaration — declares into "org.sample"
//	sample := org.Inner("sample")
//	sample.Factory(koin.KeyOf[*Handler](), provideHandler)
//
// # Building
//
//	// Koin: startKoin { modules(app, org) }
//	c, err := koin.Build([]*koin.Module{app, org})
//
// Build folds all modules — including independently authored ones sharing a
// path — into one tree. Registering the same key twice in the same resulting
// namespace fails with *ConflictError and no container is produced.
//
// # Resolving
//
//	// From the root namespace
//	db, err := koin.Resolve[*Database](c)
//
//	// From a nested namespace — sees "org" and root definitions too
//	repo, err := koin.Resolve[*Repo](c, koin.From("org.sample"))
//
//	// Qualified definitions of the same type
//	replica, err := koin.Resolve[Database](c, koin.Named("replica"))
//
// A missing definition yields *NotFoundError; a definition that transitively
// depends on itself yields *CircularDependencyError instead of recursing.
//
// # Lifecycle
//
//	// Koin: releaseContext("org")
//	c.Release("org") // drops cached Singles under "org", keeps definitions
//	c.Close()        // releases everything
//
// The container is safe for arbitrary concurrent Resolve and Release calls:
// first-time creation of a Single is exactly-once even under contention, and
// concurrent callers of an in-flight creation wait for it and share its
// outcome.
//
// # Deferred resolution
//
//	// Koin: val repo: Repo by inject()
//	repo := koin.Defer[*Repo](c, koin.From("org"))
//	r, err := repo.Get() // resolved and memoized on first access
package koin
