package koin

// Provider is a creation procedure. It receives the Scope of the definition's
// owning namespace, so dependencies resolved inside the provider are looked
// up relative to where the definition lives, not where the caller started.
//
//	// Koin: single { Repo(get()) }
//	m.Single(koin.KeyOf[*Repo](), func(s *koin.Scope) (any, error) {
//	    db, err := koin.Get[*DB](s)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Repo{DB: db}, nil
//	})
type Provider func(s *Scope) (any, error)

// kind distinguishes how instances of a definition are materialized.
type kind int

const (
	// kindSingle — created once per owning namespace, cached until released.
	kindSingle kind = iota
	// kindFactory — a fresh instance on every resolution, never cached.
	kindFactory
)

func (k kind) String() string {
	if k == kindSingle {
		return "single"
	}
	return "factory"
}

// definition is an immutable registered creation procedure. Built once during
// Build and read-only afterwards.
type definition struct {
	key      Key
	kind     kind
	provider Provider
	owner    *namespace
}
