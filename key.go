package koin

import "reflect"

// Key is the lookup unit for a definition: a type identity plus an optional
// qualifier name. The qualifier disambiguates multiple definitions of the
// same type within one namespace:
//
//	// Koin: single(named("primary")) { Postgres() }
//	m.Single(koin.KeyOf[Database]("primary"), providePostgres)
//	m.Single(koin.KeyOf[Database]("replica"), provideReplica)
//
// Reflection is used only to obtain a comparable type identity — providers
// are plain closures, never constructed reflectively.
type Key struct {
	Type      reflect.Type
	Qualifier string
}

// KeyOf builds a Key for type T, optionally qualified by a name. At most one
// qualifier is honoured.
func KeyOf[T any](qualifier ...string) Key {
	k := Key{Type: reflect.TypeOf((*T)(nil)).Elem()}
	if len(qualifier) > 0 {
		k.Qualifier = qualifier[0]
	}
	return k
}

// String renders the key for error messages and logs.
func (k Key) String() string {
	if k.Type == nil {
		return "<nil>"
	}
	if k.Qualifier == "" {
		return k.Type.String()
	}
	return k.Type.String() + "(" + k.Qualifier + ")"
}
