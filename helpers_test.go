package koin_test

import (
	"sync/atomic"

	koin "github.com/km-arc/go-koin"
)

// ── shared fixtures ───────────────────────────────────────────────────────────

// The component types mirror a small layered application: A at the root,
// B under "org", C and D under sibling namespaces "org.sample" / "org.demo".

type ComponentA struct {
	ID int64
}

type ComponentB struct {
	ID int64
	A  *ComponentA
}

type ComponentC struct {
	A *ComponentA
	B *ComponentB
}

type ComponentD struct {
	A *ComponentA
	B *ComponentB
}

// instanceSeq hands out distinct IDs so tests can tell instances apart even
// when pointers are not enough.
var instanceSeq atomic.Int64

func nextID() int64 { return instanceSeq.Add(1) }

func provideA(_ *koin.Scope) (any, error) {
	return &ComponentA{ID: nextID()}, nil
}

func provideB(s *koin.Scope) (any, error) {
	a, err := koin.Get[*ComponentA](s)
	if err != nil {
		return nil, err
	}
	return &ComponentB{ID: nextID(), A: a}, nil
}

func provideC(s *koin.Scope) (any, error) {
	a, err := koin.Get[*ComponentA](s)
	if err != nil {
		return nil, err
	}
	b, err := koin.Get[*ComponentB](s)
	if err != nil {
		return nil, err
	}
	return &ComponentC{A: a, B: b}, nil
}

func provideD(s *koin.Scope) (any, error) {
	a, err := koin.Get[*ComponentA](s)
	if err != nil {
		return nil, err
	}
	b, err := koin.Get[*ComponentB](s)
	if err != nil {
		return nil, err
	}
	return &ComponentD{A: a, B: b}, nil
}

// layeredModules builds the end-to-end fixture: ComponentA at the root,
// ComponentB in "org", ComponentC in "org.sample", ComponentD in "org.demo".
func layeredModules() []*koin.Module {
	app := koin.NewModule("")
	app.Single(koin.KeyOf[*ComponentA](), provideA)

	org := koin.NewModule("org")
	org.Single(koin.KeyOf[*ComponentB](), provideB)
	org.Inner("sample").Single(koin.KeyOf[*ComponentC](), provideC)
	org.Inner("demo").Single(koin.KeyOf[*ComponentD](), provideD)

	return []*koin.Module{app, org}
}

// value is a trivial provider for leaf values.
func value(v any) koin.Provider {
	return func(_ *koin.Scope) (any, error) { return v, nil }
}
