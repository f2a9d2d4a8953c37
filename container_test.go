package koin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	koin "github.com/km-arc/go-koin"
)

// ── Build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyModuleList(t *testing.T) {
	c, err := koin.Build(nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	_, err = koin.Resolve[*ComponentA](c)
	var nf *koin.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestBuild_NilModulesAreSkipped(t *testing.T) {
	app := koin.NewModule("")
	app.Single(koin.KeyOf[*ComponentA](), provideA)

	c, err := koin.Build([]*koin.Module{nil, app, nil})
	require.NoError(t, err)

	_, err = koin.Resolve[*ComponentA](c)
	require.NoError(t, err)
}

func TestBuild_DuplicateKeySameModule_Conflicts(t *testing.T) {
	m := koin.NewModule("org")
	m.Single(koin.KeyOf[*ComponentA](), provideA)
	m.Single(koin.KeyOf[*ComponentA](), provideA)

	c, err := koin.Build([]*koin.Module{m})
	require.Nil(t, c, "no partial container on conflict")

	var conflict *koin.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "org", conflict.Path)
	assert.Equal(t, koin.KeyOf[*ComponentA](), conflict.Key)
}

func TestBuild_DuplicateKeyAcrossMergedModules_Conflicts(t *testing.T) {
	m1 := koin.NewModule("org.sample")
	m1.Single(koin.KeyOf[*ComponentC](), provideC)

	// Independently authored module targeting the same path via nesting.
	m2 := koin.NewModule("org")
	m2.Inner("sample").Factory(koin.KeyOf[*ComponentC](), provideC)

	_, err := koin.Build([]*koin.Module{m1, m2})
	var conflict *koin.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "org.sample", conflict.Path)
}

func TestBuild_ConflictReporting_OrderIndependent(t *testing.T) {
	// Two unrelated conflicts: one in "org.a", one in "org.b". Whatever order
	// the modules are merged in, the surviving error is the one at "org.a".
	dupA1 := koin.NewModule("org.a").Single(koin.KeyOf[*ComponentA](), provideA)
	dupA2 := koin.NewModule("org.a").Single(koin.KeyOf[*ComponentA](), provideA)
	dupB1 := koin.NewModule("org.b").Single(koin.KeyOf[*ComponentB](), provideB)
	dupB2 := koin.NewModule("org.b").Single(koin.KeyOf[*ComponentB](), provideB)

	orders := [][]*koin.Module{
		{dupA1, dupA2, dupB1, dupB2},
		{dupB1, dupB2, dupA1, dupA2},
		{dupB2, dupA2, dupB1, dupA1},
	}
	for _, modules := range orders {
		_, err := koin.Build(modules)
		var conflict *koin.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "org.a", conflict.Path)
	}
}

func TestBuild_SameTypeDifferentQualifiers_NoConflict(t *testing.T) {
	m := koin.NewModule("")
	m.Single(koin.KeyOf[string]("greeting"), value("hello"))
	m.Single(koin.KeyOf[string]("farewell"), value("bye"))

	c, err := koin.Build([]*koin.Module{m})
	require.NoError(t, err)

	greeting, err := koin.Resolve[string](c, koin.Named("greeting"))
	require.NoError(t, err)
	assert.Equal(t, "hello", greeting)

	farewell, err := koin.Resolve[string](c, koin.Named("farewell"))
	require.NoError(t, err)
	assert.Equal(t, "bye", farewell)

	// The bare type is a different key — nothing is declared for it.
	_, err = koin.Resolve[string](c)
	var nf *koin.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestBuild_WithLogger(t *testing.T) {
	c, err := koin.Build(layeredModules(), koin.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	_, err = koin.Resolve[*ComponentC](c, koin.From("org.sample"))
	require.NoError(t, err)
	c.Release("org")
}

// ── Module DSL ────────────────────────────────────────────────────────────────

func TestModule_PathNormalization(t *testing.T) {
	m := koin.NewModule(".org.sample.")
	assert.Equal(t, "org.sample", m.Path())

	inner := m.Inner("web")
	assert.Equal(t, "org.sample.web", inner.Path())

	root := koin.NewModule("")
	assert.Equal(t, "", root.Path())
	assert.Equal(t, "api", root.Inner("api").Path())
}

func TestModule_BuilderChains(t *testing.T) {
	m := koin.NewModule("svc").
		Single(koin.KeyOf[*ComponentA](), provideA).
		Factory(koin.KeyOf[*ComponentB](), provideB)

	c, err := koin.Build([]*koin.Module{m})
	require.NoError(t, err)

	_, err = koin.Resolve[*ComponentA](c, koin.From("svc"))
	require.NoError(t, err)
}

// ── Keys ──────────────────────────────────────────────────────────────────────

func TestKey_String(t *testing.T) {
	assert.Equal(t, "*koin_test.ComponentA", koin.KeyOf[*ComponentA]().String())
	assert.Equal(t, "string(primary)", koin.KeyOf[string]("primary").String())
}
