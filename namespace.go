package koin

import "strings"

// ── Paths ─────────────────────────────────────────────────────────────────────

// pathSeparator joins namespace segments. The root namespace is the empty
// path: "org.sample" is a grandchild of root.
const pathSeparator = "."

// normalizePath trims stray separators so "org.sample", ".org.sample" and
// "org.sample." all name the same namespace.
func normalizePath(path string) string {
	return strings.Trim(path, pathSeparator)
}

func splitPath(path string) []string {
	path = normalizePath(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, pathSeparator)
}

func joinPath(parent, segment string) string {
	if parent == "" {
		return segment
	}
	return parent + pathSeparator + segment
}

// isUnderPath reports whether owner equals path or is a descendant of it.
// The root path ("") covers every namespace.
func isUnderPath(owner, path string) bool {
	if path == "" {
		return true
	}
	return owner == path || strings.HasPrefix(owner, path+pathSeparator)
}

// ── Namespace tree ────────────────────────────────────────────────────────────

// namespace is one node of the hierarchical registry. It owns its child
// namespaces and its local definitions and keeps a non-owning back-reference
// to its parent. The whole tree is built during Build and is read-only
// afterwards, so resolution reads it without synchronization.
type namespace struct {
	path     string
	parent   *namespace
	children map[string]*namespace
	defs     map[Key]*definition
}

func newNamespace(path string, parent *namespace) *namespace {
	return &namespace{
		path:     path,
		parent:   parent,
		children: make(map[string]*namespace),
		defs:     make(map[Key]*definition),
	}
}

// find returns the definition for key declared in this exact namespace.
func (n *namespace) find(key Key) (*definition, bool) {
	d, ok := n.defs[key]
	return d, ok
}

// lookup walks the ancestor chain starting at n, returning the definition
// from the nearest namespace (n itself counting as nearest) that declares
// key. More distant ancestors declaring the same key are shadowed.
func (n *namespace) lookup(key Key) (*definition, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if d, ok := cur.find(key); ok {
			return d, true
		}
	}
	return nil, false
}

// tree is the unified namespace tree plus a path index for O(1) start-point
// and release lookups.
type tree struct {
	root  *namespace
	index map[string]*namespace
}

func newTree() *tree {
	root := newNamespace("", nil)
	return &tree{
		root:  root,
		index: map[string]*namespace{"": root},
	}
}

// declare is the idempotent get-or-create for a namespace path, creating any
// missing intermediate ancestors along the way.
func (t *tree) declare(path string) *namespace {
	if n, ok := t.index[normalizePath(path)]; ok {
		return n
	}
	cur := t.root
	for _, segment := range splitPath(path) {
		child, ok := cur.children[segment]
		if !ok {
			child = newNamespace(joinPath(cur.path, segment), cur)
			cur.children[segment] = child
			t.index[child.path] = child
		}
		cur = child
	}
	return cur
}

// nearest returns the namespace at path, or the closest declared ancestor
// when the exact path was never declared. Always succeeds: the root is an
// ancestor of every path.
func (t *tree) nearest(path string) *namespace {
	segments := splitPath(path)
	for {
		candidate := strings.Join(segments, pathSeparator)
		if n, ok := t.index[candidate]; ok {
			return n
		}
		segments = segments[:len(segments)-1]
	}
}

// register adds a definition to the namespace at path. Registration only
// happens during Build, never during live resolution.
func (t *tree) register(path string, key Key, k kind, provider Provider) *ConflictError {
	n := t.declare(path)
	if _, exists := n.defs[key]; exists {
		return &ConflictError{Path: n.path, Key: key}
	}
	n.defs[key] = &definition{key: key, kind: k, provider: provider, owner: n}
	return nil
}
