package koin

import "go.uber.org/zap"

// ── Build options ─────────────────────────────────────────────────────────────

// BuildOption configures the container under construction.
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger *zap.Logger
}

func defaultBuildOptions() buildOptions {
	return buildOptions{logger: zap.NewNop()}
}

// WithLogger attaches a logger to the container. Registration, instance
// creation and release are reported at Debug level. Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) BuildOption {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ── Resolve options ───────────────────────────────────────────────────────────

// ResolveOption configures a single resolution call.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	from     string
	fromSet  bool
	named    string
	namedSet bool
}

// From sets the namespace the lookup walks upward from. Defaults to the root
// namespace on the container, and to the owning namespace inside a provider's
// Scope.
func From(path string) ResolveOption {
	return func(o *resolveOptions) {
		o.from = normalizePath(path)
		o.fromSet = true
	}
}

// Named selects a qualified definition, overriding the key's own qualifier.
// Mostly useful with the generic helpers, where the key is derived from the
// type parameter:
//
//	db, err := koin.Resolve[Database](c, koin.Named("replica"))
func Named(qualifier string) ResolveOption {
	return func(o *resolveOptions) {
		o.named = qualifier
		o.namedSet = true
	}
}

func applyResolveOptions(opts []ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
