package veil

// Option configures the global Veil instance.
type Option func(*Veil)

// WithoutOverrides disables the tag-override concept entirely. The native
// reader reports intrinsic tags only, and UnmaskTag always falls back.
func WithoutOverrides() Option {
	return func(s *Veil) {
		s.overrides = false
	}
}

// WithoutMemo disables the per-type intrinsic-tag cache.
func WithoutMemo() Option {
	return func(s *Veil) {
		s.memo = nil
	}
}

// WithCacheEvents enables cache hit/miss/store event emission.
// Off by default to keep the read fast path quiet.
func WithCacheEvents() Option {
	return func(s *Veil) {
		s.cacheEvents = true
	}
}

// Configure applies options to the global veil instance.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(instance)
	}
}
