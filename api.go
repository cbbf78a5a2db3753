// Package veil provides defensive type-tag introspection for arbitrary values.
//
// SafeTag reports the tag a value visibly presents, custom overrides
// included, and never panics. UnmaskTag additionally attempts to reveal
// the intrinsic tag underneath a value's own override by temporarily
// neutralizing it; the override is restored before the call returns.
//
// If restoring the override fails (a hostile carrier refusing the write),
// UnmaskTag still does not panic and does not return a tag computed from
// the un-restorable value, but the value's override property may remain
// altered. Callers that cannot tolerate this residual risk should not use
// UnmaskTag on values they do not control.
package veil

// Global singleton instance.
var instance *Veil

func init() {
	instance = newVeil()
}

// Veil holds the resolved capability flags and the intrinsic-tag memo.
//
//nolint:govet // Field order is intentional for clarity
type Veil struct {
	// Memo for kind-derived intrinsic tags; nil when disabled
	memo *Cache

	// Well-known override key
	key Key

	// Whether the tag-override concept is honored at all
	overrides bool

	// Whether cache hit/miss/store events are emitted
	cacheEvents bool
}

func newVeil() *Veil {
	// Use a permanent cache since types are immutable at runtime
	return &Veil{
		memo:      NewCache(),
		key:       TagKey,
		overrides: true,
	}
}

// SafeTag returns the tag v visibly presents. It never panics and never
// mutates v; the worst case for a hostile value is FallbackTag.
func SafeTag(v any) string {
	return instance.safeTag(instance.classify(v))
}

// UnmaskTag returns the tag the runtime assigns to v's intrinsic kind,
// ignoring an own tag override if one can be safely neutralized and
// restored. In every other case it falls back to SafeTag's answer. It
// never panics. See the package documentation for the restore-failure
// caveat.
func UnmaskTag(v any) string {
	return instance.unmaskTag(v)
}

func (s *Veil) safeTag(p probe) string {
	switch p.class {
	case classUndefined:
		return UndefinedTag
	case classNull:
		return NullTag
	}
	return s.nativeTag(p)
}

func (s *Veil) unmaskTag(v any) string {
	p := s.classify(v)

	// Sentinel and primitive handling is identical to SafeTag; there is
	// nothing to unmask.
	switch p.class {
	case classUndefined, classNull, classPrimitive:
		return s.safeTag(p)
	}

	res := s.unmask(p)
	emitUnmask(res)

	if res.outcome == outcomeRevealed {
		return res.tag
	}
	return s.safeTag(p)
}
