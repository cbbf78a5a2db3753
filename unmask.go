package veil

import "fmt"

// outcome enumerates the three exits of the mask/read/restore protocol.
type outcome int

const (
	// outcomeRevealed: the override was masked, the intrinsic tag read,
	// and the original descriptor restored. The read tag is trustworthy.
	outcomeRevealed outcome = iota

	// outcomeSafeFallback: a precondition or the mask write failed before
	// any mutation took hold. The value is untouched.
	outcomeSafeFallback

	// outcomeUnsafeFallback: the restore failed after the mask was
	// written. The read tag must not be returned; the value's override
	// property may remain altered.
	outcomeUnsafeFallback
)

func (o outcome) String() string {
	switch o {
	case outcomeRevealed:
		return "revealed"
	case outcomeSafeFallback:
		return "safe_fallback"
	case outcomeUnsafeFallback:
		return "unsafe_fallback"
	default:
		return "unknown"
	}
}

// unmaskResult is the internal result of one unmask attempt. The public
// boundary collapses it to a plain tag string.
type unmaskResult struct {
	tag     string
	outcome outcome
	reason  string
}

// maskDescriptor temporarily occupies the override slot with a value the
// native reader ignores, letting the underlying tag show through while the
// property remains defined and restorable.
var maskDescriptor = Descriptor{Value: nil, Writable: true, Configurable: true}

// unmask runs the mask/read/restore protocol against p. Every step that
// touches the carrier is individually protected so that a panic in one
// step can never skip the restore of a previous one.
func (s *Veil) unmask(p probe) unmaskResult {
	if !s.overrides {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "overrides disabled"}
	}
	if p.carrier == nil {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "no own-property protocol"}
	}

	saved, ok, err := ownPropertySafe(p.carrier, s.key)
	if err != nil {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "descriptor lookup failed"}
	}
	if !ok {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "no own override"}
	}
	if !saved.Configurable {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "override not configurable"}
	}

	if err := defineSafe(p.carrier, s.key, maskDescriptor); err != nil {
		return unmaskResult{outcome: outcomeSafeFallback, reason: "mask write refused"}
	}

	tag := s.nativeTag(p)

	if err := defineSafe(p.carrier, s.key, saved); err != nil {
		// Best-effort cleanup of the masked slot.
		quietly(func() { _ = p.carrier.DeleteProperty(s.key) })
		return unmaskResult{outcome: outcomeUnsafeFallback, reason: "restore failed"}
	}

	return unmaskResult{tag: tag, outcome: outcomeRevealed}
}

// ownPropertySafe reads an own property descriptor, converting a panic
// from a hostile trap into an error.
func ownPropertySafe(c PropertyCarrier, key Key) (desc Descriptor, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			desc, ok = Descriptor{}, false
			err = fmt.Errorf("veil: own property read panicked: %v", r)
		}
	}()
	desc, ok = c.OwnProperty(key)
	return desc, ok, nil
}

// defineSafe redefines an own property, converting a panic into an error.
func defineSafe(c PropertyCarrier, key Key, desc Descriptor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("veil: property definition panicked: %v", r)
		}
	}()
	return c.DefineProperty(key, desc)
}

// quietly runs fn and swallows any panic.
func quietly(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
