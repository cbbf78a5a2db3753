package veil

// Reset restores the default configuration and discards the intrinsic-tag
// cache. This is primarily useful for test isolation.
func Reset() {
	instance = newVeil()
}
