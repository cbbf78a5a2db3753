package veil

import "github.com/zoobzio/zlog"

// Veil signals for observability events.
// These signals allow users to route veil's internal events to appropriate sinks.
//
//nolint:revive // ALL_CAPS is idiomatic for signal constants
const (
	// TAG_RECOVERED is emitted when the native tag reader absorbs a panic.
	// Event type: ReadEvent
	TAG_RECOVERED = zlog.Signal("TAG_RECOVERED")

	// UNMASK_REVEALED is emitted when an own override was masked, read
	// through, and restored.
	// Event type: UnmaskEvent
	UNMASK_REVEALED = zlog.Signal("UNMASK_REVEALED")

	// UNMASK_FALLBACK is emitted when an unmask attempt fell back before
	// any mutation took hold.
	// Event type: UnmaskEvent
	UNMASK_FALLBACK = zlog.Signal("UNMASK_FALLBACK")

	// UNMASK_RESTORE_FAILED is emitted when the restore step failed after
	// the mask was written.
	// Event type: UnmaskEvent
	UNMASK_RESTORE_FAILED = zlog.Signal("UNMASK_RESTORE_FAILED")

	// CACHE_HIT is emitted when an intrinsic tag is found in the memo.
	// Event type: CacheEvent
	CACHE_HIT = zlog.Signal("CACHE_HIT")

	// CACHE_MISS is emitted when an intrinsic tag is not found in the memo.
	// Event type: CacheEvent
	CACHE_MISS = zlog.Signal("CACHE_MISS")

	// CACHE_STORE is emitted when an intrinsic tag is stored in the memo.
	// Event type: CacheEvent
	CACHE_STORE = zlog.Signal("CACHE_STORE")
)
