package veil

// Event is the base interface for all veil observability events.
type Event interface {
	EventType() string
}

// ReadEvent is emitted when the native tag reader recovers from a panic.
type ReadEvent struct {
	Tag       string `json:"tag"`
	Recovered bool   `json:"recovered,omitempty"`
	Cause     string `json:"cause,omitempty"`
}

func (ReadEvent) EventType() string { return "read" }

// UnmaskEvent is emitted for every unmask attempt on an object-like value.
type UnmaskEvent struct {
	Tag     string `json:"tag,omitempty"`
	Outcome string `json:"outcome"` // "revealed", "safe_fallback", "unsafe_fallback"
	Reason  string `json:"reason,omitempty"`
}

func (UnmaskEvent) EventType() string { return "unmask" }

// CacheEvent is emitted for intrinsic-tag cache operations when cache
// events are enabled.
type CacheEvent struct {
	TypeName  string `json:"type_name"`
	Operation string `json:"operation"` // "hit", "miss", "store", "clear"
	CacheSize int    `json:"cache_size,omitempty"`
}

func (CacheEvent) EventType() string { return "cache" }
