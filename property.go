package veil

// Key identifies a well-known symbolic property key on a carrier.
type Key string

// TagKey is the well-known key consulted for per-value tag overrides.
// Values that expose an own property at this key change the tag they
// visibly present; UnmaskTag can temporarily neutralize it.
const TagKey = Key("veil:tag")

// Descriptor is a snapshot of one own property: its value and the flags
// governing how it may be redefined. Snapshots are stack-local to a single
// call and never retained.
type Descriptor struct {
	Value        any
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// PropertyCarrier is implemented by values that expose own, per-value
// properties at well-known keys. All three methods may panic or refuse;
// every call site in this package is protected accordingly.
type PropertyCarrier interface {
	// OwnProperty returns the descriptor for an own property, if present.
	// Inherited behavior (see Tagger) is not reported here.
	OwnProperty(key Key) (Descriptor, bool)

	// DefineProperty creates or redefines an own property. Implementations
	// must refuse to redefine a non-configurable property.
	DefineProperty(key Key, desc Descriptor) error

	// DeleteProperty removes an own property. Implementations must refuse
	// to delete a non-configurable property.
	DeleteProperty(key Key) error
}

// Tagger reports a type-level tag override. Because the override comes
// from the type rather than the value, it behaves like an inherited
// property: it is respected by both entry points and never masked.
type Tagger interface {
	TypeTag() string
}
