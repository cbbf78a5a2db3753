package veil

import "errors"

// ErrNonConfigurable is returned when a define or delete targets a
// non-configurable property.
var ErrNonConfigurable = errors.New("veil: property is not configurable")

// ErrNotWritable is returned when Set targets a non-writable property.
var ErrNotWritable = errors.New("veil: property is not writable")

// intrinsic is the marker interface closing the set of built-in carrier
// classes to this package.
type intrinsic interface {
	intrinsicWord() string
}

// propertyBag implements PropertyCarrier with descriptor-flag enforcement.
// The zero value is ready to use.
type propertyBag struct {
	props map[Key]Descriptor
}

// OwnProperty returns the descriptor for an own property, if present.
func (b *propertyBag) OwnProperty(key Key) (Descriptor, bool) {
	desc, ok := b.props[key]
	return desc, ok
}

// DefineProperty creates or redefines an own property. Redefining a
// non-configurable property fails unless the property is writable and
// only its value changes.
func (b *propertyBag) DefineProperty(key Key, desc Descriptor) error {
	if cur, ok := b.props[key]; ok && !cur.Configurable {
		valueOnly := cur.Writable &&
			desc.Writable == cur.Writable &&
			desc.Enumerable == cur.Enumerable &&
			desc.Configurable == cur.Configurable
		if !valueOnly {
			return ErrNonConfigurable
		}
	}
	if b.props == nil {
		b.props = make(map[Key]Descriptor)
	}
	b.props[key] = desc
	return nil
}

// DeleteProperty removes an own property. Non-configurable properties
// cannot be deleted.
func (b *propertyBag) DeleteProperty(key Key) error {
	if cur, ok := b.props[key]; ok && !cur.Configurable {
		return ErrNonConfigurable
	}
	delete(b.props, key)
	return nil
}

// Set updates the value of a property without touching its flags,
// creating a plain writable property if none exists.
func (b *propertyBag) Set(key Key, value any) error {
	cur, ok := b.props[key]
	if !ok {
		return b.DefineProperty(key, Descriptor{
			Value:        value,
			Writable:     true,
			Enumerable:   true,
			Configurable: true,
		})
	}
	if !cur.Writable {
		return ErrNotWritable
	}
	cur.Value = value
	b.props[key] = cur
	return nil
}

// SetTag installs a configurable, non-enumerable tag override at TagKey.
func (b *propertyBag) SetTag(word string) error {
	return b.DefineProperty(TagKey, Descriptor{
		Value:        word,
		Writable:     true,
		Configurable: true,
	})
}

// Object is a dynamic property bag whose intrinsic class is Object.
type Object struct {
	propertyBag
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{}
}

func (*Object) intrinsicWord() string { return "Object" }

// Array pairs an element slice with a property bag; its intrinsic class
// is Array.
type Array struct {
	propertyBag
	Elems []any
}

// NewArray returns an Array holding the given elements.
func NewArray(elems ...any) *Array {
	return &Array{Elems: elems}
}

func (*Array) intrinsicWord() string { return "Array" }
