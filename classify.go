package veil

import "reflect"

// valueClass is the closed classification every entry point starts from.
// Sentinel short-circuits, the fast path, and the masking preconditions
// all consult one probe rather than scattering type predicates.
type valueClass int

const (
	classUndefined valueClass = iota // untyped nil interface
	classNull                        // typed nil pointer, func, chan, unsafe pointer
	classPrimitive                   // bool, numeric, string
	classObject                      // struct, map, slice, chan, everything else
	classFunction                    // non-nil func
)

// probe carries the per-call classification of one input value.
type probe struct {
	value   any
	class   valueClass
	carrier PropertyCarrier // non-nil if the value exposes own properties
	tagger  Tagger          // non-nil if the type supplies an inherited tag
}

// classify inspects v exactly once per call. Interface assertions and kind
// checks cannot panic, so classification needs no protective boundary.
func (s *Veil) classify(v any) probe {
	if v == nil {
		return probe{class: classUndefined}
	}

	p := probe{value: v, class: classObject}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		p.class = classPrimitive
	case reflect.Func:
		if rv.IsNil() {
			return probe{class: classNull}
		}
		p.class = classFunction
	case reflect.Ptr, reflect.Chan:
		if rv.IsNil() {
			return probe{class: classNull}
		}
	case reflect.UnsafePointer:
		if rv.Pointer() == 0 {
			return probe{class: classNull}
		}
	}

	if s.overrides {
		if c, ok := v.(PropertyCarrier); ok {
			p.carrier = c
		}
		if tg, ok := v.(Tagger); ok {
			p.tagger = tg
		}
	}

	return p
}
