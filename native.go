package veil

import (
	"reflect"
	"regexp"
	"time"
)

// Tag strings for the two sentinels and the failure fallback.
const (
	UndefinedTag = "[object Undefined]"
	NullTag      = "[object Null]"
	FallbackTag  = "[object Object]"
)

var (
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
)

// formatTag wraps an identifier in the canonical tag shape.
func formatTag(word string) string {
	return "[object " + word + "]"
}

// overrideWord reports whether v is usable as a tag override: a non-empty
// string of word characters. Anything else is ignored, the way the engine
// ignores non-string overrides.
func overrideWord(v any) (string, bool) {
	word, ok := v.(string)
	if !ok || word == "" {
		return "", false
	}
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_':
		default:
			return "", false
		}
	}
	return word, true
}

// nativeTag reads the tag the runtime assigns to p's value, honoring any
// visible override: own property first, then the type-level Tagger, then
// the intrinsic kind. It is the single safety net under both entry points:
// any panic from a hostile carrier or tagger collapses to FallbackTag.
// Undefined and Null never reach this function.
func (s *Veil) nativeTag(p probe) (tag string) {
	defer func() {
		if r := recover(); r != nil {
			tag = FallbackTag
			emitRecovered(r)
		}
	}()

	if p.carrier != nil {
		if desc, ok := p.carrier.OwnProperty(s.key); ok {
			if word, ok := overrideWord(desc.Value); ok {
				return formatTag(word)
			}
		}
	}
	if p.tagger != nil {
		if word, ok := overrideWord(p.tagger.TypeTag()); ok {
			return formatTag(word)
		}
	}
	return s.intrinsicTag(p.value)
}

// intrinsicTag resolves the engine-assigned tag for a value, ignoring
// overrides. Kind-derived results are memoized per type; the intrinsic
// marker consult is type-level and constant, so it stays outside the memo.
func (s *Veil) intrinsicTag(v any) string {
	if in, ok := v.(intrinsic); ok {
		return formatTag(in.intrinsicWord())
	}

	t := reflect.TypeOf(v)
	if s.memo != nil {
		if tag, ok := s.memo.Get(t); ok {
			s.emitCache(t, "hit")
			return tag
		}
		s.emitCache(t, "miss")
	}

	tag := formatTag(intrinsicWord(t))
	if s.memo != nil {
		s.memo.Set(t, tag)
		s.emitCache(t, "store")
	}
	return tag
}

// intrinsicWord maps a type to its engine-level identifier.
func intrinsicWord(t reflect.Type) string {
	if t == nil {
		return "Object"
	}
	if t.Implements(errorType) {
		return "Error"
	}
	if t.Kind() == reflect.Ptr {
		return intrinsicWord(t.Elem())
	}

	switch t {
	case timeType:
		return "Date"
	case regexpType:
		return "RegExp"
	}

	switch t.Kind() {
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return "Number"
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Map:
		return "Map"
	case reflect.Func:
		return "Function"
	case reflect.Chan:
		return "Channel"
	default:
		return "Object"
	}
}
