package veil

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	s := newVeil()

	t.Run("untyped nil", func(t *testing.T) {
		p := s.classify(nil)
		if p.class != classUndefined {
			t.Errorf("class = %v, want classUndefined", p.class)
		}
	})

	t.Run("typed nils", func(t *testing.T) {
		var ptr *int
		var fn func()
		var ch chan int

		for name, v := range map[string]any{"pointer": ptr, "func": fn, "chan": ch} {
			if p := s.classify(v); p.class != classNull {
				t.Errorf("classify(nil %s).class = %v, want classNull", name, p.class)
			}
		}
	})

	t.Run("primitives", func(t *testing.T) {
		for _, v := range []any{true, 1, int8(1), uint64(1), 1.5, complex(1, 1), "x", uintptr(1)} {
			if p := s.classify(v); p.class != classPrimitive {
				t.Errorf("classify(%T).class = %v, want classPrimitive", v, p.class)
			}
		}
	})

	t.Run("object-like", func(t *testing.T) {
		for _, v := range []any{struct{}{}, map[string]int{}, []int{}, make(chan int), time.Now(), &struct{}{}} {
			if p := s.classify(v); p.class != classObject {
				t.Errorf("classify(%T).class = %v, want classObject", v, p.class)
			}
		}
	})

	t.Run("function", func(t *testing.T) {
		if p := s.classify(func() {}); p.class != classFunction {
			t.Errorf("class = %v, want classFunction", p.class)
		}
	})

	t.Run("carrier and tagger detection", func(t *testing.T) {
		obj := NewObject()
		p := s.classify(obj)
		if p.carrier == nil {
			t.Error("expected carrier to be detected on *Object")
		}

		p = s.classify(kindedValue{})
		if p.tagger == nil {
			t.Error("expected tagger to be detected")
		}
	})

	t.Run("overrides disabled skips detection", func(t *testing.T) {
		off := newVeil()
		off.overrides = false

		p := off.classify(NewObject())
		if p.carrier != nil || p.tagger != nil {
			t.Error("expected no carrier or tagger with overrides disabled")
		}
	})
}

type kindedValue struct{}

func (kindedValue) TypeTag() string { return "Kinded" }
