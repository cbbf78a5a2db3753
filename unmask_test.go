package veil

import (
	"errors"
	"testing"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    outcome
		want string
	}{
		{outcomeRevealed, "revealed"},
		{outcomeSafeFallback, "safe_fallback"},
		{outcomeUnsafeFallback, "unsafe_fallback"},
		{outcome(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

type panicCarrier struct {
	readPanics   bool
	definePanics bool
	defineErr    error
	desc         Descriptor
	hasOwn       bool
}

func (c *panicCarrier) OwnProperty(Key) (Descriptor, bool) {
	if c.readPanics {
		panic("read")
	}
	return c.desc, c.hasOwn
}

func (c *panicCarrier) DefineProperty(Key, Descriptor) error {
	if c.definePanics {
		panic("define")
	}
	return c.defineErr
}

func (c *panicCarrier) DeleteProperty(Key) error { return nil }

func TestSafeWrappers(t *testing.T) {
	t.Run("ownPropertySafe converts panic to error", func(t *testing.T) {
		_, ok, err := ownPropertySafe(&panicCarrier{readPanics: true}, TagKey)
		if ok || err == nil {
			t.Errorf("ownPropertySafe = ok=%v err=%v, want ok=false with error", ok, err)
		}
	})

	t.Run("ownPropertySafe passes results through", func(t *testing.T) {
		want := Descriptor{Value: "v", Configurable: true}
		desc, ok, err := ownPropertySafe(&panicCarrier{desc: want, hasOwn: true}, TagKey)
		if err != nil || !ok || desc != want {
			t.Errorf("ownPropertySafe = %+v, %v, %v", desc, ok, err)
		}
	})

	t.Run("defineSafe converts panic to error", func(t *testing.T) {
		if err := defineSafe(&panicCarrier{definePanics: true}, TagKey, Descriptor{}); err == nil {
			t.Error("expected error from panicking define")
		}
	})

	t.Run("defineSafe passes errors through", func(t *testing.T) {
		sentinel := errors.New("refused")
		if err := defineSafe(&panicCarrier{defineErr: sentinel}, TagKey, Descriptor{}); !errors.Is(err, sentinel) {
			t.Errorf("err = %v, want %v", err, sentinel)
		}
	})

	t.Run("quietly swallows panics", func(t *testing.T) {
		quietly(func() { panic("contained") })
	})
}

func TestUnmaskOutcomes(t *testing.T) {
	s := newVeil()

	t.Run("safe fallback reasons", func(t *testing.T) {
		tests := []struct {
			name   string
			value  any
			reason string
		}{
			{"no carrier", struct{}{}, "no own-property protocol"},
			{"hostile descriptor read", &panicCarrier{readPanics: true}, "descriptor lookup failed"},
			{"no own override", NewObject(), "no own override"},
			{"non-configurable", &panicCarrier{hasOwn: true, desc: Descriptor{Value: "X"}}, "override not configurable"},
			{"mask refused", &panicCarrier{hasOwn: true, desc: Descriptor{Value: "X", Configurable: true}, definePanics: true}, "mask write refused"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := s.unmask(s.classify(tt.value))
				if res.outcome != outcomeSafeFallback {
					t.Fatalf("outcome = %v, want safe fallback", res.outcome)
				}
				if res.reason != tt.reason {
					t.Errorf("reason = %q, want %q", res.reason, tt.reason)
				}
			})
		}
	})

	t.Run("overrides disabled", func(t *testing.T) {
		off := newVeil()
		off.overrides = false

		res := off.unmask(off.classify(NewObject()))
		if res.outcome != outcomeSafeFallback || res.reason != "overrides disabled" {
			t.Errorf("res = %+v", res)
		}
	})

	t.Run("revealed", func(t *testing.T) {
		obj := NewObject()
		if err := obj.SetTag("Custom"); err != nil {
			t.Fatalf("SetTag: %v", err)
		}

		res := s.unmask(s.classify(obj))
		if res.outcome != outcomeRevealed {
			t.Fatalf("outcome = %v, want revealed", res.outcome)
		}
		if res.tag != "[object Object]" {
			t.Errorf("tag = %q, want [object Object]", res.tag)
		}
	})
}
