// Package testing provides shared test utilities for veil tests:
// assertion helpers and adversarial carrier fixtures.
package testing

import (
	"errors"
	"regexp"
	"testing"

	"github.com/veilkit/veil"
)

var tagPattern = regexp.MustCompile(`^\[object \w+\]$`)

// AssertTagFormat verifies that tag has the canonical [object Word] shape.
func AssertTagFormat(t testing.TB, tag string) {
	t.Helper()
	if !tagPattern.MatchString(tag) {
		t.Errorf("tag %q does not match [object Word]", tag)
	}
}

// AssertNoPanic runs fn and fails the test if it panics.
func AssertNoPanic(t testing.TB, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("%s panicked: %v", name, r)
		}
	}()
	fn()
}

// ErrDefineRefused is returned by fixtures that refuse property writes.
var ErrDefineRefused = errors.New("carrier: define refused")

// ThrowingCarrier panics from whichever property traps are armed.
type ThrowingCarrier struct {
	Desc      veil.Descriptor
	HasOwn    bool
	ArmRead   bool
	ArmDefine bool
	ArmDelete bool
}

func (c *ThrowingCarrier) OwnProperty(veil.Key) (veil.Descriptor, bool) {
	if c.ArmRead {
		panic("trap: own property read refused")
	}
	return c.Desc, c.HasOwn
}

func (c *ThrowingCarrier) DefineProperty(veil.Key, veil.Descriptor) error {
	if c.ArmDefine {
		panic("trap: define refused")
	}
	return nil
}

func (c *ThrowingCarrier) DeleteProperty(veil.Key) error {
	if c.ArmDelete {
		panic("trap: delete refused")
	}
	return nil
}

// FlakyCarrier delegates to a real carrier but refuses defines once the
// allowance is spent. Allow=1 lets the mask through and fails the restore.
type FlakyCarrier struct {
	Target  veil.PropertyCarrier
	Allow   int
	defines int
}

func (c *FlakyCarrier) OwnProperty(key veil.Key) (veil.Descriptor, bool) {
	return c.Target.OwnProperty(key)
}

func (c *FlakyCarrier) DefineProperty(key veil.Key, desc veil.Descriptor) error {
	if c.defines >= c.Allow {
		return ErrDefineRefused
	}
	c.defines++
	return c.Target.DefineProperty(key, desc)
}

func (c *FlakyCarrier) DeleteProperty(key veil.Key) error {
	return c.Target.DeleteProperty(key)
}

// Revocable wraps a carrier the way a revocable proxy wraps its target:
// after Revoke, every trap panics.
type Revocable struct {
	Target  veil.PropertyCarrier
	revoked bool
}

// NewRevocable returns a live Revocable around target.
func NewRevocable(target veil.PropertyCarrier) *Revocable {
	return &Revocable{Target: target}
}

// Revoke permanently disconnects the target.
func (r *Revocable) Revoke() {
	r.revoked = true
}

func (r *Revocable) check() {
	if r.revoked {
		panic("proxy: revoked")
	}
}

func (r *Revocable) OwnProperty(key veil.Key) (veil.Descriptor, bool) {
	r.check()
	return r.Target.OwnProperty(key)
}

func (r *Revocable) DefineProperty(key veil.Key, desc veil.Descriptor) error {
	r.check()
	return r.Target.DefineProperty(key, desc)
}

func (r *Revocable) DeleteProperty(key veil.Key) error {
	r.check()
	return r.Target.DeleteProperty(key)
}

// PanicTagger panics from its type-level tag override.
type PanicTagger struct{}

func (PanicTagger) TypeTag() string {
	panic("tagger: refused")
}
