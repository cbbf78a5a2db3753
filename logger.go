package veil

import (
	"context"
	"fmt"
	"reflect"

	"github.com/zoobzio/zlog"
)

// Logger exposes veil's typed event loggers. Register pipz processors as
// hooks on them to observe recovered reads, unmask attempts, and cache
// activity.
var Logger = struct {
	Read   *zlog.Logger[ReadEvent]
	Unmask *zlog.Logger[UnmaskEvent]
	Cache  *zlog.Logger[CacheEvent]
}{
	Read:   zlog.NewLogger[ReadEvent](),
	Unmask: zlog.NewLogger[UnmaskEvent](),
	Cache:  zlog.NewLogger[CacheEvent](),
}

// Emission helpers run inside quietly: the public operations are total,
// and an observer must never be able to break that.

func emitRecovered(cause any) {
	quietly(func() {
		Logger.Read.Emit(context.Background(), TAG_RECOVERED, "tag read recovered from panic", ReadEvent{
			Tag:       FallbackTag,
			Recovered: true,
			Cause:     fmt.Sprint(cause),
		})
	})
}

func emitUnmask(res unmaskResult) {
	quietly(func() {
		signal := UNMASK_FALLBACK
		switch res.outcome {
		case outcomeRevealed:
			signal = UNMASK_REVEALED
		case outcomeUnsafeFallback:
			signal = UNMASK_RESTORE_FAILED
		}
		Logger.Unmask.Emit(context.Background(), signal, "unmask "+res.outcome.String(), UnmaskEvent{
			Tag:     res.tag,
			Outcome: res.outcome.String(),
			Reason:  res.reason,
		})
	})
}

func (s *Veil) emitCache(t reflect.Type, op string) {
	if !s.cacheEvents {
		return
	}
	quietly(func() {
		signal := CACHE_STORE
		switch op {
		case "hit":
			signal = CACHE_HIT
		case "miss":
			signal = CACHE_MISS
		}
		size := 0
		if s.memo != nil {
			size = s.memo.Size()
		}
		Logger.Cache.Emit(context.Background(), signal, "intrinsic tag cache "+op, CacheEvent{
			TypeName:  t.String(),
			Operation: op,
			CacheSize: size,
		})
	})
}
