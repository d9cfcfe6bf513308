package glowbit

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
)

var clockEpoch = time.Now()

// monotonicMillis is the default frame clock source: milliseconds since
// package init, monotonically non-decreasing.
func monotonicMillis() int64 {
	return time.Since(clockEpoch).Milliseconds()
}

// frameClock throttles flushes to a target frame rate. The wait is a busy
// poll against the injected millisecond clock; Gosched keeps it cooperative
// on multitasking hosts without changing the timing contract.
type frameClock struct {
	now       func() int64
	lastFrame int64
	fps       int
}

func newFrameClock(fps, fallback int, now func() int64) frameClock {
	if fps <= 0 {
		log.Debug().Int("fallback", fallback).Msg("rate limit unset, using device default FPS")
		fps = fallback
	}
	return frameClock{now: now, lastFrame: now(), fps: fps}
}

func (c *frameClock) setFPS(fps int) {
	if fps <= 0 {
		log.Warn().Int("fps", fps).Msg("ignoring non-positive FPS rate limit")
		return
	}
	c.fps = fps
}

// await blocks until one frame interval has passed since the previous flush,
// then stamps the current time as the new frame boundary.
func (c *frameClock) await() {
	interval := int64(1000 / c.fps)
	for c.now() < c.lastFrame+interval {
		runtime.Gosched()
	}
	c.lastFrame = c.now()
}
