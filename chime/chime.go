// Package chime plays a short completion sound when a long
// preprocessing phase (WSPD construction, full selection computation)
// finishes, gated behind a CLI flag so tests and headless runs never
// touch the audio device.
package chime

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var (
	initOnce sync.Once
	initErr  error
	ready    bool
)

// Init opens the speaker device once. Safe to call repeatedly; only
// the first call does any work. Callers that never want audio (tests,
// --chime=false runs) should simply never call Init or Play.
func Init() error {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		ready = initErr == nil
	})
	return initErr
}

// Play emits a short sine chime at freqHz for the given duration. It
// is a no-op if Init was never called or failed, matching the
// teacher's own "audio is best-effort" handling in main.go's
// initAudio/playHitSound.
func Play(freqHz float64, duration time.Duration) {
	if !ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freqHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(duration), sine))
}

// Close releases the speaker device.
func Close() {
	if ready {
		speaker.Close()
	}
}

// BuildComplete plays the two-tone completion chime: a low note
// followed by a slightly higher one, distinct from the single-tone
// hit sound the teacher used for in-game feedback.
func BuildComplete() {
	Play(440, 80*time.Millisecond)
	time.Sleep(90 * time.Millisecond)
	Play(660, 120*time.Millisecond)
}
