package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ant-colony/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes colony cues onto the speaker
// Every method is safe to call before Initialize or after Cleanup; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1.0,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferWindow)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles playback without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets linear gain in [0, 1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	sm.volume = max(0, min(1, vol))
	sm.mu.Unlock()
}

// Volume returns the linear gain
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Play queues a cue; dropped when muted, uninitialized or the voice cap is reached
// Returns true if the cue was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.volume <= 0 {
		return false
	}

	streamer := NewSound(soundType, sampleRate, sm.volume)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	sm.mixer.Add(streamer)
	return true
}

// PlayBite plays the food pickup cue
func (sm *SoundManager) PlayBite() { sm.Play(SoundBite) }

// PlayDelivery plays the colony drop-off cue
func (sm *SoundManager) PlayDelivery() { sm.Play(SoundDelivery) }

// PlayDepleted plays the source exhausted cue
func (sm *SoundManager) PlayDepleted() { sm.Play(SoundDepleted) }

// Name returns the service name
func (sm *SoundManager) Name() string { return "audio" }

// Start opens the audio device
func (sm *SoundManager) Start() error { return sm.Initialize() }

// Stop releases the audio device
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
