// Package audio plays short procedural cues for colony events.
package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/ant-colony/parameter"
)

// SoundType identifies a cue
type SoundType int

const (
	SoundBite     SoundType = iota // Ant took a unit of food
	SoundDelivery                  // Load dropped at the colony
	SoundDepleted                  // Food source emptied
)

var soundNames = [...]string{"bite", "delivery", "depleted"}

func (s SoundType) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// CreateBiteSound generates a short upward blip
func CreateBiteSound(rate beep.SampleRate, vol float64) beep.Streamer {
	glide := NewSweep(520, 780, parameter.BiteSoundDuration, rate)
	shaped := NewEnvelope(glide, parameter.BiteSoundDuration, parameter.BiteSoundAttack, parameter.BiteSoundRelease, rate)
	return newVolume(shaped, vol*0.5)
}

// CreateDeliverySound generates a two-note rising chime, triangle then sine
func CreateDeliverySound(rate beep.SampleRate, vol float64) beep.Streamer {
	// G5
	n1 := NewOscillator(783.99, parameter.DeliverySoundNote1Duration, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, parameter.DeliverySoundNote1Duration, parameter.DeliverySoundAttack, parameter.DeliverySoundNote1Release, rate)

	// C6
	n2 := NewOscillator(1046.50, parameter.DeliverySoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, parameter.DeliverySoundNote2Duration, parameter.DeliverySoundAttack, parameter.DeliverySoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.6)
}

// CreateDepletedSound generates a low falling tone over a square-wave hum
func CreateDepletedSound(rate beep.SampleRate, vol float64) beep.Streamer {
	low := NewSweep(330, 165, parameter.DepletedSoundDuration, rate)
	lowShaped := NewEnvelope(low, parameter.DepletedSoundDuration, parameter.DepletedSoundAttack, parameter.DepletedSoundRelease, rate)

	// E2
	hum := NewOscillator(82.41, parameter.DepletedSoundDuration, WaveSquare, rate)
	humShaped := NewEnvelope(hum, parameter.DepletedSoundDuration, parameter.DepletedSoundAttack, parameter.DepletedSoundRelease, rate)

	mixed := beep.Mix(newVolume(lowShaped, 0.7), newVolume(humShaped, 0.3))
	return newVolume(mixed, vol*0.5)
}

// NewSound returns the streamer for soundType, nil if unknown
func NewSound(soundType SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch soundType {
	case SoundBite:
		return CreateBiteSound(rate, vol)
	case SoundDelivery:
		return CreateDeliverySound(rate, vol)
	case SoundDepleted:
		return CreateDepletedSound(rate, vol)
	default:
		return nil
	}
}
