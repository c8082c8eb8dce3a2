package parameter

import "time"

// Audio cues
const (
	AudioSampleRate   = 48000
	AudioBufferWindow = 100 * time.Millisecond

	// AudioMaxVoices caps simultaneous cues so a busy tick does not stack dozens of bites
	AudioMaxVoices = 6

	BiteSoundDuration = 60 * time.Millisecond
	BiteSoundAttack   = 5 * time.Millisecond
	BiteSoundRelease  = 40 * time.Millisecond

	DeliverySoundNote1Duration = 90 * time.Millisecond
	DeliverySoundNote2Duration = 160 * time.Millisecond
	DeliverySoundAttack        = 5 * time.Millisecond
	DeliverySoundNote1Release  = 40 * time.Millisecond
	DeliverySoundNote2Release  = 120 * time.Millisecond

	DepletedSoundDuration = 200 * time.Millisecond
	DepletedSoundAttack   = 10 * time.Millisecond
	DepletedSoundRelease  = 150 * time.Millisecond
)
