package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/parameter"
)

// drain streams s to exhaustion and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.Equal(t, buf[i][0], buf[i][1], "mono cue")
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	n, peak := drain(t, NewOscillator(100, 50*time.Millisecond, WaveSquare, rate))
	assert.Equal(t, 50, n)
	assert.InDelta(t, 1.0, peak, 1e-12)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(250, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, ok := env.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 100, n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 1.0, buf[50][0]*buf[50][0], 1e-12)
	assert.Less(t, buf[99][0]*buf[99][0], 0.02)
}

func TestSoundsFinish(t *testing.T) {
	for _, st := range []SoundType{SoundBite, SoundDelivery, SoundDepleted} {
		t.Run(st.String(), func(t *testing.T) {
			s := NewSound(st, sampleRate, 1)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.Positive(t, n)
			assert.Positive(t, peak)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}

	assert.Nil(t, NewSound(SoundType(99), sampleRate, 1))
	assert.Equal(t, "unknown", SoundType(99).String())
}

func TestDeliveryIsLongerThanBite(t *testing.T) {
	bite, _ := drain(t, CreateBiteSound(sampleRate, 1))
	delivery, _ := drain(t, CreateDeliverySound(sampleRate, 1))
	assert.Greater(t, delivery, bite)
}

func TestDepletedSoundLength(t *testing.T) {
	n, _ := drain(t, CreateDepletedSound(sampleRate, 1))
	assert.Equal(t, sampleRate.N(parameter.DepletedSoundDuration), n)
}

func TestSoundManagerVolume(t *testing.T) {
	sm := NewSoundManager()
	sm.SetVolume(2)
	assert.Equal(t, 1.0, sm.Volume())
	sm.SetVolume(-1)
	assert.Zero(t, sm.Volume())
	sm.SetVolume(0.4)
	assert.Equal(t, 0.4, sm.Volume())
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateBiteSound(sampleRate, 0))
	assert.Zero(t, peak)
}

// TestSoundManagerGracefulDegradation verifies playback is a no-op without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayBite()
		sm.PlayDelivery()
		sm.PlayDepleted()
		sm.Cleanup()
	})
	assert.False(t, sm.Play(SoundBite))
	assert.Equal(t, "audio", sm.Name())
	assert.NoError(t, sm.Stop(), "stop without a device is a no-op")
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Muted())
	assert.True(t, sm.ToggleMute())
	sm.SetMuted(false)
	assert.False(t, sm.Muted())
}

// TestSoundManagerInitialization tolerates environments without audio devices
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	require.NoError(t, sm.Initialize(), "second initialize is a no-op")

	sm.SetMuted(true)
	assert.False(t, sm.Play(SoundBite))
	sm.SetMuted(false)

	queued := 0
	for range 20 {
		if sm.Play(SoundDelivery) {
			queued++
		}
	}
	assert.LessOrEqual(t, queued, 6)
}
