package constants

import "time"

// Audio Device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Engine Hum
const (
	// EngineIdleFreq is the hum frequency at MinSpeed
	EngineIdleFreq = 55.0

	// EngineTopFreq is the hum frequency at MaxSpeed
	EngineTopFreq = 180.0

	// EngineVolume is the hum amplitude
	EngineVolume = 0.12
)

// One-Shot Cues
const (
	CrashSoundDuration = 600 * time.Millisecond
	StartSoundDuration = 250 * time.Millisecond
	LaneSoundDuration  = 60 * time.Millisecond
)

// Music
const (
	// MusicBeatInterval is one synthwave beat (100 BPM)
	MusicBeatInterval = 600 * time.Millisecond

	// MusicVolume is the beat loop volume in beep/effects log2 units
	MusicVolume = -1.5
)

// Cue Envelopes
const (
	StartSoundAttack  = 5 * time.Millisecond
	StartSoundRelease = 120 * time.Millisecond
	CrashSoundAttack  = 2 * time.Millisecond
	CrashSoundRelease = 450 * time.Millisecond
	LaneSoundAttack   = 5 * time.Millisecond
	LaneSoundRelease  = 40 * time.Millisecond
)

// Mix Levels (linear, 1.0 = unity)
const (
	MasterVolume     = 0.8
	StartSoundVolume = 0.35
	CrashSoundVolume = 0.6
	LaneSoundVolume  = 0.2
)

// EngineGlide is the per-sample fraction the hum moves toward its target pitch
const EngineGlide = 0.0005
