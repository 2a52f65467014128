package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/neon-drive/constants"
	"github.com/lixenwraith/neon-drive/engine"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager manages all game audio
// It follows snapshots from the frame loop; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	hum         *EngineGenerator
	humCtrl     *beep.Ctrl
	musicCtrl   *beep.Ctrl
	tracker     CueTracker
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		hum:   NewEngineGenerator(sampleRate),
	}
	sm.master = newVolume(sm.mixer, constants.MasterVolume)
	sm.humCtrl = &beep.Ctrl{Streamer: sm.hum, Paused: true}

	music := newVolume(NewSynthwaveGenerator(sampleRate), 1)
	music.Volume = constants.MusicVolume
	sm.musicCtrl = &beep.Ctrl{Streamer: music, Paused: true}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.mixer.Add(sm.humCtrl, sm.musicCtrl)
	sm.master.Silent = sm.muted
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.humCtrl.Paused = true
	sm.musicCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close in this version; clearing the mixer leaves it streaming silence
	sm.initialized = false
}

// Follow updates loops and fires cues for the latest snapshot
func (sm *SoundManager) Follow(snap engine.Snapshot) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cues := sm.tracker.Next(snap)
	sm.hum.SetSpeed(snap.Speed)

	if !sm.initialized {
		return
	}

	running := Running(snap)
	speaker.Lock()
	sm.humCtrl.Paused = !running
	sm.musicCtrl.Paused = !running
	for _, cue := range cues {
		if s := GetCueSound(cue, sampleRate); s != nil {
			sm.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// ToggleMute flips the master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted
		speaker.Unlock()
	}
	log.Printf("audio muted: %v", sm.muted)
	return sm.muted
}

// SetMuted sets the master mute
func (sm *SoundManager) SetMuted(muted bool) {
	if sm.IsMuted() != muted {
		sm.ToggleMute()
	}
}

// IsMuted reports the master mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether a speaker is attached
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
