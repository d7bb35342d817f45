// Package audio plays the day and night ambience beds and crossfades them
// with the sun.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/logger"
)

// DefaultSampleRate is the output rate; beds at other rates are resampled.
const DefaultSampleRate = beep.SampleRate(44100)

// silentDb is the attenuation used for a zero weight.
const silentDb = -100

// bed is one looping ambience track.
type bed struct {
	name   string
	source beep.StreamSeekCloser
	volume *effects.Volume
}

// Ambience mixes the day and night beds.
type Ambience struct {
	mu  sync.Mutex
	log *zap.Logger

	started    bool
	sampleRate beep.SampleRate
	mixer      *beep.Mixer

	day   *bed
	night *bed

	master float64 // 0..1
	blend  float64 // day weight 0..1
}

// New creates an ambience mixer. Nothing plays until Start.
func New(masterVolume float64) *Ambience {
	return &Ambience{
		log:    logger.Named("audio"),
		mixer:  &beep.Mixer{},
		master: clamp(masterVolume, 0, 1),
	}
}

// Start opens the speaker and begins both beds. A bed that cannot be
// opened is skipped and reported in the returned error; the other keeps
// playing. A speaker failure leaves the ambience silent.
func (a *Ambience) Start(dayPath, nightPath string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return nil
	}

	a.sampleRate = DefaultSampleRate
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	a.started = true

	var errs error
	if b, err := a.openBed("day", dayPath); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		a.day = b
	}
	if b, err := a.openBed("night", nightPath); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		a.night = b
	}

	a.applyWeights()
	speaker.Play(a.mixer)
	a.log.Info("ambience started",
		zap.Bool("day", a.day != nil),
		zap.Bool("night", a.night != nil))
	return errs
}

func (a *Ambience) openBed(name, path string) (*bed, error) {
	if path == "" {
		return nil, fmt.Errorf("%s bed: no file configured", name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s bed: %w", name, err)
	}
	source, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s bed: decode wav %s: %w", name, path, err)
	}

	var s beep.Streamer = &loopStreamer{source: source}
	if format.SampleRate != a.sampleRate {
		s = beep.Resample(4, format.SampleRate, a.sampleRate, s)
	}

	b := &bed{
		name:   name,
		source: source,
		volume: &effects.Volume{Streamer: s, Base: 10, Volume: silentDb / 20, Silent: true},
	}
	a.mixer.Add(b.volume)
	return b, nil
}

// SetBlend sets the day weight; the night bed gets the remainder.
func (a *Ambience) SetBlend(dayWeight float32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blend = clamp(float64(dayWeight), 0, 1)
	if a.started {
		a.applyWeights()
	}
}

// SetMasterVolume sets the overall volume (0 to 1).
func (a *Ambience) SetMasterVolume(vol float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.master = clamp(vol, 0, 1)
	if a.started {
		a.applyWeights()
	}
}

// Blend returns the current day weight.
func (a *Ambience) Blend() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.blend
}

// MasterVolume returns the overall volume.
func (a *Ambience) MasterVolume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.master
}

func (a *Ambience) applyWeights() {
	dayW, nightW := Weights(a.blend)
	speaker.Lock()
	setGain(a.day, dayW*a.master)
	setGain(a.night, nightW*a.master)
	speaker.Unlock()
}

func setGain(b *bed, level float64) {
	if b == nil {
		return
	}
	b.volume.Silent = level <= 0
	// effects.Volume scales by Base^Volume; with Base 10 that is dB/20.
	b.volume.Volume = volumeToDb(level) / 20
}

// Close stops playback and releases both beds.
func (a *Ambience) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return nil
	}
	speaker.Clear()
	var err error
	for _, b := range []*bed{a.day, a.night} {
		if b != nil && b.source != nil {
			err = multierr.Append(err, b.source.Close())
		}
	}
	a.day, a.night = nil, nil
	a.started = false
	return err
}

// Weights splits a day blend into day and night bed weights that sum to 1.
func Weights(dayBlend float64) (day, night float64) {
	day = clamp(dayBlend, 0, 1)
	return day, 1 - day
}

// volumeToDb converts a 0-1 amplitude to decibels.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return silentDb
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// loopStreamer restarts its source whenever it runs dry.
type loopStreamer struct {
	source beep.StreamSeekCloser
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		if ok {
			continue
		}
		if l.source.Len() == 0 || l.source.Seek(0) != nil {
			return filled, filled > 0
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
