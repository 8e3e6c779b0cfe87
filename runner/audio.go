package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Audio plays sound events from a directory of <sound id>.ogg or .wav
// files. Decoded samples are cached. A sound with no file is skipped after
// one warning.
type Audio struct {
	context *audio.Context
	fsys    fs.FS
	volume  float64
	cache   map[cfg.SoundID][]byte
	missing map[cfg.SoundID]bool
}

// NewAudio opens the audio device. A nil fsys gives a silent player.
func NewAudio(fsys fs.FS, volume float64) *Audio {
	a := &Audio{
		fsys:    fsys,
		volume:  volume,
		cache:   make(map[cfg.SoundID][]byte),
		missing: make(map[cfg.SoundID]bool),
	}
	if fsys != nil {
		a.context = audio.NewContext(sampleRate)
	}
	return a
}

func (a *Audio) Play(s cfg.SoundID) {
	if a.context == nil || a.volume <= 0 || a.missing[s] {
		return
	}
	data, err := a.load(s)
	if err != nil {
		a.missing[s] = true
		logger.Warn("sound unavailable", "sound", s, "err", err)
		return
	}
	player := a.context.NewPlayerFromBytes(data)
	player.SetVolume(a.volume)
	player.Play()
}

// Preload decodes every known sound up front so the first play does not
// stall a frame.
func (a *Audio) Preload(sounds ...cfg.SoundID) {
	if a.context == nil {
		return
	}
	for _, s := range sounds {
		if _, err := a.load(s); err != nil {
			a.missing[s] = true
			logger.Debug("sound not preloaded", "sound", s, "err", err)
		}
	}
}

func (a *Audio) load(s cfg.SoundID) ([]byte, error) {
	if data, ok := a.cache[s]; ok {
		return data, nil
	}

	for _, ext := range []string{".ogg", ".wav"} {
		path := string(s) + ext
		data, err := fs.ReadFile(a.fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
		}

		var stream io.Reader
		switch ext {
		case ".ogg":
			stream, err = vorbis.DecodeWithSampleRate(a.context.SampleRate(), bytes.NewReader(data))
		case ".wav":
			stream, err = wav.DecodeWithSampleRate(a.context.SampleRate(), bytes.NewReader(data))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		decoded, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
		}

		a.cache[s] = decoded
		return decoded, nil
	}
	return nil, fmt.Errorf("no .ogg or .wav file for %s: %w", s, fs.ErrNotExist)
}
