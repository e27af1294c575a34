package angryclones

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	SampleRate = 44100

	// maxVoices caps how many copies of one effect play at once.
	maxVoices = 4
)

// AudioManager plays the game's sound effects. Only one may exist per
// process, since ebiten allows a single audio context.
type AudioManager struct {
	context      *audio.Context
	effects      map[string]*soundEffect
	masterVolume float64
	soundVolume  float64
}

type soundEffect struct {
	pcm    []byte
	voices []*audio.Player
}

type AudioProps struct {
	MasterVolume float64
	SoundVolume  float64
}

func NewAudioManager(props *AudioProps) *AudioManager {
	if props == nil {
		props = &AudioProps{MasterVolume: 1.0, SoundVolume: 0.8}
	}

	return &AudioManager{
		context:      audio.NewContext(SampleRate),
		effects:      make(map[string]*soundEffect),
		masterVolume: clampVolume(props.MasterVolume),
		soundVolume:  clampVolume(props.SoundVolume),
	}
}

// LoadSounds decodes dir/name.wav from fsys for every name.
func (am *AudioManager) LoadSounds(fsys fs.FS, dir string, names ...string) error {
	for _, name := range names {
		if err := am.LoadSoundFromFS(name, fsys, path.Join(dir, name+".wav")); err != nil {
			return err
		}
	}
	return nil
}

func (am *AudioManager) LoadSoundFromFS(name string, fsys fs.FS, filePath string) error {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return fmt.Errorf("failed to read audio file %s: %w", filePath, err)
	}

	pcm, err := DecodeAudio(data, filePath)
	if err != nil {
		return fmt.Errorf("failed to decode audio file %s: %w", filePath, err)
	}
	if len(pcm) == 0 {
		return fmt.Errorf("audio file %s has no samples", filePath)
	}

	am.effects[name] = &soundEffect{pcm: pcm}
	return nil
}

// DecodeAudio turns an mp3, wav or ogg file into 16-bit stereo PCM at SampleRate.
func DecodeAudio(data []byte, filePath string) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", filePath)
	}
	src := bytes.NewReader(data)

	var (
		stream io.Reader
		err    error
	)
	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, src)
	default:
		return nil, fmt.Errorf("unsupported audio format: %q", ext)
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(stream)
}

// PlaySound starts a new voice of effect name. When the effect already has
// maxVoices playing, the oldest is cut off.
func (am *AudioManager) PlaySound(name string) error {
	effect, ok := am.effects[name]
	if !ok {
		return fmt.Errorf("sound %s not loaded", name)
	}

	volume := am.masterVolume * am.soundVolume
	if volume <= 0 {
		return nil
	}

	effect.prune()
	if len(effect.voices) >= maxVoices {
		effect.voices[0].Close()
		effect.voices = effect.voices[1:]
	}

	player := am.context.NewPlayerFromBytes(effect.pcm)
	player.SetVolume(volume)
	player.Play()
	effect.voices = append(effect.voices, player)
	return nil
}

// prune closes the voices that have finished.
func (e *soundEffect) prune() {
	playing := e.voices[:0]
	for _, p := range e.voices {
		if p.IsPlaying() {
			playing = append(playing, p)
		} else {
			p.Close()
		}
	}
	e.voices = playing
}

// Update releases finished voices. Called once per tick.
func (am *AudioManager) Update() {
	for _, effect := range am.effects {
		effect.prune()
	}
}

// Cleanup stops every voice and forgets the loaded effects.
func (am *AudioManager) Cleanup() {
	for _, effect := range am.effects {
		for _, p := range effect.voices {
			p.Close()
		}
	}
	am.effects = make(map[string]*soundEffect)
}

func clampVolume(volume float64) float64 {
	return max(0, min(volume, 1))
}
