// Package speech provides optional spoken output for words and prompts.
package speech

import (
	"os"
	"path/filepath"
	"strings"
)

// Speaker says text aloud. Implementations never block the caller and never
// surface errors to it.
type Speaker interface {
	Speak(text string)
}

// FailureReporter is implemented by speakers that do their work in the
// background. Failures drains the errors seen since it was last called.
type FailureReporter interface {
	Failures() []error
}

// Nop is a Speaker that does nothing.
type Nop struct{}

func (Nop) Speak(string) {}

// Mode selects the speech backend.
type Mode string

const (
	ModeOff Mode = "off"
	ModeTTS Mode = "tts"
)

// Config holds speech settings.
type Config struct {
	Mode     Mode
	AudioDir string
	Endpoint string
	Language string
}

// DefaultConfig returns speech turned off with the audio cache under the
// user cache directory.
func DefaultConfig() Config {
	dir := filepath.Join(os.TempDir(), "pteprep-audio")
	if cache, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(cache, "pteprep", "audio")
	}
	return Config{
		Mode:     ModeOff,
		AudioDir: dir,
		Endpoint: defaultEndpoint,
		Language: "en",
	}
}

// ConfigFromEnv overlays PTEPREP_SPEECH and PTEPREP_AUDIO_DIR on the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("PTEPREP_SPEECH"))); v == string(ModeTTS) {
		cfg.Mode = ModeTTS
	}
	if v := os.Getenv("PTEPREP_AUDIO_DIR"); v != "" {
		cfg.AudioDir = v
	}
	return cfg
}

// New returns the Speaker for cfg.
func New(cfg Config) Speaker {
	if cfg.Mode == ModeTTS {
		return NewTTS(cfg)
	}
	return Nop{}
}
