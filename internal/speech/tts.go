package speech

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultEndpoint   = "https://translate.google.com/translate_tts"
	ttsRequestTimeout = 10 * time.Second
)

// TTS fetches speech audio from an HTTP text-to-speech endpoint and caches
// it as mp3 files, one per distinct text.
type TTS struct {
	cfg    Config
	client *http.Client
	wg     sync.WaitGroup

	mu       sync.Mutex
	failures []error
}

var _ FailureReporter = (*TTS)(nil)

// NewTTS creates a TTS speaker.
func NewTTS(cfg Config) *TTS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return &TTS{
		cfg:    cfg,
		client: &http.Client{Timeout: ttsRequestTimeout},
	}
}

// Speak caches the audio for text in the background. Failures are kept until
// the next call to Failures.
func (t *TTS) Speak(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
		defer cancel()
		if _, err := t.Fetch(ctx, text); err != nil {
			t.mu.Lock()
			t.failures = append(t.failures, err)
			t.mu.Unlock()
		}
	}()
}

// Failures returns the background errors since the last call and forgets
// them.
func (t *TTS) Failures() []error {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.failures
	t.failures = nil
	return out
}

// Wait blocks until all pending Speak calls have finished.
func (t *TTS) Wait() { t.wg.Wait() }

// Path returns the cache file for text.
func (t *TTS) Path(text string) string {
	return filepath.Join(t.cfg.AudioDir, FileName(text))
}

// Fetch returns the cached mp3 path for text, downloading it if needed.
func (t *TTS) Fetch(ctx context.Context, text string) (string, error) {
	path := t.Path(text)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(t.cfg.AudioDir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", t.cfg.Language)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "pteprep")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch audio: unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(t.cfg.AudioDir, "tts-*.part")
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("save audio file: %w", err)
	}
	return path, nil
}

// FileName maps text to a stable, filesystem-safe mp3 name.
func FileName(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
		if b.Len() >= 64 {
			break
		}
	}
	name := b.String()
	if name == "" {
		name = "speech"
	}
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("%s_%08x.mp3", name, h.Sum32())
}
