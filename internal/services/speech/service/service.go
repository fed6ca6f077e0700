// Package service provides mock speech engines and the audio clip store.
// Real STT/TTS engines sit behind the same ports; the mocks keep the
// pipeline exercisable without audio hardware or vendor accounts
package service

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"talktobank/internal/core/langdetect"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/speech/domain"
)

// MockSTT implements domain.STTPort. It treats the audio payload as
// UTF-8 text, which makes transcription deterministic end to end
type MockSTT struct{}

// NewMockSTT constructs a MockSTT
func NewMockSTT() *MockSTT { return &MockSTT{} }

// Transcribe implements domain.STTPort
func (*MockSTT) Transcribe(_ context.Context, audio []byte, _ langdetect.Lang) (string, error) {
	if len(audio) == 0 {
		return "", perrs.InvalidArgf("empty audio")
	}
	if !utf8.Valid(audio) {
		return "", perrs.InvalidArgf("could not understand audio")
	}
	text := strings.TrimSpace(string(audio))
	if text == "" {
		return "", perrs.InvalidArgf("could not understand audio")
	}
	return text, nil
}

// MockTTS implements domain.TTSPort. The clip payload is the reply text
// itself; the MIME type matches what a real engine would produce
type MockTTS struct{}

// NewMockTTS constructs a MockTTS
func NewMockTTS() *MockTTS { return &MockTTS{} }

// Synthesize implements domain.TTSPort
func (*MockTTS) Synthesize(_ context.Context, text string, _ langdetect.Lang) (domain.Clip, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Clip{}, perrs.InvalidArgf("empty text")
	}
	return domain.Clip{
		ID:   uuid.NewString(),
		MIME: "audio/mpeg",
		Data: []byte(text),
	}, nil
}

// AudioStore implements domain.AudioStorePort over a bounded in-memory
// map with FIFO eviction
type AudioStore struct {
	mu    sync.RWMutex
	clips map[string]domain.Clip
	order []string
	cap   int
}

// NewAudioStore constructs an AudioStore; capacity defaults to 256
func NewAudioStore(capacity int) *AudioStore {
	if capacity <= 0 {
		capacity = 256
	}
	return &AudioStore{
		clips: make(map[string]domain.Clip, capacity),
		cap:   capacity,
	}
}

// Put implements domain.AudioStorePort
func (s *AudioStore) Put(clip domain.Clip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clips[clip.ID]; !ok {
		s.order = append(s.order, clip.ID)
	}
	s.clips[clip.ID] = clip
	for len(s.order) > s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.clips, oldest)
	}
}

// Get implements domain.AudioStorePort
func (s *AudioStore) Get(id string) (domain.Clip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clip, ok := s.clips[id]
	return clip, ok
}
