// Package domain defines core types and interfaces for speech processing
package domain

import (
	"context"

	"talktobank/internal/core/langdetect"
)

// Clip is one synthesized audio response held for later retrieval
type Clip struct {
	ID   string `json:"id"` // uuid
	MIME string `json:"mime"`
	Data []byte `json:"-"`
}

// STTPort transcribes audio to text
type STTPort interface {
	// Transcribe converts audio to text. lang is a hint; engines may
	// ignore it
	Transcribe(ctx context.Context, audio []byte, lang langdetect.Lang) (string, error)
}

// TTSPort synthesizes speech for reply text
type TTSPort interface {
	// Synthesize renders text as an audio clip in the given language
	Synthesize(ctx context.Context, text string, lang langdetect.Lang) (Clip, error)
}

// AudioStorePort keeps synthesized clips addressable by id
type AudioStorePort interface {
	// Put stores a clip, evicting the oldest entries past capacity
	Put(clip Clip)
	// Get returns a stored clip; ok is false when the id is unknown
	Get(id string) (clip Clip, ok bool)
}
