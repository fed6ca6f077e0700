// Package domain defines the assistant reply shape and port
package domain

import (
	"context"

	"talktobank/internal/core/langdetect"
	"talktobank/internal/core/nlp"
)

// Reply is the assistant's answer to one utterance
type Reply struct {
	Text               string          `json:"text"`
	Intent             nlp.Intent      `json:"intent"`
	Language           langdetect.Lang `json:"language"`
	NeedsClarification bool            `json:"needs_clarification,omitempty"`
	AudioURL           string          `json:"audio_url,omitempty"`
	Data               any             `json:"data"`
}

// AssistantPort runs the single-pass utterance pipeline: language
// detection, intent classification, context enhancement, clarification
// check, operation dispatch, reply formatting and speech synthesis
type AssistantPort interface {
	// Process answers one utterance. respLang forces the reply language
	// when valid; zero value means reply in the detected language
	Process(ctx context.Context, userID int64, text string, respLang langdetect.Lang) (Reply, error)
}
