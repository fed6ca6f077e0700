// Package http provides http transport for the assistant
package http

import (
	"encoding/base64"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"talktobank/internal/core/langdetect"
	"talktobank/internal/modkit/httpkit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/assistant/domain"
	speechdomain "talktobank/internal/services/speech/domain"
)

// Register mounts the assistant endpoints on the given router
func Register(r httpkit.Router, a domain.AssistantPort, stt speechdomain.STTPort, tts speechdomain.TTSPort, audio speechdomain.AudioStorePort, defaultUserID int64) {
	h := &handlers{assistant: a, stt: stt, tts: tts, audio: audio, defaultUserID: defaultUserID}
	httpkit.PostJSON[ProcessInput](r, "/process", h.process)
	httpkit.PostJSON[STTInput](r, "/stt", h.transcribe)
	httpkit.PostJSON[TTSInput](r, "/tts", h.synthesize)
	r.Get("/audio/{id}", h.serveAudio)
}

type handlers struct {
	assistant     domain.AssistantPort
	stt           speechdomain.STTPort
	tts           speechdomain.TTSPort
	audio         speechdomain.AudioStorePort
	defaultUserID int64
}

// ProcessInput is the main utterance request
// swagger:model
type ProcessInput struct {
	Text string `json:"text" validate:"required"`
	// UserID falls back to the demo user when omitted
	UserID int64 `json:"user_id" validate:"omitempty,gt=0"`
	// ResponseLanguage forces the reply language regardless of detection
	ResponseLanguage string `json:"response_language" validate:"omitempty,oneof=en hi mr hinglish"`
}

// STTInput carries base64 audio for transcription
// swagger:model
type STTInput struct {
	Audio    string `json:"audio" validate:"required,base64"`
	Language string `json:"language" validate:"omitempty,oneof=en hi mr hinglish"`
}

// TTSInput carries text for synthesis
// swagger:model
type TTSInput struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language" validate:"omitempty,oneof=en hi mr hinglish"`
}

// @Summary Process an utterance
// @Description Runs language detection, intent classification and the banking operation for one user message
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body ProcessInput true "Utterance"
// @Success 200 {object} domain.Reply "ok"
// @Router /process [post]
func (h *handlers) process(r *stdhttp.Request, in ProcessInput) (any, error) {
	userID := in.UserID
	if userID == 0 {
		userID = h.defaultUserID
	}
	return h.assistant.Process(r.Context(), userID, in.Text, langdetect.Lang(in.ResponseLanguage))
}

// @Summary Transcribe audio to text
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body STTInput true "Audio"
// @Success 200 {object} map[string]string "ok"
// @Router /stt [post]
func (h *handlers) transcribe(r *stdhttp.Request, in STTInput) (any, error) {
	audio, err := base64.StdEncoding.DecodeString(in.Audio)
	if err != nil {
		return nil, perrs.InvalidArgf("audio is not valid base64")
	}
	text, err := h.stt.Transcribe(r.Context(), audio, langdetect.Lang(in.Language))
	if err != nil {
		return nil, err
	}
	return map[string]string{"text": text}, nil
}

// @Summary Synthesize speech for text
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body TTSInput true "Text"
// @Success 200 {object} map[string]string "ok"
// @Router /tts [post]
func (h *handlers) synthesize(r *stdhttp.Request, in TTSInput) (any, error) {
	lang := langdetect.Lang(in.Language)
	if !lang.Valid() {
		lang = langdetect.LangEnglish
	}
	clip, err := h.tts.Synthesize(r.Context(), in.Text, lang)
	if err != nil {
		return nil, err
	}
	h.audio.Put(clip)
	return map[string]string{
		"id":        clip.ID,
		"mime":      clip.MIME,
		"audio_url": "/api/v1/audio/" + clip.ID,
	}, nil
}

// @Summary Fetch a synthesized audio clip
// @Tags Assistant
// @Produce octet-stream
// @Param id path string true "Clip id"
// @Success 200 {file} binary "audio bytes"
// @Router /audio/{id} [get]
func (h *handlers) serveAudio(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	id := chi.URLParam(r, "id")
	clip, ok := h.audio.Get(id)
	if !ok {
		stdhttp.Error(w, "audio not found", stdhttp.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", clip.MIME)
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(clip.Data)
}
