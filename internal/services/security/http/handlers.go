// Package http provides http transport for security
package http

import (
	"encoding/base64"
	stdhttp "net/http"

	"talktobank/internal/modkit/httpkit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/security/domain"
)

// Register mounts security endpoints on the given router
func Register(r httpkit.Router, s domain.SecurityPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[GenerateOTPInput](r, "/generate_otp", h.generateOTP)
	httpkit.PostJSON[VerifyOTPInput](r, "/verify_otp", h.verifyOTP)
	httpkit.PostJSON[VoiceInput](r, "/register_voice", h.registerVoice)
	httpkit.PostJSON[VoiceInput](r, "/verify_voice", h.verifyVoice)
}

type handlers struct{ svc domain.SecurityPort }

// GenerateOTPInput is the OTP generation request
// swagger:model
type GenerateOTPInput struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// VerifyOTPInput is the OTP verification request
// swagger:model
type VerifyOTPInput struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	OTP    string `json:"otp" validate:"required,numeric"`
}

// VoiceInput carries a base64 audio sample
// swagger:model
type VoiceInput struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Audio  string `json:"audio" validate:"required,base64"`
}

func decodeAudio(in VoiceInput) ([]byte, error) {
	audio, err := base64.StdEncoding.DecodeString(in.Audio)
	if err != nil {
		return nil, perrs.InvalidArgf("audio is not valid base64")
	}
	return audio, nil
}

// @Summary Generate a one-time password
// @Tags Security
// @Accept json
// @Produce json
// @Param payload body GenerateOTPInput true "User"
// @Success 200 {object} domain.OTP "ok"
// @Router /generate_otp [post]
func (h *handlers) generateOTP(r *stdhttp.Request, in GenerateOTPInput) (any, error) {
	return h.svc.GenerateOTP(r.Context(), in.UserID)
}

// @Summary Verify a one-time password
// @Tags Security
// @Accept json
// @Produce json
// @Param payload body VerifyOTPInput true "Code"
// @Success 200 {object} domain.Verification "ok"
// @Router /verify_otp [post]
func (h *handlers) verifyOTP(r *stdhttp.Request, in VerifyOTPInput) (any, error) {
	return h.svc.VerifyOTP(r.Context(), in.UserID, in.OTP)
}

// @Summary Register a voice signature
// @Tags Security
// @Accept json
// @Produce json
// @Param payload body VoiceInput true "Sample"
// @Success 200 {object} map[string]bool "ok"
// @Router /register_voice [post]
func (h *handlers) registerVoice(r *stdhttp.Request, in VoiceInput) (any, error) {
	audio, err := decodeAudio(in)
	if err != nil {
		return nil, err
	}
	if err := h.svc.RegisterVoice(r.Context(), in.UserID, audio); err != nil {
		return nil, err
	}
	return map[string]bool{"registered": true}, nil
}

// @Summary Verify a voice sample
// @Tags Security
// @Accept json
// @Produce json
// @Param payload body VoiceInput true "Sample"
// @Success 200 {object} domain.Verification "ok"
// @Router /verify_voice [post]
func (h *handlers) verifyVoice(r *stdhttp.Request, in VoiceInput) (any, error) {
	audio, err := decodeAudio(in)
	if err != nil {
		return nil, err
	}
	return h.svc.VerifyVoice(r.Context(), in.UserID, audio)
}
