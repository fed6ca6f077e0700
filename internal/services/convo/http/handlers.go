// Package http provides http transport for conversation context
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"talktobank/internal/modkit/httpkit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/convo/domain"
)

// Register mounts conversation context endpoints on the given router
func Register(r httpkit.Router, store domain.StorePort) {
	h := &handlers{store: store}
	httpkit.Get(r, "/context/{user_id}", h.snapshot)
	httpkit.Delete(r, "/context/{user_id}", h.clear)
}

type handlers struct{ store domain.StorePort }

// userID parses the path user id and checks it against the session
// identity. Conversation history is as private as the accounts behind it
func userID(r *stdhttp.Request) (int64, error) {
	raw := chi.URLParam(r, "user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perrs.InvalidArgf("invalid user id %q", raw)
	}
	if caller := httpkit.MustUser(r); caller != strconv.FormatInt(id, 10) {
		return 0, perrs.Forbiddenf("conversation belongs to another user")
	}
	return id, nil
}

// @Summary Conversation context for a user
// @Tags Context
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /context/{user_id} [get]
func (h *handlers) snapshot(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	snap, ok := h.store.Snapshot(id)
	if !ok {
		return nil, perrs.NotFoundf("no conversation for user %d", id)
	}
	return snap, nil
}

// @Summary Clear conversation context for a user
// @Tags Context
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]bool "ok"
// @Router /context/{user_id} [delete]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	h.store.Clear(id)
	return map[string]bool{"cleared": true}, nil
}
