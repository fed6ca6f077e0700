// Package http provides http transport for banking
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"talktobank/internal/modkit/httpkit"
	perrs "talktobank/internal/platform/errors"
	"talktobank/internal/services/banking/domain"
)

// Register mounts banking endpoints on the given router
func Register(r httpkit.Router, b domain.BankingPort) {
	h := &handlers{banking: b}
	httpkit.Get(r, "/accounts/{user_id}", h.accounts)
	httpkit.Get(r, "/payments/{user_id}", h.payments)
	httpkit.Get(r, "/cards/{user_id}", h.cards)
	httpkit.Get(r, "/loans/{user_id}", h.loans)
	httpkit.Get(r, "/investments/{user_id}", h.investments)
	httpkit.Get(r, "/user/{user_id}/summary", h.summary)
}

type handlers struct{ banking domain.BankingPort }

// userID parses the path user id and checks it against the session
// identity set by the auth middleware. Account data never crosses users
func userID(r *stdhttp.Request) (int64, error) {
	raw := chi.URLParam(r, "user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perrs.InvalidArgf("invalid user id %q", raw)
	}
	caller, err := httpkit.User(r)
	if err != nil {
		return 0, err
	}
	if caller != strconv.FormatInt(id, 10) {
		return 0, perrs.Forbiddenf("account belongs to another user")
	}
	return id, nil
}

// @Summary All accounts with total balance
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.AccountsSummary "ok"
// @Router /accounts/{user_id} [get]
func (h *handlers) accounts(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.Accounts(r.Context(), id)
}

// @Summary Recent payments and monthly spending
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.PaymentsSummary "ok"
// @Router /payments/{user_id} [get]
func (h *handlers) payments(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.PaymentsSummary(r.Context(), id)
}

// @Summary Active cards
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} domain.Card "ok"
// @Router /cards/{user_id} [get]
func (h *handlers) cards(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.Cards(r.Context(), id)
}

// @Summary Active loans
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} domain.Loan "ok"
// @Router /loans/{user_id} [get]
func (h *handlers) loans(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.Loans(r.Context(), id)
}

// @Summary Active investments with total value
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.InvestmentsSummary "ok"
// @Router /investments/{user_id} [get]
func (h *handlers) investments(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.Investments(r.Context(), id)
}

// @Summary Combined balance, loans and recent activity
// @Tags Banking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} domain.UserSummary "ok"
// @Router /user/{user_id}/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	id, err := userID(r)
	if err != nil {
		return nil, err
	}
	return h.banking.Summary(r.Context(), id)
}
