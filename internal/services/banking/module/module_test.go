package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"talktobank/internal/modkit"
	"talktobank/internal/platform/config"
	perrs "talktobank/internal/platform/errors"
	phttp "talktobank/internal/platform/net/http"
)

// fakeAuth resolves two fixed bearer tokens to user ids
type fakeAuth struct{}

func (fakeAuth) Parse(r *http.Request) (string, string, error) {
	switch r.Header.Get("Authorization") {
	case "Bearer tok-1":
		return "1", "", nil
	case "Bearer tok-2":
		return "2", "", nil
	}
	return "", "", perrs.Unauthorizedf("missing bearer token")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m := New(
		modkit.Deps{Cfg: config.New()},
		modkit.WithPorts(Secured{Auth: fakeAuth{}}),
	)
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestMountRoutes_RejectsMissingToken(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/accounts/1", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestMountRoutes_RejectsCrossUserAccess(t *testing.T) {
	srv := newTestServer(t)

	// tok-2 authenticates user 2; user 1's accounts stay out of reach
	resp := get(t, srv.URL+"/accounts/1", "tok-2")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
}

func TestMountRoutes_AuthedRequestReachesHandler(t *testing.T) {
	srv := newTestServer(t)

	// a valid token clears auth; the handler then rejects the bad id
	resp := get(t, srv.URL+"/accounts/abc", "tok-1")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}
