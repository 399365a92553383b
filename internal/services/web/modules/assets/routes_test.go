package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func serve(t *testing.T, m Module, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestServesEmbeddedStylesheet(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(), http.MethodGet, "/static/landing.css")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != assetCacheControl {
		t.Fatalf("cache-control = %q", got)
	}
}

func TestServesEmbeddedLoader(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(), http.MethodGet, "/static/landing.js")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "WebAssembly") {
		t.Fatal("loader body missing WebAssembly bootstrap")
	}
}

func TestMissingAssetIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, NewWithFS(fstest.MapFS{"a.css": {Data: []byte("a{}")}}), http.MethodGet, "/static/b.css")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestAssetsRejectNonGet(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(), http.MethodPost, "/static/landing.css")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestModuleIDReturnsAssets(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "assets" {
		t.Fatalf("ID() = %q, want assets", got)
	}
}
