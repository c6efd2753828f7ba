package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/http/handlers"
	"github.com/preston-bernstein/game-deals-service/internal/testutil"
)

func newTestRouter() http.Handler {
	registry := testutil.NewRegistry(testutil.GoodProvider{Deals: []deals.Deal{
		testutil.SampleDeal("abc", "Hollow Knight"),
		testutil.SampleDeal("a/b", "Slashed"),
	}}, nil)
	return NewRouter(handlers.NewHandler(registry, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/deals", http.StatusOK},
		{http.MethodPost, "/next", http.StatusSeeOther},
		{http.MethodPost, "/previous", http.StatusSeeOther},
		{http.MethodPost, "/api/deals/next", http.StatusOK},
		{http.MethodPost, "/api/deals/previous", http.StatusOK},
		{http.MethodGet, "/deals/missing", http.StatusNotFound},
		{http.MethodGet, "/api/deals/missing", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterServesDealDetailWithEscapedID(t *testing.T) {
	router := newTestRouter()

	rr := testutil.Serve(router, http.MethodGet, "/", nil)
	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}

	for _, path := range []string{"/api/deals/abc", "/api/deals/a%2Fb"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rr = testutil.ServeRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter()

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "not found" {
		t.Fatalf("expected json not found body, got %v", resp)
	}
}
