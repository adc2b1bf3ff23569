package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"finance-toolkit/repository"
	"finance-toolkit/service"
)

const testCookie = "test_session"

type testServer struct {
	handler http.Handler
	repo    *repository.SessionRepositoryMemory
	limiter *RateLimiter
}

func newTestServer(t *testing.T, capacity int) *testServer {
	t.Helper()

	log := zerolog.New(io.Discard)
	repo := repository.NewSessionRepositoryMemory(time.Hour)
	t.Cleanup(func() { repo.Close() })
	calculator := service.NewCalculator(service.NewFormatter())
	sessions := NewSessionManager(repo, testCookie, time.Hour, log)
	limiter := newRateLimiter(capacity, time.Minute, time.Now)

	handler := NewRouter(RouterDeps{
		Pages: NewPageHandler(
			calculator,
			service.NewMarkdown(),
			sessions,
			Author{Name: "Test Author", URL: "https://example.com/author"},
			log,
		),
		Calculate:   NewCalculateHandler(calculator),
		Sessions:    sessions,
		RateLimiter: limiter,
		Log:         log,
	})

	return &testServer{handler: handler, repo: repo, limiter: limiter}
}

func (s *testServer) get(t *testing.T, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func parsePage(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatalf("no session cookie set")
	return nil
}

func checkedRule(doc *goquery.Document) string {
	v, _ := doc.Find(`#sidebar input[name="rule"][checked]`).Attr("value")
	return v
}

func selectedCurrency(doc *goquery.Document) string {
	v, _ := doc.Find(`select[name="currency"] option[selected]`).Attr("value")
	return v
}
