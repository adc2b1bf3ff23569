package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-toolkit/domain"
)

func postCalculate(srv *testServer, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/calculate",
		bytes.NewBufferString(body),
	)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)
	return w
}

func TestCalculateHandler_OK(t *testing.T) {

	srv := newTestServer(t, 10)

	w := postCalculate(srv, "application/json", `{
		"tool": "emergency",
		"currency": "USD",
		"inputs": {"expense": 25000}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var calc domain.Calculation
	if err := json.NewDecoder(w.Body).Decode(&calc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if calc.Tool != domain.ToolEmergency || calc.Currency != "USD" {
		t.Errorf("unexpected calculation %+v", calc)
	}
	if len(calc.Metrics) != 2 || calc.Metrics[0].Value != 75000 || calc.Metrics[1].Value != 150000 {
		t.Errorf("unexpected metrics %+v", calc.Metrics)
	}
	if calc.Metrics[0].Formatted != "$75,000" {
		t.Errorf("expected $75,000, got %q", calc.Metrics[0].Formatted)
	}
}

func TestCalculateHandler_Errors(t *testing.T) {

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		want        int
	}{
		{"method not allowed", http.MethodGet, "application/json", "", http.StatusMethodNotAllowed},
		{"wrong content type", http.MethodPost, "text/plain", `{"tool":"car"}`, http.StatusUnsupportedMediaType},
		{"invalid json", http.MethodPost, "application/json", `{invalid-json}`, http.StatusBadRequest},
		{"home is not a calculator", http.MethodPost, "application/json", `{"tool":"home"}`, http.StatusBadRequest},
		{"unknown tool", http.MethodPost, "application/json", `{"tool":"lottery"}`, http.StatusBadRequest},
		{"non finite", http.MethodPost, "application/json", `{"tool":"car","inputs":{"loan_rate":-1200}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, 10)

			req := httptest.NewRequest(tt.method, "/api/calculate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			srv.handler.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestCalculateHandler_RateLimited(t *testing.T) {

	srv := newTestServer(t, 2)
	body := `{"tool":"doubling","inputs":{"rate":8}}`

	for i := 0; i < 2; i++ {
		if w := postCalculate(srv, "application/json", body); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := postCalculate(srv, "application/json", body)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Errorf("expected a Retry-After header")
	}
}

func TestListTools(t *testing.T) {

	srv := newTestServer(t, 10)

	w := srv.get(t, "/api/tools")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp toolsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Tools) != 10 || resp.Tools[0].Key != domain.ToolHome {
		t.Fatalf("unexpected tools %+v", resp.Tools)
	}
	if len(resp.Currencies) != 4 {
		t.Errorf("expected 4 currencies, got %v", resp.Currencies)
	}

	for _, tool := range resp.Tools {
		if tool.Key != domain.ToolCar {
			continue
		}
		if len(tool.Fields) != 2 {
			t.Fatalf("expected 2 car fields, got %+v", tool.Fields)
		}
		if loan := tool.Fields[1]; loan.Min != nil || loan.Max != nil || loan.Default != 9 {
			t.Errorf("loan rate should be unbounded with default 9, got %+v", loan)
		}
		if income := tool.Fields[0]; income.Min == nil || *income.Min != 0 || income.Max != nil {
			t.Errorf("income should have a minimum of 0 only, got %+v", income)
		}
	}
}

func TestHealthz(t *testing.T) {

	srv := newTestServer(t, 10)

	w := srv.get(t, "/healthz")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("unexpected health response %d %q", w.Code, w.Body.String())
	}
}
