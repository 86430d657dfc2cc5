package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uiblocks/internal/resolver"
)

// stubResolver satisfies resolver.Resolver for routing tests.
type stubResolver struct{}

func (stubResolver) Resolve(context.Context, string) (resolver.Resolution, error) {
	return resolver.Resolution{HTML: "<div></div>", TemplateID: "tpl"}, nil
}

func (stubResolver) SaveUserEdit(context.Context, string, string, string) (string, error) {
	return "tpl", nil
}

func TestNewRouter(t *testing.T) {
	router := NewRouter(&Deps{Resolver: stubResolver{}})
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router := NewRouter(&Deps{Resolver: stubResolver{}})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "POST /generate-ui",
			method:     http.MethodPost,
			path:       "/generate-ui",
			body:       `{"command": "a form"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /generate-ui method not allowed",
			method:     http.MethodGet,
			path:       "/generate-ui",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /save-ui",
			method:     http.MethodPost,
			path:       "/save-ui",
			body:       `{"html": "<p>x</p>", "parent_template_id": "abc", "user": "bob"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /healthz",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(&Deps{Resolver: stubResolver{}})

	req := httptest.NewRequest(http.MethodOptions, "/generate-ui", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Access-Control-Allow-Methods header missing")
	}
}
