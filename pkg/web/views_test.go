package web_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/mentor/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/app.html": &fstest.MapFile{Data: []byte(
		`{{ define "app" }}<html data-theme="{{ .Theme }}"><a href="{{ .BasePath }}/">{{ .Title }}</a>{{ template "content" . }}</html>{{ end }}`,
	)},
	"views/home.html": &fstest.MapFile{Data: []byte(
		`{{ define "content" }}<p>{{ shout .Data }}</p>{{ end }}`,
	)},
	"views/broken.html": &fstest.MapFile{Data: []byte(
		`{{ define "content" }}{{ .Data.Missing.Field }}{{ end }}`,
	)},
}

var testViews = []web.ViewDef{
	{Route: "/", Template: "home.html", Title: "Home", Page: "home"},
	{Route: "/broken", Template: "broken.html", Title: "Broken", Page: "broken"},
}

var testFuncs = template.FuncMap{
	"shout": func(v any) string {
		s, _ := v.(string)
		return strings.ToUpper(s)
	},
}

func newTestSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(testFS, "layouts/*.html", "views", "/app", testViews, testFuncs)
	if err != nil {
		t.Fatalf("NewTemplateSet: %v", err)
	}
	return ts
}

func TestRender(t *testing.T) {
	ts := newTestSet(t)

	rec := httptest.NewRecorder()
	err := ts.Render(rec, http.StatusOK, "app", "home.html", web.ViewData{
		Title: "Home",
		Theme: "dark",
		Data:  "spores",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{`data-theme="dark"`, `href="/app/"`, "<p>SPORES</p>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type: got %q", ct)
	}
}

func TestRenderUnknownView(t *testing.T) {
	ts := newTestSet(t)

	rec := httptest.NewRecorder()
	if err := ts.Render(rec, http.StatusOK, "app", "nope.html", web.ViewData{}); err == nil {
		t.Fatal("expected error for unknown view")
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	ts := newTestSet(t)

	rec := httptest.NewRecorder()
	err := ts.Render(rec, http.StatusOK, "app", "broken.html", web.ViewData{Data: 42})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("partial body written: %q", rec.Body.String())
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTestSet(t)

	tests := []struct {
		name      string
		prepare   func(*http.Request, *web.ViewData)
		wantTheme string
	}{
		{"no prepare", nil, `data-theme=""`},
		{
			name: "prepare sets theme",
			prepare: func(r *http.Request, d *web.ViewData) {
				d.Theme = "dark"
				d.Data = r.URL.Path
			},
			wantTheme: `data-theme="dark"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ts.ErrorHandler("app", testViews[0], http.StatusNotFound, tt.prepare)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))

			if rec.Code != http.StatusNotFound {
				t.Errorf("status: got %d, want 404", rec.Code)
			}
			if body := rec.Body.String(); !strings.Contains(body, tt.wantTheme) {
				t.Errorf("body missing %q: %s", tt.wantTheme, body)
			}
		})
	}
}
