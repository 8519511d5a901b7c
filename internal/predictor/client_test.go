package predictor_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/mentor/internal/predictor"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func newClient(t *testing.T, baseURL, timeout string) predictor.Client {
	t.Helper()

	cfg := &predictor.Config{BaseURL: baseURL, Timeout: timeout}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	c, err := predictor.New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name string
		body string
		want predictor.Prediction
	}{
		{
			name: "string mushroom type",
			body: `{"mushroomType":"Pink Oyster Mushroom","confidence":87.5,"classId":1}`,
			want: predictor.Prediction{
				MushroomType: predictor.MushroomType{Common: "Pink Oyster Mushroom"},
				Confidence:   87.5,
				ClassID:      1,
			},
		},
		{
			name: "object mushroom type with features",
			body: `{
				"mushroomType": {"common": "Abalone Mushroom", "scientific": "Pleurotus cystidiosus"},
				"confidence": 64,
				"classId": 0,
				"features": {
					"colorMean": [120.5, 98.25, 80],
					"textureFeatures": {"contrast": 1.5, "correlation": 0.9, "energy": 0.2, "homogeneity": 0.7, "entropy": 4.1}
				}
			}`,
			want: predictor.Prediction{
				MushroomType: predictor.MushroomType{Common: "Abalone Mushroom", Scientific: "Pleurotus cystidiosus"},
				Confidence:   64,
				ClassID:      0,
				Features: &predictor.Features{
					ColorMean: [3]float64{120.5, 98.25, 80},
					TextureFeatures: predictor.TextureFeatures{
						Contrast:    1.5,
						Correlation: 0.9,
						Energy:      0.2,
						Homogeneity: 0.7,
						Entropy:     4.1,
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotImage string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/predict" {
					t.Errorf("request: got %s %s, want POST /predict", r.Method, r.URL.Path)
				}
				var req struct {
					Image string `json:"image"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("decode request: %v", err)
				}
				gotImage = req.Image
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, err := newClient(t, srv.URL, "5s").Predict(context.Background(), testImage)
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if gotImage != testImage {
				t.Errorf("image: got %q, want %q", gotImage, testImage)
			}
			if diff := cmp.Diff(tt.want, *p); diff != "" {
				t.Errorf("prediction mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPredictBaseURLPath(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"mushroomType":"x","confidence":1,"classId":3}`))
	}))
	defer srv.Close()

	if _, err := newClient(t, srv.URL+"/ml/", "5s").Predict(context.Background(), testImage); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if path != "/ml/predict" {
		t.Errorf("path: got %q, want /ml/predict", path)
	}
}

func TestPredictMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing class id", `{"mushroomType":"Pink Oyster Mushroom","confidence":87.5}`},
		{"missing confidence", `{"mushroomType":"Pink Oyster Mushroom","classId":1}`},
		{"missing mushroom type", `{"confidence":87.5,"classId":1}`},
		{"non-numeric class id", `{"mushroomType":"x","confidence":87.5,"classId":"1"}`},
		{"fractional class id", `{"mushroomType":"x","confidence":87.5,"classId":1.5}`},
		{"confidence out of range", `{"mushroomType":"x","confidence":140,"classId":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newClient(t, srv.URL, "5s").Predict(context.Background(), testImage)
			if !errors.Is(err, predictor.ErrMalformed) {
				t.Errorf("error: got %v, want ErrMalformed", err)
			}
		})
	}
}

func TestPredictServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"model not loaded"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "5s").Predict(context.Background(), testImage)

	var svcErr *predictor.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error: got %v, want *ServiceError", err)
	}
	if svcErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", svcErr.StatusCode)
	}
	if svcErr.Message != "model not loaded" {
		t.Errorf("message: got %q, want %q", svcErr.Message, "model not loaded")
	}
	if !errors.Is(err, predictor.ErrService) {
		t.Error("service error should match ErrService")
	}
	if got := predictor.MapHTTPStatus(err); got != http.StatusBadGateway {
		t.Errorf("http status: got %d, want 502", got)
	}
}

func TestPredictTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL, "50ms").Predict(context.Background(), testImage)
	if !errors.Is(err, predictor.ErrTimeout) {
		t.Fatalf("error: got %v, want ErrTimeout", err)
	}
	if errors.Is(err, predictor.ErrNetwork) {
		t.Error("timeout should not also match ErrNetwork")
	}
	if got := predictor.MapHTTPStatus(err); got != http.StatusGatewayTimeout {
		t.Errorf("http status: got %d, want 504", got)
	}
}

func TestPredictUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(t, url, "5s").Predict(context.Background(), testImage)
	if !errors.Is(err, predictor.ErrNetwork) {
		t.Errorf("error: got %v, want ErrNetwork", err)
	}
}

func TestPredictConcurrencyBound(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		w.Write([]byte(`{"mushroomType":"x","confidence":1,"classId":3}`))
	}))
	defer srv.Close()

	cfg := &predictor.Config{BaseURL: srv.URL, MaxConcurrent: 2}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	c, err := predictor.New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	done := make(chan error, 6)
	for range 6 {
		go func() {
			_, err := c.Predict(context.Background(), testImage)
			done <- err
		}()
	}
	for range 6 {
		if err := <-done; err != nil {
			t.Errorf("predict: %v", err)
		}
	}

	if got := peak.Load(); got > 2 {
		t.Errorf("peak concurrency: got %d, want at most 2", got)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path: got %q, want /health", r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy","message":"Mushroom classifier is running"}`))
	}))
	defer srv.Close()

	h, err := newClient(t, srv.URL, "5s").Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "healthy" {
		t.Errorf("status: got %q, want healthy", h.Status)
	}
}
