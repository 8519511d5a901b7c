// Package predictor is the HTTP client for the external mushroom
// classification service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

const maxResponseSize = 1 << 20

// Client issues classification and health requests against the service.
type Client interface {
	// Predict sends the image data URI and returns the validated result.
	// Errors wrap ErrNetwork, ErrTimeout, ErrService, or ErrMalformed.
	Predict(ctx context.Context, image string) (*Prediction, error)
	// Health returns the service's self-reported status.
	Health(ctx context.Context) (*Health, error)
}

type client struct {
	http       *http.Client
	predictURL string
	healthURL  string
	timeout    time.Duration
	sem        *semaphore.Weighted
	logger     *slog.Logger
}

// New creates a Client from a finalized Config.
func New(cfg *Config, logger *slog.Logger) (Client, error) {
	predictURL, err := url.JoinPath(cfg.BaseURL, "predict")
	if err != nil {
		return nil, fmt.Errorf("build predict url: %w", err)
	}
	healthURL, err := url.JoinPath(cfg.BaseURL, "health")
	if err != nil {
		return nil, fmt.Errorf("build health url: %w", err)
	}

	return &client{
		http:       &http.Client{},
		predictURL: predictURL,
		healthURL:  healthURL,
		timeout:    cfg.TimeoutDuration(),
		sem:        semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		logger:     logger.With("system", "predictor"),
	}, nil
}

type predictRequest struct {
	Image string `json:"image"`
}

func (c *client) Predict(ctx context.Context, image string) (*Prediction, error) {
	body, err := json.Marshal(predictRequest{Image: image})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	start := time.Now()
	data, err := c.do(ctx, http.MethodPost, c.predictURL, body)
	if err != nil {
		c.logger.Warn("prediction failed", "image_size", len(image), "duration", time.Since(start), "error", err)
		return nil, err
	}

	p, err := Decode(data)
	if err != nil {
		c.logger.Warn("prediction rejected", "error", err)
		return nil, err
	}

	c.logger.Info(
		"prediction received",
		"class_id", p.ClassID,
		"confidence", p.Confidence,
		"image_size", len(image),
		"duration", time.Since(start),
	)
	return p, nil
}

func (c *client) Health(ctx context.Context) (*Health, error) {
	data, err := c.do(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return nil, err
	}

	var h Health
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &h, nil
}

// do performs one bounded request and returns the body of a 2xx response.
func (c *client) do(ctx context.Context, method, target string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, classify(ctx, err)
	}
	defer c.sem.Release(1)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, classify(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		}
	}

	return data, nil
}

// classify maps a transport failure onto ErrTimeout or ErrNetwork.
func classify(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// errorMessage extracts {"error": "..."} from a failure body, falling back
// to the trimmed body text.
func errorMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
