// Package identify runs the classification workflow: it validates a request,
// makes one prediction call, joins the result against the knowledge tables,
// and publishes it to a per-session workspace.
package identify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/internal/upload"
)

// Request is one identification attempt.
type Request struct {
	Image *upload.Image
	Role  Role
}

// Workflow turns requests into identifications.
type Workflow struct {
	predictor   predictor.Client
	requireRole bool
	logger      *slog.Logger
}

// New creates a Workflow. When requireRole is set, requests without a role
// fail validation.
func New(client predictor.Client, requireRole bool, logger *slog.Logger) *Workflow {
	return &Workflow{
		predictor:   client,
		requireRole: requireRole,
		logger:      logger.With("system", "identify"),
	}
}

// RequireRole reports whether requests must carry a role.
func (w *Workflow) RequireRole() bool {
	return w.requireRole
}

// Validate checks the preconditions for an analysis.
func (w *Workflow) Validate(req Request) error {
	if req.Image == nil || req.Image.DataURI == "" {
		return &ValidationError{Field: "image", Message: "an image is required"}
	}
	if w.requireRole && req.Role == RoleNone {
		return &ValidationError{Field: "role", Message: "a role is required"}
	}
	return nil
}

// Analyze validates req, issues exactly one prediction call, and joins the
// result. Nothing is retried.
func (w *Workflow) Analyze(ctx context.Context, req Request) (*Identification, error) {
	if err := w.Validate(req); err != nil {
		return nil, err
	}

	p, err := w.predictor.Predict(ctx, req.Image.DataURI)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	id := NewIdentification(p, req.Role)
	if id.Fallback {
		w.logger.Info("class resolved to fallback", "class_id", p.ClassID, "label", p.MushroomType.Common)
	}
	return id, nil
}

// Submit runs one analysis against ws using its current image and role, and
// queues the resulting notice. A result that a newer analysis superseded is
// dropped and ErrStale returned.
func (w *Workflow) Submit(ctx context.Context, ws *Workspace) error {
	snap := ws.Snapshot()
	req := Request{Image: snap.Image, Role: snap.Role}

	if err := w.Validate(req); err != nil {
		ws.Notify(validationNotice(w.requireRole))
		return err
	}

	token := ws.Begin()

	id, err := w.Analyze(ctx, req)
	if err != nil {
		if !ws.Fail(token, err) {
			return ErrStale
		}
		w.logger.Warn("analysis failed", "token", token, "error", err)
		ws.Notify(Notice{Kind: NoticeError, Title: "Analysis Failed", Message: FailureMessage(err)})
		return err
	}

	if !ws.Complete(token, id) {
		w.logger.Info("stale analysis dropped", "token", token, "class_id", id.Prediction.ClassID)
		return ErrStale
	}

	ws.Notify(Notice{Kind: NoticeSuccess, Title: "Analysis Complete!", Message: id.Summary()})
	return nil
}

// FailureMessage describes err for display.
func FailureMessage(err error) string {
	var svc *predictor.ServiceError
	switch {
	case errors.Is(err, predictor.ErrTimeout):
		return "The prediction service did not respond in time. Please try again."
	case errors.As(err, &svc):
		if svc.Message != "" {
			return fmt.Sprintf("The prediction service returned an error (%d): %s", svc.StatusCode, svc.Message)
		}
		return fmt.Sprintf("The prediction service returned an error (%d).", svc.StatusCode)
	case errors.Is(err, predictor.ErrMalformed):
		return "The prediction service returned an unexpected response."
	case errors.Is(err, predictor.ErrNetwork):
		return "Could not reach the prediction service. Is it running?"
	}
	return "Analysis failed. Please try again."
}

func validationNotice(requireRole bool) Notice {
	msg := "Please upload an image first."
	if requireRole {
		msg = "Please select your role and upload an image first."
	}
	return Notice{Kind: NoticeValidation, Title: "Missing Information", Message: msg}
}
