package identify

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/JaimeStill/mentor/internal/upload"
	"github.com/JaimeStill/mentor/pkg/handlers"
	"github.com/JaimeStill/mentor/pkg/routes"
)

// multipartOverhead is the headroom allowed on top of the image size for
// form boundaries and the other fields.
const multipartOverhead = 1 << 20

// Handler provides the stateless identification endpoint.
type Handler struct {
	wf            *Workflow
	logger        *slog.Logger
	maxUploadSize int64
}

// Response is the identification endpoint payload.
type Response struct {
	Image          *upload.Image   `json:"image"`
	Identification *Identification `json:"identification"`
	Summary        string          `json:"summary"`
}

// NewHandler creates a Handler with the given workflow, logger, and upload size limit.
func NewHandler(wf *Workflow, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		wf:            wf,
		logger:        logger.With("handler", "identify"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for identification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/identify",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Identify},
		},
	}
}

// Identify classifies one image. It accepts either a multipart form with a
// "file" part and optional "role" field, or a JSON body
// {"image": "<data uri>", "role": "..."}.
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	req, err := h.readRequest(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	id, err := h.wf.Analyze(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Image:          req.Image,
		Identification: id,
		Summary:        id.Summary(),
	})
}

type jsonRequest struct {
	Image    string `json:"image"`
	Role     string `json:"role"`
	Filename string `json:"filename"`
}

func (h *Handler) readRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return h.readMultipart(w, r)
	}
	return h.readJSON(w, r)
}

func (h *Handler) readMultipart(w http.ResponseWriter, r *http.Request) (Request, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Request{}, upload.ErrTooLarge
		}
		return Request{}, &ValidationError{Field: "file", Message: "invalid multipart form"}
	}

	role, err := ParseRole(r.FormValue("role"))
	if err != nil {
		return Request{}, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return Request{}, upload.ErrNoFile
		}
		return Request{}, &ValidationError{Field: "file", Message: err.Error()}
	}
	defer file.Close()

	img, err := upload.Read(file, header.Filename, header.Header.Get("Content-Type"), h.maxUploadSize)
	if err != nil {
		return Request{}, err
	}

	return Request{Image: img, Role: role}, nil
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request) (Request, error) {
	// base64 inflates the payload by a third
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize*4/3+multipartOverhead)

	var body jsonRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Request{}, upload.ErrTooLarge
		}
		return Request{}, &ValidationError{Field: "body", Message: "invalid JSON"}
	}

	role, err := ParseRole(body.Role)
	if err != nil {
		return Request{}, err
	}

	if body.Image == "" {
		return Request{Role: role}, nil
	}

	img, err := upload.FromDataURI(body.Filename, body.Image)
	if err != nil {
		return Request{}, err
	}
	if img.Size > h.maxUploadSize {
		return Request{}, upload.ErrTooLarge
	}

	return Request{Image: img, Role: role}, nil
}
