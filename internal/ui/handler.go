package ui

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/sessions"
	"github.com/JaimeStill/mentor/internal/upload"
	"github.com/JaimeStill/mentor/pkg/formatting"
	"github.com/JaimeStill/mentor/pkg/storage"
	"github.com/JaimeStill/mentor/pkg/web"
)

// multipartOverhead is the headroom allowed on top of the image size for
// form boundaries.
const multipartOverhead = 1 << 20

// Handler serves the UI pages and form posts.
type Handler struct {
	wf            *identify.Workflow
	views         *web.TemplateSet
	storage       storage.System
	logger        *slog.Logger
	maxUploadSize int64
}

func (h *Handler) register(r *web.Router) {
	r.HandleFunc("GET /{$}", h.Home)
	r.HandleFunc("GET /identify", h.Identify)
	r.HandleFunc("POST /identify/upload", h.Upload)
	r.HandleFunc("POST /identify/analyze", h.Analyze)
	r.HandleFunc("POST /identify/clear", h.Clear)
	r.HandleFunc("POST /theme", h.ToggleTheme)
	r.HandleFunc("GET /images/{name}", h.Image)
	r.Handle("GET /static/", web.DistServer(assets, "static", "/static/"))

	r.SetFallback(h.notFound)
}

// Home renders the landing page with the variety cards.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, homeView, homeData{Varieties: knowledge.Varieties()})
}

// Identify renders the workspace: upload preview, role, and the latest result.
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	snap := sessionOf(r).Workspace.Snapshot()

	h.render(w, r, identifyView, identifyData{
		Snapshot:    snap,
		Roles:       roleOptions(snap.Role),
		RequireRole: h.wf.RequireRole(),
		MaxUpload:   formatting.FormatBytes(h.maxUploadSize, 0),
	})
}

// Upload replaces the workspace image. Submitting without a file leaves the
// workspace untouched. The upload token is taken only once a file part has
// arrived, so an empty or rejected submission cannot supersede a real one.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ws := sessionOf(r).Workspace

	file, header, err := h.openUpload(w, r)
	if err != nil {
		if !errors.Is(err, upload.ErrNoFile) {
			h.uploadFailed(ws, err)
		}
		h.redirect(w, r, identifyView.Route)
		return
	}
	defer file.Close()

	token := ws.ReserveUpload()

	img, err := upload.Read(file, header.Filename, header.Header.Get("Content-Type"), h.maxUploadSize)
	switch {
	case errors.Is(err, upload.ErrNoFile):
	case err != nil:
		h.uploadFailed(ws, err)
	case !ws.SetImage(token, img):
		h.logger.Info("stale upload dropped", "filename", img.Filename)
	default:
		h.logger.Info("image uploaded", "filename", img.Filename, "size", img.Size, "format", img.Format)
	}

	h.redirect(w, r, identifyView.Route)
}

func (h *Handler) uploadFailed(ws *identify.Workspace, err error) {
	h.logger.Warn("upload rejected", "error", err)
	ws.Notify(identify.Notice{
		Kind:    identify.NoticeError,
		Title:   "Upload Failed",
		Message: uploadMessage(err, h.maxUploadSize),
	})
}

// Analyze records the selected role and runs one analysis on the current image.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ws := sessionOf(r).Workspace

	role, err := identify.ParseRole(r.PostFormValue("role"))
	if err != nil {
		ws.Notify(identify.Notice{
			Kind:    identify.NoticeValidation,
			Title:   "Missing Information",
			Message: err.Error(),
		})
		h.redirect(w, r, identifyView.Route)
		return
	}
	ws.SetRole(role)

	if err := h.wf.Submit(r.Context(), ws); err != nil && !errors.Is(err, identify.ErrStale) {
		h.logger.Info("analysis not published", "error", err)
	}

	h.redirect(w, r, identifyView.Route)
}

// Clear empties the workspace.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionOf(r).Workspace.Clear()
	h.redirect(w, r, identifyView.Route)
}

// ToggleTheme flips the session theme and returns to the posting page.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	t := sessionOf(r).ToggleTheme()
	h.logger.Debug("theme toggled", "theme", t)
	h.redirect(w, r, returnPath(r.PostFormValue("return")))
}

// Image serves a variety image from blob storage when configured, falling
// back to the embedded copy.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := storage.ValidateKey(name); err != nil {
		status := storage.MapHTTPStatus(err)
		h.logger.Debug("image name rejected", "name", name, "error", err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if h.storage != nil && h.serveBlob(w, r, name) {
		return
	}

	data, err := fs.ReadFile(assets, path.Join("static/images", name))
	if err != nil {
		h.notFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	web.ServeEmbeddedFile(data, contentType)(w, r)
}

func (h *Handler) serveBlob(w http.ResponseWriter, r *http.Request, name string) bool {
	blob, err := h.storage.Download(r.Context(), name)
	if err != nil {
		if storage.MapHTTPStatus(err) != http.StatusNotFound {
			h.logger.Warn("blob image unavailable", "name", name, "error", err)
		}
		return false
	}
	defer blob.Body.Close()

	if blob.ContentType != "" {
		w.Header().Set("Content-Type", blob.ContentType)
	}
	if blob.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(blob.ContentLength, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob.Body); err != nil {
		h.logger.Warn("blob image copy interrupted", "name", name, "error", err)
	}
	return true
}

// checkImages logs which variety images blob storage can serve. Missing
// images are served from the embedded copies.
func (h *Handler) checkImages(ctx context.Context) {
	vs := knowledge.Varieties()

	var found int
	for _, v := range vs {
		ok, err := h.storage.Exists(ctx, v.Image)
		switch {
		case err != nil:
			h.logger.Warn("variety image check failed", "image", v.Image, "status", storage.MapHTTPStatus(err), "error", err)
		case ok:
			found++
		default:
			h.logger.Info("variety image not in blob storage, serving embedded copy", "image", v.Image)
		}
	}

	h.logger.Info("variety images checked", "blob", found, "total", len(vs))
}

func (h *Handler) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, nil, upload.ErrTooLarge
		}
		return nil, nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, upload.ErrNoFile
		}
		return nil, nil, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil, upload.ErrNoFile
	}
	return file, header, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, view web.ViewDef, data any) {
	vd := web.ViewData{
		Title: view.Title,
		Page:  view.Page,
		Data:  data,
	}
	h.prepare(r, &vd)

	if err := h.views.Render(w, http.StatusOK, layout, view.Template, vd); err != nil {
		h.logger.Error("render failed", "view", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// prepare fills the per-session view fields. Notices are drained, so each is
// shown exactly once.
func (h *Handler) prepare(r *http.Request, vd *web.ViewData) {
	sess := sessions.FromContext(r.Context())
	if sess == nil {
		return
	}
	vd.Theme = string(sess.Theme())
	vd.Notices = sess.Workspace.DrainNotices()
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.views.ErrorHandler(layout, notFoundView, http.StatusNotFound, h.prepare)(w, r)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, route string) {
	http.Redirect(w, r, h.views.BasePath()+route, http.StatusSeeOther)
}

func sessionOf(r *http.Request) *sessions.Session {
	return sessions.FromContext(r.Context())
}

// returnPath accepts only module-relative paths so the theme toggle cannot
// be used as an open redirect.
func returnPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.ContainsAny(p, "\\\r\n") {
		return homeView.Route
	}
	return p
}

func uploadMessage(err error, limit int64) string {
	if errors.Is(err, upload.ErrTooLarge) {
		return "The selected file exceeds the " + formatting.FormatBytes(limit, 0) + " upload limit."
	}
	return "The selected file could not be read. Please choose another image."
}
