package identify

import (
	"sync"

	"github.com/JaimeStill/mentor/internal/upload"
)

// State is the position of a workspace in the analysis cycle.
type State string

const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateFulfilled State = "fulfilled"
	StateRejected  State = "rejected"
)

// NoticeKind classifies a flash notice.
type NoticeKind string

const (
	NoticeSuccess    NoticeKind = "success"
	NoticeError      NoticeKind = "error"
	NoticeValidation NoticeKind = "validation"
)

// Notice is a one-shot message shown on the next render.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Token identifies one analysis or upload. Only the newest token of each
// kind may commit.
type Token uint64

// Snapshot is a consistent copy of a workspace for rendering.
type Snapshot struct {
	State  State
	Role   Role
	Image  *upload.Image
	Result *Identification
	Err    string
}

// Pending reports whether an analysis is in flight.
func (s Snapshot) Pending() bool {
	return s.State == StatePending
}

// Workspace holds one browser's upload, role, and current identification.
// It is safe for concurrent use.
type Workspace struct {
	mu       sync.Mutex
	state    State
	role     Role
	image    *upload.Image
	result   *Identification
	err      error
	analysis Token
	uploads  Token
	notices  []Notice
}

// NewWorkspace returns an idle workspace.
func NewWorkspace() *Workspace {
	return &Workspace{state: StateIdle}
}

// Begin starts an analysis and returns its token.
func (w *Workspace) Begin() Token {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.analysis++
	w.state = StatePending
	return w.analysis
}

// Complete publishes id if t is the newest analysis token. It reports whether
// the result was applied.
func (w *Workspace) Complete(t Token, id *Identification) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t != w.analysis {
		return false
	}
	w.state = StateFulfilled
	w.result = id
	w.err = nil
	return true
}

// Fail records err if t is the newest analysis token. The previous result is
// kept. It reports whether the failure was applied.
func (w *Workspace) Fail(t Token, err error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t != w.analysis {
		return false
	}
	w.state = StateRejected
	w.err = err
	return true
}

// ReserveUpload returns a token for an upload about to be decoded.
func (w *Workspace) ReserveUpload() Token {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.uploads++
	return w.uploads
}

// SetImage replaces the current image if t is the newest upload token.
func (w *Workspace) SetImage(t Token, img *upload.Image) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t != w.uploads {
		return false
	}
	w.image = img
	return true
}

// Image returns the current image or nil.
func (w *Workspace) Image() *upload.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.image
}

// SetRole records the selected role.
func (w *Workspace) SetRole(r Role) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.role = r
}

// Clear discards the image and result and returns to idle. In-flight
// analyses and uploads are invalidated.
func (w *Workspace) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.analysis++
	w.uploads++
	w.state = StateIdle
	w.image = nil
	w.result = nil
	w.err = nil
}

// Notify queues a notice for the next render.
func (w *Workspace) Notify(n Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notices = append(w.notices, n)
}

// DrainNotices returns queued notices in arrival order and empties the queue.
func (w *Workspace) DrainNotices() []Notice {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := w.notices
	w.notices = nil
	return out
}

// Snapshot copies the renderable state.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		State:  w.state,
		Role:   w.role,
		Image:  w.image,
		Result: w.result,
	}
	if w.err != nil {
		s.Err = w.err.Error()
	}
	return s
}
