package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"adminboard/internal/listing"
)

// State is the table screen's lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Action is a row-level capability the screen may render.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Permissions gates row actions, using the "Y"/"N" flags the API serves.
type Permissions struct {
	WritePermission  string `json:"writePermission"`
	EditPermission   string `json:"editPermission"`
	DeletePermission string `json:"deletePermission"`
}

// SessionStore is the locally cached session marker cleared on forced
// sign-out.
type SessionStore interface {
	Clear()
}

// TableController drives one paginated, searchable list screen. Every state
// change triggers a fetch; a monotonic request generation guarantees that
// only the response to the newest request updates visible state, so a slow
// stale response can never overwrite a fresher page.
type TableController struct {
	api      *Client
	resource string

	// Timeout bounds each fetch; zero means the client's own timeout only.
	Timeout time.Duration

	// Session and OnSignOut run when the API signals an auth failure.
	Session   SessionStore
	OnSignOut func()

	mu         sync.Mutex
	gen        uint64
	state      State
	rows       []Row
	totalPages int
	lastErr    error

	page     int
	pageSize int
	search   string
}

func NewTableController(api *Client, resource string) *TableController {
	return &TableController{
		api:      api,
		resource: resource,
		state:    StateIdle,
		page:     1,
		pageSize: listing.DefaultPageSize,
	}
}

// Snapshot is a consistent copy of the visible state.
type Snapshot struct {
	State      State
	Rows       []Row
	TotalPages int
	Page       int
	PageSize   int
	Search     string
	Err        error
}

func (t *TableController) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return Snapshot{
		State:      t.state,
		Rows:       rows,
		TotalPages: t.totalPages,
		Page:       t.page,
		PageSize:   t.pageSize,
		Search:     t.search,
		Err:        t.lastErr,
	}
}

// Refresh re-fetches the current page. Also the hook to call after an
// external mutation (add/edit/delete) completes.
func (t *TableController) Refresh(ctx context.Context) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.state = StateLoading
	params := listing.Params{SearchText: t.search, Page: t.page, PageSize: t.pageSize}
	t.mu.Unlock()

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	res, err := t.api.List(ctx, t.resource, params)
	t.apply(gen, res, err)
}

func (t *TableController) apply(gen uint64, res ListResult, err error) {
	t.mu.Lock()

	// A newer request owns the screen now; drop this result.
	if gen != t.gen {
		t.mu.Unlock()
		return
	}

	if err != nil {
		t.state = StateFailed
		t.lastErr = err

		var apiErr *APIError
		authFailed := errors.As(err, &apiErr) && apiErr.AuthFailure()
		t.mu.Unlock()

		if authFailed {
			if t.Session != nil {
				t.Session.Clear()
			}
			if t.OnSignOut != nil {
				t.OnSignOut()
			}
		}
		return
	}

	t.state = StateLoaded
	t.rows = res.Rows
	t.totalPages = res.TotalPages
	t.lastErr = nil
	t.mu.Unlock()
}

// SetSearch applies a submitted search text and re-fetches from page 1.
func (t *TableController) SetSearch(ctx context.Context, text string) {
	t.mu.Lock()
	t.search = text
	t.page = 1
	t.mu.Unlock()
	t.Refresh(ctx)
}

// SetPage navigates to a page and re-fetches.
func (t *TableController) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	t.mu.Lock()
	t.page = page
	t.mu.Unlock()
	t.Refresh(ctx)
}

// SetPageSize changes the page size and resets to page 1, so the server's
// out-of-range clamp never surprises the user.
func (t *TableController) SetPageSize(ctx context.Context, size int) {
	t.mu.Lock()
	t.pageSize = size
	t.page = 1
	t.mu.Unlock()
	t.Refresh(ctx)
}

// Delete soft-deletes a confirmed row, then re-fetches the current page.
func (t *TableController) Delete(ctx context.Context, id int64) error {
	err := t.api.SoftDelete(ctx, t.resource, id)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.AuthFailure() {
			if t.Session != nil {
				t.Session.Clear()
			}
			if t.OnSignOut != nil {
				t.OnSignOut()
			}
		}
		return err
	}
	t.Refresh(ctx)
	return nil
}

// RowActions computes which actions a row exposes under the screen's
// permission object. View is always available; edit and delete follow their
// flags.
func RowActions(p Permissions) []Action {
	actions := []Action{ActionView}
	if p.EditPermission == "Y" {
		actions = append(actions, ActionEdit)
	}
	if p.DeletePermission == "Y" {
		actions = append(actions, ActionDelete)
	}
	return actions
}
