package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	cleared atomic.Bool
}

func (s *fakeSession) Clear() { s.cleared.Store(true) }

func listServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestControllerLoadsPage(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":     true,
			"message":    []map[string]any{{"id": 1, "name": "India"}},
			"totalPages": 2,
		})
	})

	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.Refresh(context.Background())

	snap := ctl.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "India", snap.Rows[0]["name"])
	assert.Equal(t, 2, snap.TotalPages)
	assert.NoError(t, snap.Err)
}

func TestControllerStaleResponseDropped(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":     true,
			"message":    []map[string]any{{"id": 2, "name": "fresh"}},
			"totalPages": 1,
		})
	})

	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.Refresh(context.Background())

	// A response carrying an outdated generation must not overwrite the
	// fresher page.
	ctl.apply(0, ListResult{Rows: []Row{{"name": "stale"}}, TotalPages: 9}, nil)

	snap := ctl.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "fresh", snap.Rows[0]["name"])
	assert.Equal(t, 1, snap.TotalPages)
}

func TestControllerTimeout(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, map[string]any{"result": true, "message": []map[string]any{}})
	})

	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.Timeout = 20 * time.Millisecond
	ctl.Refresh(context.Background())

	snap := ctl.Snapshot()
	assert.Equal(t, StateFailed, snap.State)

	apiErr, ok := snap.Err.(*APIError)
	require.True(t, ok, "expected APIError, got %v", snap.Err)
	assert.Equal(t, FailureTimeout, apiErr.Kind)
}

func TestControllerAuthFailureSignsOut(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":  false,
			"message": map[string]any{"invalidToken": "Invalid Token!"},
		})
	})

	session := &fakeSession{}
	signedOut := false

	ctl := NewTableController(New(srv.URL, "stale"), "master-data/countries")
	ctl.Session = session
	ctl.OnSignOut = func() { signedOut = true }
	ctl.Refresh(context.Background())

	snap := ctl.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.True(t, session.cleared.Load(), "session marker should be cleared")
	assert.True(t, signedOut, "sign-out hook should fire")
}

func TestControllerTokenExpiredSignsOut(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":  false,
			"message": map[string]any{"roleError": map[string]any{"name": "TokenExpiredError"}},
		})
	})

	session := &fakeSession{}
	ctl := NewTableController(New(srv.URL, "expired"), "master-data/countries")
	ctl.Session = session
	ctl.Refresh(context.Background())

	assert.Equal(t, StateFailed, ctl.Snapshot().State)
	assert.True(t, session.cleared.Load())
}

func TestControllerValidationFailureStaysInline(t *testing.T) {
	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"result":  false,
			"message": map[string]any{"body": "invalid payload"},
		})
	})

	session := &fakeSession{}
	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.Session = session
	ctl.Refresh(context.Background())

	snap := ctl.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.False(t, session.cleared.Load(), "non-auth failures must not clear the session")

	apiErr, ok := snap.Err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, FailureValidation, apiErr.Kind)
	assert.Equal(t, "invalid payload", apiErr.Fields["body"])
}

func TestSetPageSizeResetsPage(t *testing.T) {
	var lastBody atomic.Value

	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		var p map[string]any
		_ = json.NewDecoder(r.Body).Decode(&p)
		lastBody.Store(p)
		writeJSON(w, map[string]any{"result": true, "message": []map[string]any{}, "totalPages": 0})
	})

	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.SetPage(context.Background(), 4)
	ctl.SetPageSize(context.Background(), 25)

	body, _ := lastBody.Load().(map[string]any)
	require.NotNil(t, body)
	assert.Equal(t, float64(1), body["page"], "page-size change must reset to page 1")
	assert.Equal(t, float64(25), body["pageSize"])

	snap := ctl.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 25, snap.PageSize)
}

func TestDeleteRefetchesCurrentPage(t *testing.T) {
	var listCalls atomic.Int32

	srv := listServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			writeJSON(w, map[string]any{"result": true, "message": "country deleted"})
			return
		}
		listCalls.Add(1)
		writeJSON(w, map[string]any{"result": true, "message": []map[string]any{}, "totalPages": 0})
	})

	ctl := NewTableController(New(srv.URL, "token"), "master-data/countries")
	ctl.Refresh(context.Background())
	require.NoError(t, ctl.Delete(context.Background(), 4))

	assert.Equal(t, int32(2), listCalls.Load(), "delete must trigger a re-fetch")
}

func TestRowActionsFollowPermissions(t *testing.T) {
	all := Permissions{WritePermission: "Y", EditPermission: "Y", DeletePermission: "Y"}
	assert.Equal(t, []Action{ActionView, ActionEdit, ActionDelete}, RowActions(all))

	readOnly := Permissions{WritePermission: "N", EditPermission: "N", DeletePermission: "N"}
	assert.Equal(t, []Action{ActionView}, RowActions(readOnly))

	editOnly := Permissions{EditPermission: "Y", DeletePermission: "N"}
	assert.Equal(t, []Action{ActionView, ActionEdit}, RowActions(editOnly))
}
