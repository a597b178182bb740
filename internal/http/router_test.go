package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adminboard/internal/auth"
	intconfig "adminboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

var errMockStore = errors.New("mock store failure")

func testEnv() intconfig.Env {
	return intconfig.Env{
		AppAddr:          ":0",
		JWTSecret:        "router-test-secret",
		AppBaseURL:       "http://localhost:3000",
		AllowedFileTypes: []string{"image/png"},
		UploadDir:        "uploads",
	}
}

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db

	r := NewRouter(testEnv())
	return r, mock, func() {
		intconfig.DB = nil
		db.Close()
	}
}

func listRequest(t *testing.T, r *gin.Engine, token string, body any) map[string]any {
	t.Helper()
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/master-data/countries/list", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return out
}

func TestListWithoutTokenReturnsInvalidTokenEnvelope(t *testing.T) {
	r, mock, done := setupRouter(t)
	defer done()

	out := listRequest(t, r, "", map[string]any{"page": 1, "pageSize": 10})

	if out["result"] != false {
		t.Fatalf("expected result=false, got %v", out["result"])
	}
	msg, _ := out["message"].(map[string]any)
	if msg["invalidToken"] == nil {
		t.Fatalf("expected invalidToken shape, got %v", out)
	}

	// no store traffic happened
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store traffic: %v", err)
	}
}

func TestListWithExpiredTokenReturnsRoleError(t *testing.T) {
	r, mock, done := setupRouter(t)
	defer done()

	token, err := auth.Sign([]byte(testEnv().JWTSecret), 7, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	out := listRequest(t, r, token, map[string]any{"page": 1, "pageSize": 10})

	if out["result"] != false {
		t.Fatalf("expected result=false, got %v", out["result"])
	}
	msg, _ := out["message"].(map[string]any)
	roleErr, _ := msg["roleError"].(map[string]any)
	if roleErr["name"] != "TokenExpiredError" {
		t.Fatalf("expected TokenExpiredError, got %v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected store traffic: %v", err)
	}
}

func TestListSuccessRedactsAuditFields(t *testing.T) {
	r, mock, done := setupRouter(t)
	defer done()

	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs(int64(7), "N").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role"}).
			AddRow(7, "Admin", "admin@example.com", "", "admin"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM countries`).
		WithArgs("N").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, name, .* FROM countries`).
		WithArgs("N", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "shortname", "phone_code", "is_active"}).
			AddRow(3, "India", "IN", "+91", "Y"))

	token, err := auth.Sign([]byte(testEnv().JWTSecret), 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	out := listRequest(t, r, token, map[string]any{"page": 1, "pageSize": 10})

	if out["result"] != true {
		t.Fatalf("expected result=true, got %v", out)
	}
	if out["totalPages"] != float64(1) {
		t.Fatalf("expected totalPages=1, got %v", out["totalPages"])
	}

	records, _ := out["message"].([]any)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %v", out["message"])
	}
	rec, _ := records[0].(map[string]any)
	if rec["name"] != "India" {
		t.Fatalf("unexpected record %v", rec)
	}
	for _, banned := range []string{"createdAt", "updatedAt", "updatedUser", "isDeleted", "is_deleted"} {
		if _, present := rec[banned]; present {
			t.Fatalf("field %q must never be returned", banned)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListStoreErrorMapsToClosedCode(t *testing.T) {
	r, mock, done := setupRouter(t)
	defer done()

	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs(int64(7), "N").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "role"}).
			AddRow(7, "Admin", "admin@example.com", "", "admin"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM countries`).
		WillReturnError(errMockStore)

	token, err := auth.Sign([]byte(testEnv().JWTSecret), 7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	out := listRequest(t, r, token, map[string]any{"page": 1, "pageSize": 10})

	if out["result"] != false {
		t.Fatalf("expected result=false, got %v", out)
	}
	errObj, _ := out["error"].(map[string]any)
	if errObj["code"] != "somethingWentWrong" {
		t.Fatalf("raw store error must not leak, got %v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
