package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"shoptrack/internal/infrastructure/persistence/schema"
	"shoptrack/internal/infrastructure/persistence/sqlite/repository"
	"shoptrack/internal/infrastructure/persistence/sqlite/uow"
	"shoptrack/internal/usecase/tracking"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "shoptrack.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	reconciler := schema.NewReconciler(db)
	if _, err := reconciler.Reconcile(context.Background()); err != nil {
		t.Fatalf("reconcile schema: %v", err)
	}

	svc := tracking.NewService(repository.NewAssetRepository(db), uow.NewUnitOfWork(db), reconciler)
	return NewRouter(svc)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d", rr.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("health body = %v", resp)
	}
}

func TestSyncBatchThenLookup(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/sync/batch", map[string]any{
		"items": []map[string]any{
			{"category": "eng_supply", "fields": map[string]any{"serial": "111", "engine_type": "Deutz"}},
			{"category": "bogus", "fields": map[string]any{"serial": "x"}},
		},
		"return_key": "111",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("sync status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		OK      bool   `json:"ok"`
		BatchID string `json:"batch_id"`
		Saved   int    `json:"saved"`
		Skipped int    `json:"skipped"`
		View    *struct {
			Key string `json:"key"`
		} `json:"view"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode sync: %v", err)
	}
	if !resp.OK || resp.Saved != 1 || resp.Skipped != 1 || resp.BatchID == "" {
		t.Fatalf("sync response = %+v", resp)
	}
	if resp.View == nil || resp.View.Key != "111" {
		t.Fatalf("sync view = %+v", resp.View)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/lookup/111", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("lookup status = %d", rr.Code)
	}
	var view struct {
		Engines struct {
			Supply []map[string]any `json:"supply"`
		} `json:"engines"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if len(view.Engines.Supply) != 1 {
		t.Fatalf("lookup supplies = %d", len(view.Engines.Supply))
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/search", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("search without q status = %d", rr.Code)
	}
}

func TestCreateRecordEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/records/eng_rehab", map[string]any{
		"serial":   "333",
		"rehabber": "Rehab team",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodPost, "/api/records/unknown", map[string]any{"serial": "333"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("create unknown category status = %d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodPost, "/api/records/eng_rehab", map[string]any{"rehabber": "x"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("create missing key status = %d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/records/eng_rehab", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var list struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("list items = %d", len(list.Items))
	}
}

func TestSparesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/spares", map[string]any{
		"serial_or_code": "111",
		"item_kind":      "engine",
		"part_name":      "filter",
		"qty":            2,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create spare status = %d, body %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodGet, "/api/spares?item_kind=engine", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list spares status = %d", rr.Code)
	}
	var list struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode spares: %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("spares items = %d", len(list.Items))
	}
}

func TestSparesEndpointRejectsInvalidPayload(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing part name", map[string]any{"serial_or_code": "111", "qty": 1}},
		{"zero qty", map[string]any{"serial_or_code": "111", "part_name": "filter"}},
	}
	for _, tc := range cases {
		rr := doJSON(t, router, http.MethodPost, "/api/spares", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want %d, body %s", tc.name, rr.Code, http.StatusBadRequest, rr.Body.String())
		}
	}
}

func TestCreateRecordRejectsUndecodableFields(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/records/eng_supply", map[string]any{
		"serial": "111",
		"notes":  42,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d, body %s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

func TestExportSuppliesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/export/supplies", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("export status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("export content type = %q", got)
	}
	if rr.Body.Len() == 0 {
		t.Fatalf("export body is empty")
	}

	rr = doJSON(t, router, http.MethodGet, "/api/export/supplies?scope=all", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("export bad scope status = %d", rr.Code)
	}
}

func TestRepairEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/admin/repair", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("repair status = %d", rr.Code)
	}
	var resp struct {
		OK      bool     `json:"ok"`
		Changed []string `json:"changed"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode repair: %v", err)
	}
	if !resp.OK {
		t.Fatalf("repair body = %s", rr.Body.String())
	}
	if len(resp.Changed) != 0 {
		t.Fatalf("repair changed = %v, want none after startup reconcile", resp.Changed)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/health", nil)
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatalf("missing X-Request-Id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	echo := httptest.NewRecorder()
	router.ServeHTTP(echo, req)
	if got := echo.Header().Get("X-Request-Id"); got != "fixed-id" {
		t.Fatalf("X-Request-Id = %q, want echoed", got)
	}
}
