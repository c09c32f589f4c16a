package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
	"shoptrack/internal/usecase/tracking"
)

type handlers struct {
	svc *tracking.Service
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) lookup(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	view, err := h.svc.Lookup(r.Context(), key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeBadRequest(w, r, "query parameter q is required")
		return
	}
	view, err := h.svc.Search(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (h *handlers) summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Summary(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []tracking.SummaryRow{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"rows": rows})
}

func (h *handlers) lastIntake(w http.ResponseWriter, r *http.Request) {
	intake, err := h.svc.LastIntake(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, intake)
}

type syncBatchRequest struct {
	Items     []tracking.BatchItem `json:"items"`
	ReturnKey string               `json:"return_key,omitempty"`
}

type syncBatchResponse struct {
	OK      bool                `json:"ok"`
	BatchID string              `json:"batch_id"`
	Saved   int                 `json:"saved"`
	Skipped int                 `json:"skipped"`
	View    *tracking.AssetView `json:"view,omitempty"`
}

func (h *handlers) syncBatch(w http.ResponseWriter, r *http.Request) {
	var req syncBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}

	report, err := h.svc.SyncBatch(r.Context(), req.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := syncBatchResponse{
		OK:      true,
		BatchID: report.BatchID,
		Saved:   report.Saved,
		Skipped: report.Skipped,
	}
	if req.ReturnKey != "" {
		view, err := h.svc.Lookup(r.Context(), req.ReturnKey)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp.View = &view
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *handlers) createRecord(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}
	rec, err := h.svc.CreateRecord(r.Context(), chi.URLParam(r, "category"), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, rec)
}

func (h *handlers) listRecords(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListRecords(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"items": rows})
}

func (h *handlers) createSpare(w http.ResponseWriter, r *http.Request) {
	var sp asset.SparePart
	if err := json.NewDecoder(r.Body).Decode(&sp); err != nil {
		writeBadRequest(w, r, "invalid JSON body")
		return
	}
	created, err := h.svc.CreateSparePart(r.Context(), sp)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (h *handlers) listSpares(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := h.svc.ListSpareParts(r.Context(), tracking.SpareListFilter{
		ItemKind:     q.Get("item_kind"),
		SerialOrCode: q.Get("serial_or_code"),
		DateFrom:     q.Get("date_from"),
		DateTo:       q.Get("date_to"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"items": rows})
}

func (h *handlers) exportSupplies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope, err := tracking.ParseExportScope(q.Get("scope"))
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}
	f, err := h.svc.SupplyRegisterWorkbook(r.Context(), scope, q.Get("date_from"), q.Get("date_to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	streamWorkbook(w, r, f, "supplies.xlsx")
}

func (h *handlers) exportSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	f, err := h.svc.SearchWorkbook(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	streamWorkbook(w, r, f, fmt.Sprintf("search_%s.xlsx", url.PathEscape(q)))
}

func (h *handlers) exportSummary(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.SummaryWorkbook(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	streamWorkbook(w, r, f, "summary.xlsx")
}

func (h *handlers) repair(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Repair(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"ok":      true,
		"changed": report.Changed(),
		"report":  report,
	})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func streamWorkbook(w http.ResponseWriter, r *http.Request, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := f.WriteTo(w); err != nil {
		// Headers are already out; all we can do is log.
		logging.Error(r.Context(), "stream workbook failed", slog.Any("err", errs.Loggable(err)))
	}
}
