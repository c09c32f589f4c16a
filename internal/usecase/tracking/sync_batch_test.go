package tracking

import (
	"context"
	"testing"
)

func TestSyncBatchSavesAndSkips(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	items := []BatchItem{
		{Category: "eng_supply", Fields: map[string]any{"serial": "111", "engine_type": "Deutz"}},
		{Category: "eng_issue", Fields: map[string]any{"serial": "111", "curr_site": "Taiz"}},
		{Category: "gen_supply", Fields: map[string]any{"code": "GEN001", "gen_type": "30kVA"}},
		{Category: "spare", Fields: map[string]any{"serial_or_code": "111", "part_name": "filter", "qty": 2}},
		{Category: "engine_supply", Fields: map[string]any{"serial": "999"}},
	}

	report, err := svc.SyncBatch(ctx, items)
	if err != nil {
		t.Fatalf("SyncBatch() error = %v", err)
	}
	if report.Saved != 4 {
		t.Fatalf("saved = %d, want 4", report.Saved)
	}
	if report.Skipped != 1 {
		t.Fatalf("skipped = %d, want 1", report.Skipped)
	}
	if report.BatchID == "" {
		t.Fatalf("batch id is empty")
	}

	view, err := svc.Lookup(ctx, "111")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(view.Engines.Supply) != 1 || len(view.Engines.Issue) != 1 || len(view.Spares) != 1 {
		t.Fatalf("persisted 111 view = supply:%d issue:%d spares:%d",
			len(view.Engines.Supply), len(view.Engines.Issue), len(view.Spares))
	}
	missed, err := svc.Lookup(ctx, "999")
	if err != nil {
		t.Fatalf("Lookup(999) error = %v", err)
	}
	if len(missed.Engines.Supply) != 0 {
		t.Fatalf("skipped item was persisted: %+v", missed.Engines.Supply)
	}
}

func TestSyncBatchSkipsMissingKey(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.SyncBatch(context.Background(), []BatchItem{
		{Category: "eng_rehab", Fields: map[string]any{"rehabber": "team"}},
		{Category: "eng_rehab", Fields: map[string]any{"serial": "333", "rehabber": "team"}},
	})
	if err != nil {
		t.Fatalf("SyncBatch() error = %v", err)
	}
	if report.Saved != 1 || report.Skipped != 1 {
		t.Fatalf("report = %+v, want 1 saved 1 skipped", report)
	}
}

func TestSyncBatchSkipsUndecodableFields(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.SyncBatch(context.Background(), []BatchItem{
		{Category: "spare", Fields: map[string]any{"serial_or_code": "111", "part_name": "filter", "qty": "two"}},
	})
	if err != nil {
		t.Fatalf("SyncBatch() error = %v", err)
	}
	if report.Saved != 0 || report.Skipped != 1 {
		t.Fatalf("report = %+v, want 0 saved 1 skipped", report)
	}
}

func TestSyncBatchEmpty(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.SyncBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("SyncBatch() error = %v", err)
	}
	if report.Saved != 0 || report.Skipped != 0 {
		t.Fatalf("report = %+v, want empty", report)
	}
	if report.BatchID == "" {
		t.Fatalf("empty batch still gets an id")
	}
}

func TestSyncBatchStampsCreatedAt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SyncBatch(ctx, []BatchItem{
		{Category: "eng_supply", Fields: map[string]any{"serial": "111"}},
	}); err != nil {
		t.Fatalf("SyncBatch() error = %v", err)
	}

	view, err := svc.Lookup(ctx, "111")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(view.Engines.Supply) != 1 || view.Engines.Supply[0].CreatedAt == "" {
		t.Fatalf("synced record missing created_at: %+v", view.Engines.Supply)
	}
}
