package tracking

import (
	"context"
	"testing"
)

func TestParseExportScope(t *testing.T) {
	cases := map[string]ExportScope{
		"":           ScopeBoth,
		"both":       ScopeBoth,
		"engines":    ScopeEngines,
		"GENERATORS": ScopeGenerators,
	}
	for raw, want := range cases {
		got, err := ParseExportScope(raw)
		if err != nil {
			t.Fatalf("ParseExportScope(%q) error = %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseExportScope(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseExportScope("all"); err == nil {
		t.Fatalf("ParseExportScope(all) error = nil")
	}
}

func TestSupplyRegisterWorkbook(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	items := []BatchItem{
		{Category: "eng_supply", Fields: map[string]any{"serial": "111", "engine_type": "Deutz", "sup_date": "2025-10-30"}},
		{Category: "gen_supply", Fields: map[string]any{"code": "GEN001", "gen_type": "30kVA", "sup_date": "2025-10-29"}},
	}
	if _, err := svc.SyncBatch(ctx, items); err != nil {
		t.Fatalf("seed batch: %v", err)
	}

	f, err := svc.SupplyRegisterWorkbook(ctx, ScopeBoth, "", "")
	if err != nil {
		t.Fatalf("SupplyRegisterWorkbook() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Engines" || sheets[1] != "Generators" {
		t.Fatalf("sheets = %v", sheets)
	}

	header, err := f.GetCellValue("Engines", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Serial" {
		t.Fatalf("Engines A1 = %q", header)
	}
	serial, err := f.GetCellValue("Engines", "A2")
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if serial != "111" {
		t.Fatalf("Engines A2 = %q", serial)
	}
	code, err := f.GetCellValue("Generators", "A2")
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if code != "GEN001" {
		t.Fatalf("Generators A2 = %q", code)
	}
}

func TestSupplyRegisterWorkbookScopeEnginesOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	f, err := svc.SupplyRegisterWorkbook(ctx, ScopeEngines, "", "")
	if err != nil {
		t.Fatalf("SupplyRegisterWorkbook() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Engines" {
		t.Fatalf("sheets = %v", sheets)
	}
}

func TestSearchWorkbookRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	items := []BatchItem{
		{Category: "eng_supply", Fields: map[string]any{"serial": "111", "engine_type": "Deutz", "model": "F4L912"}},
		{Category: "spare", Fields: map[string]any{"serial_or_code": "111", "part_name": "filter", "qty": 2}},
	}
	if _, err := svc.SyncBatch(ctx, items); err != nil {
		t.Fatalf("seed batch: %v", err)
	}

	f, err := svc.SearchWorkbook(ctx, "111")
	if err != nil {
		t.Fatalf("SearchWorkbook() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Search")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows len = %d, want header plus 2", len(rows))
	}
	if rows[1][0] != "engine" || rows[1][2] != "Deutz F4L912" {
		t.Fatalf("engine row = %v", rows[1])
	}
	if rows[2][0] != "spare" || rows[2][2] != "filter x 2" {
		t.Fatalf("spare row = %v", rows[2])
	}
}

func TestSummaryWorkbookRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	items := []BatchItem{
		{Category: "eng_supply", Fields: map[string]any{"serial": "111", "engine_type": "Deutz", "sup_date": "2025-10-30"}},
		{Category: "eng_check", Fields: map[string]any{"serial": "111", "inspector": "team", "check_date": "2025-11-03"}},
	}
	if _, err := svc.SyncBatch(ctx, items); err != nil {
		t.Fatalf("seed batch: %v", err)
	}

	f, err := svc.SummaryWorkbook(ctx, "")
	if err != nil {
		t.Fatalf("SummaryWorkbook() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows len = %d, want header plus 1", len(rows))
	}
	if rows[1][0] != "engine" || rows[1][1] != "111" || rows[1][2] != "Deutz" {
		t.Fatalf("summary row = %v", rows[1])
	}
}
