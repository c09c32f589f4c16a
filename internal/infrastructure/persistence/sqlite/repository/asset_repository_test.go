package repository

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/infrastructure/persistence/sqlite/model"
	"shoptrack/internal/ports"
)

func setupAssetRepository(t *testing.T) *AssetRepository {
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
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewAssetRepository(db)
}

func mustInsert(t *testing.T, repo *AssetRepository, recs ...asset.Record) {
	t.Helper()
	ctx := context.Background()
	for _, rec := range recs {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %s: %v", rec.Category(), err)
		}
	}
}

func TestInsertRejectsMissingKey(t *testing.T) {
	repo := setupAssetRepository(t)

	err := repo.Insert(context.Background(), asset.EngineSupply{EngineType: "Deutz"})
	if err == nil {
		t.Fatalf("Insert(unkeyed) error = nil")
	}
}

func TestFetchByKeyExact(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.EngineSupply{Serial: "111", EngineType: "Deutz F4L912", SupDate: "2025-10-30"},
		asset.EngineSupply{Serial: "1112", EngineType: "Perkins", SupDate: "2025-10-31"},
		asset.EngineIssue{Serial: "111", CurrSite: "Taiz", IssueDate: "2025-11-01"},
		asset.GeneratorSupply{Code: "111", GenType: "Cat", SupDate: "2025-11-02"},
		asset.SparePart{SerialOrCode: "111", ItemKind: "engine", PartName: "filter", Qty: 2, UsedAt: "2025-11-03"},
	)

	h, err := repo.FetchByKey(context.Background(), "111", ports.MatchExact)
	if err != nil {
		t.Fatalf("FetchByKey() error = %v", err)
	}
	if len(h.EngineSupplies) != 1 {
		t.Fatalf("exact match engine supplies len = %d, want 1", len(h.EngineSupplies))
	}
	if h.EngineSupplies[0].EngineType != "Deutz F4L912" {
		t.Fatalf("engine supply type = %q", h.EngineSupplies[0].EngineType)
	}
	if len(h.EngineIssues) != 1 || len(h.GeneratorSupplies) != 1 || len(h.SpareParts) != 1 {
		t.Fatalf("history = issues:%d gen_supplies:%d spares:%d, want 1 each",
			len(h.EngineIssues), len(h.GeneratorSupplies), len(h.SpareParts))
	}
}

func TestFetchByKeySubstring(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.EngineSupply{Serial: "111", SupDate: "2025-10-30"},
		asset.EngineSupply{Serial: "1112", SupDate: "2025-10-31"},
		asset.EngineSupply{Serial: "222", SupDate: "2025-11-01"},
	)

	h, err := repo.FetchByKey(context.Background(), "111", ports.MatchSubstring)
	if err != nil {
		t.Fatalf("FetchByKey() error = %v", err)
	}
	if len(h.EngineSupplies) != 2 {
		t.Fatalf("substring match len = %d, want 2", len(h.EngineSupplies))
	}
}

func TestFetchByKeyUnknownKeyIsEmptyNotError(t *testing.T) {
	repo := setupAssetRepository(t)

	h, err := repo.FetchByKey(context.Background(), "missing", ports.MatchExact)
	if err != nil {
		t.Fatalf("FetchByKey() error = %v", err)
	}
	if len(h.EngineSupplies) != 0 || len(h.GeneratorIssues) != 0 || len(h.SpareParts) != 0 {
		t.Fatalf("unknown key yielded rows: %+v", h)
	}
}

func TestListByCategoryNewestFirst(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.EngineRehab{Serial: "111", Rehabber: "first"},
		asset.EngineRehab{Serial: "222", Rehabber: "second"},
	)

	recs, err := repo.ListByCategory(context.Background(), asset.EngineRehabCategory)
	if err != nil {
		t.Fatalf("ListByCategory() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("ListByCategory() len = %d", len(recs))
	}
	first, ok := recs[0].(asset.EngineRehab)
	if !ok {
		t.Fatalf("ListByCategory() type = %T", recs[0])
	}
	if first.Rehabber != "second" {
		t.Fatalf("newest first rehabber = %q", first.Rehabber)
	}
}

func TestLastEngineSupplies(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.EngineSupply{Serial: "111"},
		asset.EngineSupply{Serial: "222"},
		asset.EngineSupply{Serial: "333"},
		asset.EngineSupply{Serial: "444"},
	)

	rows, err := repo.LastEngineSupplies(context.Background(), 3)
	if err != nil {
		t.Fatalf("LastEngineSupplies() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("LastEngineSupplies() len = %d", len(rows))
	}
	if rows[0].Serial != "444" || rows[2].Serial != "222" {
		t.Fatalf("LastEngineSupplies() order = %q..%q", rows[0].Serial, rows[2].Serial)
	}
}

func TestListEngineSuppliesDateRange(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.EngineSupply{Serial: "early", SupDate: "2025-10-01"},
		asset.EngineSupply{Serial: "inside", SupDate: "2025-10-15"},
		asset.EngineSupply{Serial: "late", SupDate: "2025-11-01"},
		asset.EngineSupply{Serial: "undated"},
	)

	rows, err := repo.ListEngineSupplies(context.Background(), ports.SupplyListFilter{
		DateFrom: "2025-10-10",
		DateTo:   "2025-10-31",
	})
	if err != nil {
		t.Fatalf("ListEngineSupplies() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Serial != "inside" {
		t.Fatalf(" listed serials = %+v, want only inside", rows)
	}

	all, err := repo.ListEngineSupplies(context.Background(), ports.SupplyListFilter{})
	if err != nil {
		t.Fatalf("ListEngineSupplies(all) error = %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("unfiltered len = %d, want 4", len(all))
	}
}

func TestListSparePartsFilter(t *testing.T) {
	repo := setupAssetRepository(t)
	mustInsert(t, repo,
		asset.SparePart{SerialOrCode: "111", ItemKind: "engine", PartName: "filter", Qty: 1, UsedAt: "2025-11-01"},
		asset.SparePart{SerialOrCode: "111", ItemKind: "generator", PartName: "belt", Qty: 1, UsedAt: "2025-11-02"},
		asset.SparePart{SerialOrCode: "222", ItemKind: "engine", PartName: "gasket", Qty: 3, UsedAt: "2025-11-03"},
	)

	rows, err := repo.ListSpareParts(context.Background(), ports.SpareFilter{
		ItemKind:     "engine",
		SerialOrCode: "111",
	})
	if err != nil {
		t.Fatalf("ListSpareParts() error = %v", err)
	}
	if len(rows) != 1 || rows[0].PartName != "filter" {
		t.Fatalf("filtered spares = %+v", rows)
	}
}

func TestCountRecords(t *testing.T) {
	repo := setupAssetRepository(t)
	ctx := context.Background()

	count, err := repo.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords() error = %v", err)
	}
	if count != 0 {
		t.Fatalf("empty store count = %d", count)
	}

	mustInsert(t, repo,
		asset.EngineSupply{Serial: "111"},
		asset.GeneratorInspect{Code: "GEN001", Inspector: "Sami"},
		asset.SparePart{SerialOrCode: "111", PartName: "filter", Qty: 1},
	)

	count, err = repo.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}
