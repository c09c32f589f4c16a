package tracking

import (
	"errors"
	"testing"

	"shoptrack/internal/domain/asset"
)

func TestDecodeRecordCanonicalFields(t *testing.T) {
	rec, err := decodeRecord(asset.EngineSupplyCategory, map[string]any{
		"serial":      "111",
		"engine_type": "Deutz",
		"sup_date":    "2025-10-30",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	sup, ok := rec.(asset.EngineSupply)
	if !ok {
		t.Fatalf("decodeRecord() type = %T", rec)
	}
	if sup.Serial != "111" || sup.EngineType != "Deutz" || sup.SupDate != "2025-10-30" {
		t.Fatalf("decoded supply = %+v", sup)
	}
}

func TestDecodeRecordCamelCaseFields(t *testing.T) {
	rec, err := decodeRecord(asset.EngineSupplyCategory, map[string]any{
		"serial":     "111",
		"engineType": "Perkins",
		"prevSite":   "Hodeidah",
		"supDate":    "2025-10-29",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	sup := rec.(asset.EngineSupply)
	if sup.EngineType != "Perkins" || sup.PrevSite != "Hodeidah" || sup.SupDate != "2025-10-29" {
		t.Fatalf("decoded supply = %+v", sup)
	}
}

func TestDecodeRecordLegacyAliases(t *testing.T) {
	rec, err := decodeRecord(asset.EngineCheckCategory, map[string]any{
		"serial": "111",
		"desc":   "oil leak",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	if chk := rec.(asset.EngineCheck); chk.Description != "oil leak" {
		t.Fatalf("aliased description = %q", chk.Description)
	}

	rec, err = decodeRecord(asset.EngineElectricalCategory, map[string]any{
		"serial": "111",
		"etype":  "starter",
		"edate":  "2025-11-01",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	elec := rec.(asset.EngineElectrical)
	if elec.Kind != "starter" || elec.WorkDate != "2025-11-01" {
		t.Fatalf("aliased electrical = %+v", elec)
	}

	rec, err = decodeRecord(asset.GeneratorSupplyCategory, map[string]any{
		"code":   "GEN001",
		"g_type": "30kVA",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	if gen := rec.(asset.GeneratorSupply); gen.GenType != "30kVA" {
		t.Fatalf("aliased gen_type = %q", gen.GenType)
	}
}

func TestDecodeRecordCanonicalWinsOverAlias(t *testing.T) {
	rec, err := decodeRecord(asset.EngineCheckCategory, map[string]any{
		"serial":      "111",
		"description": "canonical",
		"desc":        "legacy",
	})
	if err != nil {
		t.Fatalf("decodeRecord() error = %v", err)
	}
	if chk := rec.(asset.EngineCheck); chk.Description != "canonical" {
		t.Fatalf("description = %q, want canonical to win", chk.Description)
	}
}

func TestDecodeRecordUnknownCategory(t *testing.T) {
	if _, err := decodeRecord(asset.Category("bogus"), map[string]any{}); !errors.Is(err, asset.ErrUnknownCategory) {
		t.Fatalf("decodeRecord(bogus) error = %v, want ErrUnknownCategory", err)
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"engineType": "engine_type",
		"prevSite":   "prev_site",
		"serial":     "serial",
		"sup_date":   "sup_date",
		"gType":      "g_type",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
