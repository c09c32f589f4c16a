package ports

import (
	"context"

	"shoptrack/internal/domain/asset"
)

// KeyMatch selects how an asset key is compared during a fan-out fetch.
// Exact is the contract for lookup and sync read-back; Substring is the
// free-text search contract. The two are never mixed in one call.
type KeyMatch int

const (
	MatchExact KeyMatch = iota
	MatchSubstring
)

// History is the grouped-by-category result of one fan-out fetch. Every
// slice is present even when empty; an unknown key yields the zero
// value, never an error.
type History struct {
	EngineSupplies    []asset.EngineSupply
	EngineIssues      []asset.EngineIssue
	EngineRehabs      []asset.EngineRehab
	EngineChecks      []asset.EngineCheck
	EngineUploads     []asset.EngineUpload
	EngineLathes      []asset.EngineLathe
	EnginePumps       []asset.EnginePump
	EngineElectricals []asset.EngineElectrical

	GeneratorSupplies []asset.GeneratorSupply
	GeneratorIssues   []asset.GeneratorIssue
	GeneratorInspects []asset.GeneratorInspect

	SpareParts []asset.SparePart
}

// SpareFilter narrows a spare-part listing. Zero values mean no filter.
type SpareFilter struct {
	ItemKind     string
	SerialOrCode string
	UsedFrom     string
	UsedTo       string
}

// SupplyListFilter narrows the supply-register listings used by export.
type SupplyListFilter struct {
	DateFrom string
	DateTo   string
}

// AssetRepository persists and fans out maintenance event records.
// Records are insert-only; corrections arrive as new records with a
// later timestamp.
type AssetRepository interface {
	// Insert files one record under its category table.
	Insert(ctx context.Context, rec asset.Record) error

	// FetchByKey gathers every row whose asset key matches across all
	// category tables.
	FetchByKey(ctx context.Context, key string, match KeyMatch) (History, error)

	// ListByCategory returns all rows of one category, newest first.
	ListByCategory(ctx context.Context, cat asset.Category) ([]asset.Record, error)

	// LastEngineSupplies and LastGeneratorSupplies back the recent
	// intake views.
	LastEngineSupplies(ctx context.Context, n int) ([]asset.EngineSupply, error)
	LastGeneratorSupplies(ctx context.Context, n int) ([]asset.GeneratorSupply, error)

	// ListEngineSupplies and ListGeneratorSupplies feed the supply
	// register export.
	ListEngineSupplies(ctx context.Context, filter SupplyListFilter) ([]asset.EngineSupply, error)
	ListGeneratorSupplies(ctx context.Context, filter SupplyListFilter) ([]asset.GeneratorSupply, error)

	ListSpareParts(ctx context.Context, filter SpareFilter) ([]asset.SparePart, error)

	// CountRecords reports the total rows across every category table.
	CountRecords(ctx context.Context) (int64, error)
}
