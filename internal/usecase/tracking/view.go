package tracking

import (
	"shoptrack/internal/domain/asset"
	"shoptrack/internal/ports"
)

// EngineGroups holds one list per engine category. Lists are always
// present, possibly empty, so callers never branch on absence.
type EngineGroups struct {
	Supply     []asset.EngineSupply     `json:"supply"`
	Issue      []asset.EngineIssue      `json:"issue"`
	Rehab      []asset.EngineRehab      `json:"rehab"`
	Check      []asset.EngineCheck      `json:"check"`
	Upload     []asset.EngineUpload     `json:"upload"`
	Lathe      []asset.EngineLathe      `json:"lathe"`
	Pump       []asset.EnginePump       `json:"pump"`
	Electrical []asset.EngineElectrical `json:"electrical"`
}

// GeneratorGroups holds one list per generator category.
type GeneratorGroups struct {
	Supply  []asset.GeneratorSupply  `json:"supply"`
	Issue   []asset.GeneratorIssue   `json:"issue"`
	Inspect []asset.GeneratorInspect `json:"inspect"`
}

// AssetView is the verbatim-list lookup result: every row matching the
// key, grouped by class and category.
type AssetView struct {
	Key        string            `json:"key"`
	Engines    EngineGroups      `json:"engines"`
	Generators GeneratorGroups   `json:"generators"`
	Spares     []asset.SparePart `json:"spares"`
}

func viewFromHistory(key string, h ports.History) AssetView {
	return AssetView{
		Key: key,
		Engines: EngineGroups{
			Supply:     orEmpty(h.EngineSupplies),
			Issue:      orEmpty(h.EngineIssues),
			Rehab:      orEmpty(h.EngineRehabs),
			Check:      orEmpty(h.EngineChecks),
			Upload:     orEmpty(h.EngineUploads),
			Lathe:      orEmpty(h.EngineLathes),
			Pump:       orEmpty(h.EnginePumps),
			Electrical: orEmpty(h.EngineElectricals),
		},
		Generators: GeneratorGroups{
			Supply:  orEmpty(h.GeneratorSupplies),
			Issue:   orEmpty(h.GeneratorIssues),
			Inspect: orEmpty(h.GeneratorInspects),
		},
		Spares: orEmpty(h.SpareParts),
	}
}

// orEmpty keeps empty lists as [] instead of null on the wire.
func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
