package model

// All returns every category model, in the order tables are created.
func All() []any {
	return []any{
		&EngineSupply{},
		&EngineIssue{},
		&EngineRehab{},
		&EngineCheck{},
		&EngineUpload{},
		&EngineLathe{},
		&EnginePump{},
		&EngineElectrical{},
		&GeneratorSupply{},
		&GeneratorIssue{},
		&GeneratorInspect{},
		&SparePart{},
	}
}
