package schema

import "shoptrack/internal/infrastructure/persistence/sqlite/model"

// ColumnSpec declares one column the logical model expects. Every
// category attribute is stored as TEXT with an empty-string default so
// historical rows keep reading cleanly after the column is added.
type ColumnSpec struct {
	Name    string
	Type    string
	Default string
}

// TableSpec pairs a physical table with its expected column set and the
// model used to create it from scratch.
type TableSpec struct {
	Name    string
	Model   any
	Columns []ColumnSpec
}

func text(names ...string) []ColumnSpec {
	cols := make([]ColumnSpec, 0, len(names))
	for _, name := range names {
		cols = append(cols, ColumnSpec{Name: name, Type: "TEXT", Default: "''"})
	}
	return cols
}

// ExpectedTables is the canonical (table, column, type, default) set the
// reconciler heals against. Column lists mirror the model definitions;
// id columns are created with the table and never healed individually.
func ExpectedTables() []TableSpec {
	return []TableSpec{
		{
			Name:    model.EngineSupply{}.TableName(),
			Model:   &model.EngineSupply{},
			Columns: text("serial", "engine_type", "model", "prev_site", "sup_date", "supplier", "notes", "created_at"),
		},
		{
			Name:    model.EngineIssue{}.TableName(),
			Model:   &model.EngineIssue{},
			Columns: text("serial", "curr_site", "receiver", "requester", "issue_date", "notes", "created_at"),
		},
		{
			Name:    model.EngineRehab{}.TableName(),
			Model:   &model.EngineRehab{},
			Columns: text("serial", "rehabber", "rehab_type", "rehab_date", "notes", "created_at"),
		},
		{
			Name:    model.EngineCheck{}.TableName(),
			Model:   &model.EngineCheck{},
			Columns: text("serial", "inspector", "description", "check_date", "notes", "created_at"),
		},
		{
			Name:    model.EngineUpload{}.TableName(),
			Model:   &model.EngineUpload{},
			Columns: text("serial", "rehab_up", "check_up", "rehab_up_date", "check_up_date", "notes", "created_at"),
		},
		{
			Name:    model.EngineLathe{}.TableName(),
			Model:   &model.EngineLathe{},
			Columns: text("serial", "lathe", "lathe_date", "notes", "created_at"),
		},
		{
			Name:    model.EnginePump{}.TableName(),
			Model:   &model.EnginePump{},
			Columns: text("serial", "pump_serial", "pump_rehab", "notes", "created_at"),
		},
		{
			Name:    model.EngineElectrical{}.TableName(),
			Model:   &model.EngineElectrical{},
			Columns: text("serial", "kind", "starter", "alternator", "work_date", "notes", "created_at"),
		},
		{
			Name:    model.GeneratorSupply{}.TableName(),
			Model:   &model.GeneratorSupply{},
			Columns: text("code", "gen_type", "model", "prev_site", "sup_date", "supplier", "vendor", "notes", "created_at"),
		},
		{
			Name:    model.GeneratorIssue{}.TableName(),
			Model:   &model.GeneratorIssue{},
			Columns: text("code", "issue_date", "receiver", "requester", "curr_site", "notes", "created_at"),
		},
		{
			Name:    model.GeneratorInspect{}.TableName(),
			Model:   &model.GeneratorInspect{},
			Columns: text("code", "inspector", "elec_rehab", "rehab_date", "rehab_up", "check_up", "notes", "created_at"),
		},
		{
			Name:  model.SparePart{}.TableName(),
			Model: &model.SparePart{},
			Columns: append(
				text("item_kind", "serial_or_code", "part_name", "condition", "model", "notes", "used_at", "created_at"),
				ColumnSpec{Name: "qty", Type: "INTEGER", Default: "0"},
			),
		},
	}
}
