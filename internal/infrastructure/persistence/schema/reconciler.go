package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/errs"
)

// AddedColumn identifies one column the reconciler patched in.
type AddedColumn struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// TableError records a best-effort failure. One table failing never
// aborts reconciliation of the rest.
type TableError struct {
	Table string `json:"table"`
	Err   string `json:"error"`
}

// Report describes what a reconciliation run changed. A second run
// against the same store reports nothing.
type Report struct {
	CreatedTables     []string      `json:"created_tables,omitempty"`
	AddedColumns      []AddedColumn `json:"added_columns,omitempty"`
	AppliedMigrations []string      `json:"applied_migrations,omitempty"`
	Failures          []TableError  `json:"failures,omitempty"`
}

// Empty reports whether the run was a no-op.
func (r Report) Empty() bool {
	return len(r.CreatedTables) == 0 &&
		len(r.AddedColumns) == 0 &&
		len(r.AppliedMigrations) == 0 &&
		len(r.Failures) == 0
}

// Changed renders the report as flat action strings for logs.
func (r Report) Changed() []string {
	out := make([]string, 0, len(r.CreatedTables)+len(r.AddedColumns)+len(r.AppliedMigrations))
	for _, t := range r.CreatedTables {
		out = append(out, "created:"+t)
	}
	for _, c := range r.AddedColumns {
		out = append(out, "added:"+c.Table+"."+c.Column)
	}
	for _, m := range r.AppliedMigrations {
		out = append(out, "migrated:"+m)
	}
	return out
}

// Reconciler brings the physical SQLite schema up to a superset of the
// expected column set without touching existing data. Column presence
// is healed; type drift is deliberately left alone.
type Reconciler struct {
	db *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// Reconcile creates missing tables, adds missing columns with their
// declared defaults, then applies any ledger migrations not yet
// recorded. Safe to run on every start; a no-op when nothing drifted.
func (r *Reconciler) Reconcile(ctx context.Context) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, errs.Wrap(err, "check context")
	}
	if r.db == nil {
		return Report{}, errors.New("database handle is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "schema.reconciler"))

	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return Report{}, errs.Wrap(err, "ensure migration ledger")
	}

	var report Report
	migrator := db.Migrator()

	for _, spec := range ExpectedTables() {
		if !migrator.HasTable(spec.Name) {
			if err := db.AutoMigrate(spec.Model); err != nil {
				report.Failures = append(report.Failures, TableError{Table: spec.Name, Err: err.Error()})
				logging.Error(logCtx, "create table failed",
					slog.String("table", spec.Name), slog.Any("err", errs.Loggable(err)))
				continue
			}
			report.CreatedTables = append(report.CreatedTables, spec.Name)
			continue
		}

		have, err := tableColumns(db, spec.Name)
		if err != nil {
			report.Failures = append(report.Failures, TableError{Table: spec.Name, Err: err.Error()})
			logging.Error(logCtx, "inspect table failed",
				slog.String("table", spec.Name), slog.Any("err", errs.Loggable(err)))
			continue
		}

		for _, col := range spec.Columns {
			if _, ok := have[col.Name]; ok {
				continue
			}
			stmt := fmt.Sprintf(
				`ALTER TABLE %q ADD COLUMN %q %s NOT NULL DEFAULT %s`,
				spec.Name, col.Name, col.Type, col.Default,
			)
			if err := db.Exec(stmt).Error; err != nil {
				report.Failures = append(report.Failures, TableError{Table: spec.Name, Err: err.Error()})
				logging.Error(logCtx, "add column failed",
					slog.String("table", spec.Name),
					slog.String("column", col.Name),
					slog.Any("err", errs.Loggable(err)))
				continue
			}
			report.AddedColumns = append(report.AddedColumns, AddedColumn{Table: spec.Name, Column: col.Name})
		}
	}

	applied, err := r.applyMigrations(logCtx, db, &report)
	if err != nil {
		return report, err
	}
	report.AppliedMigrations = applied

	if report.Empty() {
		logging.Info(logCtx, "schema already current")
	} else {
		logging.Info(logCtx, "schema reconciled",
			slog.Any("changed", report.Changed()),
			slog.Int("failures", len(report.Failures)))
	}
	return report, nil
}

func (r *Reconciler) applyMigrations(ctx context.Context, db *gorm.DB, report *Report) ([]string, error) {
	var rows []SchemaMigration
	if err := db.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "read migration ledger")
	}
	done := make(map[string]bool, len(rows))
	for _, row := range rows {
		done[row.Name] = true
	}

	var applied []string
	for _, m := range migrations() {
		if done[m.Name] {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Name: m.Name}).Error
		})
		if err != nil {
			report.Failures = append(report.Failures, TableError{Table: m.Name, Err: err.Error()})
			logging.Error(ctx, "ledger migration failed",
				slog.String("migration", m.Name), slog.Any("err", errs.Loggable(err)))
			continue
		}
		applied = append(applied, m.Name)
	}
	return applied, nil
}

type pragmaColumn struct {
	CID     int     `gorm:"column:cid"`
	Name    string  `gorm:"column:name"`
	Type    string  `gorm:"column:type"`
	NotNull int     `gorm:"column:notnull"`
	Default *string `gorm:"column:dflt_value"`
	PK      int     `gorm:"column:pk"`
}

func tableColumns(db *gorm.DB, table string) (map[string]pragmaColumn, error) {
	var cols []pragmaColumn
	if err := db.Raw(fmt.Sprintf(`PRAGMA table_info(%q)`, table)).Scan(&cols).Error; err != nil {
		return nil, errs.Wrapf(err, "table_info %s", table)
	}
	out := make(map[string]pragmaColumn, len(cols))
	for _, col := range cols {
		out[col.Name] = col
	}
	return out, nil
}
