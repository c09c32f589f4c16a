package schema

import "time"

// SchemaMigration is one row of the applied-migrations ledger. Named
// migrations run at most once; the ledger is what makes reconciliation
// auditable instead of inspect-then-maybe-ALTER guesswork.
type SchemaMigration struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:text;uniqueIndex;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null;autoCreateTime"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}
