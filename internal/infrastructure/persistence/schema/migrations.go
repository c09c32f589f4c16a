package schema

import "gorm.io/gorm"

// Migration is one named, additive, run-once schema repair tracked in
// the schema_migrations ledger.
type Migration struct {
	Name string
	Run  func(tx *gorm.DB) error
}

// migrations returns the ordered ledger. Append only; never reorder or
// rename entries once a database in the field has recorded them.
func migrations() []Migration {
	return []Migration{
		{
			// Older clients wrote the inspection description under a
			// column literally named desc. Copy those values into the
			// canonical description column. The legacy column stays;
			// historical readers may still reference it.
			Name: "001_engine_checks_copy_legacy_desc",
			Run: func(tx *gorm.DB) error {
				have, err := tableColumns(tx, "engine_checks")
				if err != nil {
					return err
				}
				if _, ok := have["desc"]; !ok {
					return nil
				}
				return tx.Exec(
					`UPDATE engine_checks
					 SET description = "desc"
					 WHERE (description IS NULL OR description = '')
					   AND "desc" IS NOT NULL AND "desc" != ''`,
				).Error
			},
		},
	}
}
