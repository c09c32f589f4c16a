package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
	"shoptrack/internal/infrastructure/persistence/sqlite/model"
	"shoptrack/internal/ports"
)

// AssetRepository implements ports.AssetRepository over the per-category
// SQLite tables. Reads outside a unit of work use the shared handle;
// writes inside a unit pick the transaction up from the context.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *AssetRepository) Insert(ctx context.Context, rec asset.Record) error {
	if err := asset.Validate(rec); err != nil {
		return err
	}

	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	row := toModel(rec)
	if row == nil {
		return fmt.Errorf("%w: %T", asset.ErrUnknownCategory, rec)
	}
	if err := db.Create(row).Error; err != nil {
		return errs.Wrapf(err, "insert %s record", rec.Category())
	}
	return nil
}

func (r *AssetRepository) FetchByKey(ctx context.Context, key string, match ports.KeyMatch) (ports.History, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.History{}, err
	}

	var h ports.History
	if h.EngineSupplies, err = fetchRows(db, "serial", key, match, engineSupplyFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine supplies")
	}
	if h.EngineIssues, err = fetchRows(db, "serial", key, match, engineIssueFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine issues")
	}
	if h.EngineRehabs, err = fetchRows(db, "serial", key, match, engineRehabFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine rehabs")
	}
	if h.EngineChecks, err = fetchRows(db, "serial", key, match, engineCheckFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine checks")
	}
	if h.EngineUploads, err = fetchRows(db, "serial", key, match, engineUploadFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine uploads")
	}
	if h.EngineLathes, err = fetchRows(db, "serial", key, match, engineLatheFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine lathes")
	}
	if h.EnginePumps, err = fetchRows(db, "serial", key, match, enginePumpFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine pumps")
	}
	if h.EngineElectricals, err = fetchRows(db, "serial", key, match, engineElectricalFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch engine electricals")
	}
	if h.GeneratorSupplies, err = fetchRows(db, "code", key, match, generatorSupplyFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch generator supplies")
	}
	if h.GeneratorIssues, err = fetchRows(db, "code", key, match, generatorIssueFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch generator issues")
	}
	if h.GeneratorInspects, err = fetchRows(db, "code", key, match, generatorInspectFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch generator inspects")
	}
	if h.SpareParts, err = fetchRows(db, "serial_or_code", key, match, sparePartFromModel); err != nil {
		return ports.History{}, errs.Wrap(err, "fetch spare parts")
	}
	return h, nil
}

func (r *AssetRepository) ListByCategory(ctx context.Context, cat asset.Category) ([]asset.Record, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	switch cat {
	case asset.EngineSupplyCategory:
		return listRecords(db, engineSupplyFromModel)
	case asset.EngineIssueCategory:
		return listRecords(db, engineIssueFromModel)
	case asset.EngineRehabCategory:
		return listRecords(db, engineRehabFromModel)
	case asset.EngineCheckCategory:
		return listRecords(db, engineCheckFromModel)
	case asset.EngineUploadCategory:
		return listRecords(db, engineUploadFromModel)
	case asset.EngineLatheCategory:
		return listRecords(db, engineLatheFromModel)
	case asset.EnginePumpCategory:
		return listRecords(db, enginePumpFromModel)
	case asset.EngineElectricalCategory:
		return listRecords(db, engineElectricalFromModel)
	case asset.GeneratorSupplyCategory:
		return listRecords(db, generatorSupplyFromModel)
	case asset.GeneratorIssueCategory:
		return listRecords(db, generatorIssueFromModel)
	case asset.GeneratorInspectCategory:
		return listRecords(db, generatorInspectFromModel)
	case asset.SparePartCategory:
		return listRecords(db, sparePartFromModel)
	default:
		return nil, fmt.Errorf("%w: %q", asset.ErrUnknownCategory, cat)
	}
}

func (r *AssetRepository) LastEngineSupplies(ctx context.Context, n int) ([]asset.EngineSupply, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.EngineSupply
	if err := db.Order("id desc").Limit(n).Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query last engine supplies")
	}
	out := make([]asset.EngineSupply, 0, len(rows))
	for _, row := range rows {
		out = append(out, engineSupplyFromModel(row))
	}
	return out, nil
}

func (r *AssetRepository) LastGeneratorSupplies(ctx context.Context, n int) ([]asset.GeneratorSupply, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.GeneratorSupply
	if err := db.Order("id desc").Limit(n).Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query last generator supplies")
	}
	out := make([]asset.GeneratorSupply, 0, len(rows))
	for _, row := range rows {
		out = append(out, generatorSupplyFromModel(row))
	}
	return out, nil
}

func (r *AssetRepository) ListEngineSupplies(ctx context.Context, filter ports.SupplyListFilter) ([]asset.EngineSupply, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.EngineSupply
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query engine supplies")
	}
	out := make([]asset.EngineSupply, 0, len(rows))
	for _, row := range rows {
		if !inDateRange(row.SupDate, filter.DateFrom, filter.DateTo) {
			continue
		}
		out = append(out, engineSupplyFromModel(row))
	}
	return out, nil
}

func (r *AssetRepository) ListGeneratorSupplies(ctx context.Context, filter ports.SupplyListFilter) ([]asset.GeneratorSupply, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.GeneratorSupply
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query generator supplies")
	}
	out := make([]asset.GeneratorSupply, 0, len(rows))
	for _, row := range rows {
		if !inDateRange(row.SupDate, filter.DateFrom, filter.DateTo) {
			continue
		}
		out = append(out, generatorSupplyFromModel(row))
	}
	return out, nil
}

func (r *AssetRepository) ListSpareParts(ctx context.Context, filter ports.SpareFilter) ([]asset.SparePart, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.SparePart{})
	if filter.ItemKind != "" {
		query = query.Where("item_kind = ?", filter.ItemKind)
	}
	if filter.SerialOrCode != "" {
		query = query.Where("serial_or_code = ?", filter.SerialOrCode)
	}

	var rows []model.SparePart
	if err := query.Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query spare parts")
	}
	out := make([]asset.SparePart, 0, len(rows))
	for _, row := range rows {
		if !inDateRange(row.UsedAt, filter.UsedFrom, filter.UsedTo) {
			continue
		}
		out = append(out, sparePartFromModel(row))
	}
	return out, nil
}

func (r *AssetRepository) CountRecords(ctx context.Context) (int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, m := range model.All() {
		var count int64
		if err := db.Model(m).Count(&count).Error; err != nil {
			return 0, errs.Wrap(err, "count records")
		}
		total += count
	}
	return total, nil
}

// inDateRange mirrors the historical export semantics: no range set
// admits everything, a set range excludes rows whose date is absent or
// unparseable.
func inDateRange(raw, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	at, ok := asset.ParseEventDate(raw)
	if !ok {
		return false
	}
	if from != "" {
		if lo, ok := asset.ParseEventDate(from); ok && at.Before(lo) {
			return false
		}
	}
	if to != "" {
		if hi, ok := asset.ParseEventDate(to); ok && at.After(hi) {
			return false
		}
	}
	return true
}

func fetchRows[M any, D any](db *gorm.DB, keyColumn, key string, match ports.KeyMatch, conv func(M) D) ([]D, error) {
	query := db
	switch match {
	case ports.MatchSubstring:
		query = query.Where(keyColumn+" LIKE ?", "%"+key+"%")
	default:
		query = query.Where(keyColumn+" = ?", key)
	}

	var rows []M
	if err := query.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]D, 0, len(rows))
	for _, row := range rows {
		out = append(out, conv(row))
	}
	return out, nil
}

func listRecords[M any, D asset.Record](db *gorm.DB, conv func(M) D) ([]asset.Record, error) {
	var rows []M
	if err := db.Order("id desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query category rows")
	}
	out := make([]asset.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, conv(row))
	}
	return out, nil
}
