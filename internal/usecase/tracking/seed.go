package tracking

import (
	"context"
	"errors"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
)

// Seed inserts a small demo dataset when the store holds no records
// yet. Returns false without touching anything when data already
// exists.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	if ctx == nil {
		return false, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return false, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return false, errors.New("asset repository is required")
	}
	if s.uow == nil {
		return false, errors.New("unit of work is required")
	}

	count, err := s.repo.CountRecords(ctx)
	if err != nil {
		return false, errs.Wrap(err, "count existing records")
	}
	if count > 0 {
		return false, nil
	}

	ts := s.timestamp()
	records := demoRecords()
	err = s.uow.WithTx(ctx, func(txCtx context.Context) error {
		for _, rec := range records {
			if err := s.repo.Insert(txCtx, withCreatedAt(rec, ts)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, errs.Wrap(err, "insert demo records")
	}
	return true, nil
}

func demoRecords() []asset.Record {
	return []asset.Record{
		asset.EngineSupply{Serial: "111", EngineType: "Deutz", Model: "F4L912",
			PrevSite: "Warehouse", SupDate: "2025-10-30", Supplier: "Yemen Mobile", Notes: "new intake"},
		asset.EngineSupply{Serial: "222", EngineType: "Perkins", Model: "404D-22",
			PrevSite: "Hodeidah", SupDate: "2025-10-29", Supplier: "PowerTech", Notes: "ready for use"},
		asset.EngineSupply{Serial: "333", EngineType: "Kubota", Model: "V2203",
			PrevSite: "Sanaa", SupDate: "2025-10-28", Supplier: "DieselPro", Notes: "rehabilitated"},
		asset.EngineIssue{Serial: "111", CurrSite: "Taiz", Receiver: "Eng. Sami",
			Requester: "Operations", IssueDate: "2025-11-01", Notes: "issued"},
		asset.EngineRehab{Serial: "333", Rehabber: "Rehab team", RehabType: "full overhaul",
			RehabDate: "2025-11-02", Notes: "rings and pump replaced"},
		asset.EngineCheck{Serial: "222", Inspector: "Inspection team",
			Description: "heat and oil pressure check", CheckDate: "2025-11-03", Notes: "excellent"},
		asset.GeneratorSupply{Code: "GEN001", GenType: "30kVA", Model: "FG Wilson",
			PrevSite: "Depot", SupDate: "2025-10-30", Supplier: "Yemen Mobile", Vendor: "PowerMax", Notes: "new"},
		asset.GeneratorSupply{Code: "GEN002", GenType: "20kVA", Model: "Perkins",
			PrevSite: "Ibb", SupDate: "2025-10-29", Supplier: "Yemen Mobile", Vendor: "EnergyTech", Notes: "used"},
		asset.GeneratorSupply{Code: "GEN003", GenType: "15kVA", Model: "Deutz",
			PrevSite: "Taiz", SupDate: "2025-10-27", Supplier: "Yemen Mobile", Vendor: "DieselPro", Notes: "rehabilitated"},
		asset.GeneratorIssue{Code: "GEN001", IssueDate: "2025-11-01", Receiver: "Dhamar site",
			Requester: "Power section", CurrSite: "Dhamar", Notes: "in good order"},
		asset.GeneratorInspect{Code: "GEN002", Inspector: "Inspection team", ElecRehab: "yes",
			RehabDate: "2025-11-02", RehabUp: "yes", CheckUp: "yes", Notes: "uploaded"},
	}
}
