package tracking

import (
	"context"
	"errors"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
)

// CreateRecord files one manually entered record. The event date
// defaults to today when the client leaves it out, matching how the
// workshop clerks use the entry forms.
func (s *Service) CreateRecord(ctx context.Context, category string, fields map[string]any) (asset.Record, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("asset repository is required")
	}
	if s.uow == nil {
		return nil, errors.New("unit of work is required")
	}

	cat, err := asset.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(cat, fields)
	if err != nil {
		return nil, err
	}
	if err := asset.Validate(rec); err != nil {
		return nil, err
	}

	rec = withDefaultEventDate(rec, s.today())
	rec = withCreatedAt(rec, s.timestamp())

	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Insert(txCtx, rec)
	}); err != nil {
		return nil, errs.Wrapf(err, "persist %s record", cat)
	}
	return rec, nil
}

// ListRecords returns every row of one category, newest first.
func (s *Service) ListRecords(ctx context.Context, category string) ([]asset.Record, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if s.repo == nil {
		return nil, errors.New("asset repository is required")
	}

	cat, err := asset.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, errs.Wrapf(err, "list %s records", cat)
	}
	if rows == nil {
		rows = []asset.Record{}
	}
	return rows, nil
}

// withCreatedAt stamps the record's creation time when the client did
// not carry one over (offline clients replay their own timestamps).
func withCreatedAt(rec asset.Record, ts string) asset.Record {
	switch r := rec.(type) {
	case asset.EngineSupply:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineIssue:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineRehab:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineCheck:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineUpload:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineLathe:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EnginePump:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.EngineElectrical:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.GeneratorSupply:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.GeneratorIssue:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.GeneratorInspect:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	case asset.SparePart:
		if r.CreatedAt == "" {
			r.CreatedAt = ts
		}
		return r
	default:
		return rec
	}
}

// withDefaultEventDate fills the category's designated date when the
// form left it empty. Pump work carries no date of its own.
func withDefaultEventDate(rec asset.Record, today string) asset.Record {
	if rec.EventDate() != "" {
		return rec
	}
	switch r := rec.(type) {
	case asset.EngineSupply:
		r.SupDate = today
		return r
	case asset.EngineIssue:
		r.IssueDate = today
		return r
	case asset.EngineRehab:
		r.RehabDate = today
		return r
	case asset.EngineCheck:
		r.CheckDate = today
		return r
	case asset.EngineUpload:
		r.RehabUpDate = today
		return r
	case asset.EngineLathe:
		r.LatheDate = today
		return r
	case asset.EngineElectrical:
		r.WorkDate = today
		return r
	case asset.GeneratorSupply:
		r.SupDate = today
		return r
	case asset.GeneratorIssue:
		r.IssueDate = today
		return r
	case asset.GeneratorInspect:
		r.RehabDate = today
		return r
	case asset.SparePart:
		r.UsedAt = today
		return r
	default:
		return rec
	}
}
