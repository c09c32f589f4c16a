package tracking

import (
	"context"
	"errors"

	"shoptrack/internal/errs"
	"shoptrack/internal/infrastructure/persistence/schema"
)

// Repair runs schema reconciliation on demand. Idempotent; the report
// is empty when the schema was already current.
func (s *Service) Repair(ctx context.Context) (schema.Report, error) {
	if ctx == nil {
		return schema.Report{}, errors.New("context is required")
	}
	if s.reconciler == nil {
		return schema.Report{}, errors.New("schema reconciler is required")
	}

	report, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		return schema.Report{}, errs.Wrap(err, "reconcile schema")
	}
	return report, nil
}
