package tracking

import (
	"context"
	"time"

	"shoptrack/internal/infrastructure/persistence/schema"
	"shoptrack/internal/ports"
)

// SchemaReconciler is the repair trigger the service exposes over HTTP
// and the CLI. The concrete implementation lives in the schema package.
type SchemaReconciler interface {
	Reconcile(ctx context.Context) (schema.Report, error)
}

// Service wires the tracking usecases: lookup/search/summary fan-outs,
// batch sync, per-category record entry, spare parts, export, and the
// schema repair trigger.
type Service struct {
	repo       ports.AssetRepository
	uow        ports.UnitOfWork
	reconciler SchemaReconciler
	now        func() time.Time
}

func NewService(repo ports.AssetRepository, uow ports.UnitOfWork, reconciler SchemaReconciler) *Service {
	return &Service{
		repo:       repo,
		uow:        uow,
		reconciler: reconciler,
		now:        time.Now,
	}
}

func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
